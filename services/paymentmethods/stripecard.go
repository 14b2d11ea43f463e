package paymentmethods

import (
	"context"
	"net/url"

	"github.com/stripe/stripe-go/v74"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
)

const StripeCardSystemName = "stripecard"

type stripeCardMethod struct {
}

func NewStripeCardMethod() Method {
	return &stripeCardMethod{}
}

func (m *stripeCardMethod) RequiresSelection() bool {
	return false
}

func (m *stripeCardMethod) RecurringSupport() RecurringSupport {
	return RecurringSupported
}

func (m *stripeCardMethod) Summary() string {
	return "Cards via Stripe"
}

// Stripe collects card details on its own hosted page
func (m *stripeCardMethod) Validate(form url.Values) checkoutapi.ValidationResult {
	return checkoutapi.ValidationResult{}
}

func (m *stripeCardMethod) BuildPaymentInfo(cart checkoutapi.Cart, form url.Values) (any, error) {
	return m.sessionParams(cart, ""), nil
}

func (m *stripeCardMethod) CreateRepeatRequest(c context.Context, cart checkoutapi.Cart, priorOrder orderhistory.Order) (any, error) {
	if priorOrder.StoredPaymentReference == "" {
		return nil, nil
	}

	return m.sessionParams(cart, priorOrder.StoredPaymentReference), nil
}

func (m *stripeCardMethod) sessionParams(cart checkoutapi.Cart, customerRef string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		ClientReferenceID: stripe.String(cart.BasketUID),
		LineItems: func() []*stripe.CheckoutSessionLineItemParams {
			items := []*stripe.CheckoutSessionLineItemParams{}
			for _, item := range cart.Items {
				items = append(items, &stripe.CheckoutSessionLineItemParams{
					PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
						Currency: stripe.String(cart.Currency),
						ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
							Name:        stripe.String(item.ProductUID),
							Description: stripe.String(item.Description),
						},
						UnitAmount: stripe.Int64(item.UnitPrice),
					},
					Quantity: stripe.Int64(int64(item.Quantity)),
				})
			}
			return items
		}(),
	}
	if customerRef != "" {
		params.Customer = stripe.String(customerRef)
	}

	return params
}
