package paymentmethods

import (
	"context"
	"net/url"

	"github.com/adyen/adyen-go-api-library/v6/src/checkout"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
)

const AdyenCardSystemName = "adyencard"

type AdyenConfig struct {
	MerchantAccount string
}

type adyenCardMethod struct {
	merchantAccount string
}

func NewAdyenCardMethod(cfg AdyenConfig) Method {
	return &adyenCardMethod{
		merchantAccount: cfg.MerchantAccount,
	}
}

func (m *adyenCardMethod) RequiresSelection() bool {
	return false
}

func (m *adyenCardMethod) RecurringSupport() RecurringSupport {
	return RecurringSupported
}

func (m *adyenCardMethod) Summary() string {
	return "Cards via Adyen"
}

func (m *adyenCardMethod) Validate(form url.Values) checkoutapi.ValidationResult {
	result := checkoutapi.ValidationResult{}
	if form.Get("cardholderName") == "" {
		result.Errors = append(result.Errors, checkoutapi.FieldError{
			Field:   "cardholderName",
			Message: "Cardholder name is required",
		})
	}

	return result
}

func (m *adyenCardMethod) BuildPaymentInfo(cart checkoutapi.Cart, form url.Values) (any, error) {
	return &checkout.CreateCheckoutSessionRequest{
		AllowedPaymentMethods: []string{"scheme"},
		Amount: checkout.Amount{
			Currency: cart.Currency,
			Value:    cartTotal(cart),
		},
		Channel:                "Web",
		MerchantAccount:        m.merchantAccount,
		MerchantOrderReference: cart.BasketUID,
		Reference:              cart.BasketUID,
		ShopperEmail:           form.Get("shopperEmail"),
		ShopperLocale:          form.Get("shopperLocale"),
		ShopperReference:       cart.CustomerUID,
		TrustedShopper:         true,
	}, nil
}

func (m *adyenCardMethod) CreateRepeatRequest(c context.Context, cart checkoutapi.Cart, priorOrder orderhistory.Order) (any, error) {
	if priorOrder.StoredPaymentReference == "" {
		// nothing stored to charge against
		return nil, nil
	}

	return &checkout.CreateCheckoutSessionRequest{
		AllowedPaymentMethods: []string{"scheme"},
		Amount: checkout.Amount{
			Currency: cart.Currency,
			Value:    cartTotal(cart),
		},
		Channel:                  "Web",
		MerchantAccount:          m.merchantAccount,
		MerchantOrderReference:   cart.BasketUID,
		RecurringProcessingModel: "UnscheduledCardOnFile",
		Reference:                cart.BasketUID,
		ShopperInteraction:       "ContAuth",
		ShopperReference:         priorOrder.StoredPaymentReference,
		TrustedShopper:           true,
	}, nil
}

func cartTotal(cart checkoutapi.Cart) int64 {
	var total int64
	for _, item := range cart.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	total -= cart.Discount
	if total < 0 {
		total = 0
	}

	return total
}
