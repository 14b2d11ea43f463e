package paymentmethods

import (
	"context"
	"fmt"
	"net/url"

	"github.com/VictorAvelar/mollie-api-go/v3/mollie"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
)

const MollieIdealSystemName = "ideal"

type mollieIdealMethod struct {
}

func NewMollieIdealMethod() Method {
	return &mollieIdealMethod{}
}

// The shopper has to pick a bank, so iDEAL can never be auto-selected.
func (m *mollieIdealMethod) RequiresSelection() bool {
	return true
}

func (m *mollieIdealMethod) RecurringSupport() RecurringSupport {
	return RecurringNotSupported
}

func (m *mollieIdealMethod) Summary() string {
	return "iDEAL via Mollie"
}

func (m *mollieIdealMethod) Validate(form url.Values) checkoutapi.ValidationResult {
	result := checkoutapi.ValidationResult{}
	if form.Get("issuer") == "" {
		result.Errors = append(result.Errors, checkoutapi.FieldError{
			Field:   "issuer",
			Message: "Select your bank",
		})
	}

	return result
}

func (m *mollieIdealMethod) BuildPaymentInfo(cart checkoutapi.Cart, form url.Values) (any, error) {
	return &mollie.Payment{
		Amount: &mollie.Amount{
			Currency: cart.Currency,
			Value:    fmt.Sprintf("%.2f", float32(cartTotal(cart))/100.0),
		},
		CustomerReference: cart.CustomerUID,
		Description:       "Goods ordered in basket " + cart.BasketUID,
		Issuer:            form.Get("issuer"),
		Metadata: map[string]string{
			"basketUID": cart.BasketUID,
		},
	}, nil
}

// An iDEAL payment authorizes a single transfer; there is no stored
// mandate to repeat.
func (m *mollieIdealMethod) CreateRepeatRequest(c context.Context, cart checkoutapi.Cart, priorOrder orderhistory.Order) (any, error) {
	return nil, nil
}
