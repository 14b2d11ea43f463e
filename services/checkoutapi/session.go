package checkoutapi

import (
	"time"
)

const (
	// SessionValuePaymentInfo is the session key under which the opaque
	// provider payment payload is kept.
	SessionValuePaymentInfo = "paymentInfo"

	// SessionValueTermsAccepted is set by the terms-and-conditions step.
	SessionValueTermsAccepted = "termsAccepted"

	// CustomPropHasOnlyOneActivePaymentMethod records the single-method
	// diagnostic outcome of the payment-selection decision.
	CustomPropHasOnlyOneActivePaymentMethod = "HasOnlyOneActivePaymentMethod"
)

// CheckoutSession is the per-checkout mutable state shared by all
// requirement steps. It lives as long as the checkout itself.
type CheckoutSession struct {
	SessionUID   string
	CreatedAt    time.Time
	LastModified *time.Time
	Cart         Cart

	IsPaymentRequired         bool
	IsPaymentSelectionSkipped bool
	PaymentSummary            string
	PaymentFormEcho           map[string]string

	CustomProperties map[string]any
	Values           map[string]any
}

func NewCheckoutSession(sessionUID string, cart Cart, now time.Time) CheckoutSession {
	return CheckoutSession{
		SessionUID:       sessionUID,
		CreatedAt:        now,
		Cart:             cart,
		PaymentFormEcho:  map[string]string{},
		CustomProperties: map[string]any{},
		Values:           map[string]any{},
	}
}

func (s *CheckoutSession) SetValue(key string, value any) {
	if s.Values == nil {
		s.Values = map[string]any{}
	}
	s.Values[key] = value
}

func (s *CheckoutSession) GetValue(key string) (any, bool) {
	value, exists := s.Values[key]
	return value, exists
}
