package customerprefs

import (
	"context"
	"time"
)

// Preference holds the customer's payment method choices.
// SelectedPaymentMethod is the per-checkout selection,
// PreferredPaymentMethod the longer-lived hint.
type Preference struct {
	CustomerUID            string
	SelectedPaymentMethod  string
	PreferredPaymentMethod string
	LastModified           *time.Time
}

//go:generate mockgen -source=api.go -package customerprefs -destination store_mock.go PreferenceStore
type PreferenceStore interface {
	Get(c context.Context, customerUID string) (Preference, bool, error)
	SaveSelectedMethod(c context.Context, customerUID string, methodName string) error
	SavePreferredMethod(c context.Context, customerUID string, methodName string) error
}
