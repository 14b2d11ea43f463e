package paymentmethods

import (
	"context"
	"net/url"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
)

type RecurringSupport string

const (
	RecurringNotSupported RecurringSupport = "notSupported"
	RecurringSupported    RecurringSupport = "supported"
)

// Method is the capability surface shared by all payment methods.
//
//go:generate mockgen -source=api.go -package paymentmethods -destination catalog_mock.go Method,Catalog
type Method interface {
	// RequiresSelection tells whether the shopper must explicitly pick
	// this method before it may be used.
	RequiresSelection() bool
	RecurringSupport() RecurringSupport
	Validate(form url.Values) checkoutapi.ValidationResult
	// BuildPaymentInfo turns a validated form into the provider-specific
	// payment payload. The payload is opaque to the caller.
	BuildPaymentInfo(cart checkoutapi.Cart, form url.Values) (any, error)
	Summary() string
	// CreateRepeatRequest reconstructs a payment request from a prior
	// order. A nil result without error means the method declines.
	CreateRepeatRequest(c context.Context, cart checkoutapi.Cart, priorOrder orderhistory.Order) (any, error)
}

// Entry pairs a system name with its capability. The position of an
// entry in a catalog list is significant: the first remaining entry is
// the default when only one is left after filtering.
type Entry struct {
	SystemName string
	Active     bool
	Method     Method
}

type Catalog interface {
	ActiveMethods(c context.Context, cart checkoutapi.Cart, storeUID string) ([]Entry, error)
	MethodBySystemName(c context.Context, systemName string, includeInactive bool, storeUID string) (Entry, bool, error)
}

// EligibleForCart drops methods that cannot handle a recurring item
// when the cart contains one.
func EligibleForCart(entries []Entry, cart checkoutapi.Cart) []Entry {
	if !cart.ContainsRecurringItem() {
		return entries
	}

	eligible := []Entry{}
	for _, entry := range entries {
		if entry.Method.RecurringSupport() == RecurringNotSupported {
			continue
		}
		eligible = append(eligible, entry)
	}

	return eligible
}
