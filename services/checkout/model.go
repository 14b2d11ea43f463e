package checkout

import (
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

type methodOption struct {
	SystemName        string
	Summary           string
	RequiresSelection bool
}

type termsPageData struct {
	Session checkoutapi.CheckoutSession
	Version string
	Errors  []checkoutapi.FieldError
}

type paymentPageData struct {
	Session checkoutapi.CheckoutSession
	Methods []methodOption
	Errors  []checkoutapi.FieldError
}

type confirmPageData struct {
	Session       checkoutapi.CheckoutSession
	Total         checkoutapi.Amount
	TermsAccepted bool
	Completed     bool
}
