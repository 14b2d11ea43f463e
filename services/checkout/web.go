package checkout

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/mycontext"
	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttp"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/carttotal"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/customerprefs"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
	"github.com/MarcGrol/checkoutflow/services/paymentmethods"
	"github.com/MarcGrol/checkoutflow/services/paymentselection"
	"github.com/MarcGrol/checkoutflow/services/termsconditions"
)

//go:embed templates
var templateFolder embed.FS
var (
	termsPageTemplate   *template.Template
	paymentPageTemplate *template.Template
	confirmPageTemplate *template.Template
)

func init() {
	termsPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/terms.html"))
	paymentPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/payment.html"))
	confirmPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/confirm.html"))
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(sessionStore mystore.Store[checkoutapi.CheckoutSession], catalog paymentmethods.Catalog,
	totaler carttotal.Totaler, history orderhistory.OrderFinder, prefs customerprefs.PreferenceStore,
	publisher mypublisher.Publisher, policy paymentselection.Policy, nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("checkout")

	return &webService{
		logger:  logger,
		service: newService(sessionStore, catalog, totaler, history, prefs, publisher, policy, nower, uuider, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Endpoints that compose the user-interface
	router.HandleFunc("/checkout", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/terms", s.termsPage()).Methods("GET")
	router.HandleFunc("/checkout/{sessionUID}/terms", s.acceptTermsPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/payment", s.paymentPage()).Methods("GET")
	router.HandleFunc("/checkout/{sessionUID}/payment", s.submitPaymentPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/confirm", s.confirmPage()).Methods("GET")
	router.HandleFunc("/checkout/{sessionUID}/confirm", s.completeCheckoutPage()).Methods("POST")

	return s.service.CreateTopics(c)
}

// startCheckoutPage creates a new checkout session for the submitted
// cart and sends the shopper to the first requirement step.
func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cart, err := checkoutapi.NewCartFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing cart: %s", err)))
			return
		}
		if cart.BasketUID == "" || cart.CustomerUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing basketUid or customerUid")))
			return
		}

		session, err := s.service.createCheckout(c, cart)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/checkout/%s/terms", session.SessionUID), http.StatusSeeOther)
	}
}

func (s *webService) termsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		session, verdict, err := s.service.evaluateTerms(c, sessionUID, checkoutapi.StepInput{
			Mode: checkoutapi.StepModeRender,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		if verdict.Satisfied {
			http.Redirect(w, r, fmt.Sprintf("/checkout/%s/payment", sessionUID), http.StatusSeeOther)
			return
		}

		s.renderTermsPage(c, w, termsPageData{
			Session: session,
			Version: termsconditions.CurrentVersion,
		})
	}
}

func (s *webService) acceptTermsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		session, verdict, err := s.service.evaluateTerms(c, sessionUID, checkoutapi.StepInput{
			Mode:           checkoutapi.StepModeSubmit,
			SubmittedValue: r.Form.Get("terms"),
			Form:           r.Form,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !verdict.Satisfied {
			s.renderTermsPage(c, w, termsPageData{
				Session: session,
				Version: termsconditions.CurrentVersion,
				Errors:  verdict.Errors,
			})
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/checkout/%s/payment", sessionUID), http.StatusSeeOther)
	}
}

// paymentPage decides whether the payment step must be shown at all.
func (s *webService) paymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		session, verdict, err := s.service.evaluatePayment(c, sessionUID, checkoutapi.StepInput{
			Mode: checkoutapi.StepModeRender,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		if verdict.Satisfied || verdict.Skipped {
			http.Redirect(w, r, fmt.Sprintf("/checkout/%s/confirm", sessionUID), http.StatusSeeOther)
			return
		}

		methods, err := s.service.eligibleMethods(c, session)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.renderPaymentPage(c, w, paymentPageData{
			Session: session,
			Methods: methods,
		})
	}
}

func (s *webService) submitPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		session, verdict, err := s.service.evaluatePayment(c, sessionUID, checkoutapi.StepInput{
			Mode:           checkoutapi.StepModeSubmit,
			SubmittedValue: r.Form.Get("paymentMethod"),
			Form:           r.Form,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !verdict.Satisfied {
			methods, err := s.service.eligibleMethods(c, session)
			if err != nil {
				errorWriter.WriteError(c, w, 3, err)
				return
			}

			s.renderPaymentPage(c, w, paymentPageData{
				Session: session,
				Methods: methods,
				Errors:  verdict.Errors,
			})
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/checkout/%s/confirm", sessionUID), http.StatusSeeOther)
	}
}

func (s *webService) confirmPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		session, err := s.service.getSession(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		total, err := s.service.totaler.CartTotal(c, session.Cart, true)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		accepted, _ := session.GetValue(checkoutapi.SessionValueTermsAccepted)

		s.renderConfirmPage(c, w, confirmPageData{
			Session:       session,
			Total:         total,
			TermsAccepted: accepted == true,
		})
	}
}

// completeCheckoutPage finalizes the checkout once all steps are
// satisfied.
func (s *webService) completeCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		session, total, err := s.service.completeCheckout(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderConfirmPage(c, w, confirmPageData{
			Session:       session,
			Total:         total,
			TermsAccepted: true,
			Completed:     true,
		})
	}
}

func (s *webService) renderTermsPage(c context.Context, w http.ResponseWriter, data termsPageData) {
	s.renderPage(c, w, termsPageTemplate, data)
}

func (s *webService) renderPaymentPage(c context.Context, w http.ResponseWriter, data paymentPageData) {
	s.renderPage(c, w, paymentPageTemplate, data)
}

func (s *webService) renderConfirmPage(c context.Context, w http.ResponseWriter, data confirmPageData) {
	s.renderPage(c, w, confirmPageTemplate, data)
}

func (s *webService) renderPage(c context.Context, w http.ResponseWriter, tmplt *template.Template, data any) {
	errorWriter := myhttp.NewWriter(s.logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmplt.Execute(w, data)
	if err != nil {
		errorWriter.WriteError(c, w, 99, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
		return
	}
}
