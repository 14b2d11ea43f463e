package checkout

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/carttotal"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutevents"
	"github.com/MarcGrol/checkoutflow/services/customerprefs"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
	"github.com/MarcGrol/checkoutflow/services/paymentmethods"
	"github.com/MarcGrol/checkoutflow/services/paymentselection"
	"github.com/MarcGrol/checkoutflow/services/termsconditions"
)

type service struct {
	sessionStore mystore.Store[checkoutapi.CheckoutSession]
	catalog      paymentmethods.Catalog
	totaler      carttotal.Totaler
	history      orderhistory.OrderFinder
	prefs        customerprefs.PreferenceStore
	publisher    mypublisher.Publisher
	policy       paymentselection.Policy
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

func newService(sessionStore mystore.Store[checkoutapi.CheckoutSession], catalog paymentmethods.Catalog,
	totaler carttotal.Totaler, history orderhistory.OrderFinder, prefs customerprefs.PreferenceStore,
	publisher mypublisher.Publisher, policy paymentselection.Policy, nower mytime.Nower, uuider myuuid.UUIDer,
	logger mylog.Logger) *service {
	return &service{
		sessionStore: sessionStore,
		catalog:      catalog,
		totaler:      totaler,
		history:      history,
		prefs:        prefs,
		publisher:    publisher,
		policy:       policy,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}

func (s *service) createCheckout(c context.Context, cart checkoutapi.Cart) (checkoutapi.CheckoutSession, error) {
	sessionUID := s.uuider.Create()
	session := checkoutapi.NewCheckoutSession(sessionUID, cart, s.nower.Now())

	err := s.sessionStore.Put(c, sessionUID, session)
	if err != nil {
		return checkoutapi.CheckoutSession{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Started checkout %s for basket %s", sessionUID, cart.BasketUID)

	return session, nil
}

func (s *service) getSession(c context.Context, sessionUID string) (checkoutapi.CheckoutSession, error) {
	session, found, err := s.sessionStore.Get(c, sessionUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, myerrors.NewInternalError(err)
	}
	if !found {
		return checkoutapi.CheckoutSession{}, myerrors.NewNotFoundError(fmt.Errorf("checkout with uid %s not found", sessionUID))
	}

	return session, nil
}

func (s *service) storeSession(c context.Context, session checkoutapi.CheckoutSession) error {
	now := s.nower.Now()
	session.LastModified = &now

	err := s.sessionStore.Put(c, session.SessionUID, session)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

// evaluateTerms runs the terms-and-conditions step and persists the
// resulting session state.
func (s *service) evaluateTerms(c context.Context, sessionUID string, input checkoutapi.StepInput) (checkoutapi.CheckoutSession, checkoutapi.Verdict, error) {
	session, err := s.getSession(c, sessionUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	step := termsconditions.New(&session, s.publisher)
	verdict, err := step.Evaluate(c, input)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	err = s.storeSession(c, session)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	return session, verdict, nil
}

// evaluatePayment runs the payment-method step with a fresh evaluator
// and persists the resulting session state. A successful selection is
// announced on the checkout topic.
func (s *service) evaluatePayment(c context.Context, sessionUID string, input checkoutapi.StepInput) (checkoutapi.CheckoutSession, checkoutapi.Verdict, error) {
	session, err := s.getSession(c, sessionUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	before, _, err := s.prefs.Get(c, session.Cart.CustomerUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	evaluator := paymentselection.New(&session, s.catalog, s.totaler, s.history, s.prefs, s.policy)
	verdict, err := evaluator.Evaluate(c, input)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	err = s.storeSession(c, session)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	err = s.announceSelection(c, session, input, verdict, before)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Verdict{}, err
	}

	return session, verdict, nil
}

func (s *service) announceSelection(c context.Context, session checkoutapi.CheckoutSession, input checkoutapi.StepInput,
	verdict checkoutapi.Verdict, before customerprefs.Preference) error {
	submitted := input.Mode == checkoutapi.StepModeSubmit && verdict.Satisfied
	autoSelectCandidate := input.Mode == checkoutapi.StepModeRender && before.SelectedPaymentMethod == ""
	if !submitted && !autoSelectCandidate {
		return nil
	}

	after, _, err := s.prefs.Get(c, session.Cart.CustomerUID)
	if err != nil {
		return err
	}
	if after.SelectedPaymentMethod == "" {
		return nil
	}

	return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.PaymentMethodSelected{
		SessionUID:    session.SessionUID,
		BasketUID:     session.Cart.BasketUID,
		CustomerUID:   session.Cart.CustomerUID,
		StoreUID:      session.Cart.StoreUID,
		PaymentMethod: after.SelectedPaymentMethod,
		AutoSelected:  !submitted,
	})
}

// eligibleMethods lists what the payment page has to offer for this
// cart.
func (s *service) eligibleMethods(c context.Context, session checkoutapi.CheckoutSession) ([]methodOption, error) {
	entries, err := s.catalog.ActiveMethods(c, session.Cart, session.Cart.StoreUID)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	options := []methodOption{}
	for _, entry := range paymentmethods.EligibleForCart(entries, session.Cart) {
		options = append(options, methodOption{
			SystemName:        entry.SystemName,
			Summary:           entry.Method.Summary(),
			RequiresSelection: entry.Method.RequiresSelection(),
		})
	}

	return options, nil
}

// completeCheckout verifies that all requirement steps are satisfied
// and announces the completed checkout.
func (s *service) completeCheckout(c context.Context, sessionUID string) (checkoutapi.CheckoutSession, checkoutapi.Amount, error) {
	session, err := s.getSession(c, sessionUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, err
	}

	accepted, _ := session.GetValue(checkoutapi.SessionValueTermsAccepted)
	if accepted != true {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, myerrors.NewInvalidInputError(
			fmt.Errorf("terms and conditions not accepted in checkout %s", sessionUID))
	}

	pref, _, err := s.prefs.Get(c, session.Cart.CustomerUID)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, err
	}

	total, err := s.totaler.CartTotal(c, session.Cart, true)
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, err
	}

	if total.Value != 0 && pref.SelectedPaymentMethod == "" {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, myerrors.NewInvalidInputError(
			fmt.Errorf("no payment method selected in checkout %s", sessionUID))
	}

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
		SessionUID:             session.SessionUID,
		BasketUID:              session.Cart.BasketUID,
		CustomerUID:            session.Cart.CustomerUID,
		StoreUID:               session.Cart.StoreUID,
		PaymentMethod:          pref.SelectedPaymentMethod,
		AmountInCents:          total.Value,
		Currency:               total.Currency,
		StoredPaymentReference: s.storedPaymentReference(c, session, pref.SelectedPaymentMethod),
	})
	if err != nil {
		return checkoutapi.CheckoutSession{}, checkoutapi.Amount{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Checkout %s completed with method %s",
		sessionUID, pref.SelectedPaymentMethod)

	return session, total, nil
}

// storedPaymentReference is the shopper reference that methods with
// recurring support can charge against later on.
func (s *service) storedPaymentReference(c context.Context, session checkoutapi.CheckoutSession, methodName string) string {
	if methodName == "" {
		return ""
	}

	entry, found, err := s.catalog.MethodBySystemName(c, methodName, true, session.Cart.StoreUID)
	if err != nil || !found {
		return ""
	}
	if entry.Method.RecurringSupport() != paymentmethods.RecurringSupported {
		return ""
	}

	return session.Cart.CustomerUID
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = termsconditions.CreateTopic(c, s.publisher)
	if err != nil {
		return err
	}

	return nil
}
