package paymentselection

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/services/carttotal"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/customerprefs"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
	"github.com/MarcGrol/checkoutflow/services/paymentmethods"
)

// Policy carries the merchant-level toggles that shape the decision.
type Policy struct {
	// SkipPaymentIfSingleMethod auto-selects the only eligible method
	// when it does not require explicit selection.
	SkipPaymentIfSingleMethod bool

	// QuickCheckoutEnabled allows falling back to the customer's
	// preferred method or a repeat of a prior order.
	QuickCheckoutEnabled bool
}

// skipDecision distinguishes "not decided yet" from "decided false".
type skipDecision struct {
	evaluated bool
	skip      bool
}

// Evaluator decides whether the payment-method step of a checkout is
// satisfied. Construct a fresh one per request: the skip decision is
// cached for the lifetime of the instance and deliberately not
// re-derived on later calls.
type Evaluator struct {
	session *checkoutapi.CheckoutSession
	catalog paymentmethods.Catalog
	totaler carttotal.Totaler
	history orderhistory.OrderFinder
	prefs   customerprefs.PreferenceStore
	policy  Policy
	logger  mylog.Logger

	skip skipDecision
}

func New(session *checkoutapi.CheckoutSession, catalog paymentmethods.Catalog, totaler carttotal.Totaler,
	history orderhistory.OrderFinder, prefs customerprefs.PreferenceStore, policy Policy) *Evaluator {
	return &Evaluator{
		session: session,
		catalog: catalog,
		totaler: totaler,
		history: history,
		prefs:   prefs,
		policy:  policy,
		logger:  mylog.New("paymentselection"),
	}
}

func (e *Evaluator) Name() string {
	return "payment-method"
}

func (e *Evaluator) Order() int {
	return 40
}

func (e *Evaluator) Evaluate(c context.Context, input checkoutapi.StepInput) (checkoutapi.Verdict, error) {
	if input.Mode == checkoutapi.StepModeSubmit && input.SubmittedValue != "" {
		return e.evaluateSubmission(c, input)
	}

	return e.evaluateDecision(c)
}

func (e *Evaluator) evaluateSubmission(c context.Context, input checkoutapi.StepInput) (checkoutapi.Verdict, error) {
	cart := e.session.Cart

	entry, found, err := e.catalog.MethodBySystemName(c, input.SubmittedValue, true, cart.StoreUID)
	if err != nil {
		return checkoutapi.Verdict{}, fmt.Errorf("error resolving payment method %s: %s", input.SubmittedValue, err)
	}
	if !found {
		e.logger.Log(c, e.session.SessionUID, mylog.SeverityWarn, "Unknown payment method %s submitted in session %s",
			input.SubmittedValue, e.session.SessionUID)
		return checkoutapi.Verdict{}, nil
	}

	// The selection sticks even when the form below turns out invalid:
	// the customer's last attempt is what we remember.
	err = e.prefs.SaveSelectedMethod(c, cart.CustomerUID, entry.SystemName)
	if err != nil {
		return checkoutapi.Verdict{}, fmt.Errorf("error storing selected method of customer %s: %s", cart.CustomerUID, err)
	}

	e.session.PaymentFormEcho = EchoForm(input.Form)

	result := entry.Method.Validate(input.Form)
	if !result.Valid() {
		e.logger.Log(c, e.session.SessionUID, mylog.SeverityDebug, "Payment form for %s rejected with %d errors",
			entry.SystemName, len(result.Errors))
		return checkoutapi.Verdict{Errors: result.Errors}, nil
	}

	paymentInfo, err := entry.Method.BuildPaymentInfo(cart, input.Form)
	if err != nil {
		return checkoutapi.Verdict{}, fmt.Errorf("error composing payment info for %s: %s", entry.SystemName, err)
	}
	e.session.SetValue(checkoutapi.SessionValuePaymentInfo, paymentInfo)
	e.session.PaymentSummary = entry.Method.Summary()

	e.logger.Log(c, e.session.SessionUID, mylog.SeverityInfo, "Payment method %s selected in session %s",
		entry.SystemName, e.session.SessionUID)

	return checkoutapi.Verdict{Satisfied: true}, nil
}

func (e *Evaluator) evaluateDecision(c context.Context) (checkoutapi.Verdict, error) {
	cart := e.session.Cart

	if !e.skip.evaluated {
		skip, err := e.deriveSkip(c)
		if err != nil {
			return checkoutapi.Verdict{}, err
		}
		e.skip = skipDecision{evaluated: true, skip: skip}
		e.session.IsPaymentSelectionSkipped = skip
	}

	pref, _, err := e.prefs.Get(c, cart.CustomerUID)
	if err != nil {
		return checkoutapi.Verdict{}, fmt.Errorf("error fetching preference of customer %s: %s", cart.CustomerUID, err)
	}

	selected := pref.SelectedPaymentMethod
	if e.policy.QuickCheckoutEnabled && e.session.IsPaymentRequired && selected == "" {
		selected, err = e.applyQuickCheckout(c, pref)
		if err != nil {
			return checkoutapi.Verdict{}, err
		}
	}

	return checkoutapi.Verdict{
		Satisfied: selected != "",
		Skipped:   e.skip.skip,
	}, nil
}

// deriveSkip is the expensive part of the decision. It runs at most
// once per Evaluator instance.
func (e *Evaluator) deriveSkip(c context.Context) (bool, error) {
	cart := e.session.Cart

	total, err := e.totaler.CartTotal(c, cart, false)
	if err != nil {
		return false, fmt.Errorf("error computing total of basket %s: %s", cart.BasketUID, err)
	}
	e.session.IsPaymentRequired = total.Value != 0

	if !e.session.IsPaymentRequired {
		e.logger.Log(c, e.session.SessionUID, mylog.SeverityInfo, "Basket %s has zero total, payment step skipped", cart.BasketUID)
		return true, nil
	}

	if !e.policy.SkipPaymentIfSingleMethod {
		return false, nil
	}

	eligible, err := e.eligibleMethods(c)
	if err != nil {
		return false, err
	}

	hasOnlyOne := len(eligible) == 1
	if e.session.CustomProperties == nil {
		e.session.CustomProperties = map[string]any{}
	}
	e.session.CustomProperties[checkoutapi.CustomPropHasOnlyOneActivePaymentMethod] = hasOnlyOne

	if hasOnlyOne && !eligible[0].Method.RequiresSelection() {
		err = e.prefs.SaveSelectedMethod(c, cart.CustomerUID, eligible[0].SystemName)
		if err != nil {
			return false, fmt.Errorf("error storing selected method of customer %s: %s", cart.CustomerUID, err)
		}

		e.logger.Log(c, e.session.SessionUID, mylog.SeverityInfo, "Single method %s auto-selected in session %s",
			eligible[0].SystemName, e.session.SessionUID)

		return true, nil
	}

	return false, nil
}

// applyQuickCheckout tries to settle the selection without user input:
// first from the customer's long-lived preference, then by repeating
// the latest prior order. Every dead end is a silent no-op that leaves
// the step pending.
func (e *Evaluator) applyQuickCheckout(c context.Context, pref customerprefs.Preference) (string, error) {
	cart := e.session.Cart

	eligible, err := e.eligibleMethods(c)
	if err != nil {
		return "", err
	}

	if pref.PreferredPaymentMethod != "" {
		for _, entry := range eligible {
			if strings.EqualFold(entry.SystemName, pref.PreferredPaymentMethod) {
				err = e.prefs.SaveSelectedMethod(c, cart.CustomerUID, entry.SystemName)
				if err != nil {
					return "", fmt.Errorf("error storing selected method of customer %s: %s", cart.CustomerUID, err)
				}
				e.markSkipped()

				e.logger.Log(c, e.session.SessionUID, mylog.SeverityInfo, "Preferred method %s adopted in session %s",
					entry.SystemName, e.session.SessionUID)

				return entry.SystemName, nil
			}
		}
	}

	quickEligible := []paymentmethods.Entry{}
	for _, entry := range eligible {
		if !entry.Method.RequiresSelection() {
			quickEligible = append(quickEligible, entry)
		}
	}
	if len(quickEligible) == 0 {
		return "", nil
	}

	methodNames := []string{}
	for _, entry := range quickEligible {
		methodNames = append(methodNames, entry.SystemName)
	}

	priorOrder, found, err := e.history.FindLatestOrder(c, cart.CustomerUID, cart.StoreUID, methodNames)
	if err != nil {
		return "", fmt.Errorf("error fetching order history of customer %s: %s", cart.CustomerUID, err)
	}
	if !found {
		return "", nil
	}

	var repeatable *paymentmethods.Entry
	for i, entry := range quickEligible {
		if strings.EqualFold(entry.SystemName, priorOrder.PaymentMethod) {
			repeatable = &quickEligible[i]
			break
		}
	}
	if repeatable == nil {
		return "", nil
	}

	request, err := repeatable.Method.CreateRepeatRequest(c, cart, priorOrder)
	if err != nil {
		return "", fmt.Errorf("error composing repeat request for %s: %s", repeatable.SystemName, err)
	}
	if request == nil {
		// the method declined, leave the step pending
		e.logger.Log(c, e.session.SessionUID, mylog.SeverityDebug, "Method %s declined to repeat order %s",
			repeatable.SystemName, priorOrder.OrderUID)
		return "", nil
	}

	err = e.prefs.SaveSelectedMethod(c, cart.CustomerUID, repeatable.SystemName)
	if err != nil {
		return "", fmt.Errorf("error storing selected method of customer %s: %s", cart.CustomerUID, err)
	}
	e.session.SetValue(checkoutapi.SessionValuePaymentInfo, request)
	e.session.PaymentSummary = repeatable.Method.Summary()
	e.markSkipped()

	e.logger.Log(c, e.session.SessionUID, mylog.SeverityInfo, "Repeating order %s with method %s in session %s",
		priorOrder.OrderUID, repeatable.SystemName, e.session.SessionUID)

	return repeatable.SystemName, nil
}

func (e *Evaluator) eligibleMethods(c context.Context) ([]paymentmethods.Entry, error) {
	cart := e.session.Cart

	entries, err := e.catalog.ActiveMethods(c, cart, cart.StoreUID)
	if err != nil {
		return nil, fmt.Errorf("error fetching active methods for store %s: %s", cart.StoreUID, err)
	}

	return paymentmethods.EligibleForCart(entries, cart), nil
}

func (e *Evaluator) markSkipped() {
	e.skip = skipDecision{evaluated: true, skip: true}
	e.session.IsPaymentSelectionSkipped = true
}
