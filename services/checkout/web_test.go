package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

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

var (
	cart = checkoutapi.Cart{
		BasketUID:   "basket-123",
		CustomerUID: "cust-1",
		StoreUID:    "store-1",
		Currency:    "EUR",
		Items: []checkoutapi.CartItem{
			{ProductUID: "tennis_shoes", Description: "Asics Gel Lyte 3", UnitPrice: 12000, Quantity: 1},
		},
	}
	freeCart = checkoutapi.Cart{
		BasketUID:   "basket-456",
		CustomerUID: "cust-1",
		StoreUID:    "store-1",
		Currency:    "EUR",
		Items: []checkoutapi.CartItem{
			{ProductUID: "welcome_gift", Description: "Welcome gift", UnitPrice: 0, Quantity: 1},
		},
	}
)

type checkoutFixture struct {
	sessions  mystore.Store[checkoutapi.CheckoutSession]
	orders    mystore.Store[orderhistory.Order]
	prefs     customerprefs.PreferenceStore
	publisher *mypublisher.MockPublisher
	uuider    *myuuid.MockUUIDer
	router    *mux.Router
}

func setup(t *testing.T, ctrl *gomock.Controller, policy paymentselection.Policy) (context.Context, *checkoutFixture) {
	c := context.TODO()

	sessionStore, _, _ := mystore.NewInMemoryStore[checkoutapi.CheckoutSession](c)
	orderStore, _, _ := mystore.NewInMemoryStore[orderhistory.Order](c)
	prefStore, _, _ := mystore.NewInMemoryStore[customerprefs.Preference](c)

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	prefs := customerprefs.New(prefStore, nower)
	catalog := paymentmethods.NewCatalog(
		paymentmethods.Entry{SystemName: paymentmethods.AdyenCardSystemName, Active: true,
			Method: paymentmethods.NewAdyenCardMethod(paymentmethods.AdyenConfig{MerchantAccount: "MyMerchantAccount"})},
		paymentmethods.Entry{SystemName: paymentmethods.MollieIdealSystemName, Active: true,
			Method: paymentmethods.NewMollieIdealMethod()},
	)

	sut := NewWebService(sessionStore, catalog, carttotal.New(), orderhistory.New(orderStore), prefs,
		publisher, policy, nower, uuider)
	router := mux.NewRouter()

	// Called by RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)
	publisher.EXPECT().CreateTopic(c, termsconditions.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, &checkoutFixture{
		sessions:  sessionStore,
		orders:    orderStore,
		prefs:     prefs,
		publisher: publisher,
		uuider:    uuider,
		router:    router,
	}
}

func (f *checkoutFixture) storeSession(c context.Context, cart checkoutapi.Cart) checkoutapi.CheckoutSession {
	session := checkoutapi.NewCheckoutSession("session-1", cart, mytime.ExampleTime)
	_ = f.sessions.Put(c, session.SessionUID, session)
	return session
}

func (f *checkoutFixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func (f *checkoutFixture) get(path string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func TestCheckoutService(t *testing.T) {

	t.Run("Start checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.uuider.EXPECT().Create().Return("session-1")

		// when
		response := f.postForm("/checkout", url.Values{
			"basketUid":           []string{"basket-123"},
			"customerUid":         []string{"cust-1"},
			"storeUid":            []string{"store-1"},
			"currency":            []string{"EUR"},
			"items[0].productUid": []string{"tennis_shoes"},
			"items[0].unitPrice":  []string{"12000"},
			"items[0].quantity":   []string{"1"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/checkout/session-1/terms", response.Header().Get("Location"))
		session, exists, err := f.sessions.Get(c, "session-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "basket-123", session.Cart.BasketUID)
	})

	t.Run("Start checkout with incomplete cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, f := setup(t, ctrl, paymentselection.Policy{})

		// when
		response := f.postForm("/checkout", url.Values{
			"currency": []string{"EUR"},
		})

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Accept terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.storeSession(c, cart)
		f.publisher.EXPECT().Publish(gomock.Any(), termsconditions.TopicName, termsconditions.TermsConditionsAccepted{
			SessionUID:  "session-1",
			CustomerUID: "cust-1",
			Version:     termsconditions.CurrentVersion,
		}).Return(nil)

		// when
		response := f.postForm("/checkout/session-1/terms", url.Values{
			"terms": []string{"accepted"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/checkout/session-1/payment", response.Header().Get("Location"))

		// a revisit of the terms page moves straight on
		response = f.get("/checkout/session-1/terms")
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/checkout/session-1/payment", response.Header().Get("Location"))
	})

	t.Run("Terms not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.storeSession(c, cart)

		// when
		response := f.postForm("/checkout/session-1/terms", url.Values{})

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "must be accepted")
	})

	t.Run("Payment page offers eligible methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{SkipPaymentIfSingleMethod: true})
		f.storeSession(c, cart)

		// when
		response := f.get("/checkout/session-1/payment")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Cards via Adyen")
		assert.Contains(t, got, "iDEAL via Mollie")
	})

	t.Run("Payment is skipped for a free cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{SkipPaymentIfSingleMethod: true})
		f.storeSession(c, freeCart)

		// when
		response := f.get("/checkout/session-1/payment")

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/checkout/session-1/confirm", response.Header().Get("Location"))
		session, _, err := f.sessions.Get(c, "session-1")
		assert.NoError(t, err)
		assert.False(t, session.IsPaymentRequired)
		assert.True(t, session.IsPaymentSelectionSkipped)
	})

	t.Run("Submit payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.storeSession(c, cart)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.PaymentMethodSelected{
			SessionUID:    "session-1",
			BasketUID:     "basket-123",
			CustomerUID:   "cust-1",
			StoreUID:      "store-1",
			PaymentMethod: "ideal",
			AutoSelected:  false,
		}).Return(nil)

		// when
		response := f.postForm("/checkout/session-1/payment", url.Values{
			"paymentMethod": []string{"ideal"},
			"issuer":        []string{"INGBNL2A"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/checkout/session-1/confirm", response.Header().Get("Location"))

		session, _, err := f.sessions.Get(c, "session-1")
		assert.NoError(t, err)
		assert.Equal(t, "iDEAL via Mollie", session.PaymentSummary)
		assert.Equal(t, "INGBNL2A", session.PaymentFormEcho["issuer"])

		pref, exists, err := f.prefs.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "ideal", pref.SelectedPaymentMethod)
	})

	t.Run("Submit payment method with invalid form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.storeSession(c, cart)

		// when
		response := f.postForm("/checkout/session-1/payment", url.Values{
			"paymentMethod": []string{"ideal"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Select your bank")

		// the selection sticks despite the invalid form
		pref, _, err := f.prefs.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.Equal(t, "ideal", pref.SelectedPaymentMethod)

		session, _, err := f.sessions.Get(c, "session-1")
		assert.NoError(t, err)
		assert.Empty(t, session.PaymentSummary)
	})

	t.Run("Complete checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		session := f.storeSession(c, cart)
		session.SetValue(checkoutapi.SessionValueTermsAccepted, true)
		_ = f.sessions.Put(c, session.SessionUID, session)
		_ = f.prefs.SaveSelectedMethod(c, "cust-1", "adyencard")

		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			SessionUID:             "session-1",
			BasketUID:              "basket-123",
			CustomerUID:            "cust-1",
			StoreUID:               "store-1",
			PaymentMethod:          "adyencard",
			AmountInCents:          12000,
			Currency:               "EUR",
			StoredPaymentReference: "cust-1",
		}).Return(nil)

		// when
		response := f.postForm("/checkout/session-1/confirm", url.Values{})

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Thank you for your order")
	})

	t.Run("Complete checkout without accepted terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, f := setup(t, ctrl, paymentselection.Policy{})
		f.storeSession(c, cart)

		// when
		response := f.postForm("/checkout/session-1/confirm", url.Values{})

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Unknown checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, f := setup(t, ctrl, paymentselection.Policy{})

		// when
		response := f.get("/checkout/session-99/payment")

		// then
		assert.Equal(t, 404, response.Code)
	})
}
