package paymentmethods

import (
	"context"
	"net/url"
	"testing"

	"github.com/adyen/adyen-go-api-library/v6/src/checkout"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
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
	recurringCart = checkoutapi.Cart{
		BasketUID:   "basket-456",
		CustomerUID: "cust-1",
		StoreUID:    "store-1",
		Currency:    "EUR",
		Items: []checkoutapi.CartItem{
			{ProductUID: "club_membership", Description: "Monthly club fee", UnitPrice: 1500, Quantity: 1, IsRecurring: true},
		},
	}
)

func newTestCatalog() Catalog {
	return NewCatalog(
		Entry{SystemName: AdyenCardSystemName, Active: true, Method: NewAdyenCardMethod(AdyenConfig{MerchantAccount: "MyMerchantAccount"})},
		Entry{SystemName: MollieIdealSystemName, Active: true, Method: NewMollieIdealMethod()},
		Entry{SystemName: StripeCardSystemName, Active: false, Method: NewStripeCardMethod()},
	)
}

func TestCatalogLookup(t *testing.T) {
	c := context.TODO()
	sut := newTestCatalog()

	t.Run("active methods keep registration order", func(t *testing.T) {
		entries, err := sut.ActiveMethods(c, cart, "store-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, AdyenCardSystemName, entries[0].SystemName)
		assert.Equal(t, MollieIdealSystemName, entries[1].SystemName)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		entry, found, err := sut.MethodBySystemName(c, "AdyenCard", false, "store-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, AdyenCardSystemName, entry.SystemName)
	})

	t.Run("inactive method only found when asked for", func(t *testing.T) {
		_, found, err := sut.MethodBySystemName(c, StripeCardSystemName, false, "store-1")
		assert.NoError(t, err)
		assert.False(t, found)

		entry, found, err := sut.MethodBySystemName(c, StripeCardSystemName, true, "store-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, StripeCardSystemName, entry.SystemName)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, found, err := sut.MethodBySystemName(c, "paypal", true, "store-1")
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestEligibleForCart(t *testing.T) {
	c := context.TODO()
	sut := newTestCatalog()

	entries, err := sut.ActiveMethods(c, recurringCart, "store-1")
	assert.NoError(t, err)

	t.Run("recurring cart drops ideal", func(t *testing.T) {
		eligible := EligibleForCart(entries, recurringCart)
		assert.Len(t, eligible, 1)
		assert.Equal(t, AdyenCardSystemName, eligible[0].SystemName)
	})

	t.Run("regular cart keeps all", func(t *testing.T) {
		eligible := EligibleForCart(entries, cart)
		assert.Len(t, eligible, 2)
	})
}

func TestAdyenCardMethod(t *testing.T) {
	c := context.TODO()
	sut := NewAdyenCardMethod(AdyenConfig{MerchantAccount: "MyMerchantAccount"})

	t.Run("validate requires cardholder name", func(t *testing.T) {
		result := sut.Validate(url.Values{})
		assert.False(t, result.Valid())
		assert.Equal(t, "cardholderName", result.Errors[0].Field)

		result = sut.Validate(url.Values{"cardholderName": []string{"M. Grol"}})
		assert.True(t, result.Valid())
	})

	t.Run("payment info carries cart total", func(t *testing.T) {
		info, err := sut.BuildPaymentInfo(cart, url.Values{"cardholderName": []string{"M. Grol"}})
		assert.NoError(t, err)

		req, ok := info.(*checkout.CreateCheckoutSessionRequest)
		assert.True(t, ok)
		assert.Equal(t, int64(12000), req.Amount.Value)
		assert.Equal(t, "EUR", req.Amount.Currency)
		assert.Equal(t, "MyMerchantAccount", req.MerchantAccount)
		assert.Equal(t, "basket-123", req.Reference)
	})

	t.Run("repeat request needs a stored reference", func(t *testing.T) {
		request, err := sut.CreateRepeatRequest(c, cart, orderhistory.Order{OrderUID: "1"})
		assert.NoError(t, err)
		assert.Nil(t, request)

		request, err = sut.CreateRepeatRequest(c, cart, orderhistory.Order{OrderUID: "1", StoredPaymentReference: "shopper-ref-1"})
		assert.NoError(t, err)
		req, ok := request.(*checkout.CreateCheckoutSessionRequest)
		assert.True(t, ok)
		assert.Equal(t, "ContAuth", req.ShopperInteraction)
		assert.Equal(t, "shopper-ref-1", req.ShopperReference)
	})
}

func TestMollieIdealMethod(t *testing.T) {
	c := context.TODO()
	sut := NewMollieIdealMethod()

	t.Run("validate requires issuer", func(t *testing.T) {
		result := sut.Validate(url.Values{})
		assert.False(t, result.Valid())
		assert.Equal(t, "issuer", result.Errors[0].Field)
	})

	t.Run("never offers a repeat request", func(t *testing.T) {
		request, err := sut.CreateRepeatRequest(c, cart, orderhistory.Order{StoredPaymentReference: "mandate-1"})
		assert.NoError(t, err)
		assert.Nil(t, request)
	})
}

func TestStripeCardMethod(t *testing.T) {
	c := context.TODO()
	sut := NewStripeCardMethod()

	t.Run("hosted page needs no form validation", func(t *testing.T) {
		assert.True(t, sut.Validate(url.Values{}).Valid())
	})

	t.Run("repeat request needs a stored customer", func(t *testing.T) {
		request, err := sut.CreateRepeatRequest(c, cart, orderhistory.Order{})
		assert.NoError(t, err)
		assert.Nil(t, request)

		request, err = sut.CreateRepeatRequest(c, cart, orderhistory.Order{StoredPaymentReference: "cus_123"})
		assert.NoError(t, err)
		assert.NotNil(t, request)
	})
}
