package orderhistory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
)

func TestInMemoryOrderFinder(t *testing.T) {
	OrderFinderContract{
		finder: func(c context.Context, orders []Order) OrderFinder {
			orderStore, _, _ := mystore.NewInMemoryStore[Order](c)
			for _, order := range orders {
				_ = orderStore.Put(c, order.OrderUID, order)
			}
			return New(orderStore)
		},
	}.Test(t)
}

type OrderFinderContract struct {
	finder func(c context.Context, orders []Order) OrderFinder
}

func (contract OrderFinderContract) Test(t *testing.T) {
	c := context.Background()

	orders := []Order{
		{OrderUID: "1", CustomerUID: "cust-1", StoreUID: "store-1", CreatedAt: mytime.ExampleTime, PaymentMethod: "adyencard", StoredPaymentReference: "ref-1"},
		{OrderUID: "2", CustomerUID: "cust-1", StoreUID: "store-1", CreatedAt: mytime.ExampleTime.Add(time.Hour), PaymentMethod: "ideal"},
		{OrderUID: "3", CustomerUID: "cust-1", StoreUID: "store-2", CreatedAt: mytime.ExampleTime.Add(2 * time.Hour), PaymentMethod: "adyencard"},
		{OrderUID: "4", CustomerUID: "cust-2", StoreUID: "store-1", CreatedAt: mytime.ExampleTime.Add(3 * time.Hour), PaymentMethod: "adyencard"},
	}

	t.Run("finds latest order with matching method", func(t *testing.T) {
		sut := contract.finder(c, orders)

		order, found, err := sut.FindLatestOrder(c, "cust-1", "store-1", []string{"adyencard", "ideal"})
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "2", order.OrderUID)
	})

	t.Run("method name match is case-insensitive", func(t *testing.T) {
		sut := contract.finder(c, orders)

		order, found, err := sut.FindLatestOrder(c, "cust-1", "store-1", []string{"AdyenCard"})
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "1", order.OrderUID)
	})

	t.Run("scoped to customer and store", func(t *testing.T) {
		sut := contract.finder(c, orders)

		_, found, err := sut.FindLatestOrder(c, "cust-3", "store-1", []string{"adyencard"})
		assert.NoError(t, err)
		assert.False(t, found)

		order, found, err := sut.FindLatestOrder(c, "cust-1", "store-2", []string{"adyencard"})
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "3", order.OrderUID)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		sut := contract.finder(c, orders)

		_, found, err := sut.FindLatestOrder(c, "cust-1", "store-1", []string{"stripecard"})
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
