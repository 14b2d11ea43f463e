package orderhistory

import (
	"context"
	"time"
)

type Order struct {
	OrderUID               string
	CustomerUID            string
	StoreUID               string
	CreatedAt              time.Time
	PaymentMethod          string
	AmountInCents          int64
	Currency               string
	StoredPaymentReference string
}

//go:generate mockgen -source=api.go -package orderhistory -destination finder_mock.go OrderFinder
type OrderFinder interface {
	// FindLatestOrder returns the customer's most recent order within the
	// given store whose payment method is one of methodNames. Not finding
	// one is not an error.
	FindLatestOrder(c context.Context, customerUID string, storeUID string, methodNames []string) (Order, bool, error)
}
