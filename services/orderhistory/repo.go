package orderhistory

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
)

type repo struct {
	orderStore mystore.Store[Order]
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func New(orderStore mystore.Store[Order]) OrderFinder {
	return &repo{
		orderStore: orderStore,
		logger:     mylog.New("orderhistory"),
	}
}

func (r *repo) FindLatestOrder(c context.Context, customerUID string, storeUID string, methodNames []string) (Order, bool, error) {
	orders, err := r.orderStore.Query(c, []mystore.Filter{
		{Field: "CustomerUID", Compare: "=", Value: customerUID},
		{Field: "StoreUID", Compare: "=", Value: storeUID},
	}, "-CreatedAt")
	if err != nil {
		return Order{}, false, fmt.Errorf("error querying orders of customer %s: %s", customerUID, err)
	}

	// The in-memory store does not apply filters or ordering, so re-check here
	var latest Order
	var found bool
	for _, order := range orders {
		if order.CustomerUID != customerUID || order.StoreUID != storeUID {
			continue
		}
		if !methodNameMatches(order.PaymentMethod, methodNames) {
			continue
		}
		if !found || order.CreatedAt.After(latest.CreatedAt) {
			latest = order
			found = true
		}
	}

	if found {
		r.logger.Log(c, customerUID, mylog.SeverityDebug, "Latest %s order of customer %s is %s", latest.PaymentMethod, customerUID, latest.OrderUID)
	}

	return latest, found, nil
}

func methodNameMatches(methodName string, methodNames []string) bool {
	for _, name := range methodNames {
		if strings.EqualFold(name, methodName) {
			return true
		}
	}

	return false
}
