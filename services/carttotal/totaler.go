package carttotal

import (
	"context"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

type totaler struct {
	logger mylog.Logger
}

func New() Totaler {
	return &totaler{
		logger: mylog.New("carttotal"),
	}
}

func (t *totaler) CartTotal(c context.Context, cart checkoutapi.Cart, includeRewardPoints bool) (checkoutapi.Amount, error) {
	var total int64
	for _, item := range cart.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	total -= cart.Discount
	if includeRewardPoints {
		total -= cart.RedeemedRewardPoints
	}
	if total < 0 {
		total = 0
	}

	t.logger.Log(c, cart.BasketUID, mylog.SeverityDebug, "Cart %s totals at %d %s", cart.BasketUID, total, cart.Currency)

	return checkoutapi.Amount{
		Currency: cart.Currency,
		Value:    total,
	}, nil
}
