package carttotal

import (
	"context"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

//go:generate mockgen -source=api.go -package carttotal -destination totaler_mock.go Totaler
type Totaler interface {
	CartTotal(c context.Context, cart checkoutapi.Cart, includeRewardPoints bool) (checkoutapi.Amount, error)
}
