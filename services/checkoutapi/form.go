package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
)

type cartForm struct {
	BasketUID            string         `form:"basketUid"`
	CustomerUID          string         `form:"customerUid"`
	StoreUID             string         `form:"storeUid"`
	Currency             string         `form:"currency"`
	Discount             int64          `form:"discount"`
	RedeemedRewardPoints int64          `form:"rewardPoints"`
	Items                []cartItemForm `form:"items"`
}

type cartItemForm struct {
	ProductUID  string `form:"productUid"`
	Description string `form:"description"`
	UnitPrice   int64  `form:"unitPrice"`
	Quantity    int    `form:"quantity"`
	IsRecurring bool   `form:"isRecurring"`
}

func NewCartFromRequest(r *http.Request) (Cart, error) {
	err := r.ParseForm()
	if err != nil {
		return Cart{}, myerrors.NewInvalidInputError(err)
	}
	return NewCartFromValues(r.Form)
}

func NewCartFromValues(values url.Values) (Cart, error) {
	form := cartForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return Cart{}, fmt.Errorf("error decoding form: %s", err)
	}

	cart := Cart{
		BasketUID:            form.BasketUID,
		CustomerUID:          form.CustomerUID,
		StoreUID:             form.StoreUID,
		Currency:             form.Currency,
		Discount:             form.Discount,
		RedeemedRewardPoints: form.RedeemedRewardPoints,
	}
	for _, item := range form.Items {
		cart.Items = append(cart.Items, CartItem{
			ProductUID:  item.ProductUID,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			IsRecurring: item.IsRecurring,
		})
	}

	return cart, nil
}

func (c Cart) ToForm() (url.Values, error) {
	form := cartForm{
		BasketUID:            c.BasketUID,
		CustomerUID:          c.CustomerUID,
		StoreUID:             c.StoreUID,
		Currency:             c.Currency,
		Discount:             c.Discount,
		RedeemedRewardPoints: c.RedeemedRewardPoints,
	}
	for _, item := range c.Items {
		form.Items = append(form.Items, cartItemForm{
			ProductUID:  item.ProductUID,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			IsRecurring: item.IsRecurring,
		})
	}

	values, err := formcodec.NewEncoder().Encode(form)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}
