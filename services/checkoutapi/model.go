package checkoutapi

import (
	"context"
	"fmt"
	"net/url"
)

type Amount struct {
	Currency string
	Value    int64
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %.2f", a.Currency, float32(a.Value)/100.0)
}

type CartItem struct {
	ProductUID  string
	Description string
	UnitPrice   int64 // in cents
	Quantity    int
	IsRecurring bool
}

// Cart is read-only input to the requirement steps
type Cart struct {
	BasketUID            string
	CustomerUID          string
	StoreUID             string
	Currency             string
	Items                []CartItem
	Discount             int64 // in cents
	RedeemedRewardPoints int64 // in cents
}

func (c Cart) ContainsRecurringItem() bool {
	for _, item := range c.Items {
		if item.IsRecurring {
			return true
		}
	}

	return false
}

type FieldError struct {
	Field   string
	Message string
}

type ValidationResult struct {
	Errors []FieldError
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Verdict is the immutable outcome of evaluating a requirement step
type Verdict struct {
	Satisfied bool
	Skipped   bool
	Errors    []FieldError
}

type StepMode int

const (
	StepModeRender StepMode = iota
	StepModeSubmit
)

// StepInput makes the render-vs-submit distinction explicit instead of
// re-deriving it from the http method or route.
type StepInput struct {
	Mode           StepMode
	SubmittedValue string
	Form           url.Values
}

// RequirementStep is one gated stage of the checkout process. Steps are
// evaluated in ascending Order.
type RequirementStep interface {
	Name() string
	Order() int
	Evaluate(c context.Context, input StepInput) (Verdict, error)
}
