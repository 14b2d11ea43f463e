package checkoutevents

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myevents"
)

const (
	TopicName                 = "checkout"
	paymentMethodSelectedName = TopicName + ".paymentMethodSelected"
	checkoutCompletedName     = TopicName + ".completed"
)

type CheckoutEventService interface {
	Subscribe(c context.Context) error
	OnPaymentMethodSelected(c context.Context, topic string, event PaymentMethodSelected) error
	OnCheckoutCompleted(c context.Context, topic string, event CheckoutCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CheckoutEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case paymentMethodSelectedName:
		{
			event := PaymentMethodSelected{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentMethodSelected(c, envelope.Topic, event)
		}
	case checkoutCompletedName:
		{
			event := CheckoutCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCheckoutCompleted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(errors.New(envelope.EventTypeName))
	}
}

type PaymentMethodSelected struct {
	SessionUID    string
	BasketUID     string
	CustomerUID   string
	StoreUID      string
	PaymentMethod string
	// AutoSelected tells whether the method was picked by the shopper or
	// resolved by the skip/quick-checkout logic.
	AutoSelected bool
}

func (e PaymentMethodSelected) GetEventTypeName() string {
	return paymentMethodSelectedName
}

func (e PaymentMethodSelected) GetAggregateName() string {
	return e.SessionUID
}

type CheckoutCompleted struct {
	SessionUID             string
	BasketUID              string
	CustomerUID            string
	StoreUID               string
	PaymentMethod          string
	AmountInCents          int64
	Currency               string
	StoredPaymentReference string
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.SessionUID
}
