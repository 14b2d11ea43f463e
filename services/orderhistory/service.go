package orderhistory

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttp"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/services/checkoutevents"
)

type service struct {
	orderStore mystore.Store[Order]
	subscriber mypubsub.PubSub
	nower      mytime.Nower
	logger     mylog.Logger
}

func newService(orderStore mystore.Store[Order], nower mytime.Nower, subscriber mypubsub.PubSub, logger mylog.Logger) *service {
	return &service{
		orderStore: orderStore,
		subscriber: subscriber,
		nower:      nower,
		logger:     logger,
	}
}

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/order/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

func (s *service) OnPaymentMethodSelected(c context.Context, topic string, event checkoutevents.PaymentMethodSelected) error {
	return nil
}

func (s *service) OnCheckoutCompleted(c context.Context, topic string, event checkoutevents.CheckoutCompleted) error {
	s.logger.Log(c, event.SessionUID, mylog.SeverityInfo, "Webhook: checkout %s completed with method %s",
		event.SessionUID, event.PaymentMethod)

	now := s.nower.Now()

	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		_, exists, err := s.orderStore.Get(c, event.BasketUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if exists {
			return nil
		}

		err = s.orderStore.Put(c, event.BasketUID, Order{
			OrderUID:               event.BasketUID,
			CustomerUID:            event.CustomerUID,
			StoreUID:               event.StoreUID,
			CreatedAt:              now,
			PaymentMethod:          event.PaymentMethod,
			AmountInCents:          event.AmountInCents,
			Currency:               event.Currency,
			StoredPaymentReference: event.StoredPaymentReference,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
