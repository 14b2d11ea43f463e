package termsconditions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

func TestTermsStep(t *testing.T) {
	c := context.TODO()

	cart := checkoutapi.Cart{
		BasketUID:   "basket-123",
		CustomerUID: "cust-1",
		StoreUID:    "store-1",
	}

	t.Run("pending until accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		session := checkoutapi.NewCheckoutSession("session-1", cart, mytime.ExampleTime)
		sut := New(&session, mypublisher.NewMockPublisher(ctrl))

		verdict, err := sut.Evaluate(c, checkoutapi.StepInput{Mode: checkoutapi.StepModeRender})
		assert.NoError(t, err)
		assert.False(t, verdict.Satisfied)
	})

	t.Run("acceptance is recorded and published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		session := checkoutapi.NewCheckoutSession("session-1", cart, mytime.ExampleTime)
		publisher := mypublisher.NewMockPublisher(ctrl)
		publisher.EXPECT().Publish(c, TopicName, TermsConditionsAccepted{
			SessionUID:  "session-1",
			CustomerUID: "cust-1",
			Version:     CurrentVersion,
		}).Return(nil)

		sut := New(&session, publisher)

		verdict, err := sut.Evaluate(c, checkoutapi.StepInput{
			Mode:           checkoutapi.StepModeSubmit,
			SubmittedValue: AcceptedValue,
		})
		assert.NoError(t, err)
		assert.True(t, verdict.Satisfied)

		accepted, exists := session.GetValue(checkoutapi.SessionValueTermsAccepted)
		assert.True(t, exists)
		assert.Equal(t, true, accepted)

		// a later render sees the acceptance
		verdict, err = sut.Evaluate(c, checkoutapi.StepInput{Mode: checkoutapi.StepModeRender})
		assert.NoError(t, err)
		assert.True(t, verdict.Satisfied)
	})

	t.Run("submission without acceptance is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		session := checkoutapi.NewCheckoutSession("session-1", cart, mytime.ExampleTime)
		sut := New(&session, mypublisher.NewMockPublisher(ctrl))

		verdict, err := sut.Evaluate(c, checkoutapi.StepInput{
			Mode:           checkoutapi.StepModeSubmit,
			SubmittedValue: "",
		})
		assert.NoError(t, err)
		assert.False(t, verdict.Satisfied)
		assert.Len(t, verdict.Errors, 1)

		_, exists := session.GetValue(checkoutapi.SessionValueTermsAccepted)
		assert.False(t, exists)
	})
}
