package termsconditions

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// AcceptedValue is what a submission must carry for the step to pass.
const AcceptedValue = "accepted"

type termsStep struct {
	session   *checkoutapi.CheckoutSession
	publisher mypublisher.Publisher
	logger    mylog.Logger
}

func New(session *checkoutapi.CheckoutSession, publisher mypublisher.Publisher) checkoutapi.RequirementStep {
	return &termsStep{
		session:   session,
		publisher: publisher,
		logger:    mylog.New("termsconditions"),
	}
}

// CreateTopic must be called once at startup, before any step instance
// publishes.
func CreateTopic(c context.Context, publisher mypublisher.Publisher) error {
	err := publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	return nil
}

func (s *termsStep) Name() string {
	return "terms-conditions"
}

func (s *termsStep) Order() int {
	return 20
}

func (s *termsStep) Evaluate(c context.Context, input checkoutapi.StepInput) (checkoutapi.Verdict, error) {
	if input.Mode == checkoutapi.StepModeSubmit {
		if input.SubmittedValue != AcceptedValue {
			return checkoutapi.Verdict{
				Errors: []checkoutapi.FieldError{
					{Field: "terms", Message: "The terms and conditions must be accepted"},
				},
			}, nil
		}

		s.session.SetValue(checkoutapi.SessionValueTermsAccepted, true)

		err := s.publisher.Publish(c, TopicName, TermsConditionsAccepted{
			SessionUID:  s.session.SessionUID,
			CustomerUID: s.session.Cart.CustomerUID,
			Version:     CurrentVersion,
		})
		if err != nil {
			return checkoutapi.Verdict{}, fmt.Errorf("error publishing acceptance: %s", err)
		}

		s.logger.Log(c, s.session.SessionUID, mylog.SeverityInfo, "Terms version %s accepted in session %s",
			CurrentVersion, s.session.SessionUID)

		return checkoutapi.Verdict{Satisfied: true}, nil
	}

	accepted, exists := s.session.GetValue(checkoutapi.SessionValueTermsAccepted)

	return checkoutapi.Verdict{
		Satisfied: exists && accepted == true,
	}, nil
}
