package termsconditions

const (
	TopicName    = "termsconditions"
	acceptedName = TopicName + ".accepted"

	// Version of the terms the shopper agrees to.
	CurrentVersion = "1.2.0"
)

type TermsConditionsAccepted struct {
	SessionUID  string
	CustomerUID string
	Version     string
}

func (e TermsConditionsAccepted) GetEventTypeName() string {
	return acceptedName
}

func (e TermsConditionsAccepted) GetAggregateName() string {
	return e.SessionUID
}
