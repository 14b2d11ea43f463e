package customerprefs

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
)

type preferenceStore struct {
	prefStore mystore.Store[Preference]
	nower     mytime.Nower
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func New(prefStore mystore.Store[Preference], nower mytime.Nower) PreferenceStore {
	return &preferenceStore{
		prefStore: prefStore,
		nower:     nower,
		logger:    mylog.New("customerprefs"),
	}
}

func (s *preferenceStore) Get(c context.Context, customerUID string) (Preference, bool, error) {
	pref, exists, err := s.prefStore.Get(c, customerUID)
	if err != nil {
		return Preference{}, false, fmt.Errorf("error fetching preference of customer %s: %s", customerUID, err)
	}

	return pref, exists, nil
}

func (s *preferenceStore) SaveSelectedMethod(c context.Context, customerUID string, methodName string) error {
	return s.save(c, customerUID, func(pref *Preference) {
		pref.SelectedPaymentMethod = methodName
	})
}

func (s *preferenceStore) SavePreferredMethod(c context.Context, customerUID string, methodName string) error {
	return s.save(c, customerUID, func(pref *Preference) {
		pref.PreferredPaymentMethod = methodName
	})
}

func (s *preferenceStore) save(c context.Context, customerUID string, mutate func(pref *Preference)) error {
	now := s.nower.Now()

	err := s.prefStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		pref, exists, err := s.prefStore.Get(c, customerUID)
		if err != nil {
			return fmt.Errorf("error fetching preference of customer %s: %s", customerUID, err)
		}
		if !exists {
			pref = Preference{CustomerUID: customerUID}
		}

		mutate(&pref)
		pref.LastModified = &now

		err = s.prefStore.Put(c, customerUID, pref)
		if err != nil {
			return fmt.Errorf("error storing preference of customer %s: %s", customerUID, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Log(c, customerUID, mylog.SeverityDebug, "Stored payment preference of customer %s", customerUID)

	return nil
}
