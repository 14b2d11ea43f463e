package customerprefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
)

func TestPreferenceStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// setup
	c := context.TODO()
	prefStore, _, _ := mystore.NewInMemoryStore[Preference](c)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	sut := New(prefStore, nower)

	t.Run("unknown customer", func(t *testing.T) {
		_, exists, err := sut.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("selected method is persisted", func(t *testing.T) {
		err := sut.SaveSelectedMethod(c, "cust-1", "ideal")
		assert.NoError(t, err)

		pref, exists, err := sut.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "ideal", pref.SelectedPaymentMethod)
		assert.Empty(t, pref.PreferredPaymentMethod)
		assert.Equal(t, mytime.ExampleTime, *pref.LastModified)
	})

	t.Run("preferred method does not clobber selection", func(t *testing.T) {
		err := sut.SavePreferredMethod(c, "cust-1", "adyencard")
		assert.NoError(t, err)

		pref, _, err := sut.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.Equal(t, "ideal", pref.SelectedPaymentMethod)
		assert.Equal(t, "adyencard", pref.PreferredPaymentMethod)
	})

	t.Run("selection overwrite", func(t *testing.T) {
		err := sut.SaveSelectedMethod(c, "cust-1", "stripecard")
		assert.NoError(t, err)

		pref, _, err := sut.Get(c, "cust-1")
		assert.NoError(t, err)
		assert.Equal(t, "stripecard", pref.SelectedPaymentMethod)
	})
}
