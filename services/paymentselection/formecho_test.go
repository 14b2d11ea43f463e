package paymentselection

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEchoForm(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		expected map[string]string
	}{
		{
			name:     "single value kept as-is",
			form:     url.Values{"cardholderName": []string{"M. Grol"}},
			expected: map[string]string{"cardholderName": "M. Grol"},
		},
		{
			name:     "checked checkbox with hidden fallback collapses",
			form:     url.Values{"saveCard": []string{"true", "false"}},
			expected: map[string]string{"saveCard": "true"},
		},
		{
			name:     "unchecked checkbox keeps its single value",
			form:     url.Values{"saveCard": []string{"false"}},
			expected: map[string]string{"saveCard": "false"},
		},
		{
			name:     "other multi-value fields are joined",
			form:     url.Values{"issuer": []string{"ing", "rabo"}},
			expected: map[string]string{"issuer": "ing,rabo"},
		},
		{
			name:     "pair not starting with true is joined",
			form:     url.Values{"saveCard": []string{"false", "true"}},
			expected: map[string]string{"saveCard": "false,true"},
		},
		{
			name:     "empty form",
			form:     url.Values{},
			expected: map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EchoForm(tc.form))
		})
	}
}
