package paymentselection

import (
	"net/url"
	"strings"
)

// EchoForm flattens a submitted payment form so it can be replayed
// into the next render. Browsers submit a checked checkbox together
// with its hidden fallback field, yielding the pair ["true", "false"];
// that pair collapses to plain "true".
func EchoForm(form url.Values) map[string]string {
	echo := map[string]string{}
	for name, raw := range form {
		if len(raw) == 2 && raw[0] == "true" {
			echo[name] = "true"
			continue
		}
		echo[name] = strings.Join(raw, ",")
	}

	return echo
}
