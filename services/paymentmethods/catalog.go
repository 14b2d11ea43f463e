package paymentmethods

import (
	"context"
	"strings"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

type catalog struct {
	entries []Entry
	logger  mylog.Logger
}

// NewCatalog keeps the entries in the order given: that order decides
// which method is the default.
func NewCatalog(entries ...Entry) Catalog {
	return &catalog{
		entries: entries,
		logger:  mylog.New("paymentmethods"),
	}
}

func (cat *catalog) ActiveMethods(c context.Context, cart checkoutapi.Cart, storeUID string) ([]Entry, error) {
	active := []Entry{}
	for _, entry := range cat.entries {
		if !entry.Active {
			continue
		}
		active = append(active, entry)
	}

	return active, nil
}

func (cat *catalog) MethodBySystemName(c context.Context, systemName string, includeInactive bool, storeUID string) (Entry, bool, error) {
	for _, entry := range cat.entries {
		if !strings.EqualFold(entry.SystemName, systemName) {
			continue
		}
		if !entry.Active && !includeInactive {
			continue
		}
		return entry, true, nil
	}

	cat.logger.Log(c, systemName, mylog.SeverityDebug, "No payment method with system name %s", systemName)

	return Entry{}, false, nil
}
