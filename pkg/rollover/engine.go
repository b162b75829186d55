package rollover

import (
	"context"
	"fmt"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	log "github.com/sirupsen/logrus"
)

// Engine closes out the open month when the calendar month has changed since
// the document was last touched. It is evaluated on every interaction rather
// than scheduled, so it handles idle gaps of any length and is idempotent
// within a month.
type Engine struct {
	store document.Store
	clock utils.Clock
}

func NewEngine(store document.Store, clock utils.Clock) *Engine {
	return &Engine{store: store, clock: clock}
}

// Apply transitions doc to the calendar month of now. The old month is
// archived under its own key only when it holds transactions or a non-zero
// allowance; an untouched month leaves no archive entry. Categories and the
// allowance carry forward unchanged. Returns whether doc was mutated.
//
// A stored month key ahead of now's month is treated like any other
// mismatch: archive and reset.
func (e *Engine) Apply(doc *document.Document, now time.Time) bool {
	todayKey := utils.MonthKey(now)
	if doc.CurrentMonth == todayKey {
		return false
	}

	previousKey := doc.CurrentMonth
	if len(doc.Transactions) > 0 || !doc.MonthlyAllowance.IsZero() {
		doc.Archives[previousKey] = document.ArchivedMonth{
			MonthlyAllowance: doc.MonthlyAllowance,
			Transactions:     doc.Transactions,
		}
		log.Infof("archived month %s with %d transaction(s)", previousKey, len(doc.Transactions))
	} else {
		log.Debugf("month %s had no activity, skipping archive", previousKey)
	}

	doc.CurrentMonth = todayKey
	doc.Transactions = []document.Transaction{}
	return true
}

// EnsureCurrentMonth loads the document, rolls it over if the month changed,
// and persists immediately on mutation so concurrent readers observe the new
// open month instead of re-triggering archival. Returns the open document.
func (e *Engine) EnsureCurrentMonth(ctx context.Context) (*document.Document, error) {
	doc, err := e.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	if e.Apply(doc, e.clock.Now()) {
		if err := e.store.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to persist month rollover: %w", err)
		}
	}
	return doc, nil
}
