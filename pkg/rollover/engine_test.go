package rollover

import (
	"context"
	"testing"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march10 = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func expenditure(date, amount string) document.Transaction {
	return document.Transaction{
		Date:        date,
		Category:    "Food",
		Kind:        document.KindExpenditure,
		PaymentMode: document.PaymentCash,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestEngine_Apply(t *testing.T) {
	tests := []struct {
		name          string
		doc           *document.Document
		wantMutated   bool
		wantArchived  bool
		wantMonth     string
		wantAllowance string
	}{
		{
			name: "same month is a no-op",
			doc: &document.Document{
				CurrentMonth:     "2026-03",
				MonthlyAllowance: decimal.RequireFromString("5000"),
				Transactions:     []document.Transaction{expenditure("2026-03-01", "100")},
			},
			wantMutated:   false,
			wantArchived:  false,
			wantMonth:     "2026-03",
			wantAllowance: "5000",
		},
		{
			name: "older month with transactions is archived",
			doc: &document.Document{
				CurrentMonth:     "2026-02",
				MonthlyAllowance: decimal.RequireFromString("5000"),
				Transactions:     []document.Transaction{expenditure("2026-02-14", "250")},
			},
			wantMutated:   true,
			wantArchived:  true,
			wantMonth:     "2026-03",
			wantAllowance: "5000",
		},
		{
			name: "untouched month is reset without archiving",
			doc: &document.Document{
				CurrentMonth: "2026-01",
			},
			wantMutated:   true,
			wantArchived:  false,
			wantMonth:     "2026-03",
			wantAllowance: "0",
		},
		{
			name: "allowance alone is enough to archive",
			doc: &document.Document{
				CurrentMonth:     "2026-02",
				MonthlyAllowance: decimal.RequireFromString("3000"),
			},
			wantMutated:   true,
			wantArchived:  true,
			wantMonth:     "2026-03",
			wantAllowance: "3000",
		},
		{
			name: "stored month ahead of today still rolls",
			doc: &document.Document{
				CurrentMonth:     "2026-07",
				MonthlyAllowance: decimal.RequireFromString("5000"),
				Transactions:     []document.Transaction{expenditure("2026-07-02", "10")},
			},
			wantMutated:   true,
			wantArchived:  true,
			wantMonth:     "2026-03",
			wantAllowance: "5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previousKey := tt.doc.CurrentMonth
			previousTxCount := len(tt.doc.Transactions)
			tt.doc.Backfill(previousKey)

			engine := NewEngine(document.NewStubStore(tt.doc.Clone()), &utils.MockClock{FixedNow: march10})
			mutated := engine.Apply(tt.doc, march10)

			assert.Equal(t, tt.wantMutated, mutated)
			assert.Equal(t, tt.wantMonth, tt.doc.CurrentMonth)
			assert.True(t, tt.doc.MonthlyAllowance.Equal(decimal.RequireFromString(tt.wantAllowance)),
				"allowance must carry forward unchanged")

			archived, ok := tt.doc.Archives[previousKey]
			assert.Equal(t, tt.wantArchived, ok)
			if tt.wantArchived {
				assert.Equal(t, previousTxCount, len(archived.Transactions))
				assert.Empty(t, tt.doc.Transactions, "open month starts empty after rollover")
			}
		})
	}
}

func TestEngine_ApplyKeepsCategories(t *testing.T) {
	doc := &document.Document{
		CurrentMonth: "2026-02",
		Categories:   []string{"Food", "Books"},
		Transactions: []document.Transaction{expenditure("2026-02-01", "10")},
	}
	doc.Backfill("2026-02")

	engine := NewEngine(document.NewStubStore(doc.Clone()), &utils.MockClock{FixedNow: march10})
	engine.Apply(doc, march10)

	assert.Equal(t, []string{"Food", "Books"}, doc.Categories)
}

func TestEngine_EnsureCurrentMonthPersistsOnce(t *testing.T) {
	seed := &document.Document{
		CurrentMonth:     "2026-02",
		MonthlyAllowance: decimal.RequireFromString("5000"),
		Transactions:     []document.Transaction{expenditure("2026-02-20", "42")},
	}
	seed.Backfill("2026-02")
	store := document.NewStubStore(seed)
	engine := NewEngine(store, &utils.MockClock{FixedNow: march10})
	ctx := context.Background()

	doc, err := engine.EnsureCurrentMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", doc.CurrentMonth)
	assert.Equal(t, 1, store.SaveCount, "rollover must persist immediately")

	// A second evaluation in the same month is a no-op.
	doc, err = engine.EnsureCurrentMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", doc.CurrentMonth)
	assert.Equal(t, 1, store.SaveCount, "no further writes within the same month")

	saved := store.Current()
	archived, ok := saved.Archives["2026-02"]
	require.True(t, ok)
	assert.Equal(t, 1, len(archived.Transactions))
	assert.True(t, archived.MonthlyAllowance.Equal(decimal.RequireFromString("5000")))
}

func TestEngine_EnsureCurrentMonthSurfacesWriteFailure(t *testing.T) {
	seed := &document.Document{CurrentMonth: "2026-02", Transactions: []document.Transaction{expenditure("2026-02-01", "10")}}
	seed.Backfill("2026-02")
	store := document.NewStubStore(seed)
	store.FailSave = assert.AnError
	engine := NewEngine(store, &utils.MockClock{FixedNow: march10})

	_, err := engine.EnsureCurrentMonth(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "2026-02", store.Current().CurrentMonth, "failed write leaves previous state intact")
}
