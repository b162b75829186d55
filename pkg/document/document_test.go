package document

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date, category string, kind TxKind, amount string) Transaction {
	return Transaction{
		Date:        date,
		Category:    category,
		Kind:        kind,
		PaymentMode: PaymentCash,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestTransaction_Matches(t *testing.T) {
	base := tx("2026-03-05", "Food", KindExpenditure, "100")

	tests := []struct {
		name  string
		other Transaction
		want  bool
	}{
		{"identical", tx("2026-03-05", "Food", KindExpenditure, "100"), true},
		{"amount within epsilon", tx("2026-03-05", "Food", KindExpenditure, "100.005"), true},
		{"amount at epsilon boundary", tx("2026-03-05", "Food", KindExpenditure, "100.01"), false},
		{"different date", tx("2026-03-06", "Food", KindExpenditure, "100"), false},
		{"different category", tx("2026-03-05", "Transport", KindExpenditure, "100"), false},
		{"different kind", tx("2026-03-05", "Food", KindIncome, "100"), false},
		{"different amount", tx("2026-03-05", "Food", KindExpenditure, "99"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Matches(tt.other); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("different payment mode", func(t *testing.T) {
		other := base
		other.PaymentMode = PaymentCard
		assert.False(t, base.Matches(other))
	})
}

func TestDocument_Backfill(t *testing.T) {
	doc := &Document{MonthlyAllowance: decimal.RequireFromString("1200")}
	doc.Backfill("2026-03")

	assert.Equal(t, "2026-03", doc.CurrentMonth)
	assert.True(t, doc.MonthlyAllowance.Equal(decimal.RequireFromString("1200")))
	assert.NotNil(t, doc.Categories)
	assert.NotNil(t, doc.Transactions)
	assert.NotNil(t, doc.Archives)
	assert.NotNil(t, doc.SavingsGoals)

	// A present month key is left alone.
	doc2 := &Document{CurrentMonth: "2025-12"}
	doc2.Backfill("2026-03")
	assert.Equal(t, "2025-12", doc2.CurrentMonth)
}

func TestNewDefault_StarterCategories(t *testing.T) {
	doc := NewDefault("2026-03")
	assert.Equal(t, 9, len(doc.Categories))
	assert.Equal(t, "Food", doc.Categories[0])
	assert.Equal(t, "Miscellaneous", doc.Categories[8])
	assert.Empty(t, doc.Transactions)
	assert.True(t, doc.MonthlyAllowance.IsZero())
}

func TestNewFallback_IsMinimal(t *testing.T) {
	doc := NewFallback("2026-03")
	assert.Equal(t, "2026-03", doc.CurrentMonth)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Transactions)
	assert.Empty(t, doc.Archives)
	assert.Empty(t, doc.SavingsGoals)
}

func TestDocument_UnknownFieldsRoundTrip(t *testing.T) {
	raw := []byte(`{
		"current_month": "2026-03",
		"monthly_allowance": 5000,
		"categories": ["Food"],
		"transactions": [],
		"archives": {},
		"savings_goals": [],
		"user_note": {"pinned": true},
		"schema_version": 2
	}`)

	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2026-03", doc.CurrentMonth)

	out, err := json.Marshal(&doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.JSONEq(t, `{"pinned": true}`, string(decoded["user_note"]))
	assert.Equal(t, "2", string(decoded["schema_version"]))
}

func TestDocument_MarshalIsStable(t *testing.T) {
	doc := NewDefault("2026-03")
	doc.MonthlyAllowance = decimal.RequireFromString("5000")
	doc.Transactions = append(doc.Transactions, tx("2026-03-01", "Food", KindExpenditure, "120.50"))
	doc.Archives["2026-02"] = ArchivedMonth{
		MonthlyAllowance: decimal.RequireFromString("4500"),
		Transactions:     []Transaction{tx("2026-02-10", "Food", KindIncome, "50")},
	}

	first, err := json.Marshal(doc)
	require.NoError(t, err)

	var reloaded Document
	require.NoError(t, json.Unmarshal(first, &reloaded))
	second, err := json.Marshal(&reloaded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestDocument_Clone(t *testing.T) {
	doc := NewDefault("2026-03")
	doc.Transactions = append(doc.Transactions, tx("2026-03-01", "Food", KindExpenditure, "10"))
	doc.Archives["2026-02"] = ArchivedMonth{Transactions: []Transaction{}}

	clone := doc.Clone()
	clone.CurrentMonth = "2026-04"
	clone.Transactions[0].Category = "Transport"
	clone.Categories[0] = "changed"
	clone.Archives["2026-01"] = ArchivedMonth{}

	assert.Equal(t, "2026-03", doc.CurrentMonth)
	assert.Equal(t, "Food", doc.Transactions[0].Category)
	assert.Equal(t, "Food", doc.Categories[0])
	assert.Equal(t, 1, len(doc.Archives))
}

func TestTxKindAndPaymentMode_Valid(t *testing.T) {
	assert.True(t, KindIncome.Valid())
	assert.True(t, KindExpenditure.Valid())
	assert.False(t, TxKind("Transfer").Valid())

	for _, mode := range []PaymentMode{PaymentCash, PaymentCard, PaymentWalletOrUPI, PaymentBankTransfer, PaymentOther} {
		assert.True(t, mode.Valid())
	}
	assert.False(t, PaymentMode("Cheque").Valid())
}
