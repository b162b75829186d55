package archive

import (
	"context"
	"testing"

	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() *ServiceImpl {
	doc := document.NewDefault("2026-03")
	doc.Archives = map[string]document.ArchivedMonth{
		"2025-11": {MonthlyAllowance: decimal.NewFromInt(4000)},
		"2026-01": {MonthlyAllowance: decimal.NewFromInt(5000)},
		"2025-12": {
			MonthlyAllowance: decimal.NewFromInt(4500),
			Transactions: []document.Transaction{
				{Date: "2025-12-05", Category: "Food", Kind: document.KindExpenditure, PaymentMode: document.PaymentCash, Amount: decimal.NewFromInt(250)},
			},
		},
	}
	return NewServiceImpl(document.NewStubStore(doc))
}

func TestService_ListMonths(t *testing.T) {
	service := setup()

	months, err := service.ListMonths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01", "2025-12", "2025-11"}, months)
}

func TestService_ListMonthsEmpty(t *testing.T) {
	service := NewServiceImpl(document.NewStubStore(document.NewDefault("2026-03")))

	months, err := service.ListMonths(context.Background())
	require.NoError(t, err)
	assert.Empty(t, months)
}

func TestService_Get(t *testing.T) {
	service := setup()

	month, err := service.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	assert.True(t, month.MonthlyAllowance.Equal(decimal.NewFromInt(4500)))
	require.Equal(t, 1, len(month.Transactions))
	assert.Equal(t, "Food", month.Transactions[0].Category)
}

func TestService_GetUnknownMonth(t *testing.T) {
	service := setup()

	_, err := service.Get(context.Background(), "2024-01")
	assert.ErrorIs(t, err, document.ErrNotFound)
}
