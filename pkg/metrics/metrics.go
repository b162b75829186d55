// Package metrics derives spending figures from a transaction set. All
// functions are pure: the inputs may come from the open ledger, an archived
// month, or an uploaded batch, and nothing here touches persistence.
package metrics

import (
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type BasicMetrics struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	// NetAvailable is allowance + income - expenses and may be negative.
	NetAvailable decimal.Decimal
	// RemainingBudget is NetAvailable floored at zero; only NetAvailable
	// carries the sign.
	RemainingBudget decimal.Decimal
	// SavingsRatePct is net savings (income - expenses) as a percentage of
	// the allowance. Nil when no allowance is set; negative when the month
	// overspends.
	SavingsRatePct *decimal.Decimal
}

type InsightMetrics struct {
	DaysInMonth    int
	DaysPassed     int
	RemainingDays  int
	AvgDailySpent  decimal.Decimal
	SafeDailySpend decimal.Decimal
}

func Basic(transactions []document.Transaction, allowance decimal.Decimal) BasicMetrics {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Kind {
		case document.KindIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case document.KindExpenditure:
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	netAvailable := allowance.Add(totalIncome).Sub(totalExpense)
	remaining := netAvailable
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	var savingsRate *decimal.Decimal
	if allowance.IsPositive() {
		r := totalIncome.Sub(totalExpense).Div(allowance).Mul(oneHundred)
		savingsRate = &r
	}
	return BasicMetrics{
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetAvailable:    netAvailable,
		RemainingBudget: remaining,
		SavingsRatePct:  savingsRate,
	}
}

// Insight derives time-normalized figures relative to today. Days passed is
// the day of month, inclusive of today. The zero-day guards cannot trigger
// for valid dates but keep the divisions total.
func Insight(basic BasicMetrics, today time.Time) InsightMetrics {
	daysInMonth := utils.DaysInMonth(today)
	daysPassed := today.Day()
	remainingDays := daysInMonth - daysPassed
	if remainingDays < 0 {
		remainingDays = 0
	}

	avgDailySpent := decimal.Zero
	if daysPassed > 0 {
		avgDailySpent = basic.TotalExpense.Div(decimal.NewFromInt(int64(daysPassed)))
	}
	safeDailySpend := decimal.Zero
	if remainingDays > 0 {
		safeDailySpend = basic.RemainingBudget.Div(decimal.NewFromInt(int64(remainingDays)))
	}

	return InsightMetrics{
		DaysInMonth:    daysInMonth,
		DaysPassed:     daysPassed,
		RemainingDays:  remainingDays,
		AvgDailySpent:  avgDailySpent,
		SafeDailySpend: safeDailySpend,
	}
}

// NetSavings is income minus expenses for the period, ignoring the allowance.
func NetSavings(basic BasicMetrics) decimal.Decimal {
	return basic.TotalIncome.Sub(basic.TotalExpense)
}
