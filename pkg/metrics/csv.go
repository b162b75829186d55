package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// csvColumns are the required columns of an uploaded dataset, case-sensitive.
// Extra columns are ignored and column order does not matter.
var csvColumns = []string{"date", "category", "income_or_expenditure", "payment_mode", "amount"}

// CSVReport summarizes an externally supplied transaction batch. The batch is
// analyzed only, never persisted.
type CSVReport struct {
	Rows          int
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	FirstDate     string
	LastDate      string
	DaysCovered   int
	AvgDailySpent decimal.Decimal
}

// AnalyzeCSV reads a CSV of past transactions and reports totals plus the
// average daily spend over the file's inclusive date range. Amounts that do
// not parse count as zero; dates that do not parse are excluded from the
// range. A missing required column is a validation error.
func AnalyzeCSV(r io.Reader) (CSVReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return CSVReport{}, document.NewValidationError("unable to read file as CSV")
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return CSVReport{}, document.NewValidationError("CSV is missing required column(s): %s", strings.Join(missing, ", "))
	}

	report := CSVReport{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	var firstDate, lastDate time.Time
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CSVReport{}, document.NewValidationError("unable to read file as CSV")
		}
		report.Rows++

		amount, err := decimal.NewFromString(field(record, index["amount"]))
		if err != nil {
			log.Debugf("CSV row %d: unparseable amount %q, counting as zero", report.Rows, field(record, index["amount"]))
			amount = decimal.Zero
		}
		switch document.TxKind(field(record, index["income_or_expenditure"])) {
		case document.KindIncome:
			report.TotalIncome = report.TotalIncome.Add(amount)
		case document.KindExpenditure:
			report.TotalExpense = report.TotalExpense.Add(amount)
		}

		if date, err := time.Parse(utils.DateLayout, field(record, index["date"])); err == nil {
			if firstDate.IsZero() || date.Before(firstDate) {
				firstDate = date
			}
			if lastDate.IsZero() || date.After(lastDate) {
				lastDate = date
			}
		}
	}

	if !firstDate.IsZero() {
		report.FirstDate = firstDate.Format(utils.DateLayout)
		report.LastDate = lastDate.Format(utils.DateLayout)
		report.DaysCovered = utils.DaysBetween(firstDate, lastDate) + 1
		report.AvgDailySpent = report.TotalExpense.Div(decimal.NewFromInt(int64(report.DaysCovered)))
	} else {
		report.AvgDailySpent = decimal.Zero
	}
	return report, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// String is a compact log representation of the report.
func (r CSVReport) String() string {
	return fmt.Sprintf("%d row(s), income %s, expense %s, %d day(s)", r.Rows, r.TotalIncome, r.TotalExpense, r.DaysCovered)
}
