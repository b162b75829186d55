package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/kharcha/kharcha/internal/rest"
	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/kharcha/kharcha/pkg/rollover"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BasicMetricsDTO struct {
	TotalIncome     decimal.Decimal  `json:"totalIncome"`
	TotalExpense    decimal.Decimal  `json:"totalExpense"`
	NetAvailable    decimal.Decimal  `json:"netAvailable"`
	RemainingBudget decimal.Decimal  `json:"remainingBudget"`
	SavingsRatePct  *decimal.Decimal `json:"savingsRatePct,omitempty"`
}

type InsightMetricsDTO struct {
	BasicMetricsDTO
	DaysInMonth    int             `json:"daysInMonth"`
	DaysPassed     int             `json:"daysPassed"`
	RemainingDays  int             `json:"remainingDays"`
	AvgDailySpent  decimal.Decimal `json:"avgDailySpent"`
	SafeDailySpend decimal.Decimal `json:"safeDailySpend"`
}

type CSVReportDTO struct {
	Rows          int             `json:"rows"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	FirstDate     string          `json:"firstDate,omitempty"`
	LastDate      string          `json:"lastDate,omitempty"`
	DaysCovered   int             `json:"daysCovered"`
	AvgDailySpent decimal.Decimal `json:"avgDailySpent"`
}

type Handler struct {
	rollover *rollover.Engine
	clock    utils.Clock
}

func NewHandler(rolloverEngine *rollover.Engine, clock utils.Clock) *Handler {
	return &Handler{rollover: rolloverEngine, clock: clock}
}

func (handler *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := handler.rollover.EnsureCurrentMonth(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	basic := Basic(doc.Transactions, doc.MonthlyAllowance)
	if err := json.NewEncoder(w).Encode(BasicToDTO(basic)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := handler.rollover.EnsureCurrentMonth(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	basic := Basic(doc.Transactions, doc.MonthlyAllowance)
	insight := Insight(basic, handler.clock.Now())
	if err := json.NewEncoder(w).Encode(InsightToDTO(basic, insight)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AnalyzeCSV accepts an uploaded transaction batch (multipart field "file")
// and returns its summary. The upload is never stored.
func (handler *Handler) AnalyzeCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	file, _, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing file",
			Details: "expected a multipart upload with a \"file\" field",
		})
		return
	}
	defer file.Close()

	report, err := AnalyzeCSV(file)
	if err != nil {
		if document.IsValidation(err) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid CSV",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("analyzed uploaded CSV: %s", report)

	if err := json.NewEncoder(w).Encode(CSVReportDTO{
		Rows:          report.Rows,
		TotalIncome:   report.TotalIncome,
		TotalExpense:  report.TotalExpense,
		FirstDate:     report.FirstDate,
		LastDate:      report.LastDate,
		DaysCovered:   report.DaysCovered,
		AvgDailySpent: report.AvgDailySpent,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func BasicToDTO(basic BasicMetrics) BasicMetricsDTO {
	return BasicMetricsDTO{
		TotalIncome:     basic.TotalIncome,
		TotalExpense:    basic.TotalExpense,
		NetAvailable:    basic.NetAvailable,
		RemainingBudget: basic.RemainingBudget,
		SavingsRatePct:  basic.SavingsRatePct,
	}
}

func InsightToDTO(basic BasicMetrics, insight InsightMetrics) InsightMetricsDTO {
	return InsightMetricsDTO{
		BasicMetricsDTO: BasicToDTO(basic),
		DaysInMonth:     insight.DaysInMonth,
		DaysPassed:      insight.DaysPassed,
		RemainingDays:   insight.RemainingDays,
		AvgDailySpent:   insight.AvgDailySpent,
		SafeDailySpend:  insight.SafeDailySpend,
	}
}
