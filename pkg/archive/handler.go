package archive

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kharcha/kharcha/internal/rest"
	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/kharcha/kharcha/pkg/ledger"
	"github.com/kharcha/kharcha/pkg/metrics"
	"github.com/shopspring/decimal"
)

type ArchivedMonthDTO struct {
	MonthKey         string                  `json:"monthKey"`
	MonthlyAllowance decimal.Decimal         `json:"monthlyAllowance"`
	Transactions     []ledger.TransactionDTO `json:"transactions"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func (handler *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	months, err := handler.service.ListMonths(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(months); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	monthKey := mux.Vars(r)["monthKey"]

	month, err := handler.service.Get(r.Context(), monthKey)
	if errors.Is(err, document.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Archived month not found",
			Details: monthKey,
		})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	transactions := make([]ledger.TransactionDTO, 0, len(month.Transactions))
	for _, tx := range month.Transactions {
		transactions = append(transactions, ledger.TransactionToDTO(tx))
	}
	if err := json.NewEncoder(w).Encode(ArchivedMonthDTO{
		MonthKey:         monthKey,
		MonthlyAllowance: month.MonthlyAllowance,
		Transactions:     transactions,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetMonthMetrics feeds an archived snapshot through the metrics engine.
// Insight figures are computed against the actual current date, so the
// remaining-days numbers for a past month reflect today's calendar position,
// not the archived month's.
func (handler *Handler) GetMonthMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	monthKey := mux.Vars(r)["monthKey"]

	month, err := handler.service.Get(r.Context(), monthKey)
	if errors.Is(err, document.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Archived month not found",
			Details: monthKey,
		})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	basic := metrics.Basic(month.Transactions, month.MonthlyAllowance)
	insight := metrics.Insight(basic, handler.clock.Now())
	if err := json.NewEncoder(w).Encode(metrics.InsightToDTO(basic, insight)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
