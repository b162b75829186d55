package goal

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type GoalDTO struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	TargetAmount       decimal.Decimal  `json:"targetAmount"`
	TargetDate         string           `json:"targetDate"`
	CreatedDate        string           `json:"createdDate"`
	ProgressAmount     decimal.Decimal  `json:"progressAmount"`
	ProgressPct        decimal.Decimal  `json:"progressPct"`
	Remaining          decimal.Decimal  `json:"remaining"`
	DaysRemaining      int              `json:"daysRemaining"`
	SuggestedDailyPace *decimal.Decimal `json:"suggestedDailyPace,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new savings goal")
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Name         string          `json:"name"`
		TargetAmount decimal.Decimal `json:"targetAmount"`
		TargetDate   string          `json:"targetDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), body.Name, body.TargetAmount, body.TargetDate)
	if err != nil {
		if document.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(struct {
		ID           string          `json:"id"`
		Name         string          `json:"name"`
		TargetAmount decimal.Decimal `json:"targetAmount"`
		TargetDate   string          `json:"targetDate"`
		CreatedDate  string          `json:"createdDate"`
	}{created.ID, created.Name, created.TargetAmount, created.TargetDate, created.CreatedDate}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	progress, err := handler.service.ListWithProgress(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GoalDTO, 0, len(progress))
	for _, p := range progress {
		dtos = append(dtos, ProgressToDTO(p))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalId := vars["goalId"]

	if err := handler.service.Delete(r.Context(), goalId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Return 204 No Content for successful deletion with no response body
	w.WriteHeader(http.StatusNoContent)
}

func ProgressToDTO(p Progress) GoalDTO {
	return GoalDTO{
		ID:                 p.Goal.ID,
		Name:               p.Goal.Name,
		TargetAmount:       p.Goal.TargetAmount,
		TargetDate:         p.Goal.TargetDate,
		CreatedDate:        p.Goal.CreatedDate,
		ProgressAmount:     p.ProgressAmount,
		ProgressPct:        p.ProgressPct,
		Remaining:          p.Remaining,
		DaysRemaining:      p.DaysRemaining,
		SuggestedDailyPace: p.SuggestedDailyPace,
	}
}
