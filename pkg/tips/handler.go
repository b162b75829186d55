package tips

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) GetTips(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	count := 3
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "count must be a number", http.StatusBadRequest)
			return
		}
		count = parsed
	}

	if err := json.NewEncoder(w).Encode(Pick(count)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
