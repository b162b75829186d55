package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kharcha/kharcha/internal/rest"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Kind        string          `json:"type"`
	PaymentMode string          `json:"paymentMode"`
	Amount      decimal.Decimal `json:"amount"`
}

type OverviewDTO struct {
	CurrentMonth     string          `json:"currentMonth"`
	MonthlyAllowance decimal.Decimal `json:"monthlyAllowance"`
	Categories       []string        `json:"categories"`
	TransactionCount int             `json:"transactionCount"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overview, err := handler.service.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(OverviewDTO{
		CurrentMonth:     overview.CurrentMonth,
		MonthlyAllowance: overview.MonthlyAllowance,
		Categories:       overview.Categories,
		TransactionCount: overview.TransactionCount,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) SetAllowance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.SetAllowance(r.Context(), body.Amount); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.AddTransaction(r.Context(), DTOToTransaction(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) DeleteTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dtos []TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	matches := make([]document.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		matches = append(matches, DTOToTransaction(dto))
	}

	deleted, err := handler.service.DeleteTransactions(r.Context(), matches)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]int{"deleted": deleted}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := FilterAll
	switch r.URL.Query().Get("show") {
	case "income":
		filter = FilterIncome
	case "expenditure":
		filter = FilterExpenditure
	}
	sortBy := SortNone
	switch r.URL.Query().Get("sortBy") {
	case "amountAsc":
		sortBy = SortAmountAsc
	case "amountDesc":
		sortBy = SortAmountDesc
	}

	transactions, err := handler.service.ListTransactions(r.Context(), filter, sortBy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		dtos = append(dtos, TransactionToDTO(tx))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overview, err := handler.service.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(overview.Categories); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, err := handler.service.AddCategory(r.Context(), body.Name)
	if errors.Is(err, document.ErrCategoryExists) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Category already exists",
			Details: name,
		})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"name": name}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) RemoveCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	remaining, err := handler.service.RemoveCategories(r.Context(), body.Names)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(map[string][]string{"categories": remaining}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	if document.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("ledger operation failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func TransactionToDTO(tx document.Transaction) TransactionDTO {
	return TransactionDTO{
		Date:        tx.Date,
		Category:    tx.Category,
		Kind:        string(tx.Kind),
		PaymentMode: string(tx.PaymentMode),
		Amount:      tx.Amount,
	}
}

func DTOToTransaction(dto TransactionDTO) document.Transaction {
	return document.Transaction{
		Date:        dto.Date,
		Category:    dto.Category,
		Kind:        document.TxKind(dto.Kind),
		PaymentMode: document.PaymentMode(dto.PaymentMode),
		Amount:      dto.Amount,
	}
}
