package app

import (
	"github.com/gorilla/mux"
	"github.com/kharcha/kharcha/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Ledger overview and allowance
	r.HandleFunc("/api/ledger", deps.LedgerHandler.GetOverview).Methods("GET")
	r.HandleFunc("/api/ledger/allowance", deps.LedgerHandler.SetAllowance).Methods("PUT")

	// Transactions
	r.HandleFunc("/api/transactions", deps.LedgerHandler.ListTransactions).Methods("GET")
	r.HandleFunc("/api/transactions", deps.LedgerHandler.AddTransaction).Methods("POST")
	r.HandleFunc("/api/transactions/delete", deps.LedgerHandler.DeleteTransactions).Methods("POST")

	// Categories
	r.HandleFunc("/api/categories", deps.LedgerHandler.ListCategories).Methods("GET")
	r.HandleFunc("/api/categories", deps.LedgerHandler.AddCategory).Methods("POST")
	r.HandleFunc("/api/categories/delete", deps.LedgerHandler.RemoveCategories).Methods("POST")

	// Metrics and CSV analysis
	r.HandleFunc("/api/metrics", deps.MetricsHandler.GetMetrics).Methods("GET")
	r.HandleFunc("/api/metrics/insights", deps.MetricsHandler.GetInsights).Methods("GET")
	r.HandleFunc("/api/analysis/csv", deps.MetricsHandler.AnalyzeCSV).Methods("POST")

	// Savings goals
	r.HandleFunc("/api/goals", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goals/{goalId}", deps.GoalHandler.Delete).Methods("DELETE")

	// Archived months
	r.HandleFunc("/api/archives", deps.ArchiveHandler.ListMonths).Methods("GET")
	r.HandleFunc("/api/archives/{monthKey}", deps.ArchiveHandler.GetMonth).Methods("GET")
	r.HandleFunc("/api/archives/{monthKey}/metrics", deps.ArchiveHandler.GetMonthMetrics).Methods("GET")

	// Tips
	r.HandleFunc("/api/tips", deps.TipsHandler.GetTips).Methods("GET")
}
