package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/kharcha/kharcha/pkg/rollover"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Filter selects which transaction kinds a listing includes.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterIncome      Filter = "income"
	FilterExpenditure Filter = "expenditure"
)

// Sort selects the listing order. SortNone orders by date ascending.
type Sort string

const (
	SortNone       Sort = "none"
	SortAmountAsc  Sort = "amountAsc"
	SortAmountDesc Sort = "amountDesc"
)

// Overview is the open month's headline state.
type Overview struct {
	CurrentMonth     string
	MonthlyAllowance decimal.Decimal
	Categories       []string
	TransactionCount int
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
	SetAllowance(ctx context.Context, amount decimal.Decimal) error
	AddTransaction(ctx context.Context, tx document.Transaction) (document.Transaction, error)
	DeleteTransactions(ctx context.Context, matches []document.Transaction) (int, error)
	ListTransactions(ctx context.Context, filter Filter, sortBy Sort) ([]document.Transaction, error)
	AddCategory(ctx context.Context, name string) (string, error)
	RemoveCategories(ctx context.Context, names []string) ([]string, error)
}

// ServiceImpl operates on the currently open month. Every mutation goes
// through the rollover engine first, so a stale document is never written to.
type ServiceImpl struct {
	rollover *rollover.Engine
	store    document.Store
}

func NewServiceImpl(rolloverEngine *rollover.Engine, store document.Store) *ServiceImpl {
	return &ServiceImpl{rollover: rolloverEngine, store: store}
}

func (s *ServiceImpl) Overview(ctx context.Context) (Overview, error) {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		CurrentMonth:     doc.CurrentMonth,
		MonthlyAllowance: doc.MonthlyAllowance,
		Categories:       doc.Categories,
		TransactionCount: len(doc.Transactions),
	}, nil
}

func (s *ServiceImpl) SetAllowance(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return document.NewValidationError("monthly allowance must not be negative")
	}
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return err
	}
	doc.MonthlyAllowance = amount
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to persist allowance: %w", err)
	}
	return nil
}

func (s *ServiceImpl) AddTransaction(ctx context.Context, tx document.Transaction) (document.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return document.Transaction{}, err
	}
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return document.Transaction{}, err
	}
	// Category existence is checked against the live list at call time; it is
	// not revalidated later, so deleting the category leaves this transaction
	// intact with an orphaned label.
	if !doc.HasCategory(tx.Category) {
		return document.Transaction{}, document.NewValidationError("unknown category %q", tx.Category)
	}

	doc.Transactions = append(doc.Transactions, tx)
	if err := s.store.Save(ctx, doc); err != nil {
		return document.Transaction{}, fmt.Errorf("failed to persist transaction: %w", err)
	}
	log.Debugf("added %s transaction of %s in %q", tx.Kind, tx.Amount, tx.Category)
	return tx, nil
}

func validateTransaction(tx document.Transaction) error {
	if _, err := time.Parse(utils.DateLayout, tx.Date); err != nil {
		return document.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if !tx.Kind.Valid() {
		return document.NewValidationError("type must be %q or %q", document.KindIncome, document.KindExpenditure)
	}
	if !tx.PaymentMode.Valid() {
		return document.NewValidationError("unknown payment mode %q", tx.PaymentMode)
	}
	if !tx.Amount.IsPositive() {
		return document.NewValidationError("amount must be greater than zero")
	}
	return nil
}

// DeleteTransactions removes every transaction structurally matching an entry
// in matches and returns the number removed. Because matching is by value,
// selecting one of several duplicates removes them all.
func (s *ServiceImpl) DeleteTransactions(ctx context.Context, matches []document.Transaction) (int, error) {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]document.Transaction, 0, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		if matchesAny(tx, matches) {
			continue
		}
		kept = append(kept, tx)
	}
	removed := len(doc.Transactions) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	doc.Transactions = kept
	if err := s.store.Save(ctx, doc); err != nil {
		return 0, fmt.Errorf("failed to persist transaction deletion: %w", err)
	}
	log.Debugf("deleted %d transaction(s)", removed)
	return removed, nil
}

func matchesAny(tx document.Transaction, matches []document.Transaction) bool {
	for _, m := range matches {
		if tx.Matches(m) {
			return true
		}
	}
	return false
}

// ListTransactions is a pure read over a copy of the open month's entries.
func (s *ServiceImpl) ListTransactions(ctx context.Context, filter Filter, sortBy Sort) ([]document.Transaction, error) {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]document.Transaction, 0, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		switch filter {
		case FilterIncome:
			if tx.Kind != document.KindIncome {
				continue
			}
		case FilterExpenditure:
			if tx.Kind != document.KindExpenditure {
				continue
			}
		}
		out = append(out, tx)
	}

	switch sortBy {
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].Amount.LessThan(out[i].Amount) })
	default:
		// ISO dates sort correctly as strings.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	}
	return out, nil
}

func (s *ServiceImpl) AddCategory(ctx context.Context, name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return "", document.NewValidationError("category name must not be empty")
	}
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return "", err
	}
	if doc.HasCategory(cleaned) {
		return cleaned, document.ErrCategoryExists
	}

	doc.Categories = append(doc.Categories, cleaned)
	if err := s.store.Save(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to persist category: %w", err)
	}
	return cleaned, nil
}

// RemoveCategories drops the listed names from the registry and returns the
// remaining categories. Existing transactions keep their (now orphaned)
// category labels untouched.
func (s *ServiceImpl) RemoveCategories(ctx context.Context, names []string) ([]string, error) {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	kept := make([]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(doc.Categories) {
		return kept, nil
	}

	doc.Categories = kept
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist category removal: %w", err)
	}
	return kept, nil
}
