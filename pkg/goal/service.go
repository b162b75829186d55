package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/kharcha/kharcha/pkg/metrics"
	"github.com/kharcha/kharcha/pkg/rollover"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var oneHundred = decimal.NewFromInt(100)

// Progress is a goal's standing against the open month's net savings. The
// single net-savings figure is reused as the progress of every goal
// simultaneously; there is no per-goal allocation and no accumulation across
// months.
type Progress struct {
	Goal           document.SavingsGoal
	ProgressAmount decimal.Decimal
	ProgressPct    decimal.Decimal
	Remaining      decimal.Decimal
	// DaysRemaining is negative once the target date has passed. A passed
	// deadline is surfaced, never enforced.
	DaysRemaining int
	// SuggestedDailyPace is nil when no days remain.
	SuggestedDailyPace *decimal.Decimal
}

type Service interface {
	Create(ctx context.Context, name string, targetAmount decimal.Decimal, targetDate string) (document.SavingsGoal, error)
	Delete(ctx context.Context, id string) error
	ListWithProgress(ctx context.Context) ([]Progress, error)
}

type ServiceImpl struct {
	rollover *rollover.Engine
	store    document.Store
	clock    utils.Clock
}

func NewServiceImpl(rolloverEngine *rollover.Engine, store document.Store, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{rollover: rolloverEngine, store: store, clock: clock}
}

func (s *ServiceImpl) Create(ctx context.Context, name string, targetAmount decimal.Decimal, targetDate string) (document.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return document.SavingsGoal{}, document.NewValidationError("goal name must not be empty")
	}
	if !targetAmount.IsPositive() {
		return document.SavingsGoal{}, document.NewValidationError("target amount must be greater than zero")
	}
	if _, err := time.Parse(utils.DateLayout, targetDate); err != nil {
		return document.SavingsGoal{}, document.NewValidationError("target date must be in YYYY-MM-DD format")
	}

	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return document.SavingsGoal{}, err
	}

	now := s.clock.Now()
	goal := document.SavingsGoal{
		ID:           fmt.Sprintf("%d-%d", len(doc.SavingsGoals)+1, now.Unix()),
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		CreatedDate:  now.Format(utils.DateLayout),
	}
	doc.SavingsGoals = append(doc.SavingsGoals, goal)
	if err := s.store.Save(ctx, doc); err != nil {
		return document.SavingsGoal{}, fmt.Errorf("failed to persist savings goal: %w", err)
	}
	log.Debugf("created savings goal %q (%s)", goal.Name, goal.ID)
	return goal, nil
}

// Delete removes the goal with the given id. A missing id is a no-op; goals
// are never auto-expired, so deletion is the only way a goal goes away.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return err
	}

	kept := make([]document.SavingsGoal, 0, len(doc.SavingsGoals))
	for _, g := range doc.SavingsGoals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(doc.SavingsGoals) {
		log.Debugf("savings goal %s not found, nothing to delete", id)
	}
	doc.SavingsGoals = kept
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to persist savings goal deletion: %w", err)
	}
	return nil
}

func (s *ServiceImpl) ListWithProgress(ctx context.Context) ([]Progress, error) {
	doc, err := s.rollover.EnsureCurrentMonth(ctx)
	if err != nil {
		return nil, err
	}

	netSavings := metrics.NetSavings(metrics.Basic(doc.Transactions, doc.MonthlyAllowance))
	today := s.clock.Now()
	out := make([]Progress, 0, len(doc.SavingsGoals))
	for _, g := range doc.SavingsGoals {
		out = append(out, ComputeProgress(g, netSavings, today))
	}
	return out, nil
}

// ComputeProgress projects a goal against the given net savings as of today.
func ComputeProgress(goal document.SavingsGoal, netSavings decimal.Decimal, today time.Time) Progress {
	progressAmount := netSavings
	if progressAmount.IsNegative() {
		progressAmount = decimal.Zero
	}

	progressPct := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		progressPct = progressAmount.Div(goal.TargetAmount).Mul(oneHundred)
		if progressPct.GreaterThan(oneHundred) {
			progressPct = oneHundred
		}
	}

	remaining := goal.TargetAmount.Sub(progressAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysRemaining := 0
	if targetDate, err := time.Parse(utils.DateLayout, goal.TargetDate); err == nil {
		daysRemaining = utils.DaysBetween(today, targetDate)
	}

	var pace *decimal.Decimal
	if daysRemaining > 0 {
		p := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
		pace = &p
	}

	return Progress{
		Goal:               goal,
		ProgressAmount:     progressAmount,
		ProgressPct:        progressPct,
		Remaining:          remaining,
		DaysRemaining:      daysRemaining,
		SuggestedDailyPace: pace,
	}
}
