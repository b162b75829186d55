package app

import (
	"github.com/kharcha/kharcha/internal/config"
	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/archive"
	"github.com/kharcha/kharcha/pkg/document"
	"github.com/kharcha/kharcha/pkg/goal"
	"github.com/kharcha/kharcha/pkg/ledger"
	"github.com/kharcha/kharcha/pkg/metrics"
	"github.com/kharcha/kharcha/pkg/rollover"
	"github.com/kharcha/kharcha/pkg/tips"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store document.Store
	Clock utils.Clock

	RolloverEngine *rollover.Engine

	LedgerService *ledger.ServiceImpl
	LedgerHandler *ledger.Handler

	MetricsHandler *metrics.Handler

	GoalService *goal.ServiceImpl
	GoalHandler *goal.Handler

	ArchiveService *archive.ServiceImpl
	ArchiveHandler *archive.Handler

	TipsHandler *tips.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.Store = document.NewFileStore(cfg.Storage.Path, deps.Clock)
	deps.RolloverEngine = rollover.NewEngine(deps.Store, deps.Clock)

	deps.LedgerService = ledger.NewServiceImpl(deps.RolloverEngine, deps.Store)
	deps.LedgerHandler = ledger.NewHandler(deps.LedgerService)

	deps.MetricsHandler = metrics.NewHandler(deps.RolloverEngine, deps.Clock)

	deps.GoalService = goal.NewServiceImpl(deps.RolloverEngine, deps.Store, deps.Clock)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.ArchiveService = archive.NewServiceImpl(deps.Store)
	deps.ArchiveHandler = archive.NewHandler(deps.ArchiveService, deps.Clock)

	deps.TipsHandler = tips.NewHandler()

	return deps
}
