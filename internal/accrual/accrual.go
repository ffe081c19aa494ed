// Package accrual is the batch trigger for ledger accrual. It fans out over
// every owner with active positions and runs each owner's accrue operation as
// its own independent transaction, so one owner's failure or a crash
// mid-batch never touches the owners already committed.
package accrual

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/primevest/investledger/internal/config"
	"github.com/primevest/investledger/internal/service/ledgerservice"
	"github.com/primevest/investledger/pkg/errs"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// processingOwners guards against the same owner being accrued twice by
// overlapping batch runs in this process. Cross-process overlap is handled by
// the store's conditional updates.
var processingOwners sync.Map

type Accruer interface {
	Accrue(ctx context.Context, ownerID int) (*ledgerservice.AccrualReport, error)
	ListActiveOwners(ctx context.Context, limit uint32) ([]int, error)
}

// PositionResult is one position's delta from a batch run.
type PositionResult struct {
	OwnerID       int             `json:"ownerId"`
	PositionID    int             `json:"positionId"`
	OrderID       string          `json:"orderId"`
	Delta         decimal.Decimal `json:"delta"`
	DaysProcessed int             `json:"daysProcessed"`
	Status        string          `json:"status"`
}

// OwnerError records an owner whose accrual failed after retries.
type OwnerError struct {
	OwnerID int    `json:"ownerId"`
	Reason  string `json:"reason"`
}

// BatchReport is the structured outcome of one batch run.
type BatchReport struct {
	Processed []PositionResult `json:"processed"`
	Errors    []OwnerError     `json:"errors"`
}

type Service struct {
	ledger         Accruer
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, ledger Accruer) *Service {
	return &Service{
		ledger:         ledger,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.AccrualInterval,
	}
}

// Start runs the periodic batch loop until the context is cancelled. A zero
// interval disables the internal ticker, leaving the HTTP batch endpoint as
// the only trigger.
func (s *Service) Start(ctx context.Context) {
	if s.updateInterval <= 0 {
		zap.L().Info("internal accrual ticker disabled")
		return
	}
	zap.L().Info("accrual batch service started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping accrual batch service")
			return
		case <-ticker.C:
			if _, err := s.RunBatch(ctx); err != nil {
				zap.L().Error("batch accrual run failed", zap.Error(err))
			}
		}
	}
}

// RunBatch accrues every owner with active positions once. Owners are
// processed concurrently but each in its own transaction; the report collects
// per-position deltas and per-owner errors. Safe to call repeatedly and
// concurrently: same-day repeats are no-ops and in-flight owners are skipped.
func (s *Service) RunBatch(ctx context.Context) (*BatchReport, error) {
	owners, err := s.ledger.ListActiveOwners(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to list owners for batch accrual", zap.Error(err))
		return nil, err
	}

	report := &BatchReport{}
	var mu sync.Mutex

	var g errgroup.Group
	for _, ownerID := range owners {
		ownerID := ownerID

		if _, loaded := processingOwners.LoadOrStore(ownerID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			// The pool only enqueues; wait for the task itself so the
			// report is complete when RunBatch returns.
			done := make(chan struct{})
			err := s.workerPool.AddTask(ctx, func() error {
				defer close(done)
				defer processingOwners.Delete(ownerID)
				s.handleOwner(ctx, ownerID, report, &mu)
				return nil
			})
			if err != nil {
				processingOwners.Delete(ownerID)
				return err
			}
			<-done
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching batch accrual", zap.Error(err))
	}
	return report, nil
}

// handleOwner accrues one owner with bounded retries on transient failures.
// A terminal failure lands in the error list; the batch moves on.
func (s *Service) handleOwner(ctx context.Context, ownerID int, report *BatchReport, mu *sync.Mutex) {
	var accrualReport *ledgerservice.AccrualReport
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
			accrualReport, err = s.ledger.Accrue(ctx, ownerID)
		}
		if err == nil || !errs.IsTransient(err) {
			break
		}
		zap.L().Warn("transient accrual failure, retrying",
			zap.Int("ownerID", ownerID), zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxRetries && !sleepCtx(ctx, retryInterval*time.Duration(attempt)) {
			err = ctx.Err()
			break
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		report.Errors = append(report.Errors, OwnerError{OwnerID: ownerID, Reason: err.Error()})
		return
	}
	for _, delta := range accrualReport.Deltas {
		report.Processed = append(report.Processed, PositionResult{
			OwnerID:       ownerID,
			PositionID:    delta.PositionID,
			OrderID:       delta.OrderID,
			Delta:         delta.ProfitAdded,
			DaysProcessed: delta.DaysProcessed,
			Status:        delta.Status,
		})
	}
}

// sleepCtx waits out the backoff, returning false when ctx is cancelled first
// so a shutdown never waits for a retry that will not run.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
