// Package ledgerservice orchestrates every money movement against a user's
// ledger. Each operation runs as one atomic transaction and retries a bounded
// number of times on optimistic-concurrency conflicts, so concurrent callers
// (dashboard refreshes, the batch trigger, deposit approvals) serialize
// through the store instead of stepping on each other.
package ledgerservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/pg"
	"github.com/primevest/investledger/pkg/errs"
)

const maxRetries = 3

type LedgerRepo interface {
	GetLedger(ctx context.Context, ownerID int) (*domain.Ledger, error)
	CreateLedger(ctx context.Context, ownerID int) (*domain.Ledger, error)
	UpdateLedger(ctx context.Context, ledger *domain.Ledger) (*domain.Ledger, error)
}

type PositionRepo interface {
	CreatePosition(ctx context.Context, position *domain.Position) (*domain.Position, error)
	FindByID(ctx context.Context, ownerID, positionID int) (*domain.Position, error)
	FindByOwner(ctx context.Context, ownerID int) ([]domain.Position, error)
	FindActiveByOwner(ctx context.Context, ownerID int) ([]domain.Position, error)
	ApplyAccrual(ctx context.Context, positionID int, observedAccrualTime time.Time, accrued decimal.Decimal, accruedAt time.Time) (bool, error)
	Transition(ctx context.Context, positionID int, status string, accrued decimal.Decimal, at time.Time) (bool, error)
	FindOwnersWithActive(ctx context.Context, limit uint32) ([]int, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByOwnerID(ctx context.Context, ownerID int) ([]domain.Withdrawal, error)
}

type PlanCatalog interface {
	Get(name string) (*domain.Plan, error)
	List() []domain.Plan
}

// PositionDelta describes what a single accrue pass did to one position.
type PositionDelta struct {
	PositionID    int
	OrderID       string
	ProfitAdded   decimal.Decimal
	DaysProcessed int
	Status        string
}

// AccrualReport is the result of one Accrue call for one owner. An empty
// Deltas slice means the call was a no-op (nothing had crossed a day
// boundary), which is the expected outcome of repeated same-day calls.
type AccrualReport struct {
	OwnerID int
	Deltas  []PositionDelta
}

type Service struct {
	ledgerRepo     LedgerRepo
	positionRepo   PositionRepo
	withdrawalRepo WithdrawalRepo
	plans          PlanCatalog
	txManager      pg.TXManager
	now            func() time.Time
}

func New(ledgerRepo LedgerRepo, positionRepo PositionRepo, withdrawalRepo WithdrawalRepo, plans PlanCatalog, txManager pg.TXManager) *Service {
	return &Service{
		ledgerRepo:     ledgerRepo,
		positionRepo:   positionRepo,
		withdrawalRepo: withdrawalRepo,
		plans:          plans,
		txManager:      txManager,
		now:            time.Now,
	}
}

// withRetry runs op as a single transaction, retrying transient failures.
// Validation errors pass through untouched: retrying them cannot help.
func (s *Service) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.txManager.Begin(ctx, op)
		if err == nil || !errs.IsTransient(err) {
			return err
		}
		zap.L().Warn("ledger operation conflicted, retrying",
			zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

// CreateLedger creates the zero-valued ledger for a freshly registered user.
func (s *Service) CreateLedger(ctx context.Context, ownerID int) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.CreateLedger(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to create ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// GetLedger returns the ledger and all positions of an owner, newest first.
func (s *Service) GetLedger(ctx context.Context, ownerID int) (*domain.Ledger, []domain.Position, error) {
	ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, nil, err
	}
	if ledger == nil {
		return nil, nil, errs.ErrLedgerNotFound
	}
	positions, err := s.positionRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get positions", zap.Error(err))
		return nil, nil, err
	}
	return ledger, positions, nil
}

// Plans exposes the catalog for display.
func (s *Service) Plans() []domain.Plan {
	return s.plans.List()
}

// OpenInvestment commits amount from the owner's balance into a new active
// position on the named plan.
func (s *Service) OpenInvestment(ctx context.Context, ownerID int, planName string, amount decimal.Decimal) (*domain.Position, error) {
	plan, err := s.plans.Get(planName)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(plan.MinDeposit) || amount.GreaterThan(plan.MaxDeposit) {
		return nil, errs.ErrInvalidAmountForPlan
	}

	var position *domain.Position
	err = s.withRetry(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return errs.ErrLedgerNotFound
		}
		if ledger.AccountBalance.LessThan(amount) {
			return errs.ErrInsufficientBalance
		}

		now := s.now()
		expectedReturn := amount.Mul(plan.ReturnRate).Round(2)
		p := &domain.Position{
			OwnerID:         ownerID,
			OrderID:         uuid.NewString(),
			PlanName:        plan.Name,
			Principal:       amount,
			StartTime:       now,
			MaturityTime:    now.AddDate(0, 0, plan.DurationDays),
			ExpectedReturn:  expectedReturn,
			DailyReturn:     expectedReturn.Div(decimal.NewFromInt(int64(plan.DurationDays))).Round(2),
			AccruedReturn:   decimal.Zero,
			LastAccrualTime: now,
			Status:          domain.PositionActive,
		}
		if _, err := s.positionRepo.CreatePosition(ctx, p); err != nil {
			return err
		}

		ledger.AccountBalance = ledger.AccountBalance.Sub(amount)
		ledger.TotalInvestedAmount = ledger.TotalInvestedAmount.Add(amount)
		ledger.LastUpdated = now
		if _, err := s.ledgerRepo.UpdateLedger(ctx, ledger); err != nil {
			return err
		}
		position = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("investment opened",
		zap.Int("ownerID", ownerID),
		zap.String("plan", plan.Name),
		zap.String("amount", amount.String()))
	return position, nil
}

// Accrue recomputes every active position of the owner at the current time and
// applies the deltas atomically. Positions that reached maturity complete:
// principal plus the full expected return moves back to the account balance
// and the realized profit is added to the earned total. Repeating the call
// before the next day boundary returns an empty report and changes nothing.
func (s *Service) Accrue(ctx context.Context, ownerID int) (*AccrualReport, error) {
	var report *AccrualReport
	err := s.withRetry(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return errs.ErrLedgerNotFound
		}
		positions, err := s.positionRepo.FindActiveByOwner(ctx, ownerID)
		if err != nil {
			return err
		}

		now := s.now()
		out := &AccrualReport{OwnerID: ownerID}
		ledgerChanged := false
		for i := range positions {
			pos := &positions[i]
			res := domain.ComputeAccrual(pos, now)
			if res.DaysProcessed == 0 && !res.IsComplete {
				continue
			}
			profitAdded := res.NewAccruedReturn.Sub(pos.AccruedReturn)

			if res.IsComplete {
				ok, err := s.positionRepo.Transition(ctx, pos.ID, domain.PositionCompleted, res.NewAccruedReturn, now)
				if err != nil {
					return err
				}
				if !ok {
					return errs.ErrConcurrentModification
				}
				ledger.AccountBalance = ledger.AccountBalance.Add(pos.Principal).Add(res.NewAccruedReturn)
				ledger.TotalInvestedAmount = ledger.TotalInvestedAmount.Sub(pos.Principal)
				ledger.TotalEarnedProfit = ledger.TotalEarnedProfit.Add(res.NewAccruedReturn)
				ledgerChanged = true
				out.Deltas = append(out.Deltas, PositionDelta{
					PositionID:    pos.ID,
					OrderID:       pos.OrderID,
					ProfitAdded:   profitAdded,
					DaysProcessed: res.DaysProcessed,
					Status:        domain.PositionCompleted,
				})
				continue
			}

			ok, err := s.positionRepo.ApplyAccrual(ctx, pos.ID, pos.LastAccrualTime, res.NewAccruedReturn, now)
			if err != nil {
				return err
			}
			if !ok {
				return errs.ErrConcurrentModification
			}
			out.Deltas = append(out.Deltas, PositionDelta{
				PositionID:    pos.ID,
				OrderID:       pos.OrderID,
				ProfitAdded:   profitAdded,
				DaysProcessed: res.DaysProcessed,
				Status:        domain.PositionActive,
			})
		}

		if ledgerChanged {
			ledger.LastUpdated = now
			if _, err := s.ledgerRepo.UpdateLedger(ctx, ledger); err != nil {
				return err
			}
		}
		report = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// CancelInvestment cancels an active position. Refund policy: the principal
// returns to the account balance in full, accrued but unrealized return is
// forfeited. The accrued value stays frozen on the record for history.
func (s *Service) CancelInvestment(ctx context.Context, ownerID, positionID int) (*domain.Position, error) {
	var cancelled *domain.Position
	err := s.withRetry(ctx, func(ctx context.Context) error {
		position, err := s.positionRepo.FindByID(ctx, ownerID, positionID)
		if err != nil {
			return err
		}
		if position == nil {
			return errs.ErrPositionNotFound
		}
		if position.Status != domain.PositionActive {
			return errs.ErrInvalidStateTransition
		}
		ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return errs.ErrLedgerNotFound
		}

		now := s.now()
		ok, err := s.positionRepo.Transition(ctx, position.ID, domain.PositionCancelled, position.AccruedReturn, now)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrConcurrentModification
		}

		ledger.AccountBalance = ledger.AccountBalance.Add(position.Principal)
		ledger.TotalInvestedAmount = ledger.TotalInvestedAmount.Sub(position.Principal)
		ledger.LastUpdated = now
		if _, err := s.ledgerRepo.UpdateLedger(ctx, ledger); err != nil {
			return err
		}
		position.Status = domain.PositionCancelled
		position.LastAccrualTime = now
		cancelled = position
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("investment cancelled", zap.Int("ownerID", ownerID), zap.Int("positionID", positionID))
	return cancelled, nil
}

// CreditDeposit credits an externally approved deposit to the account balance.
// The deposit-proof approval workflow is the only legitimate caller.
func (s *Service) CreditDeposit(ctx context.Context, ownerID int, amount decimal.Decimal) (*domain.Ledger, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}
	var updated *domain.Ledger
	err := s.withRetry(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return errs.ErrLedgerNotFound
		}
		ledger.AccountBalance = ledger.AccountBalance.Add(amount)
		ledger.LastUpdated = s.now()
		updated, err = s.ledgerRepo.UpdateLedger(ctx, ledger)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("deposit credited", zap.Int("ownerID", ownerID), zap.String("amount", amount.String()))
	return updated, nil
}

// DebitWithdrawal debits the account balance and records the withdrawal.
// Precondition: the caller has confirmed a validated KYC record exists for
// the owner. The ledger itself does not check KYC.
func (s *Service) DebitWithdrawal(ctx context.Context, ownerID int, amount decimal.Decimal, paymentMethod, walletAddress string) (*domain.Ledger, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}
	var updated *domain.Ledger
	err := s.withRetry(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.GetLedger(ctx, ownerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return errs.ErrLedgerNotFound
		}
		if ledger.AccountBalance.LessThan(amount) {
			return errs.ErrInsufficientBalance
		}

		withdrawal := &domain.Withdrawal{
			OwnerID:       ownerID,
			Amount:        amount,
			PaymentMethod: paymentMethod,
			WalletAddress: walletAddress,
			ProcessedAt:   s.now(),
		}
		if _, err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal); err != nil {
			return err
		}

		ledger.AccountBalance = ledger.AccountBalance.Sub(amount)
		ledger.LastUpdated = s.now()
		updated, err = s.ledgerRepo.UpdateLedger(ctx, ledger)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal debited", zap.Int("ownerID", ownerID), zap.String("amount", amount.String()))
	return updated, nil
}

// GetWithdrawals returns the owner's withdrawal history, newest first.
func (s *Service) GetWithdrawals(ctx context.Context, ownerID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// ListActiveOwners lists owners holding active positions for the batch trigger.
func (s *Service) ListActiveOwners(ctx context.Context, limit uint32) ([]int, error) {
	return s.positionRepo.FindOwnersWithActive(ctx, limit)
}

// WithClock replaces the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
