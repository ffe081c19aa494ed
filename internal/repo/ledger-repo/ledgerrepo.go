package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/pg"
	"github.com/primevest/investledger/pkg/errs"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetLedger(ctx context.Context, ownerID int) (*domain.Ledger, error) {
	query := `
        SELECT id, owner_id, account_balance, total_invested_amount, total_earned_profit, version, last_updated
        FROM ledgers
        WHERE owner_id = $1
    `
	row := r.db.QueryRow(ctx, query, ownerID)
	var ledger domain.Ledger
	err := row.Scan(&ledger.ID, &ledger.OwnerID, &ledger.AccountBalance, &ledger.TotalInvestedAmount, &ledger.TotalEarnedProfit, &ledger.Version, &ledger.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, err
	}
	return &ledger, nil
}

func (r *Repository) CreateLedger(ctx context.Context, ownerID int) (*domain.Ledger, error) {
	query := `
        INSERT INTO ledgers (owner_id, account_balance, total_invested_amount, total_earned_profit, version)
        VALUES ($1, 0, 0, 0, 1)
        RETURNING id, owner_id, account_balance, total_invested_amount, total_earned_profit, version, last_updated
    `
	row := r.db.QueryRow(ctx, query, ownerID)
	var ledger domain.Ledger
	err := row.Scan(&ledger.ID, &ledger.OwnerID, &ledger.AccountBalance, &ledger.TotalInvestedAmount, &ledger.TotalEarnedProfit, &ledger.Version, &ledger.LastUpdated)
	if err != nil {
		zap.L().Error("failed to create ledger", zap.Error(err))
		return nil, err
	}
	return &ledger, nil
}

// UpdateLedger writes the ledger aggregates conditionally on the version the
// caller read. A concurrent writer bumps the version first, the conditional
// update then matches zero rows and the caller gets
// errs.ErrConcurrentModification to re-read and retry on. LastUpdated is
// written as given; the service stamps it from its clock.
func (r *Repository) UpdateLedger(ctx context.Context, ledger *domain.Ledger) (*domain.Ledger, error) {
	query := `
		UPDATE ledgers
		SET account_balance = $1, total_invested_amount = $2, total_earned_profit = $3, version = version + 1, last_updated = $4
		WHERE owner_id = $5 AND version = $6
		RETURNING id, owner_id, account_balance, total_invested_amount, total_earned_profit, version, last_updated
	`
	row := r.db.QueryRow(ctx, query,
		ledger.AccountBalance, ledger.TotalInvestedAmount, ledger.TotalEarnedProfit,
		ledger.LastUpdated, ledger.OwnerID, ledger.Version,
	)
	var updated domain.Ledger
	err := row.Scan(&updated.ID, &updated.OwnerID, &updated.AccountBalance, &updated.TotalInvestedAmount, &updated.TotalEarnedProfit, &updated.Version, &updated.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrConcurrentModification
		}
		zap.L().Error("failed to update ledger", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
