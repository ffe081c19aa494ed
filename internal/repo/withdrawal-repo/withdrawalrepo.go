package withdrawalrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (owner_id, amount, payment_method, wallet_address, processed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, withdrawal.OwnerID, withdrawal.Amount, withdrawal.PaymentMethod, withdrawal.WalletAddress, withdrawal.ProcessedAt).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByOwnerID(ctx context.Context, ownerID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, owner_id, amount, payment_method, wallet_address, processed_at
        FROM withdrawals
        WHERE owner_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.OwnerID, &wd.Amount, &wd.PaymentMethod, &wd.WalletAddress, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
