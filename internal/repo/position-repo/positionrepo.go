package positionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/pg"
)

const positionColumns = `id, owner_id, order_id, plan_name, principal, start_time, maturity_time,
		expected_return, daily_return, accrued_return, last_accrual_time, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPosition(row pgx.Row, p *domain.Position) error {
	return row.Scan(&p.ID, &p.OwnerID, &p.OrderID, &p.PlanName, &p.Principal, &p.StartTime, &p.MaturityTime,
		&p.ExpectedReturn, &p.DailyReturn, &p.AccruedReturn, &p.LastAccrualTime, &p.Status, &p.CreatedAt)
}

func (r *Repository) CreatePosition(ctx context.Context, position *domain.Position) (*domain.Position, error) {
	query := `
        INSERT INTO positions (owner_id, order_id, plan_name, principal, start_time, maturity_time,
			expected_return, daily_return, accrued_return, last_accrual_time, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		position.OwnerID, position.OrderID, position.PlanName, position.Principal,
		position.StartTime, position.MaturityTime, position.ExpectedReturn, position.DailyReturn,
		position.AccruedReturn, position.LastAccrualTime, position.Status,
	).Scan(&position.ID, &position.CreatedAt)
	if err != nil {
		zap.L().Error("can't save position", zap.Error(err))
		return nil, err
	}
	return position, nil
}

func (r *Repository) FindByID(ctx context.Context, ownerID, positionID int) (*domain.Position, error) {
	query := `
        SELECT ` + positionColumns + `
        FROM positions
        WHERE owner_id = $1 AND id = $2
    `
	row := r.db.QueryRow(ctx, query, ownerID, positionID)

	var position domain.Position
	err := scanPosition(row, &position)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find position", zap.Error(err))
		return nil, err
	}
	return &position, nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]domain.Position, error) {
	query := `
        SELECT ` + positionColumns + `
        FROM positions
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `
	return r.queryPositions(ctx, query, ownerID)
}

func (r *Repository) FindActiveByOwner(ctx context.Context, ownerID int) ([]domain.Position, error) {
	query := `
        SELECT ` + positionColumns + `
        FROM positions
        WHERE owner_id = $1 AND status = 'active'
        ORDER BY created_at ASC
    `
	return r.queryPositions(ctx, query, ownerID)
}

func (r *Repository) queryPositions(ctx context.Context, query string, args ...any) ([]domain.Position, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get positions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		var position domain.Position
		if err := scanPosition(rows, &position); err != nil {
			zap.L().Error("can't scan position row", zap.Error(err))
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, nil
}

// ApplyAccrual persists a day-boundary accrual. The update is conditional on
// the last accrual time the caller observed, so two overlapping accruals can
// never both credit the same day: the loser matches zero rows.
func (r *Repository) ApplyAccrual(ctx context.Context, positionID int, observedAccrualTime time.Time, accrued decimal.Decimal, accruedAt time.Time) (bool, error) {
	query := `
        UPDATE positions
        SET accrued_return = $1, last_accrual_time = $2
        WHERE id = $3 AND status = 'active' AND last_accrual_time = $4
    `
	tag, err := r.db.Exec(ctx, query, accrued, accruedAt, positionID, observedAccrualTime)
	if err != nil {
		zap.L().Error("failed to apply accrual", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Transition moves an active position into a terminal status, freezing its
// accrued return. Returns false when the position was not active anymore.
func (r *Repository) Transition(ctx context.Context, positionID int, status string, accrued decimal.Decimal, at time.Time) (bool, error) {
	query := `
        UPDATE positions
        SET status = $1, accrued_return = $2, last_accrual_time = $3
        WHERE id = $4 AND status = 'active'
    `
	tag, err := r.db.Exec(ctx, query, status, accrued, at, positionID)
	if err != nil {
		zap.L().Error("failed to transition position", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindOwnersWithActive lists owners that hold at least one active position,
// oldest accrual first, for the batch trigger.
func (r *Repository) FindOwnersWithActive(ctx context.Context, limit uint32) ([]int, error) {
	query := `
        SELECT owner_id
        FROM positions
        WHERE status = 'active'
        GROUP BY owner_id
        ORDER BY MIN(last_accrual_time) ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get owners for batch accrual", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var owners []int
	for rows.Next() {
		var ownerID int
		if err := rows.Scan(&ownerID); err != nil {
			zap.L().Error("can't scan owner row", zap.Error(err))
			return nil, err
		}
		owners = append(owners, ownerID)
	}
	return owners, nil
}
