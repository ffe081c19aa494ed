package positionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/primevest/investledger/internal/domain"
)

func positionRowColumns() []string {
	return []string{"id", "owner_id", "order_id", "plan_name", "principal", "start_time", "maturity_time",
		"expected_return", "daily_return", "accrued_return", "last_accrual_time", "status", "created_at"}
}

func addPositionRow(rows *pgxmock.Rows, p domain.Position) *pgxmock.Rows {
	return rows.AddRow(p.ID, p.OwnerID, p.OrderID, p.PlanName, p.Principal, p.StartTime, p.MaturityTime,
		p.ExpectedReturn, p.DailyReturn, p.AccruedReturn, p.LastAccrualTime, p.Status, p.CreatedAt)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func samplePosition(now time.Time) domain.Position {
	return domain.Position{
		ID:              7,
		OwnerID:         1,
		OrderID:         "2b1f6d52-5a5e-4a3d-9f5e-3bb5b8a15a11",
		PlanName:        "Basic",
		Principal:       decimal.NewFromInt(1000),
		StartTime:       now.AddDate(0, 0, -2),
		MaturityTime:    now.AddDate(0, 0, 5),
		ExpectedReturn:  decimal.NewFromInt(149),
		DailyReturn:     decimal.RequireFromString("21.29"),
		AccruedReturn:   decimal.RequireFromString("42.58"),
		LastAccrualTime: now.AddDate(0, 0, -1),
		Status:          domain.PositionActive,
		CreatedAt:       now.AddDate(0, 0, -2),
	}
}

func TestRepository_CreatePosition(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	position := samplePosition(now)
	position.ID = 0

	insertQuery := regexp.QuoteMeta(`
		INSERT INTO positions (owner_id, order_id, plan_name, principal, start_time, maturity_time,
			expected_return, daily_return, accrued_return, last_accrual_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`)

	t.Run("Create position successfully", func(t *testing.T) {
		p := position
		mock.ExpectQuery(insertQuery).
			WithArgs(p.OwnerID, p.OrderID, p.PlanName, p.Principal, p.StartTime, p.MaturityTime,
				p.ExpectedReturn, p.DailyReturn, p.AccruedReturn, p.LastAccrualTime, p.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

		created, err := repo.CreatePosition(ctx, &p)
		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		p := position
		mock.ExpectQuery(insertQuery).
			WithArgs(p.OwnerID, p.OrderID, p.PlanName, p.Principal, p.StartTime, p.MaturityTime,
				p.ExpectedReturn, p.DailyReturn, p.AccruedReturn, p.LastAccrualTime, p.Status).
			WillReturnError(errors.New("database error"))

		created, err := repo.CreatePosition(ctx, &p)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	position := samplePosition(now)

	selectQuery := regexp.QuoteMeta(`SELECT id, owner_id, order_id, plan_name, principal, start_time, maturity_time,
		expected_return, daily_return, accrued_return, last_accrual_time, status, created_at
		FROM positions WHERE owner_id = $1 AND id = $2`)

	t.Run("Position found", func(t *testing.T) {
		rows := addPositionRow(pgxmock.NewRows(positionRowColumns()), position)
		mock.ExpectQuery(selectQuery).WithArgs(1, 7).WillReturnRows(rows)

		found, err := repo.FindByID(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, &position, found)
	})

	t.Run("Position not found", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(1, 404).WillReturnError(pgx.ErrNoRows)

		found, err := repo.FindByID(ctx, 1, 404)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(1, 7).WillReturnError(errors.New("database error"))

		found, err := repo.FindByID(ctx, 1, 7)
		assert.Error(t, err)
		assert.Nil(t, found)
	})
}

func TestRepository_FindActiveByOwner(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	position := samplePosition(now)

	selectQuery := regexp.QuoteMeta(`SELECT id, owner_id, order_id, plan_name, principal, start_time, maturity_time,
		expected_return, daily_return, accrued_return, last_accrual_time, status, created_at
		FROM positions WHERE owner_id = $1 AND status = 'active' ORDER BY created_at ASC`)

	t.Run("Active positions found", func(t *testing.T) {
		second := position
		second.ID = 8
		rows := pgxmock.NewRows(positionRowColumns())
		rows = addPositionRow(rows, position)
		rows = addPositionRow(rows, second)
		mock.ExpectQuery(selectQuery).WithArgs(1).WillReturnRows(rows)

		positions, err := repo.FindActiveByOwner(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, positions, 2)
		assert.Equal(t, 7, positions[0].ID)
		assert.Equal(t, 8, positions[1].ID)
	})

	t.Run("No active positions", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(1).WillReturnRows(pgxmock.NewRows(positionRowColumns()))

		positions, err := repo.FindActiveByOwner(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, positions)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(1).WillReturnError(errors.New("database error"))

		positions, err := repo.FindActiveByOwner(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, positions)
	})
}

func TestRepository_ApplyAccrual(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	observed := now.AddDate(0, 0, -1)
	accrued := decimal.RequireFromString("63.87")

	updateQuery := regexp.QuoteMeta(`
		UPDATE positions
		SET accrued_return = $1, last_accrual_time = $2
		WHERE id = $3 AND status = 'active' AND last_accrual_time = $4`)

	t.Run("Accrual applied", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(accrued, now, 7, observed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.ApplyAccrual(ctx, 7, observed, accrued, now)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Lost the race on last_accrual_time", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(accrued, now, 7, observed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.ApplyAccrual(ctx, 7, observed, accrued, now)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(accrued, now, 7, observed).
			WillReturnError(errors.New("database error"))

		ok, err := repo.ApplyAccrual(ctx, 7, observed, accrued, now)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Transition(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	accrued := decimal.NewFromInt(149)

	updateQuery := regexp.QuoteMeta(`
		UPDATE positions
		SET status = $1, accrued_return = $2, last_accrual_time = $3
		WHERE id = $4 AND status = 'active'`)

	t.Run("Active position completed", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(domain.PositionCompleted, accrued, now, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Transition(ctx, 7, domain.PositionCompleted, accrued, now)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Position already terminal", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(domain.PositionCancelled, accrued, now, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Transition(ctx, 7, domain.PositionCancelled, accrued, now)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindOwnersWithActive(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	selectQuery := regexp.QuoteMeta(`
		SELECT owner_id
		FROM positions
		WHERE status = 'active'
		GROUP BY owner_id
		ORDER BY MIN(last_accrual_time) ASC
		LIMIT $1`)

	t.Run("Owners found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"owner_id"}).AddRow(3).AddRow(1).AddRow(2)
		mock.ExpectQuery(selectQuery).WithArgs(100).WillReturnRows(rows)

		owners, err := repo.FindOwnersWithActive(ctx, 100)
		assert.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, owners)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(100).WillReturnError(errors.New("database error"))

		owners, err := repo.FindOwnersWithActive(ctx, 100)
		assert.Error(t, err)
		assert.Nil(t, owners)
	})
}
