package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/primevest/investledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
		result     *domain.Withdrawal
	}{
		{
			name: "Create withdrawal successfully",
			withdrawal: &domain.Withdrawal{
				OwnerID:       1,
				Amount:        amount,
				PaymentMethod: "usdt",
				WalletAddress: "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3",
				ProcessedAt:   now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO withdrawals (owner_id, amount, payment_method, wallet_address, processed_at)
					VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
					WithArgs(1, amount, "usdt", "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
			result: &domain.Withdrawal{
				ID:            1,
				OwnerID:       1,
				Amount:        amount,
				PaymentMethod: "usdt",
				WalletAddress: "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3",
				ProcessedAt:   now,
			},
		},
		{
			name: "Database error",
			withdrawal: &domain.Withdrawal{
				OwnerID:       1,
				Amount:        amount,
				PaymentMethod: "usdt",
				WalletAddress: "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3",
				ProcessedAt:   now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO withdrawals (owner_id, amount, payment_method, wallet_address, processed_at)
					VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
					WithArgs(1, amount, "usdt", "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3", pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithdrawal(ctx, tt.withdrawal)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetWithdrawalsByOwnerID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	selectQuery := regexp.QuoteMeta(`
		SELECT id, owner_id, amount, payment_method, wallet_address, processed_at
		FROM withdrawals WHERE owner_id = $1 ORDER BY processed_at DESC`)

	tests := []struct {
		name      string
		ownerID   int
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name:    "Withdrawals found",
			ownerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "amount", "payment_method", "wallet_address", "processed_at"}).
					AddRow(1, 1, decimal.NewFromInt(100), "usdt", "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3", now).
					AddRow(2, 1, decimal.NewFromInt(200), "bank_transfer", "", now)
				mock.ExpectQuery(selectQuery).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Withdrawal{
				{ID: 1, OwnerID: 1, Amount: decimal.NewFromInt(100), PaymentMethod: "usdt", WalletAddress: "TVHsb3vyz1QZbvTLMyvUtCjf27nUixEji3", ProcessedAt: now},
				{ID: 2, OwnerID: 1, Amount: decimal.NewFromInt(200), PaymentMethod: "bank_transfer", WalletAddress: "", ProcessedAt: now},
			},
		},
		{
			name:    "No withdrawals found",
			ownerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "amount", "payment_method", "wallet_address", "processed_at"})
				mock.ExpectQuery(selectQuery).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			ownerID: 1,
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:    "Error scanning row",
			ownerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "amount", "payment_method", "wallet_address", "processed_at"}).
					AddRow(1, 1, "invalid_data", "usdt", "", "invalid_data")
				mock.ExpectQuery(selectQuery).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWithdrawalsByOwnerID(ctx, tt.ownerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
