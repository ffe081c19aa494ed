package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	PositionActive    = "active"
	PositionCompleted = "completed"
	PositionCancelled = "cancelled"
)

type Plan struct {
	Name         string
	MinDeposit   decimal.Decimal
	MaxDeposit   decimal.Decimal
	ReturnRate   decimal.Decimal
	DurationDays int
}

type Position struct {
	ID              int             `db:"id"`
	OwnerID         int             `db:"owner_id"`
	OrderID         string          `db:"order_id"`
	PlanName        string          `db:"plan_name"`
	Principal       decimal.Decimal `db:"principal"`
	StartTime       time.Time       `db:"start_time"`
	MaturityTime    time.Time       `db:"maturity_time"`
	ExpectedReturn  decimal.Decimal `db:"expected_return"`
	DailyReturn     decimal.Decimal `db:"daily_return"`
	AccruedReturn   decimal.Decimal `db:"accrued_return"`
	LastAccrualTime time.Time       `db:"last_accrual_time"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Ledger struct {
	ID                  int             `db:"id"`
	OwnerID             int             `db:"owner_id"`
	AccountBalance      decimal.Decimal `db:"account_balance"`
	TotalInvestedAmount decimal.Decimal `db:"total_invested_amount"`
	TotalEarnedProfit   decimal.Decimal `db:"total_earned_profit"`
	Version             int64           `db:"version"`
	LastUpdated         time.Time       `db:"last_updated"`
}

type Withdrawal struct {
	ID            int             `db:"id"`
	OwnerID       int             `db:"owner_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	WalletAddress string          `db:"wallet_address"`
	ProcessedAt   time.Time       `db:"processed_at"`
}
