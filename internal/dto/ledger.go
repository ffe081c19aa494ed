package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanDTO struct {
	Name         string          `json:"name" example:"Basic"`
	MinDeposit   decimal.Decimal `json:"min_deposit" example:"1000"`
	MaxDeposit   decimal.Decimal `json:"max_deposit" example:"1999"`
	ReturnRate   decimal.Decimal `json:"return_rate" example:"0.149"`
	DurationDays int             `json:"duration_days" example:"7"`
}

type PositionDTO struct {
	ID               int             `json:"id" example:"1"`
	OrderID          string          `json:"order_id" example:"6f1c2b34-9a7e-4f3d-8c21-d5b0a9e817f2"`
	Plan             string          `json:"plan" example:"Basic"`
	Principal        decimal.Decimal `json:"principal" example:"1000"`
	StartTime        time.Time       `json:"start_time"`
	MaturityTime     time.Time       `json:"maturity_time"`
	ExpectedReturn   decimal.Decimal `json:"expected_return" example:"149"`
	DailyReturn      decimal.Decimal `json:"daily_return" example:"21.29"`
	AccruedReturn    decimal.Decimal `json:"accrued_return" example:"42.58"`
	PercentageReturn string          `json:"percentage_return" example:"4.26"`
	Status           string          `json:"status" example:"active"`
}

type LedgerResponseDTO struct {
	AccountBalance      decimal.Decimal `json:"account_balance" example:"2000"`
	TotalInvestedAmount decimal.Decimal `json:"total_invested_amount" example:"1000"`
	TotalEarnedProfit   decimal.Decimal `json:"total_earned_profit" example:"149"`
	LastUpdated         time.Time       `json:"last_updated"`
	Positions           []PositionDTO   `json:"positions"`
}

type OpenInvestmentRequestDTO struct {
	Plan   string          `json:"plan" example:"Basic"`
	Amount decimal.Decimal `json:"amount" example:"1000"`
}

type WithdrawRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" example:"500"`
	PaymentMethod string          `json:"payment_method" example:"BTC"`
	WalletAddress string          `json:"wallet_address" example:"bc1q..."`
}

type GetWithdrawalsResponseDTO struct {
	Amount        decimal.Decimal `json:"amount" example:"500"`
	PaymentMethod string          `json:"payment_method" example:"BTC"`
	WalletAddress string          `json:"wallet_address" example:"bc1q..."`
	ProcessedAt   time.Time       `json:"processed_at"`
}

type CreditDepositRequestDTO struct {
	OwnerID int             `json:"owner_id" example:"1"`
	Amount  decimal.Decimal `json:"amount" example:"2000"`
}
