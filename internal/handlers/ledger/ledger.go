package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/dto"
	"github.com/primevest/investledger/internal/service/ledgerservice"
	"github.com/primevest/investledger/pkg/auth"
	"github.com/primevest/investledger/pkg/errs"
	"github.com/primevest/investledger/pkg/utils"
)

type Service interface {
	GetLedger(ctx context.Context, ownerID int) (*domain.Ledger, []domain.Position, error)
	Accrue(ctx context.Context, ownerID int) (*ledgerservice.AccrualReport, error)
	OpenInvestment(ctx context.Context, ownerID int, planName string, amount decimal.Decimal) (*domain.Position, error)
	CancelInvestment(ctx context.Context, ownerID, positionID int) (*domain.Position, error)
	DebitWithdrawal(ctx context.Context, ownerID int, amount decimal.Decimal, paymentMethod, walletAddress string) (*domain.Ledger, error)
	GetWithdrawals(ctx context.Context, ownerID int) ([]domain.Withdrawal, error)
	Plans() []domain.Plan
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetLedger godoc
//
//	@Summary		Get the user ledger
//	@Description	Accrue any pending daily returns, then return the ledger aggregates and all positions.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LedgerResponseDTO	"Ledger with positions"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/ledger [get]
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	// Accrual is best effort on the read path: a transient failure must not
	// block showing last known state.
	if _, err := h.ledgerService.Accrue(r.Context(), ownerID); err != nil {
		zap.L().Warn("on-demand accrual failed, serving last known state",
			zap.Int("ownerID", ownerID), zap.Error(err))
	}

	ledger, positions, err := h.ledgerService.GetLedger(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.LedgerResponseDTO{
		AccountBalance:      ledger.AccountBalance,
		TotalInvestedAmount: ledger.TotalInvestedAmount,
		TotalEarnedProfit:   ledger.TotalEarnedProfit,
		LastUpdated:         ledger.LastUpdated,
		Positions:           make([]dto.PositionDTO, 0, len(positions)),
	}
	for _, p := range positions {
		response.Positions = append(response.Positions, toPositionDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPlans godoc
//
//	@Summary		List investment plans
//	@Description	Return the static plan catalog.
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{array}	dto.PlanDTO	"Plan catalog"
//	@Router			/api/plans [get]
func (h *LedgerHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans := h.ledgerService.Plans()
	response := make([]dto.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		response = append(response, dto.PlanDTO{
			Name:         plan.Name,
			MinDeposit:   plan.MinDeposit,
			MaxDeposit:   plan.MaxDeposit,
			ReturnRate:   plan.ReturnRate,
			DurationDays: plan.DurationDays,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// OpenInvestment godoc
//
//	@Summary		Open an investment
//	@Description	Commit an amount from the account balance into a new position on the named plan.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenInvestmentRequestDTO	true	"Investment request payload"
//	@Success		201		{object}	dto.PositionDTO					"Created position"
//	@Failure		400		{object}	utils.Response					"Invalid plan or amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/investments [post]
func (h *LedgerHandler) OpenInvestment(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OpenInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	position, err := h.ledgerService.OpenInvestment(r.Context(), ownerID, req.Plan, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPlanNotFound), errors.Is(err, errs.ErrInvalidAmountForPlan):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPositionDTO(*position))
}

// GetInvestments godoc
//
//	@Summary		List positions
//	@Description	Return all positions of the user, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PositionDTO	"Positions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/investments [get]
func (h *LedgerHandler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	_, positions, err := h.ledgerService.GetLedger(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PositionDTO, 0, len(positions))
	for _, p := range positions {
		response = append(response, toPositionDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelInvestment godoc
//
//	@Summary		Cancel an active investment
//	@Description	Cancel an active position. The principal is refunded in full, accrued return is forfeited.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Position ID"
//	@Success		200	{object}	dto.PositionDTO	"Cancelled position"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Position not found"
//	@Failure		409	{object}	utils.Response	"Position is not active"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/investments/{id}/cancel [post]
func (h *LedgerHandler) CancelInvestment(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	positionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid position id")
		return
	}

	position, err := h.ledgerService.CancelInvestment(r.Context(), ownerID, positionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPositionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidStateTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPositionDTO(*position))
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Debit the account balance. The withdrawal workflow must have confirmed a validated KYC record before calling this.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{string}	string					"Withdrawal successful"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.ledgerService.DebitWithdrawal(r.Context(), ownerID, req.Amount, req.PaymentMethod, req.WalletAddress)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, errs.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal successful")
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of the authenticated user, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *LedgerHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.ledgerService.GetWithdrawals(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.GetWithdrawalsResponseDTO{
			Amount:        wd.Amount,
			PaymentMethod: wd.PaymentMethod,
			WalletAddress: wd.WalletAddress,
			ProcessedAt:   wd.ProcessedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPositionDTO(p domain.Position) dto.PositionDTO {
	percentage := decimal.Zero
	if p.Principal.IsPositive() {
		percentage = p.AccruedReturn.Div(p.Principal).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return dto.PositionDTO{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Plan:             p.PlanName,
		Principal:        p.Principal,
		StartTime:        p.StartTime,
		MaturityTime:     p.MaturityTime,
		ExpectedReturn:   p.ExpectedReturn,
		DailyReturn:      p.DailyReturn,
		AccruedReturn:    p.AccruedReturn,
		PercentageReturn: percentage.String(),
		Status:           p.Status,
	}
}
