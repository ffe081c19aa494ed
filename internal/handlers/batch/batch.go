// Package batch holds the internal endpoints called by machine collaborators:
// the cron scheduler triggering a batch accrual run and the deposit approval
// workflow crediting validated deposits. Both are guarded by a shared secret.
package batch

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/primevest/investledger/internal/accrual"
	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/internal/dto"
	"github.com/primevest/investledger/pkg/errs"
	"github.com/primevest/investledger/pkg/utils"
)

type BatchRunner interface {
	RunBatch(ctx context.Context) (*accrual.BatchReport, error)
}

type DepositService interface {
	CreditDeposit(ctx context.Context, ownerID int, amount decimal.Decimal) (*domain.Ledger, error)
}

type BatchHandler struct {
	runner   BatchRunner
	deposits DepositService
	secret   string
}

func New(runner BatchRunner, deposits DepositService, secret string) *BatchHandler {
	return &BatchHandler{
		runner:   runner,
		deposits: deposits,
		secret:   secret,
	}
}

// SecretMiddleware rejects requests lacking the shared Bearer secret. With no
// secret configured the internal endpoints are disabled entirely.
func (h *BatchHandler) SecretMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.secret == "" {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "internal endpoints disabled")
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunAccruals godoc
//
//	@Summary		Run batch accrual
//	@Description	Accrue every owner with active positions once and return the per-position report.
//	@Tags			Internal
//	@Produce		json
//	@Success		200	{object}	accrual.BatchReport	"Batch report"
//	@Failure		401	{object}	utils.Response		"Missing or wrong secret"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/internal/accruals/run [post]
func (h *BatchHandler) RunAccruals(w http.ResponseWriter, r *http.Request) {
	report, err := h.runner.RunBatch(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to run batch accrual")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// CreditDeposit godoc
//
//	@Summary		Credit an approved deposit
//	@Description	Credit a validated deposit to the owner's account balance. Called by the deposit approval workflow only.
//	@Tags			Internal
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditDepositRequestDTO	true	"Deposit payload"
//	@Success		200		{string}	string						"Deposit credited"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Missing or wrong secret"
//	@Failure		404		{object}	utils.Response				"Ledger not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/deposits [post]
func (h *BatchHandler) CreditDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.deposits.CreditDeposit(r.Context(), req.OwnerID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrLedgerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "deposit credited")
}
