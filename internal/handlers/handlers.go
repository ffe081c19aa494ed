package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/primevest/investledger/docs"
	"github.com/primevest/investledger/internal/accrual"
	authhandlers "github.com/primevest/investledger/internal/handlers/auth"
	batchhandlers "github.com/primevest/investledger/internal/handlers/batch"
	ledgerhandlers "github.com/primevest/investledger/internal/handlers/ledger"
	"github.com/primevest/investledger/internal/service"
	"github.com/primevest/investledger/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	GetPlans(w http.ResponseWriter, r *http.Request)
	OpenInvestment(w http.ResponseWriter, r *http.Request)
	GetInvestments(w http.ResponseWriter, r *http.Request)
	CancelInvestment(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type BatchHandler interface {
	SecretMiddleware(next http.Handler) http.Handler
	RunAccruals(w http.ResponseWriter, r *http.Request)
	CreditDeposit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	LedgerHandler LedgerHandler
	BatchHandler  BatchHandler
}

func New(s *service.Services, batchService *accrual.Service, cronSecret string) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		BatchHandler:  batchhandlers.New(batchService, s.LedgerService, cronSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/plans", h.LedgerHandler.GetPlans)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/ledger", h.LedgerHandler.GetLedger)
			r.Route("/investments", func(r chi.Router) {
				r.Post("/", h.LedgerHandler.OpenInvestment)
				r.Get("/", h.LedgerHandler.GetInvestments)
				r.Post("/{id}/cancel", h.LedgerHandler.CancelInvestment)
			})
			r.Post("/balance/withdraw", h.LedgerHandler.Withdraw)
			r.Get("/withdrawals", h.LedgerHandler.GetWithdrawals)
		})
	})
	r.Route("/api/internal", func(r chi.Router) {
		r.Use(h.BatchHandler.SecretMiddleware)
		r.Post("/accruals/run", h.BatchHandler.RunAccruals)
		r.Post("/deposits", h.BatchHandler.CreditDeposit)
	})

	return r
}
