package service

import (
	"github.com/primevest/investledger/internal/handlers/auth"
	"github.com/primevest/investledger/internal/pg"
	"github.com/primevest/investledger/internal/plans"
	"github.com/primevest/investledger/internal/repo"
	"github.com/primevest/investledger/internal/service/authservice"
	"github.com/primevest/investledger/internal/service/ledgerservice"
	pkgauth "github.com/primevest/investledger/pkg/auth"
)

type Services struct {
	AuthService   auth.Service
	LedgerService *ledgerservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.PositionRepo, repo.Withdrawal, plans.New(), txManager)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		LedgerService: ledgerService,
	}
}
