package repo

import (
	"github.com/primevest/investledger/internal/pg"
	ledgerrepo "github.com/primevest/investledger/internal/repo/ledger-repo"
	positionrepo "github.com/primevest/investledger/internal/repo/position-repo"
	userrepo "github.com/primevest/investledger/internal/repo/user-repo"
	withdrawalrepo "github.com/primevest/investledger/internal/repo/withdrawal-repo"
	"github.com/primevest/investledger/internal/service/authservice"
	"github.com/primevest/investledger/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	LedgerRepo   ledgerservice.LedgerRepo
	PositionRepo ledgerservice.PositionRepo
	Withdrawal   ledgerservice.WithdrawalRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	positionRepo := positionrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		LedgerRepo:   ledgerRepo,
		PositionRepo: positionRepo,
		Withdrawal:   withdrawalRepo,
	}
}
