package accrual

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/primevest/investledger/internal/config"
	"github.com/primevest/investledger/internal/service/ledgerservice"
	"github.com/primevest/investledger/pkg/errs"
)

func NewMock(t *testing.T) (*Service, *MockAccruer) {
	ctrl := gomock.NewController(t)
	ledger := NewMockAccruer(ctrl)
	service := New(&config.Config{AccrualInterval: time.Hour}, ledger)
	return service, ledger
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := NewMockAccruer(ctrl)
	service := New(&config.Config{AccrualInterval: 0}, ledger)

	// No ticker, no ListActiveOwners calls.
	service.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
}

func TestService_RunBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Collects deltas across owners", func(t *testing.T) {
		service, ledger := NewMock(t)

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{101, 102}, nil)
		ledger.EXPECT().Accrue(gomock.Any(), 101).Return(&ledgerservice.AccrualReport{
			OwnerID: 101,
			Deltas: []ledgerservice.PositionDelta{
				{PositionID: 1, OrderID: "order-1", ProfitAdded: decimal.RequireFromString("21.29"), DaysProcessed: 1, Status: "active"},
			},
		}, nil)
		ledger.EXPECT().Accrue(gomock.Any(), 102).Return(&ledgerservice.AccrualReport{OwnerID: 102}, nil)

		report, err := service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Len(t, report.Processed, 1)
		assert.Empty(t, report.Errors)
		assert.Equal(t, 101, report.Processed[0].OwnerID)
		assert.Equal(t, "order-1", report.Processed[0].OrderID)
		assert.True(t, report.Processed[0].Delta.Equal(decimal.RequireFromString("21.29")))
	})

	t.Run("Listing owners fails", func(t *testing.T) {
		service, ledger := NewMock(t)

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return(nil, errors.New("database error"))

		report, err := service.RunBatch(ctx)
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Validation failure lands in the error list", func(t *testing.T) {
		service, ledger := NewMock(t)

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{201}, nil)
		ledger.EXPECT().Accrue(gomock.Any(), 201).Return(nil, errs.ErrLedgerNotFound)

		report, err := service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Empty(t, report.Processed)
		assert.Len(t, report.Errors, 1)
		assert.Equal(t, 201, report.Errors[0].OwnerID)
		assert.Equal(t, errs.ErrLedgerNotFound.Error(), report.Errors[0].Reason)
	})

	t.Run("Transient failure retries then succeeds", func(t *testing.T) {
		service, ledger := NewMock(t)

		var calls atomic.Int32
		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{301}, nil)
		ledger.EXPECT().Accrue(gomock.Any(), 301).DoAndReturn(
			func(ctx context.Context, ownerID int) (*ledgerservice.AccrualReport, error) {
				if calls.Add(1) == 1 {
					return nil, errs.ErrConcurrentModification
				}
				return &ledgerservice.AccrualReport{OwnerID: 301}, nil
			}).Times(2)

		report, err := service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Empty(t, report.Errors)
	})

	t.Run("Shutdown during backoff returns without waiting", func(t *testing.T) {
		service, ledger := NewMock(t)
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{601}, nil)
		ledger.EXPECT().Accrue(gomock.Any(), 601).DoAndReturn(
			func(ctx context.Context, ownerID int) (*ledgerservice.AccrualReport, error) {
				cancel()
				return nil, errs.ErrConcurrentModification
			})

		started := time.Now()
		report, err := service.RunBatch(runCtx)
		assert.NoError(t, err)
		assert.Less(t, time.Since(started), retryInterval)
		assert.Len(t, report.Errors, 1)
		assert.Equal(t, context.Canceled.Error(), report.Errors[0].Reason)
	})

	t.Run("Worker pool rejection releases the owner", func(t *testing.T) {
		service, ledger := NewMock(t)
		ctrl := gomock.NewController(t)
		pool := NewMockWorkerPoolI(ctrl)
		service.workerPool = pool

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{401}, nil).Times(2)
		pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))

		report, err := service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Empty(t, report.Processed)

		// The owner is not stuck in the in-flight set: a second run reaches
		// the pool again.
		pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, task Task) error {
				return task()
			})
		ledger.EXPECT().Accrue(gomock.Any(), 401).Return(&ledgerservice.AccrualReport{OwnerID: 401}, nil)

		report, err = service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Empty(t, report.Errors)
	})

	t.Run("In-flight owner is skipped", func(t *testing.T) {
		service, ledger := NewMock(t)

		processingOwners.Store(501, struct{}{})
		defer processingOwners.Delete(501)

		ledger.EXPECT().ListActiveOwners(gomock.Any(), uint32(1000)).Return([]int{501}, nil)

		report, err := service.RunBatch(ctx)
		assert.NoError(t, err)
		assert.Empty(t, report.Processed)
		assert.Empty(t, report.Errors)
	})
}
