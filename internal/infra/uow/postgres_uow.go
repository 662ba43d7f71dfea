package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"
	"campus-reserve/internal/infra/repository"
	"campus-reserve/internal/infra/retry"
	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.StoreConfig) shared.UnitOfWork {
	base := cfg.TxRetryBase
	if base <= 0 {
		base = 20 * time.Millisecond
	}
	return &PostgresUoW{
		pool:       pool,
		maxRetries: cfg.MaxTxRetries,
		base:       base,
	}
}

// Serializable so that a read of a counter followed by its update can never
// interleave with another claimant; the loser gets 40001 and is re-run.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Repositories) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) Repositories() shared.Repositories {
	return &pgTx{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Repositories) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := retry.Backoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		if err := retry.Sleep(ctx, waitTime); err != nil {
			return err
		}
	}

	return errMaxRetriesExceeded
}

func isRetryableError(err error) bool {
	if infra.IsKind(err, infra.KindConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	eventRepo        shared.EventRepository
	festRepo         shared.FestRepository
	registrationRepo shared.RegistrationRepository
	merchRepo        shared.MerchRepository
	orderRepo        shared.OrderRepository
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Fests() shared.FestRepository {
	if t.festRepo == nil {
		t.festRepo = repository.NewFestRepository(t.dbtx)
	}
	return t.festRepo
}

func (t *pgTx) Registrations() shared.RegistrationRepository {
	if t.registrationRepo == nil {
		t.registrationRepo = repository.NewRegistrationRepository(t.dbtx)
	}
	return t.registrationRepo
}

func (t *pgTx) Merch() shared.MerchRepository {
	if t.merchRepo == nil {
		t.merchRepo = repository.NewMerchRepository(t.dbtx)
	}
	return t.merchRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.dbtx)
	}
	return t.orderRepo
}
