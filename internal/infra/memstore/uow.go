package memstore

import (
	"context"
	"log/slog"
	"time"

	"campus-reserve/internal/infra/retry"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"
)

var errTransactionAborted = errs.New("transaction aborted")

type MemoryUoW struct {
	store *Store
	base  time.Duration
}

// NewMemoryUoW retries conflicting transactions until they commit or ctx ends;
// base is the first backoff step.
func NewMemoryUoW(store *Store, base time.Duration) shared.UnitOfWork {
	if base <= 0 {
		base = time.Millisecond
	}
	return &MemoryUoW{store: store, base: base}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Repositories) error) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return errs.Mark(err, errTransactionAborted)
		}

		tx := newTxn(u.store)
		err := fn(ctx, repositories{s: tx})
		if err == nil {
			if tx.commit() {
				return nil
			}
		} else if !tx.stale() {
			// The failure was decided on a snapshot that is still current.
			return err
		}

		waitTime := retry.Backoff(min(attempt, 4), u.base)
		slog.Debug("retrying memory transaction after conflict",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())

		if err := retry.Sleep(ctx, waitTime); err != nil {
			return errs.Mark(err, errTransactionAborted)
		}
	}
}

func (u *MemoryUoW) Repositories() shared.Repositories {
	return repositories{s: direct{store: u.store}}
}
