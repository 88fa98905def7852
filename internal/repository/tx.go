package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// runInTx runs fn on a single transaction. The transaction is committed when
// fn succeeds and rolled back otherwise. A failed rollback is logged and the
// error from fn is returned unchanged.
func runInTx(
	ctx context.Context,
	db txBeginner,
	logger *slog.Logger,
	lockTimeout time.Duration,
	fn func(tx pgx.Tx) error) error {

	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = setLockTimeout(ctx, tx, lockTimeout)
	if err == nil {
		err = fn(tx)
	}

	if err == nil {
		err = tx.Commit(ctx)
		if err == nil {
			return nil
		}

		return classifyTxError(err)
	}

	rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
	if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		logger.Error("failed to roll back transaction", "error", rollbackErr, "cause", err)
	}

	return classifyTxError(err)
}

// setLockTimeout bounds row lock waits for the rest of the transaction.
func setLockTimeout(ctx context.Context, tx pgx.Tx, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}

	value := strconv.FormatInt(timeout.Milliseconds(), 10) + "ms"

	_, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, value)
	return err
}

func classifyTxError(err error) error {
	if pgErrorCode(err) == pgerrcode.LockNotAvailable {
		return fmt.Errorf("%w: %w", domain.ErrLockTimeout, err)
	}

	return err
}
