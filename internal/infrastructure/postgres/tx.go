package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eventboard/eventboard/internal/application/admission"
	"github.com/eventboard/eventboard/internal/domain"
)

// WithEventLock runs fn in a transaction holding a row lock on the
// event. Every capacity-sensitive path takes this lock first, so
// concurrent admissions for one event execute one at a time.
func (r *RequestRepo) WithEventLock(ctx context.Context, eventID int64, fn func(tx admission.RequestTx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
		ReadOnly:  false,
	})
	if err != nil {
		return err
	}

	defer func() {
		// a panic in fn rolls the tx back before re-raising
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var locked int64
	if err := tx.QueryRowContext(ctx, lockEventSQL, eventID).Scan(&locked); err != nil {
		_ = tx.Rollback()
		if err == sql.ErrNoRows {
			return domain.ErrNotFound("event not found")
		}
		return err
	}

	if err := fn(&requestTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
