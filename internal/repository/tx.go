package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Tx collects compensating steps for writes made against the in-memory
// repositories. Steps run in reverse order when the unit of work fails.
type Tx struct {
	undo []func(ctx context.Context) error
}

// OnRollback registers a step that reverts a write which already succeeded.
func (tx *Tx) OnRollback(fn func(ctx context.Context) error) {
	tx.undo = append(tx.undo, fn)
}

func (tx *Tx) rollback(ctx context.Context) error {
	var errs []error
	for _, fn := range slices.Backward(tx.undo) {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	tx.undo = nil
	return errors.Join(errs...)
}

// WithTx runs fn as one unit of work. When fn fails every step registered
// through OnRollback is reverted and its errors are joined to fn's error.
func WithTx[T any](ctx context.Context, fn func(tx *Tx) (T, error)) (_ T, txErr error) {
	var zero T

	tx := &Tx{}

	defer func() {
		if txErr != nil {
			if rollbackErr := tx.rollback(ctx); rollbackErr != nil {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	return result, nil
}
