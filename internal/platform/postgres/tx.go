// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/pressroom/internal/platform/ctxkey"
)

// Querier is the subset of pgx shared by [*pgxpool.Pool] and [pgx.Tx].
//
// Repositories issue every statement through a Querier obtained from [Conn]
// so they transparently join a transaction opened by [TxManager].
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner opens transactions. Satisfied by [*pgxpool.Pool].
type Beginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Conn returns the transaction stored in ctx, or db when none is active.
func Conn(ctx context.Context, db Querier) Querier {
	if transaction, ok := ctx.Value(ctxkey.KeyTx).(pgx.Tx); ok && transaction != nil {
		return transaction
	}
	return db
}

// TxManager runs a unit of work inside a single database transaction.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a TxManager on top of a pool.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

/*
Transaction executes fn with a context carrying an open transaction.

Every repository call made with that context joins the same transaction.
fn returning an error (or panicking) rolls back; returning nil commits.
A nested call reuses the outer transaction and leaves commit to the owner.

Usage:

	err := txManager.Transaction(ctx, func(ctx context.Context) error {
	    if _, err := magazines.DeleteMagazinesByPublisher(ctx, id); err != nil {
	        return err
	    }
	    return publishers.DeletePublisher(ctx, id)
	})
*/
func (manager *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, active := ctx.Value(ctxkey.KeyTx).(pgx.Tx); active {
		return fn(ctx)
	}

	transaction, err := manager.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = transaction.Rollback(ctx)
			panic(recovered)
		}
		if err != nil {
			_ = transaction.Rollback(ctx)
		}
	}()

	if err = fn(context.WithValue(ctx, ctxkey.KeyTx, transaction)); err != nil {
		return err
	}

	if err = transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}
