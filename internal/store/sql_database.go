// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/migrations"
)

// Dialect identifies the SQL flavour spoken by the connected database.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (d Dialect) migrations() migrations.Dialect {
	if d == DialectPostgres {
		return migrations.Postgres
	}
	return migrations.SQLite
}

func (d Dialect) classifier() ErrorClassificator {
	if d == DialectPostgres {
		return NewPostgresErrorClassifier()
	}
	return NewSQLiteErrorClassifier()
}

// DB is the database handle shared by every repository. It knows its
// dialect, how to classify driver errors and which clock stamps rows.
type DB struct {
	*sqlx.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

// NewDB wraps an open connection. Used by the connect functions and by
// tests that bring their own *sqlx.DB.
func NewDB(conn *sqlx.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: dialect.classifier(),
		logger:             log,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect.migrations())
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}

// inTx runs fn inside a transaction, rolling back when fn fails or panics.
func (db *DB) inTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func get(ctx context.Context, q sqlx.QueryerContext, dest any, query sq.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlx.GetContext(ctx, q, dest, stmt, args...)
}

func selectAll(ctx context.Context, q sqlx.QueryerContext, dest any, query sq.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlx.SelectContext(ctx, q, dest, stmt, args...)
}

// exec runs a DML statement and returns the number of affected rows.
func exec(ctx context.Context, e sqlx.ExecerContext, query sq.Sqlizer) (int64, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := e.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// translate maps a driver error onto the package sentinels while keeping
// the original error in the chain. Errors that already carry a sentinel of
// this package pass through unchanged.
func (db *DB) translate(err error) error {
	if err == nil {
		return nil
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	case NotNullViolation:
		return fmt.Errorf("%w: %w", ErrNotNullViolation, err)
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrCheckViolation, err)
	case Retryable:
		return fmt.Errorf("%w: %w", ErrRetryable, err)
	}

	if isStoreError(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func isStoreError(err error) bool {
	for _, target := range []error{
		ErrBuildingSQLQuery,
		ErrExecutingStatement,
		ErrBeginningTransaction,
		ErrCommitingTransaction,
		ErrScanningRow,
		ErrScanningRows,
		ErrUserNotFound,
		ErrProfileNotFound,
		ErrReservationNotFound,
		ErrBookNotFound,
		ErrBookReservationNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
