package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// DB wraps the connection pool together with the SQL dialect it speaks.
// Repositories build their statements through [DB.builder] so placeholders
// match the driver.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retry              retryPolicy
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		retry:   retryPolicy{attempts: defaultRetryAttempts, base: defaultRetryBase},
		logger:  log,
	}

	switch dialect {
	case migrations.SQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the pool for cfg.DSN. PostgreSQL URLs go through pgx,
// sqlite://, file: and :memory: DSNs go through go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isSQLiteDSN(cfg.DSN) {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	if db.logger == nil {
		return migrations.Migrate(ctx, db.DB, db.dialect, nil)
	}
	return migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
}

// Dialect reports which SQL flavour the pool speaks.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// logQueryError records a failed statement together with its retry class.
func (db *DB) logQueryError(ctx context.Context, err error, funcName, msg string) {
	class := NonRetryable
	if db.errorClassificator != nil {
		class = db.errorClassificator.Classify(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", class == Retryable).
		Msg(msg)
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") ||
		strings.HasPrefix(dsn, "file:") ||
		dsn == ":memory:"
}

func applyPoolSettings(conn *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func wrapConnectError(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
