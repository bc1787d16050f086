// Package storage opens the record database and keeps its schema current.
// SQLite (pure Go) is the default; a postgres:// URL selects the managed Postgres backend.
package storage

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "pgx"
)

func init() {
	sqlx.BindDriver(string(SQLite), sqlx.QUESTION)
}

// DialectFor picks the backend from a DATABASE_URL value.
func DialectFor(url string) Dialect {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return Postgres
	}
	return SQLite
}

// Open connects, pings and migrates.
func Open(ctx context.Context, url string) (*sqlx.DB, error) {
	dialect := DialectFor(url)

	dsn := url
	if dialect == SQLite {
		dsn = sqliteDSN(url)
	}

	db, err := sqlx.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open: %w", err)
	}

	if dialect == SQLite {
		// one writer; also keeps a ":memory:" database on a single connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func sqliteDSN(path string) string {
	path = strings.TrimPrefix(path, "sqlite://")
	if path == ":memory:" || strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Migrate creates missing tables for the connection's dialect.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := sqliteSchema
	if Dialect(db.DriverName()) == Postgres {
		stmts = postgresSchema
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
