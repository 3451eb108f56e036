package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures the questions schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:questionbank.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/questionbank?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Multi-valued cells (subject, use, correct) hold comma-joined label sets,
// same encoding as the delimited file source.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS questions (
  pos INTEGER PRIMARY KEY AUTOINCREMENT,
  question TEXT NOT NULL UNIQUE,
  subject TEXT NOT NULL,
  use TEXT NOT NULL,
  correct TEXT,
  response_a TEXT NOT NULL,
  response_b TEXT NOT NULL,
  response_c TEXT NOT NULL,
  response_d TEXT,
  remark TEXT
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS questions (
  pos BIGSERIAL PRIMARY KEY,
  question TEXT NOT NULL UNIQUE,
  subject TEXT NOT NULL,
  use TEXT NOT NULL,
  correct TEXT,
  response_a TEXT NOT NULL,
  response_b TEXT NOT NULL,
  response_c TEXT NOT NULL,
  response_d TEXT,
  remark TEXT
);
`
