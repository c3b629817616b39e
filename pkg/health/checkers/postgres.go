package checkers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// rowQuerier is satisfied by *pgxpool.Pool.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresChecker verifies that the history database answers and that the
// extractions table exists.
type PostgresChecker struct {
	db    rowQuerier
	table string
}

func NewPostgresChecker(db rowQuerier) *PostgresChecker {
	return &PostgresChecker{db: db, table: "extractions"}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	var exists bool
	if err := c.db.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, c.table).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("table %s is missing", c.table)
	}
	return nil
}
