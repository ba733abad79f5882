package xpgx

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgxpool.Pool the store needs. pgxmock
// satisfies it too, which is what the store tests run against.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

// Pool wraps a Querier with squirrel-aware helpers. Getx/Selectx scan
// into structs by db tag.
type Pool struct {
	q Querier
}

func NewPool(q Querier) *Pool {
	return &Pool{q: q}
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return p.q.Exec(ctx, sql, args...)
}

func (p *Pool) Execx(ctx context.Context, query Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}

	return p.q.Exec(ctx, sql, args...)
}

// Getx runs the query and scans exactly one row into dest. Zero rows
// surface as pgx.ErrNoRows.
func (p *Pool) Getx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return pgxscan.Get(ctx, p.q, dest, sql, args...)
}

// Selectx runs the query and scans all rows into dest, a pointer to a
// slice. Zero rows leave dest empty without error.
func (p *Pool) Selectx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return pgxscan.Select(ctx, p.q, dest, sql, args...)
}

func (p *Pool) CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	return p.q.CopyFrom(ctx, table, columns, src)
}
