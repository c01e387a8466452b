package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	sql  string
	args []any
}

// fakeDB is an in-memory PgxIface. Query returns rows, QueryRow returns row,
// Exec answers execTag, Begin hands out tx.
type fakeDB struct {
	rows    [][]any
	row     []any
	rowErr  error
	execTag string
	execErr error
	tx      *fakeTx

	queries []execCall
	execs   []execCall
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, execCall{sql, args})
	return &fakeRows{values: f.rows, pos: -1}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, execCall{sql, args})
	return fakeRow{values: f.row, err: f.rowErr}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql, args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(f.execTag), nil
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.tx == nil {
		return nil, fmt.Errorf("begin not expected")
	}
	if f.tx.beginErr != nil {
		return nil, f.tx.beginErr
	}
	return f.tx, nil
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }
func (f *fakeDB) Close()                         {}

// fakeTx implements the parts of pgx.Tx applyOrder touches.
type fakeTx struct {
	pgx.Tx

	beginErr error
	// existing ids answer "UPDATE 1", everything else "UPDATE 0"
	existing map[string]bool
	failAt   int
	failErr  error

	batch      *pgx.Batch
	committed  bool
	rolledBack bool
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	t.batch = b
	return &fakeBatchResults{tx: t, pos: 0}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeBatchResults struct {
	pgx.BatchResults

	tx  *fakeTx
	pos int
}

func (r *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	i := r.pos
	r.pos++
	if r.tx.failErr != nil && i == r.tx.failAt {
		return pgconn.CommandTag{}, r.tx.failErr
	}
	q := r.tx.batch.QueuedQueries[i]
	if r.tx.existing[fmt.Sprint(q.Arguments[0])] {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (r *fakeBatchResults) Close() error { return nil }

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	pgx.Rows

	values [][]any
	pos    int
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error { return assign(r.values[r.pos], dest) }
func (r *fakeRows) Err() error             { return nil }
func (r *fakeRows) Close()                 {}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(values[i]))
	}
	return nil
}
