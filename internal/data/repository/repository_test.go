package repository

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	idA = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	idB = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	idC = uuid.MustParse("33333333-3333-4333-8333-333333333333")
)

func TestApplyOrder(t *testing.T) {
	positions := []reorder.Position{
		{ID: idB.String(), DisplayOrder: 0},
		{ID: idA.String(), DisplayOrder: 1},
		{ID: idC.String(), DisplayOrder: 2},
	}

	tests := []struct {
		name         string
		table        string
		positions    []reorder.Position
		tx           *fakeTx
		wantUpdated  int64
		wantErr      bool
		wantCommit   bool
		wantRollback bool
	}{
		{
			name:        "all rows updated in one batch",
			table:       "packages",
			positions:   positions,
			tx:          &fakeTx{existing: map[string]bool{idA.String(): true, idB.String(): true, idC.String(): true}},
			wantUpdated: 3,
			wantCommit:  true,
		},
		{
			name:        "missing row skipped",
			table:       "portfolio_items",
			positions:   positions,
			tx:          &fakeTx{existing: map[string]bool{idA.String(): true, idB.String(): true}},
			wantUpdated: 2,
			wantCommit:  true,
		},
		{
			name:         "statement failure rolls back",
			table:        "testimonials",
			positions:    positions,
			tx:           &fakeTx{existing: map[string]bool{idA.String(): true}, failAt: 1, failErr: errors.New("deadlock detected")},
			wantErr:      true,
			wantRollback: true,
		},
		{
			name:      "begin failure",
			table:     "packages",
			positions: positions,
			tx:        &fakeTx{beginErr: errors.New("pool closed")},
			wantErr:   true,
		},
		{
			name:      "unknown table",
			table:     "bookings",
			positions: positions,
			wantErr:   true,
		},
		{
			name:      "invalid id never opens a transaction",
			table:     "packages",
			positions: []reorder.Position{{ID: "not-a-uuid", DisplayOrder: 0}},
			wantErr:   true,
		},
		{
			name:  "empty payload is a no-op",
			table: "packages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{tx: tt.tx}
			updated, err := applyOrder(context.Background(), db, zap.NewNop(), tt.table, tt.positions)

			if tt.wantErr != (err != nil) {
				t.Fatalf("applyOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if updated != tt.wantUpdated {
				t.Errorf("updated = %d, want %d", updated, tt.wantUpdated)
			}
			if tt.tx == nil {
				return
			}
			if tt.tx.committed != tt.wantCommit {
				t.Errorf("committed = %v, want %v", tt.tx.committed, tt.wantCommit)
			}
			if tt.tx.rolledBack != tt.wantRollback {
				t.Errorf("rolledBack = %v, want %v", tt.tx.rolledBack, tt.wantRollback)
			}
		})
	}
}

func TestApplyOrder_QueuesFullPayload(t *testing.T) {
	tx := &fakeTx{existing: map[string]bool{}}
	db := &fakeDB{tx: tx}
	positions := []reorder.Position{
		{ID: idC.String(), DisplayOrder: 0},
		{ID: idA.String(), DisplayOrder: 1},
	}

	if _, err := applyOrder(context.Background(), db, zap.NewNop(), "packages", positions); err != nil {
		t.Fatalf("applyOrder() error = %v", err)
	}

	if tx.batch.Len() != 2 {
		t.Fatalf("batch len = %d, want 2", tx.batch.Len())
	}
	for i, q := range tx.batch.QueuedQueries {
		if !strings.HasPrefix(q.SQL, "UPDATE packages SET display_order") {
			t.Errorf("query[%d] = %q", i, q.SQL)
		}
		want := []any{uuid.MustParse(positions[i].ID), positions[i].DisplayOrder}
		if !reflect.DeepEqual(q.Arguments, want) {
			t.Errorf("args[%d] = %v, want %v", i, q.Arguments, want)
		}
	}
}

func portfolioRow(id uuid.UUID, title string, category entity.Category, order int) []any {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return []any{id, title, string(category), "https://youtu.be/abc", nil, nil, order, now, now}
}

func TestPortfolioFindAll_CategoryFilter(t *testing.T) {
	tests := []struct {
		name       string
		categories []entity.Category
		wantWhere  bool
		wantArgs   []any
	}{
		{"no filter", nil, false, nil},
		{
			"group filter",
			[]entity.Category{entity.CategoryBirthday, entity.CategoryEvent},
			true,
			[]any{[]string{"Birthday", "Event"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{rows: [][]any{
				portfolioRow(idA, "Ama's 30th", entity.CategoryBirthday, 0),
				portfolioRow(idB, "Launch night", entity.CategoryEvent, 1),
			}}
			repo := NewPortfolioRepository(db, zap.NewNop())

			items, err := repo.FindAll(context.Background(), tt.categories)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}

			q := db.queries[0]
			if got := strings.Contains(q.sql, "category = ANY($1)"); got != tt.wantWhere {
				t.Errorf("query %q has ANY filter = %v, want %v", q.sql, got, tt.wantWhere)
			}
			if !strings.Contains(q.sql, "ORDER BY display_order ASC") {
				t.Errorf("query %q not ordered by display_order", q.sql)
			}
			if !reflect.DeepEqual(q.args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", q.args, tt.wantArgs)
			}

			if len(items) != 2 || items[1].Category != entity.CategoryEvent || items[0].ThumbnailURL != nil {
				t.Errorf("items = %+v", items)
			}
		})
	}
}

func TestPackageRepository_Writes(t *testing.T) {
	pkg := &entity.Package{BaseNoDelete: entity.BaseNoDelete{ID: idA}, Name: "Wedding", Deliverables: []string{"Film"}}

	t.Run("update of missing id", func(t *testing.T) {
		db := &fakeDB{execTag: "UPDATE 0"}
		err := NewPackageRepository(db, zap.NewNop()).Update(context.Background(), pkg)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		db := &fakeDB{execTag: "UPDATE 1"}
		if err := NewPackageRepository(db, zap.NewNop()).Update(context.Background(), pkg); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if db.execs[0].args[0] != idA {
			t.Errorf("first arg = %v, want id", db.execs[0].args[0])
		}
	})

	t.Run("delete of missing id is not an error", func(t *testing.T) {
		db := &fakeDB{execTag: "DELETE 0"}
		if err := NewPackageRepository(db, zap.NewNop()).Delete(context.Background(), idB); err != nil {
			t.Errorf("Delete() error = %v", err)
		}
	})

	t.Run("driver error wrapped", func(t *testing.T) {
		driverErr := errors.New("connection reset")
		db := &fakeDB{execErr: driverErr}
		err := NewPackageRepository(db, zap.NewNop()).Delete(context.Background(), idB)
		if !errors.Is(err, driverErr) {
			t.Errorf("Delete() error = %v, want wrapped driver error", err)
		}
	})
}

func TestPackageFindByID_NoRows(t *testing.T) {
	db := &fakeDB{rowErr: pgx.ErrNoRows}
	got, err := NewPackageRepository(db, zap.NewNop()).FindByID(context.Background(), idC)
	if err != nil || got != nil {
		t.Errorf("FindByID() = %v, %v; want nil, nil", got, err)
	}
}

func TestPackageFindAll_NilDeliverables(t *testing.T) {
	now := time.Now()
	db := &fakeDB{rows: [][]any{{idA, "Basic", "Half day", 1500, nil, false, 0, now, now}}}

	pkgs, err := NewPackageRepository(db, zap.NewNop()).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(pkgs) != 1 || pkgs[0].Deliverables == nil {
		t.Errorf("deliverables should default to empty list: %+v", pkgs)
	}
}

func TestTestimonialFindAll_ActiveOnly(t *testing.T) {
	for _, activeOnly := range []bool{true, false} {
		db := &fakeDB{}
		if _, err := NewTestimonialRepository(db, zap.NewNop()).FindAll(context.Background(), activeOnly); err != nil {
			t.Fatalf("FindAll(%v) error = %v", activeOnly, err)
		}
		if got := strings.Contains(db.queries[0].sql, "is_active = TRUE"); got != activeOnly {
			t.Errorf("FindAll(%v) query = %q", activeOnly, db.queries[0].sql)
		}
	}
}

func TestSessionRepository_InvalidToken(t *testing.T) {
	db := &fakeDB{}
	repo := NewSessionRepository(db, zap.NewNop())

	session, err := repo.FindValidSession(context.Background(), "not-a-token")
	if err != nil || session != nil {
		t.Errorf("FindValidSession() = %v, %v; want nil, nil", session, err)
	}
	if err := repo.Revoke(context.Background(), "not-a-token"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Revoke() error = %v, want ErrNotFound", err)
	}
	if len(db.queries)+len(db.execs) != 0 {
		t.Error("invalid token reached the database")
	}
}
