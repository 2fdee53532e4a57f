package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"bus-fleet/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newBusRepoMock(t *testing.T) (BusRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewBusRepository(mock, zap.NewNop()), mock
}

func testBusEntity() *entity.Bus {
	now := time.Now()
	return &entity.Bus{
		Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RegistrationNumber: "B 1 AA",
		Capacity:           40,
	}
}

func TestBusRepositoryFindByID_NoRowsReturnsNilNil(t *testing.T) {
	repo, mock := newBusRepoMock(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, registration_number, capacity, description, created_at, updated_at FROM buses").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	bus, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error for missing row, got %v", err)
	}
	if bus != nil {
		t.Fatalf("expected nil bus, got %+v", bus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBusRepositoryFindPage_ScansRows(t *testing.T) {
	repo, mock := newBusRepoMock(t)

	now := time.Now()
	first := uuid.New()
	second := uuid.New()
	desc := "double decker"

	rows := pgxmock.NewRows([]string{"id", "registration_number", "capacity", "description", "created_at", "updated_at"}).
		AddRow(first, "B 1 AA", 40, &desc, now, now).
		AddRow(second, "B 2 BB", 30, (*string)(nil), now, now)

	mock.ExpectQuery("SELECT id, registration_number, capacity, description, created_at, updated_at FROM buses").
		WithArgs(10, 0).
		WillReturnRows(rows)

	buses, err := repo.FindPage(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if len(buses) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(buses))
	}
	if buses[0].ID != first || buses[0].Capacity != 40 {
		t.Fatalf("first row scanned wrong: %+v", buses[0])
	}
	if buses[0].Description == nil || *buses[0].Description != desc {
		t.Fatalf("description scanned wrong: %v", buses[0].Description)
	}
	if buses[1].Description != nil {
		t.Fatalf("null description should scan to nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBusRepositoryUpdate_ZeroRowsReportsNotFound(t *testing.T) {
	repo, mock := newBusRepoMock(t)

	bus := testBusEntity()
	mock.ExpectExec("UPDATE buses").
		WithArgs(bus.ID, bus.RegistrationNumber, bus.Capacity, bus.Description, bus.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), bus)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found on zero rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBusRepositoryDelete_ReportsWhetherRowExisted(t *testing.T) {
	repo, mock := newBusRepoMock(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM buses").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM buses").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), id)
	if err != nil || !deleted {
		t.Fatalf("first delete: deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
	if deleted {
		t.Fatalf("second delete must report the row as already gone")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
