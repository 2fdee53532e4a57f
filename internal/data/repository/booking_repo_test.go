package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newBookingRepoMock(t *testing.T) (BookingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewBookingRepository(mock, zap.NewNop()), mock
}

func TestBookingRepositoryCountByTripIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	counts, err := repo.CountByTripIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("count by trip ids: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
	// No query may be issued for an empty id list.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected query: %v", err)
	}
}

func TestBookingRepositoryCountByTripIDs_GroupsCounts(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	busy := uuid.New()
	quiet := uuid.New()
	empty := uuid.New()

	rows := pgxmock.NewRows([]string{"trip_id", "count"}).
		AddRow(busy, 7).
		AddRow(quiet, 1)

	mock.ExpectQuery("SELECT trip_id, COUNT").
		WithArgs([]uuid.UUID{busy, quiet, empty}).
		WillReturnRows(rows)

	counts, err := repo.CountByTripIDs(context.Background(), []uuid.UUID{busy, quiet, empty})
	if err != nil {
		t.Fatalf("count by trip ids: %v", err)
	}
	if counts[busy] != 7 || counts[quiet] != 1 {
		t.Fatalf("counts wrong: %v", counts)
	}
	// Trips with no bookings are simply absent; the zero value covers them.
	if _, present := counts[empty]; present {
		t.Fatalf("trip without bookings must not appear in the map")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryCountAllByTrip_ScansAllGroups(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	first := uuid.New()
	second := uuid.New()

	rows := pgxmock.NewRows([]string{"trip_id", "count"}).
		AddRow(first, 4).
		AddRow(second, 2)

	mock.ExpectQuery("SELECT trip_id, COUNT").
		WillReturnRows(rows)

	counts, err := repo.CountAllByTrip(context.Background())
	if err != nil {
		t.Fatalf("count all by trip: %v", err)
	}
	if len(counts) != 2 || counts[first] != 4 || counts[second] != 2 {
		t.Fatalf("counts wrong: %v", counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryFindPageDetailed_TolerateOrphanedJoins(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	now := time.Now()
	bookingID := uuid.New()
	tripID := uuid.New()
	passengerID := uuid.New()

	cols := []string{
		"id", "trip_id", "passenger_id", "seat_number", "booking_date", "created_at", "updated_at",
		"t_id", "departure_time", "arrival_time",
		"p_id", "full_name", "phone_number",
	}

	// One booking with both joins, one whose trip and passenger are gone.
	rows := pgxmock.NewRows(cols).
		AddRow(bookingID, tripID, passengerID, 3, now, now, now,
			&tripID, &now, &now,
			&passengerID, ptr("Siti Rahma"), ptr("0812000000")).
		AddRow(uuid.New(), uuid.New(), uuid.New(), 5, now, now, now,
			(*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil),
			(*uuid.UUID)(nil), (*string)(nil), (*string)(nil))

	mock.ExpectQuery("FROM bookings bk").
		WithArgs(10, 0).
		WillReturnRows(rows)

	details, err := repo.FindPageDetailed(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("find page detailed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(details))
	}
	if details[0].Passenger == nil || details[0].Passenger.FullName != "Siti Rahma" {
		t.Fatalf("joined passenger wrong: %+v", details[0].Passenger)
	}
	if details[0].Trip == nil || details[0].Trip.ID != tripID {
		t.Fatalf("joined trip wrong: %+v", details[0].Trip)
	}
	if details[1].Trip != nil || details[1].Passenger != nil {
		t.Fatalf("orphaned booking must carry nil joins")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
