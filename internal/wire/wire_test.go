package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/utils"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, publicBrowsing bool) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	config := &utils.Config{
		Auth: utils.AuthConfig{
			AdminUsername:      "admin",
			AdminPassword:      "admin123",
			SessionExpiryHours: 12,
			PublicBrowsing:     publicBrowsing,
		},
	}
	return Wiring(repo, config, zap.NewNop()), mock
}

func TestBrowsingRoutesRequireSessionWhenPublicBrowsingOff(t *testing.T) {
	app, _ := newTestApp(t, false)

	for _, path := range []string{"/api/buses", "/api/routes", "/api/trips", "/api/trips/refs", "/api/passengers"} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s without session: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestBrowsingRoutesOpenWhenPublicBrowsingOn(t *testing.T) {
	app, mock := newTestApp(t, true)

	rows := pgxmock.NewRows([]string{"id", "registration_number", "capacity", "description", "created_at", "updated_at"})
	mock.ExpectQuery("SELECT id, registration_number, capacity, description, created_at, updated_at").
		WithArgs(10, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM buses`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buses", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/buses with open browsing: expected 200, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRoutesStayGatedWhenPublicBrowsingOn(t *testing.T) {
	app, _ := newTestApp(t, true)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /api/bookings without session: expected 401, got %d", rec.Code)
	}
}
