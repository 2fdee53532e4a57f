package entity

type Route struct {
	Base
	FromCity   string  `db:"from_city"`
	ToCity     string  `db:"to_city"`
	DistanceKm float64 `db:"distance_km"`
}

// Label is the human-readable route name used by list views and the dashboard.
func (r *Route) Label() string {
	return r.FromCity + " → " + r.ToCity
}
