package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/usecase/queries"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

func (r *DashboardReadStore) Metrics(ctx context.Context) (*queries.DashboardMetrics, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE start_date > CURRENT_DATE AND status = 'confirmed')
		FROM bookings`

	var m queries.DashboardMetrics
	err := r.db.QueryRow(ctx, query).Scan(
		&m.TotalBookings,
		&m.PendingBookings,
		&m.CancelledBookings,
		&m.UpcomingBookings,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard metrics", err)
	}

	return &m, nil
}

// Revenue counts confirmed bookings only: price per night times quantity
// times nights.
func (r *DashboardReadStore) Revenue(ctx context.Context) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(r.price * br.quantity * (b.end_date - b.start_date)), 0)
		FROM bookings b
		JOIN booking_rooms br ON b.id = br.booking_id
		JOIN rooms r ON br.room_id = r.id
		WHERE b.status = 'confirmed'`

	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to load total revenue", err)
	}

	return total, nil
}
