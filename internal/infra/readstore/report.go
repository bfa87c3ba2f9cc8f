package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

func (r *ReportReadStore) Summary(ctx context.Context) (*queries.ReportSummary, error) {
	summary := &queries.ReportSummary{}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&summary.TotalBookings); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	const revenueQuery = `
		SELECT COALESCE(SUM(r.price * br.quantity), 0)
		FROM bookings b
		JOIN booking_rooms br ON b.id = br.booking_id
		JOIN rooms r ON br.room_id = r.id
		WHERE b.status = 'confirmed'`
	if err := r.db.QueryRow(ctx, revenueQuery).Scan(&summary.TotalRevenue); err != nil {
		return nil, infra.WrapRepoErr("failed to sum confirmed revenue", err)
	}

	byStatus, err := r.bookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	summary.BookingsByStatus = byStatus

	perMonth, err := r.bookingsPerMonth(ctx)
	if err != nil {
		return nil, err
	}
	summary.BookingsPerMonth = perMonth

	frequent, err := r.frequentlyBookedRoomTypes(ctx)
	if err != nil {
		return nil, err
	}
	summary.FrequentlyBooked = frequent

	return summary, nil
}

func (r *ReportReadStore) bookingsByStatus(ctx context.Context) ([]*queries.StatusCount, error) {
	const query = `SELECT status, COUNT(*) FROM bookings GROUP BY status ORDER BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to group bookings by status", err)
	}
	defer rows.Close()

	var result []*queries.StatusCount
	for rows.Next() {
		var sc queries.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count row", err)
		}
		result = append(result, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status count rows", err)
	}

	return result, nil
}

func (r *ReportReadStore) bookingsPerMonth(ctx context.Context) ([]*queries.MonthlyBucket, error) {
	const query = `
		SELECT
			to_char(b.created_at, 'YYYY-MM') AS month,
			COUNT(DISTINCT b.id),
			COALESCE(SUM(r.price * br.quantity), 0)
		FROM bookings b
		JOIN booking_rooms br ON b.id = br.booking_id
		JOIN rooms r ON br.room_id = r.id
		WHERE b.created_at >= CURRENT_DATE - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to group bookings per month", err)
	}
	defer rows.Close()

	var result []*queries.MonthlyBucket
	for rows.Next() {
		var mb queries.MonthlyBucket
		if err := rows.Scan(&mb.Month, &mb.Count, &mb.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan monthly bucket row", err)
		}
		result = append(result, &mb)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate monthly bucket rows", err)
	}

	return result, nil
}

func (r *ReportReadStore) frequentlyBookedRoomTypes(ctx context.Context) ([]*queries.RoomTypeCount, error) {
	const query = `
		SELECT rt.name, SUM(br.quantity) AS count
		FROM booking_rooms br
		JOIN rooms r ON br.room_id = r.id
		JOIN room_types rt ON r.room_type_id = rt.id
		GROUP BY rt.name
		ORDER BY count DESC
		LIMIT 5`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank room types", err)
	}
	defer rows.Close()

	var result []*queries.RoomTypeCount
	for rows.Next() {
		var rc queries.RoomTypeCount
		if err := rows.Scan(&rc.RoomName, &rc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type count row", err)
		}
		result = append(result, &rc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type count rows", err)
	}

	return result, nil
}
