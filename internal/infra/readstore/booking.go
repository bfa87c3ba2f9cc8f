package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) List(ctx context.Context) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT
			b.id,
			COALESCE(g.first_name || ' ' || g.last_name, '') AS guest_name,
			STRING_AGG(DISTINCT rt.name, ', ' ORDER BY rt.name) AS room_types,
			b.start_date,
			b.end_date,
			b.status,
			COALESCE(SUM(r.price * br.quantity), 0) AS total_price,
			b.created_at
		FROM bookings b
		LEFT JOIN guests g ON b.guest_id = g.id
		LEFT JOIN booking_rooms br ON b.id = br.booking_id
		LEFT JOIN rooms r ON br.room_id = r.id
		LEFT JOIN room_types rt ON r.room_type_id = rt.id
		GROUP BY b.id, g.first_name, g.last_name
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			roomTypes pgtype.Text
			start     pgtype.Date
			end       pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.GuestName, &roomTypes,
			&start, &end, &item.Status, &item.TotalPrice, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.RoomTypes = pgconv.StringPtrFromPgtype(roomTypes)
		item.StartDate = pgconv.DateFromPgtype(start)
		item.EndDate = pgconv.DateFromPgtype(end)
		item.BookingDate = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) Recent(ctx context.Context, limit int32) ([]*queries.RecentBooking, error) {
	const query = `
		SELECT
			b.id,
			COALESCE(g.first_name || ' ' || g.last_name, '') AS guest_name,
			rt.name,
			b.start_date,
			b.end_date,
			b.created_at,
			b.status
		FROM bookings b
		LEFT JOIN guests g ON b.guest_id = g.id
		LEFT JOIN booking_rooms br ON b.id = br.booking_id
		LEFT JOIN rooms r ON br.room_id = r.id
		LEFT JOIN room_types rt ON r.room_type_id = rt.id
		ORDER BY b.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}
	defer rows.Close()

	var result []*queries.RecentBooking
	for rows.Next() {
		var (
			item      queries.RecentBooking
			roomType  pgtype.Text
			start     pgtype.Date
			end       pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.GuestName, &roomType,
			&start, &end, &createdAt, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent booking row", err)
		}
		item.RoomTypeName = pgconv.StringPtrFromPgtype(roomType)
		item.StartDate = pgconv.DateFromPgtype(start)
		item.EndDate = pgconv.DateFromPgtype(end)
		item.BookingDate = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recent booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) Cancelled(ctx context.Context) ([]*queries.CancelledBooking, error) {
	const query = `
		SELECT
			b.id,
			COALESCE(g.first_name || ' ' || g.last_name, '') AS guest_name,
			rt.name,
			b.start_date,
			b.end_date,
			b.status,
			COALESCE(r.price, 0)
		FROM bookings b
		LEFT JOIN guests g ON b.guest_id = g.id
		LEFT JOIN booking_rooms br ON b.id = br.booking_id
		LEFT JOIN rooms r ON br.room_id = r.id
		LEFT JOIN room_types rt ON r.room_type_id = rt.id
		WHERE b.status = 'cancelled'
		ORDER BY b.start_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancelled bookings", err)
	}
	defer rows.Close()

	var result []*queries.CancelledBooking
	for rows.Next() {
		var (
			item     queries.CancelledBooking
			roomType pgtype.Text
			start    pgtype.Date
			end      pgtype.Date
		)
		if err := rows.Scan(&item.ID, &item.GuestName, &roomType,
			&start, &end, &item.Status, &item.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled booking row", err)
		}
		item.RoomTypeName = pgconv.StringPtrFromPgtype(roomType)
		item.StartDate = pgconv.DateFromPgtype(start)
		item.EndDate = pgconv.DateFromPgtype(end)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancelled booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) Upcoming(ctx context.Context) ([]*queries.UpcomingStay, error) {
	const query = `
		SELECT
			b.id,
			g.first_name || ' ' || g.last_name AS guest_name,
			rt.name,
			b.start_date,
			b.end_date,
			b.status
		FROM bookings b
		JOIN guests g ON b.guest_id = g.id
		JOIN booking_rooms br ON b.id = br.booking_id
		JOIN rooms r ON br.room_id = r.id
		JOIN room_types rt ON r.room_type_id = rt.id
		WHERE b.start_date >= CURRENT_DATE AND b.status = 'confirmed'
		ORDER BY b.start_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming stays", err)
	}
	defer rows.Close()

	var result []*queries.UpcomingStay
	for rows.Next() {
		var (
			item  queries.UpcomingStay
			start pgtype.Date
			end   pgtype.Date
		)
		if err := rows.Scan(&item.ID, &item.GuestName, &item.RoomTypeName,
			&start, &end, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan upcoming stay row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(start)
		item.EndDate = pgconv.DateFromPgtype(end)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate upcoming stay rows", err)
	}

	return result, nil
}
