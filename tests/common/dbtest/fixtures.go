//go:build e2e

package dbtest

import (
	"context"
	"testing"

	"easystay/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference inventory every e2e test starts from. Room ids are assigned by
// identity columns in insertion order: 1 = Deluxe, 2 = Suite.
const (
	DeluxeRoomID       = int64(1)
	SuiteRoomID        = int64(2)
	DeluxeAvailability = int32(5)
	SuiteAvailability  = int32(3)
	DeluxeNightlyPrice = 4500.0
	SuiteNightlyPrice  = 8000.0
)

// SeedReferenceData inserts the room catalog the booking flows depend on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO room_types (name, description) VALUES
			('Deluxe', 'Deluxe room with queen bed'),
			('Suite', 'Suite with separate living area')
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (room_type_id, price, capacity, available) VALUES
			(1, 4500.00, 2, 5),
			(2, 8000.00, 4, 3)
	`)
	return err
}

// ResetDB truncates all mutable state and restores the seeded inventory so
// each subtest starts from a known baseline.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		TRUNCATE booking_rooms, payments, bookings, guests, messages, admins
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `UPDATE rooms SET available = 5 WHERE id = 1`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `UPDATE rooms SET available = 3 WHERE id = 2`)
	return err
}

// CreateTestAdmin inserts an admin account and returns its id.
func CreateTestAdmin(t *testing.T, db DBLike, email, plainPassword string) int64 {
	t.Helper()

	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(),
		`INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 RETURNING id`,
		email, hash).Scan(&id)
	require.NoError(t, err)

	return id
}

// RoomAvailability reads the current availability counter of a room.
func RoomAvailability(t *testing.T, db DBLike, roomID int64) int32 {
	t.Helper()

	var available int32
	err := db.QueryRow(context.Background(),
		`SELECT available FROM rooms WHERE id = $1`, roomID).Scan(&available)
	require.NoError(t, err)

	return available
}

// CountRows counts rows in a seeded table, optionally filtered.
func CountRows(t *testing.T, db DBLike, query string, args ...any) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)

	return count
}
