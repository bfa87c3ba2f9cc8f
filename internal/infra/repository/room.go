package repository

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/shared"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// ReserveQuantity is the only place inventory is contended: the availability
// check and the decrement are one statement, so row-level locking serializes
// concurrent bookings for the same room and the counter can never go negative.
func (r *RoomRepository) ReserveQuantity(ctx context.Context, dbtx db.DBTX, roomID int64, quantity int32) error {
	const query = `
		UPDATE rooms
		SET available = available - $1
		WHERE id = $2 AND available >= $1`

	tag, err := dbtx.Exec(ctx, query, quantity, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve room quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient room availability", nil, infra.KindConflict)
	}

	return nil
}

func (r *RoomRepository) FirstByType(ctx context.Context, dbtx db.DBTX, roomTypeID int64) (*shared.RoomRef, error) {
	const query = `
		SELECT id, price
		FROM rooms
		WHERE room_type_id = $1
		ORDER BY id
		LIMIT 1`

	var ref shared.RoomRef
	err := dbtx.QueryRow(ctx, query, roomTypeID).Scan(&ref.ID, &ref.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by type", err)
	}

	return &ref, nil
}

func (r *RoomRepository) SetAvailability(ctx context.Context, dbtx db.DBTX, roomID int64, available int32) error {
	const query = `UPDATE rooms SET available = $1 WHERE id = $2`

	tag, err := dbtx.Exec(ctx, query, available, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to set room availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
