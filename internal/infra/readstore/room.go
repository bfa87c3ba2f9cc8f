package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	const query = `
		SELECT r.id, r.room_type_id, rt.name, r.price, r.capacity, r.available, rt.description
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.id
		ORDER BY r.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var (
			view queries.RoomView
			desc pgtype.Text
		)
		if err := rows.Scan(&view.ID, &view.RoomTypeID, &view.RoomTypeName,
			&view.Price, &view.Capacity, &view.Available, &desc); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(desc)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}

func (r *RoomReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	const query = `SELECT id, name, description FROM room_types ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var result []*queries.RoomTypeView
	for rows.Next() {
		var (
			view queries.RoomTypeView
			desc pgtype.Text
		)
		if err := rows.Scan(&view.ID, &view.Name, &desc); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(desc)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}

	return result, nil
}
