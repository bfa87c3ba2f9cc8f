package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/usecase/queries"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

func (r *GuestReadStore) List(ctx context.Context) ([]*queries.GuestView, error) {
	const query = `SELECT id, first_name, last_name, email, phone FROM guests ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var result []*queries.GuestView
	for rows.Next() {
		var view queries.GuestView
		if err := rows.Scan(&view.ID, &view.FirstName, &view.LastName, &view.Email, &view.Phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest rows", err)
	}

	return result, nil
}
