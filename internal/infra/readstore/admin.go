package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/queries"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

func (r *AdminReadStore) FindByEmail(ctx context.Context, email string) (*queries.AdminView, error) {
	const query = `SELECT id, email, password_hash FROM admins WHERE email = $1`

	var view queries.AdminView
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Email, &view.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by email", err)
	}

	return &view, nil
}
