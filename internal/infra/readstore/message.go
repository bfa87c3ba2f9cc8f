package readstore

import (
	"context"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

func (r *MessageReadStore) Search(ctx context.Context, filter queries.MessageSearchFilter) (*queries.MessagesPage, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM messages
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count messages", err)
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	const listQuery = `
		SELECT id, name, email, body, created_at
		FROM messages
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, listQuery, filter.Search, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search messages", err)
	}
	defer rows.Close()

	var messages []*queries.MessageView
	for rows.Next() {
		var (
			view      queries.MessageView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &view.Body, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		messages = append(messages, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message rows", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &queries.MessagesPage{
		Messages:   messages,
		TotalPages: totalPages,
	}, nil
}
