package repository

import (
	"context"

	"easystay/internal/domain/message"
	"easystay/internal/infra"
	"easystay/internal/infra/db"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, dbtx db.DBTX, m *message.Message) (int64, error) {
	const query = `
		INSERT INTO messages (name, email, body)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query, m.Name(), m.Email(), m.Body()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create message", err)
	}

	return id, nil
}

func (r *MessageRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	const query = `DELETE FROM messages WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete message", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}

	return nil
}
