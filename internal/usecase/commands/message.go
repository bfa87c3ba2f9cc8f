package commands

import (
	"context"

	"easystay/internal/domain/message"
	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/errs"
	"easystay/internal/usecase/shared"
)

var ErrMessageNotFound = errs.New("message not found")

type SubmitMessageInput struct {
	Name  string
	Email string
	Body  string
}

type MessageCommands interface {
	SubmitMessage(ctx context.Context, input SubmitMessageInput) (int64, error)
	DeleteMessage(ctx context.Context, id int64) error
}

type messageCommandsImpl struct {
	uow      shared.UnitOfWork
	messages shared.MessageRepository
}

func NewMessageCommands(uow shared.UnitOfWork, messages shared.MessageRepository) MessageCommands {
	return &messageCommandsImpl{
		uow:      uow,
		messages: messages,
	}
}

func (m *messageCommandsImpl) SubmitMessage(ctx context.Context, input SubmitMessageInput) (int64, error) {
	entity, err := message.New(input.Name, input.Email, input.Body)
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	var id int64
	err = m.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, err = m.messages.Create(ctx, dbtx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (m *messageCommandsImpl) DeleteMessage(ctx context.Context, id int64) error {
	return m.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := m.messages.Delete(ctx, dbtx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMessageNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
