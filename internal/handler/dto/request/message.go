package request

import (
	"easystay/internal/usecase/commands"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToInput() commands.SubmitMessageInput {
	return commands.SubmitMessageInput{
		Name:  r.Name,
		Email: r.Email,
		Body:  r.Message,
	}
}
