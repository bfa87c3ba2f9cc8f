package response

import (
	"easystay/internal/usecase/commands"
)

type AdminInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		Admin: AdminInfo{
			ID:    result.AdminID,
			Email: result.Email,
		},
	}
}
