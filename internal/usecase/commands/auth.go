package commands

import (
	"context"

	"easystay/internal/pkg/errs"
	"easystay/internal/pkg/jwt"
	"easystay/internal/pkg/password"
	"easystay/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token   string
	AdminID int64
	Email   string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admins     queries.AdminQueries
	jwtService *jwt.Service
}

func NewAuthCommands(admins queries.AdminQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admins:     admins,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	admin, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(admin.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:   token,
		AdminID: admin.ID,
		Email:   admin.Email,
	}, nil
}
