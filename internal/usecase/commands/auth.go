package commands

import (
	"context"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	CustomerID  uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	customers  shared.CustomerReads
	jwtService *jwt.Service
}

func NewAuthCommands(customers shared.CustomerReads, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		customers:  customers,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	cust, hashedPassword, err := a.customers.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch so responses do not reveal
		// which addresses have accounts.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateAccessToken(cust.ID(), cust.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		CustomerID:  cust.ID(),
		AccessToken: accessToken,
	}, nil
}
