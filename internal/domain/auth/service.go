package auth

import "context"

type AuthService interface {
	// Register creates the user account and its employee record in one
	// transaction.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
}
