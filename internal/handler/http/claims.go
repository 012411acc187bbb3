package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohr/ponto-backend-go/internal/domain/auth"
)

// employeeIDFromClaims extracts the caller's employee id from the access
// token. Accounts without an employee record get ErrInvalidToken.
func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}

	return employeeID, nil
}
