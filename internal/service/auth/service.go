package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontohr/ponto-backend-go/internal/domain/auth"
	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
	"github.com/pontohr/ponto-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		Service:            jwtService,
	}
}

// Register implements auth.AuthService. The user account and its employee
// record are created in one transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}
	admissionDate, _ := validator.IsValidDate(req.AdmissionDate)

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	employeeID, err := uuid.NewV7()
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	var resp auth.RegisterResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdUser, err := a.UserRepository.Create(txCtx, user.User{
			ID:           userID.String(),
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		uid := createdUser.ID
		createdEmployee, err := a.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:            employeeID.String(),
			UserID:        &uid,
			FullName:      req.FullName,
			Email:         req.Email,
			MonthlySalary: req.MonthlySalary,
			AdmissionDate: admissionDate,
			Active:        true,
		})
		if err != nil {
			return err
		}

		resp = auth.RegisterResponse{
			UserID:     createdUser.ID,
			EmployeeID: createdEmployee.ID,
			Email:      createdUser.Email,
		}
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return resp, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenPair(ctx, userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	return a.tokenPair(ctx, userData)
}

func (a *AuthServiceImpl) tokenPair(ctx context.Context, userData user.User) (auth.LoginResponse, error) {
	var employeeID *string
	emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	if err == nil {
		employeeID = &emp.ID
	} else if err != employee.ErrEmployeeNotFound {
		return auth.LoginResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
