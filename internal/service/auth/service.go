package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/pkg/jwt"
	"github.com/staffpoint/presence-backend-go/internal/pkg/oauth"
)

type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error)
}

type authServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

// NewAuthService builds the auth service. googleService may be nil when
// Google login is not configured.
func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service, googleService oauth.GoogleService) AuthService {
	return &authServiceImpl{
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(emp)
}

func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	if s.googleService == nil {
		return auth.LoginResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("exchange oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrOAuthEmailNotVerified
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrOAuthUnknownEmployee
		}
		return auth.LoginResponse{}, fmt.Errorf("get employee by email: %w", err)
	}

	return s.issueToken(emp)
}

func (s *authServiceImpl) issueToken(emp employee.Employee) (auth.LoginResponse, error) {
	tokenString, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: tokenString,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		Role:        string(emp.Role),
	}, nil
}
