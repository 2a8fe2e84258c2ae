package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/pkg/jwt"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

const testSecret = "test-secret-key-for-jwt"

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }
func (f *fakeEmployeeRepo) Exists(ctx context.Context, id string) (bool, error)     { return false, nil }
func (f *fakeEmployeeRepo) GetDepartments(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) SetDepartments(ctx context.Context, employeeID string, departmentIDs []string) error {
	return nil
}
func (f *fakeEmployeeRepo) GetTeams(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) SetTeams(ctx context.Context, employeeID string, teamIDs []string) error {
	return nil
}
func (f *fakeEmployeeRepo) GetProjectAssignments(ctx context.Context, employeeID string) ([]employee.ProjectAssignment, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) SetProjectAssignments(ctx context.Context, employeeID string, assignments []employee.ProjectAssignmentRequest) error {
	return nil
}

func newTestAuthService(t *testing.T) AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"anna@example.com": {
			ID:           "emp-1",
			FullName:     "Anna Smith",
			Email:        "anna@example.com",
			PasswordHash: string(hash),
			Role:         auth.RoleUser,
		},
	}}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(repo, jwtService, nil)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "anna@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "user", resp.Role)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	// The same error as a wrong password, to avoid account enumeration.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "email")
	assert.Contains(t, validationErrs.ToMap(), "password")
}

func TestLoginWithGoogleNotConfigured(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.LoginWithGoogle(context.Background(), "some-code")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)
}
