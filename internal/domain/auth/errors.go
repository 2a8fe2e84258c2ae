package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("bad email or password")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrAdminRequired          = errors.New("admin privilege required")
	ErrOAuthNotConfigured     = errors.New("google login is not configured")
	ErrOAuthEmailNotVerified  = errors.New("google account email is not verified")
	ErrOAuthUnknownEmployee   = errors.New("no employee is registered with this email")
	ErrEmployeeAccountRemoved = errors.New("employee account no longer exists")
)
