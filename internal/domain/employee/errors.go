package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("employee with this email already exists")
	ErrPositionNotFound   = errors.New("referenced position not found")
	ErrDepartmentNotFound = errors.New("referenced department not found")
	ErrTeamNotFound       = errors.New("referenced team not found")
	ErrProjectNotFound    = errors.New("referenced project not found")
)
