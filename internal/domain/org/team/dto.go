package team

import "github.com/staffpoint/presence-backend-go/internal/pkg/validator"

type Team struct {
	ID   string
	Name string
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

func (r *CreateTeamRequest) Validate() error {
	return validateName(r.Name)
}

type UpdateTeamRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if err := validateName(r.Name); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateName(name string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
