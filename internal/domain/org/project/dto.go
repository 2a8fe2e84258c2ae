package project

import (
	"time"

	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

type Project struct {
	ID        string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

type CreateProjectRequest struct {
	Name      string  `json:"name"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	errs = validateDates(r.StartDate, r.EndDate, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	errs = validateDates(r.StartDate, r.EndDate, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDates(start, end *string, errs validator.ValidationErrors) validator.ValidationErrors {
	if start != nil {
		if _, ok := validator.IsValidDate(*start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a date in YYYY-MM-DD format",
			})
		}
	}
	if end != nil {
		if _, ok := validator.IsValidDate(*end); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a date in YYYY-MM-DD format",
			})
		}
	}
	return errs
}

type ProjectResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}
