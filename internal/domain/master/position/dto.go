package position

import (
	"time"

	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type Position struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreatePositionRequest struct {
	Title string `json:"title"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
