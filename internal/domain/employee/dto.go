package employee

import (
	"time"

	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Gender       string  `json:"gender"`
	Email        *string `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	Address      *string `json:"address"`
	DOB          *string `json:"dob"`
	DepartmentID string  `json:"department_id"`
	PositionID   string  `json:"position_id"`
	HireDate     string  `json:"hire_date"`
	BaseSalary   *string `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsInSlice(r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male or Female"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number is required"})
	} else if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number format is invalid"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id is required"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if hireDate, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	} else if hireDate.After(time.Now().AddDate(0, 0, 1)) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date cannot be in the future"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "dob must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Gender       *string `json:"gender"`
	Email        *string `json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
	DOB          *string `json:"dob"`
	DepartmentID *string `json:"department_id"`
	PositionID   *string `json:"position_id"`
	BaseSalary   *string `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male or Female"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number format is invalid"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "dob must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter drives the employee list view. View selects between the active
// roster and the archive; the rest are case-insensitive substring filters.
type ListFilter struct {
	View       string // "active" (default) or "archived"
	Search     string // matches first or last name
	Department string
	Position   string
	Page       int
	Limit      int
}

func (f *ListFilter) Normalize() {
	if f.View != "archived" {
		f.View = "active"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 25
	}
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	FullName         string  `json:"full_name"`
	Gender           string  `json:"gender"`
	Email            *string `json:"email,omitempty"`
	PhoneNumber      string  `json:"phone_number"`
	Address          *string `json:"address,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	DepartmentID     string  `json:"department_id"`
	DepartmentName   *string `json:"department_name,omitempty"`
	PositionID       string  `json:"position_id"`
	PositionTitle    *string `json:"position_title,omitempty"`
	HireDate         string  `json:"hire_date"`
	BaseSalary       *string `json:"base_salary,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		FullName:         e.FullName(),
		Gender:           string(e.Gender),
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		Address:          e.Address,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   e.DepartmentName,
		PositionID:       e.PositionID,
		PositionTitle:    e.PositionTitle,
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentStatus: string(e.EmploymentStatus),
	}
	if e.DOB != nil {
		dob := e.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	if e.BaseSalary != nil {
		salary := e.BaseSalary.String()
		resp.BaseSalary = &salary
	}
	return resp
}
