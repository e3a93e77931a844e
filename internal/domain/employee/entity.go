package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	FirstName        string
	LastName         string
	Gender           Gender
	Email            *string
	PhoneNumber      string
	Address          *string
	DOB              *time.Time
	DepartmentID     string
	PositionID       string
	HireDate         time.Time
	BaseSalary       *decimal.Decimal
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for responses
	DepartmentName *string
	PositionTitle  *string
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type EmploymentStatus string

const (
	// Active employees are the only population counted in daily
	// attendance/absence totals.
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)
