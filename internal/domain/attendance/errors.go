package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("employee has already clocked in today")
	ErrNotClockedIn       = errors.New("employee has not clocked in yet")
	ErrAlreadyClockedOut  = errors.New("employee has already clocked out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeInactive   = errors.New("archived employees cannot clock in")
)
