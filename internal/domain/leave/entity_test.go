package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDays_SingleDay(t *testing.T) {
	d := day(2024, 11, 1)
	assert.Equal(t, 1, InclusiveDays(d, d))
}

func TestInclusiveDays_FiveDayRange(t *testing.T) {
	assert.Equal(t, 5, InclusiveDays(day(2024, 11, 1), day(2024, 11, 5)))
}

func TestInclusiveDays_AcrossMonthBoundary(t *testing.T) {
	assert.Equal(t, 3, InclusiveDays(day(2024, 10, 31), day(2024, 11, 2)))
}

func TestInclusiveDays_EndBeforeStart(t *testing.T) {
	assert.Equal(t, 0, InclusiveDays(day(2024, 11, 5), day(2024, 11, 1)))
}

func TestInclusiveDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 11, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 11, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, InclusiveDays(start, end))
}

func TestCovers(t *testing.T) {
	req := LeaveRequest{StartDate: day(2024, 11, 1), EndDate: day(2024, 11, 5)}

	assert.True(t, req.Covers(day(2024, 11, 1)))
	assert.True(t, req.Covers(day(2024, 11, 3)))
	assert.True(t, req.Covers(day(2024, 11, 5)))
	assert.False(t, req.Covers(day(2024, 10, 31)))
	assert.False(t, req.Covers(day(2024, 11, 6)))
}

func TestCovers_SingleDayRange(t *testing.T) {
	req := LeaveRequest{StartDate: day(2024, 11, 4), EndDate: day(2024, 11, 4)}
	assert.True(t, req.Covers(day(2024, 11, 4)))
	assert.False(t, req.Covers(day(2024, 11, 3)))
	assert.False(t, req.Covers(day(2024, 11, 5)))
}

func TestCreateLeaveRequestValidate_EndBeforeStart(t *testing.T) {
	req := CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "type-1",
		StartDate:   "2024-11-05",
		EndDate:     "2024-11-01",
	}
	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestCreateLeaveRequestValidate_OK(t *testing.T) {
	req := CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "type-1",
		StartDate:   "2024-11-01",
		EndDate:     "2024-11-05",
		Reason:      "family matters",
	}
	assert.NoError(t, req.Validate())
}
