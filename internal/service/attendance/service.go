package attendance

import (
	"context"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
)

type AttendanceServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	employeeRepository   employee.EmployeeRepository
	leaveRepository      leave.LeaveRequestRepository
	auditRecorder        audit.Recorder
	now                  func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRequestRepository,
	auditRecorder audit.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepository: attendanceRepository,
		employeeRepository:   employeeRepository,
		leaveRepository:      leaveRepository,
		auditRecorder:        auditRecorder,
		now:                  time.Now,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if !emp.IsActive() {
		return attendance.Attendance{}, attendance.ErrEmployeeInactive
	}

	now := s.now()
	record, inserted, err := s.attendanceRepository.UpsertClockIn(ctx, req.EmployeeID, truncateToDay(now), now)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if !inserted {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionClockIn,
		Entity:   "attendance",
		EntityID: &record.ID,
	})

	return record, nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	record, err := s.attendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, truncateToDay(now))
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record == nil {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if record.TimeOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}

	if err := s.attendanceRepository.SetTimeOut(ctx, record.ID, now); err != nil {
		return attendance.Attendance{}, err
	}
	record.TimeOut = &now

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionClockOut,
		Entity:   "attendance",
		EntityID: &record.ID,
	})

	return *record, nil
}

// DailyReport reconciles one date into a single view. Every active employee
// lands in exactly one bucket: an attendance row wins over an approved leave,
// and whoever has neither is absent. All three counts come from the rosters,
// so they always sum to the headcount they were computed against.
func (s *AttendanceServiceImpl) DailyReport(ctx context.Context, query attendance.DailyReportQuery) (attendance.DailyReport, error) {
	date := query.Date
	if date.IsZero() {
		date = s.now()
	}
	date = truncateToDay(date)

	present, err := s.attendanceRepository.ListOnDate(ctx, date, query.Filter)
	if err != nil {
		return attendance.DailyReport{}, err
	}

	onLeave, err := s.leaveRepository.ListApprovedOnDate(ctx, date, query.Filter)
	if err != nil {
		return attendance.DailyReport{}, err
	}

	absent, err := s.attendanceRepository.ListAbsentOnDate(ctx, date, query.Filter)
	if err != nil {
		return attendance.DailyReport{}, err
	}

	now := s.now()
	entries := make([]attendance.DailyEntry, 0, len(present)+len(onLeave))

	for _, rec := range present {
		entry := attendance.DailyEntry{
			EmployeeID:   rec.EmployeeID,
			Status:       attendance.DayStatusPresent,
			TimeIn:       &rec.TimeIn,
			TimeOut:      rec.TimeOut,
			WorkDuration: attendance.FormatWorkDuration(rec.TimeIn, rec.TimeOut, now),
		}
		if rec.EmployeeName != nil {
			entry.EmployeeName = *rec.EmployeeName
		}
		if rec.DepartmentName != nil {
			entry.DepartmentName = *rec.DepartmentName
		}
		if rec.PositionTitle != nil {
			entry.PositionTitle = *rec.PositionTitle
		}
		entries = append(entries, entry)
	}

	for _, rec := range onLeave {
		leaveTypeName := rec.LeaveTypeName
		requestID := rec.LeaveRequestID
		entries = append(entries, attendance.DailyEntry{
			EmployeeID:     rec.EmployeeID,
			EmployeeName:   rec.EmployeeName,
			DepartmentName: rec.DepartmentName,
			PositionTitle:  rec.PositionTitle,
			Status:         attendance.DayStatusOnLeave,
			LeaveTypeName:  &leaveTypeName,
			LeaveRequestID: &requestID,
		})
	}

	return attendance.DailyReport{
		Date:            date,
		Entries:         entries,
		AbsentRoster:    absent,
		PresentCount:    len(present),
		OnLeaveCount:    len(onLeave),
		AbsentCount:     len(absent),
		ActiveEmployees: len(present) + len(onLeave) + len(absent),
	}, nil
}

func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if _, err := s.employeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.attendanceRepository.ListForEmployee(ctx, employeeID, truncateToDay(from), truncateToDay(to))
}
