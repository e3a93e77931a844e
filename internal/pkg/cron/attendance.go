package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
)

// RegisterAttendanceJobs wires the attendance maintenance jobs:
//
//   - remove_duplicate_attendance_days sweeps rows that predate the unique
//     (employee_id, date) constraint; writes are already race-safe, so this
//     only ever touches legacy data.
//   - close_stale_sessions stamps a time-out on sessions left open past the
//     cutoff, so forgotten clock-outs stop accruing work time forever.
func RegisterAttendanceJobs(s *Scheduler, repo attendance.AttendanceRepository, staleAfter time.Duration) {
	s.AddJob("remove_duplicate_attendance_days", 24*time.Hour, func(ctx context.Context) error {
		removed, err := repo.RemoveDuplicateDays(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Warn("removed duplicate attendance rows", "count", removed)
		}
		return nil
	})

	s.AddJob("close_stale_sessions", time.Hour, func(ctx context.Context) error {
		closed, err := repo.CloseStaleSessions(ctx, staleAfter)
		if err != nil {
			return err
		}
		if closed > 0 {
			slog.Info("closed stale attendance sessions", "count", closed)
		}
		return nil
	})
}
