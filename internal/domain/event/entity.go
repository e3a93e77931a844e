package event

import "time"

// Event is one entry on the recruitment calendar: a career fair, an
// interview day, an onboarding session.
type Event struct {
	ID          string
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Category    string
	Location    *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var Categories = []string{"interview", "career_fair", "onboarding", "meeting", "other"}
