package audit

import "time"

// ListFilter narrows the log viewer.
type ListFilter struct {
	UserID string
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

type LogEntryResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
	Action    string  `json:"action"`
	Entity    string  `json:"entity"`
	EntityID  *string `json:"entity_id,omitempty"`
	Details   *string `json:"details,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(e LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		UserEmail: e.UserEmail,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Details:   e.Details,
		IPAddress: e.IPAddress,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
