package domain

import "time"

// Activity is one append-only activity log record.
type Activity struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateActivityParams holds the fields needed to record an activity.
type CreateActivityParams struct {
	Email  string
	Action string
	Detail string
}
