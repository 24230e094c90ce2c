package models

import "time"

// ClockIn is an attendance record as returned to clients.
type ClockIn struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	InsertDatetime time.Time `json:"insert_datetime"`
}

// ClockInCreate is the body of POST /clock-in. insert_datetime is stamped by the server.
type ClockInCreate struct {
	Email    string `json:"email" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// ClockInUpdate is a partial update; only location can change.
type ClockInUpdate struct {
	Location *string `json:"location,omitempty"`
}

func (u ClockInUpdate) IsEmpty() bool {
	return u.Location == nil
}

// ClockInFilter selects clock-in records. AfterDatetime is an exclusive lower bound.
type ClockInFilter struct {
	Email         *string    `json:"email,omitempty"`
	Location      *string    `json:"location,omitempty"`
	AfterDatetime *time.Time `json:"after_datetime,omitempty"`
}
