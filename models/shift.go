package models

import (
	"strings"
	"time"
)

// Shift represents one scheduled work block (or a time-off block) for a
// single employee on a single calendar day.
type Shift struct {
	ID           string    `bson:"id" json:"id"`
	Date         time.Time `bson:"date" json:"date"`                 // compared at day granularity
	EmployeeName string    `bson:"employeeName" json:"employeeName"` // empty when the shift is unfilled
	StartTime    string    `bson:"startTime" json:"startTime"`       // "HH:MM", 24-hour wall clock
	EndTime      string    `bson:"endTime" json:"endTime"`           // always later than StartTime, same day
	Role         string    `bson:"role" json:"role"`
	Department   string    `bson:"department" json:"department"`
	IsDraft      bool      `bson:"isDraft" json:"isDraft"`
	IsTimeOff    bool      `bson:"isTimeOff" json:"isTimeOff"`
	Completed    bool      `bson:"completed" json:"completed"` // set once, when the worked shift is finished
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Day returns the shift's date truncated to midnight UTC. All "same calendar
// day" comparisons in the engine go through this.
func (s Shift) Day() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether the shift falls on the same calendar day as t.
func (s Shift) SameDay(t time.Time) bool {
	return s.Day().Equal(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Open reports whether the shift still needs an employee.
func (s Shift) Open() bool {
	return !s.IsTimeOff && strings.TrimSpace(s.EmployeeName) == ""
}

// ConflictType classifies what kind of record a candidate shift collided with.
type ConflictType string

const (
	ConflictTimeOff       ConflictType = "time_off"
	ConflictDoubleBooking ConflictType = "double_booking"
)

// ShiftConflict is an advisory warning payload, not an error: callers may
// proceed past it with an explicit override.
type ShiftConflict struct {
	Type  ConflictType `json:"type"`
	Shift Shift        `json:"shift"`
}

// Message renders the human-readable warning shown to the caller.
func (c ShiftConflict) Message() string {
	if c.Type == ConflictTimeOff {
		return c.Shift.EmployeeName + " has time off on this day"
	}
	return c.Shift.EmployeeName + " is already booked on this day"
}
