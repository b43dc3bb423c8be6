package scheduling

import (
	"strings"

	"noxshift/models"
)

// DetectConflict checks whether the candidate shift's employee is already
// booked or marked unavailable on the candidate's calendar day. A nil return
// is the success path; a non-nil ShiftConflict is an advisory warning the
// caller may override, never an error.
//
// excludeID skips a record when an existing shift is being edited in place.
func DetectConflict(candidate models.Shift, existing []models.Shift, excludeID string) *models.ShiftConflict {
	// Placing a time-off block never conflicts with anything.
	if candidate.IsTimeOff {
		return nil
	}
	name := strings.TrimSpace(candidate.EmployeeName)
	if name == "" {
		return nil
	}

	day := candidate.Day()
	for _, s := range existing {
		if s.ID == excludeID {
			continue
		}
		if !s.SameDay(day) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(s.EmployeeName), name) {
			continue
		}
		conflictType := models.ConflictDoubleBooking
		if s.IsTimeOff {
			conflictType = models.ConflictTimeOff
		}
		return &models.ShiftConflict{Type: conflictType, Shift: s}
	}
	return nil
}
