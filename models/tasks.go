package models

// ShiftCompletedPayload is the queued follow-up for a worked shift; the
// reward worker turns it into an XP award.
type ShiftCompletedPayload struct {
	ShiftID      string `json:"shiftId"`
	EmployeeName string `json:"employeeName"`
}
