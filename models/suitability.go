package models

// SuitabilityResult is one employee's fitness estimate for one open shift.
// Score is already clamped to [0,100].
type SuitabilityResult struct {
	EmployeeName string   `json:"employeeName"`
	ShiftID      string   `json:"shiftId"`
	Score        float64  `json:"score"`
	WeeklyHours  float64  `json:"weeklyHours"`
	Diagnostics  []string `json:"diagnostics,omitempty"` // inconsistent source records, e.g. endTime <= startTime
}

// ShiftSuggestion pairs an open shift with its ranked candidates, best
// first. An empty candidate list is a valid suggestion, not an error.
type ShiftSuggestion struct {
	Shift      Shift               `json:"shift"`
	Candidates []SuitabilityResult `json:"candidates"`
}

// Recommended returns the top candidate, if any.
func (s ShiftSuggestion) Recommended() (SuitabilityResult, bool) {
	if len(s.Candidates) == 0 {
		return SuitabilityResult{}, false
	}
	return s.Candidates[0], true
}
