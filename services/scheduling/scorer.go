package scheduling

import (
	"math/rand"
	"sync"
	"time"

	"noxshift/models"
)

// Scoring weights. The scorer is a deterministic weighted heuristic; the
// only random element is the bounded jitter that breaks ties between
// otherwise-equal candidates across repeated runs.
const (
	baseScore             = 100.0
	sameDayPenalty        = 50.0
	overtimePenalty       = 30.0 // > 40 weekly hours
	heavyWeekPenalty      = 15.0 // 32-40 weekly hours
	lightWeekBonus        = 10.0 // < 20 weekly hours
	consecutiveDayPenalty = 20.0
)

// Scorer produces 0-100 suitability scores for assigning an employee to an
// open shift. The jitter source is injectable so golden tests can run with
// jitter disabled.
type Scorer struct {
	jitter float64
	rng    *rand.Rand
	mu     sync.Mutex // guards rng; scoring fans out across goroutines
}

// NewScorer builds a Scorer with the given jitter half-range, seeded from
// the wall clock.
func NewScorer(jitter float64) *Scorer {
	return NewScorerWithSource(jitter, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewScorerWithSource builds a Scorer with an explicit random source. Pass a
// zero jitter for fully reproducible output.
func NewScorerWithSource(jitter float64, rng *rand.Rand) *Scorer {
	return &Scorer{jitter: jitter, rng: rng}
}

// Score rates how well the employee fits the candidate shift given their
// existing shifts. weekStart anchors the half-open 7-day window
// [weekStart, weekStart+7d) used for hour balancing.
func (sc *Scorer) Score(employee models.Employee, candidate models.Shift, employeeShifts []models.Shift, weekStart time.Time) models.SuitabilityResult {
	result := models.SuitabilityResult{
		EmployeeName: employee.Name,
		ShiftID:      candidate.ID,
	}

	score := baseScore
	day := candidate.Day()

	// Same-day conflict: an existing shift or time-off block on the
	// candidate's day makes this a poor fit, but not an impossible one.
	for _, s := range employeeShifts {
		if s.SameDay(day) {
			score -= sameDayPenalty
			break
		}
	}

	// Weekly-hour balance within the half-open window.
	weekEnd := Day(weekStart).AddDate(0, 0, 7)
	var weekly float64
	for _, s := range employeeShifts {
		if s.IsTimeOff {
			continue
		}
		d := s.Day()
		if d.Before(Day(weekStart)) || !d.Before(weekEnd) {
			continue
		}
		hours, err := shiftHours(s.StartTime, s.EndTime)
		if err != nil {
			// Inconsistent record: count zero hours and surface a diagnostic
			// instead of letting a negative duration poison the score.
			result.Diagnostics = append(result.Diagnostics, "shift "+s.ID+": "+err.Error())
			continue
		}
		weekly += hours
	}
	result.WeeklyHours = weekly

	switch {
	case weekly > 40:
		score -= overtimePenalty
	case weekly >= 32:
		score -= heavyWeekPenalty
	case weekly < 20:
		score += lightWeekBonus
	}

	// Discourage back-to-back-to-back scheduling: penalize when the employee
	// already works both adjacent days.
	prev, next := day.AddDate(0, 0, -1), day.AddDate(0, 0, 1)
	var hasPrev, hasNext bool
	for _, s := range employeeShifts {
		if s.IsTimeOff {
			continue
		}
		if s.SameDay(prev) {
			hasPrev = true
		}
		if s.SameDay(next) {
			hasNext = true
		}
	}
	if hasPrev && hasNext {
		score -= consecutiveDayPenalty
	}

	if sc.jitter > 0 {
		sc.mu.Lock()
		score += (sc.rng.Float64()*2 - 1) * sc.jitter
		sc.mu.Unlock()
	}

	result.Score = clamp(score, 0, 100)
	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
