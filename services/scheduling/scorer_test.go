package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"noxshift/models"
)

func deterministicScorer() *Scorer {
	return NewScorerWithSource(0, rand.New(rand.NewSource(1)))
}

func eightHourShift(date time.Time) models.Shift {
	return models.Shift{Date: date, EmployeeName: "Alice", StartTime: "09:00", EndTime: "17:00"}
}

func weekOfShifts(weekStart time.Time, days int) []models.Shift {
	shifts := make([]models.Shift, days)
	for i := range shifts {
		shifts[i] = eightHourShift(weekStart.AddDate(0, 0, i))
	}
	return shifts
}

func TestScoreDeterministicCases(t *testing.T) {
	weekStart := day(2026, time.March, 2) // Monday
	alice := models.Employee{Name: "Alice"}

	tests := []struct {
		name      string
		candidate models.Shift
		shifts    []models.Shift
		wantScore float64
		wantHours float64
	}{
		{
			name:      "no shifts clamps the light-week bonus at 100",
			candidate: models.Shift{ID: "open", Date: weekStart},
			shifts:    nil,
			wantScore: 100,
			wantHours: 0,
		},
		{
			name:      "same-day shift costs 50",
			candidate: models.Shift{ID: "open", Date: weekStart},
			shifts:    []models.Shift{eightHourShift(weekStart)},
			wantScore: 60, // 100 - 50 + 10 light-week bonus
			wantHours: 8,
		},
		{
			name:      "same-day time off also costs 50 but adds no hours",
			candidate: models.Shift{ID: "open", Date: weekStart},
			shifts:    []models.Shift{{Date: weekStart, EmployeeName: "Alice", IsTimeOff: true}},
			wantScore: 60,
			wantHours: 0,
		},
		{
			name:      "over 40 weekly hours costs 30",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 14)},
			shifts:    weekOfShifts(weekStart, 6), // 48h
			wantScore: 70,
			wantHours: 48,
		},
		{
			name:      "40 weekly hours sits in the heavy band",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 14)},
			shifts:    weekOfShifts(weekStart, 5), // 40h
			wantScore: 85,
			wantHours: 40,
		},
		{
			name:      "mid-range hours leave the base untouched",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 14)},
			shifts:    weekOfShifts(weekStart, 3), // 24h
			wantScore: 100,
			wantHours: 24,
		},
		{
			name:      "shifts on both adjacent days cost 20",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 1)},
			shifts: []models.Shift{
				eightHourShift(weekStart),
				eightHourShift(weekStart.AddDate(0, 0, 2)),
			},
			wantScore: 90, // 100 + 10 light week - 20 consecutive
			wantHours: 16,
		},
		{
			name:      "stacked penalties clamp at zero",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 2)},
			shifts:    weekOfShifts(weekStart, 6), // same-day, adjacent days, 48h
			wantScore: 0,
			wantHours: 48,
		},
		{
			name:      "shift at the end of the half-open window is excluded",
			candidate: models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 14)},
			shifts:    []models.Shift{eightHourShift(weekStart.AddDate(0, 0, 7))},
			wantScore: 100,
			wantHours: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deterministicScorer().Score(alice, tt.candidate, tt.shifts, weekStart)
			if got.Score != tt.wantScore {
				t.Errorf("expected score %.1f, got %.1f", tt.wantScore, got.Score)
			}
			if got.WeeklyHours != tt.wantHours {
				t.Errorf("expected %.1f weekly hours, got %.1f", tt.wantHours, got.WeeklyHours)
			}
		})
	}
}

func TestScoreSurfacesInconsistentRecords(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	shifts := []models.Shift{
		{ID: "bad", Date: weekStart, EmployeeName: "Alice", StartTime: "17:00", EndTime: "09:00"},
	}
	candidate := models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 3)}

	got := deterministicScorer().Score(models.Employee{Name: "Alice"}, candidate, shifts, weekStart)
	if got.WeeklyHours != 0 {
		t.Errorf("expected inverted shift clamped to zero hours, got %.1f", got.WeeklyHours)
	}
	if len(got.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic for the inverted record, got %v", got.Diagnostics)
	}
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("score %f escaped [0,100]", got.Score)
	}
}

func TestScoreJitterStaysBounded(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	scorer := NewScorerWithSource(5, rand.New(rand.NewSource(42)))
	alice := models.Employee{Name: "Alice"}
	candidate := models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 14)}
	shifts := weekOfShifts(weekStart, 5) // deterministic base of 85

	for i := 0; i < 200; i++ {
		got := scorer.Score(alice, candidate, shifts, weekStart)
		if got.Score < 80 || got.Score > 90 {
			t.Fatalf("jittered score %.2f escaped the +/-5 band around 85", got.Score)
		}
	}
}

func TestScoreAlwaysClamped(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	scorer := NewScorer(5)
	candidate := models.Shift{ID: "open", Date: weekStart}

	for i := 0; i < 200; i++ {
		got := scorer.Score(models.Employee{Name: "Alice"}, candidate, nil, weekStart)
		if got.Score < 0 || got.Score > 100 {
			t.Fatalf("score %.2f escaped [0,100]", got.Score)
		}
	}
}
