package scheduling

import (
	"time"

	"noxshift/models"
)

// Coverage computes the headcount and staffing-health band for one calendar
// day. Time-off records contribute nothing; draft shifts count because they
// represent planned staffing. The function is pure and order-independent.
func Coverage(date time.Time, shifts []models.Shift, targetStaffing int) models.CoverageSample {
	sample := models.CoverageSample{
		Date:           Day(date),
		TargetStaffing: targetStaffing,
		Band:           models.CoverageCritical,
	}

	for _, s := range shifts {
		if s.IsTimeOff {
			continue
		}
		if s.SameDay(date) {
			sample.Headcount++
		}
	}

	if targetStaffing <= 0 {
		// Inconsistent configuration; report zero coverage rather than divide.
		return sample
	}

	sample.Percentage = float64(sample.Headcount) / float64(targetStaffing) * 100
	sample.Band = bandFor(sample.Percentage)
	return sample
}

// CoverageRange computes one sample per day over [start, end] inclusive.
func CoverageRange(start, end time.Time, shifts []models.Shift, targetStaffing int) []models.CoverageSample {
	var samples []models.CoverageSample
	for day := Day(start); !day.After(Day(end)); day = day.AddDate(0, 0, 1) {
		samples = append(samples, Coverage(day, shifts, targetStaffing))
	}
	return samples
}

// bandFor classifies a coverage percentage. Lower bounds are inclusive:
// exactly 80% is good, exactly 100% and exactly 110% are optimal.
func bandFor(pct float64) models.CoverageBand {
	switch {
	case pct < 60:
		return models.CoverageCritical
	case pct < 80:
		return models.CoverageLow
	case pct < 100:
		return models.CoverageGood
	case pct <= 110:
		return models.CoverageOptimal
	default:
		return models.CoverageOverstaffed
	}
}
