package models

import "time"

// CoverageBand is the staffing-health classification for one day.
type CoverageBand string

const (
	CoverageCritical    CoverageBand = "critical"    // < 60% of target
	CoverageLow         CoverageBand = "low"         // 60% – <80%
	CoverageGood        CoverageBand = "good"        // 80% – <100%
	CoverageOptimal     CoverageBand = "optimal"     // 100% – 110%
	CoverageOverstaffed CoverageBand = "overstaffed" // > 110%
)

// CoverageSample is derived per day and never persisted.
type CoverageSample struct {
	Date           time.Time    `json:"date"`
	Headcount      int          `json:"headcount"`
	TargetStaffing int          `json:"targetStaffing"`
	Percentage     float64      `json:"percentage"`
	Band           CoverageBand `json:"band"`
}
