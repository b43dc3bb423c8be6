package scheduling

import (
	"sort"
	"strings"
	"sync"
	"time"

	"noxshift/models"
)

// Recommender ranks candidate employees for every open shift in a window.
// It never mutates the shift store; applying an accepted suggestion is the
// caller's explicit, separate step.
type Recommender struct {
	Scorer        *Scorer
	MaxCandidates int
}

// NewRecommender wires a recommender around a scorer. maxCandidates bounds
// how many ranked candidates each suggestion retains.
func NewRecommender(scorer *Scorer, maxCandidates int) *Recommender {
	if maxCandidates <= 0 {
		maxCandidates = 3
	}
	return &Recommender{Scorer: scorer, MaxCandidates: maxCandidates}
}

// Recommend scores every employee against every open shift and returns one
// suggestion per open shift, candidates sorted by score descending. An open
// shift with zero employees yields a suggestion with an empty candidate
// list, not an error.
func (r *Recommender) Recommend(openShifts []models.Shift, employees []models.Employee, allShifts []models.Shift, weekStart time.Time) []models.ShiftSuggestion {
	shiftsByEmployee := groupByEmployee(allShifts)

	suggestions := make([]models.ShiftSuggestion, 0, len(openShifts))
	for _, open := range openShifts {
		if !open.Open() {
			continue
		}

		results := make([]models.SuitabilityResult, len(employees))
		var wg sync.WaitGroup
		for i, emp := range employees {
			wg.Add(1)
			go func(i int, emp models.Employee) {
				defer wg.Done()
				results[i] = r.Scorer.Score(emp, open, shiftsByEmployee[strings.ToLower(emp.Name)], weekStart)
			}(i, emp)
		}
		wg.Wait()

		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
		if len(results) > r.MaxCandidates {
			results = results[:r.MaxCandidates]
		}

		suggestions = append(suggestions, models.ShiftSuggestion{
			Shift:      open,
			Candidates: results,
		})
	}
	return suggestions
}

// OpenShifts filters the window down to unfilled, assignable shifts.
func OpenShifts(shifts []models.Shift) []models.Shift {
	var open []models.Shift
	for _, s := range shifts {
		if s.Open() {
			open = append(open, s)
		}
	}
	return open
}

func groupByEmployee(shifts []models.Shift) map[string][]models.Shift {
	grouped := make(map[string][]models.Shift)
	for _, s := range shifts {
		name := strings.ToLower(strings.TrimSpace(s.EmployeeName))
		if name == "" {
			continue
		}
		grouped[name] = append(grouped[name], s)
	}
	return grouped
}
