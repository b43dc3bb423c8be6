package scheduling

import (
	"context"
	"fmt"
	"time"

	"noxshift/models"
)

// CheckConflict loads the candidate's calendar day from the store and runs
// conflict detection against it.
func (s *DefaultSchedulingService) CheckConflict(ctx context.Context, candidate models.Shift, excludeID string) (*models.ShiftConflict, error) {
	day := candidate.Day()
	existing, err := s.ShiftRepo.GetByDateRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for conflict check: %w", err)
	}
	return DetectConflict(candidate, existing, excludeID), nil
}

// CoverageForRange loads the window once and derives one coverage sample per
// day.
func (s *DefaultSchedulingService) CoverageForRange(ctx context.Context, start, end time.Time, targetStaffing int) ([]models.CoverageSample, error) {
	shifts, err := s.ShiftRepo.GetByDateRange(ctx, Day(start), Day(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for coverage: %w", err)
	}
	return CoverageRange(start, end, shifts, targetStaffing), nil
}

// BuildSuggestions ranks candidates for every open shift in the window.
// It reads the store but never writes to it.
func (s *DefaultSchedulingService) BuildSuggestions(ctx context.Context, start, end, weekStart time.Time) ([]models.ShiftSuggestion, error) {
	shifts, err := s.ShiftRepo.GetByDateRange(ctx, Day(start), Day(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for recommendation: %w", err)
	}
	employees, err := s.EmployeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	return s.Recommender.Recommend(OpenShifts(shifts), employees, shifts, weekStart), nil
}

// ApplySuggestion writes the chosen employee onto an open shift with a
// conditional update. A lost race surfaces as shiftRepo.ErrShiftTaken and
// the caller should rebuild suggestions against fresh data.
func (s *DefaultSchedulingService) ApplySuggestion(ctx context.Context, shiftID, employeeName string) (*models.Shift, error) {
	shift, err := s.ShiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift %s: %w", shiftID, err)
	}

	// Advisory re-check before the write: the suggestion may be stale.
	candidate := *shift
	candidate.EmployeeName = employeeName
	conflict, err := s.CheckConflict(ctx, candidate, shift.ID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, fmt.Errorf("assignment conflict: %s", conflict.Message())
	}

	if err := s.ShiftRepo.AssignEmployee(ctx, shiftID, employeeName); err != nil {
		return nil, err
	}

	assigned := *shift
	assigned.EmployeeName = employeeName
	return &assigned, nil
}
