package scheduling

import (
	"context"
	"time"

	employeeRepo "noxshift/database/repository/employee"
	shiftRepo "noxshift/database/repository/shift"
	"noxshift/models"
)

// SchedulingService is the engine's store-facing surface: the pure
// functions in this package wired to the shift and employee repositories.
type SchedulingService interface {
	CheckConflict(ctx context.Context, candidate models.Shift, excludeID string) (*models.ShiftConflict, error)
	CoverageForRange(ctx context.Context, start, end time.Time, targetStaffing int) ([]models.CoverageSample, error)
	BuildSuggestions(ctx context.Context, start, end, weekStart time.Time) ([]models.ShiftSuggestion, error)
	ApplySuggestion(ctx context.Context, shiftID, employeeName string) (*models.Shift, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	ShiftRepo    shiftRepo.ShiftRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	Recommender  *Recommender
}
