package scheduling

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	shiftRepo "noxshift/database/repository/shift"
	"noxshift/models"
)

// fakeShiftRepo is an in-memory ShiftRepository for service tests.
type fakeShiftRepo struct {
	shifts map[string]models.Shift
}

func newFakeShiftRepo(shifts ...models.Shift) *fakeShiftRepo {
	repo := &fakeShiftRepo{shifts: make(map[string]models.Shift)}
	for _, s := range shifts {
		repo.shifts[s.ID] = s
	}
	return repo
}

func (f *fakeShiftRepo) Create(_ context.Context, shift models.Shift) (models.Shift, error) {
	f.shifts[shift.ID] = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (*models.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (f *fakeShiftRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range f.shifts {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, shift models.Shift) error {
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) MarkCompleted(_ context.Context, shiftID string) error {
	s, ok := f.shifts[shiftID]
	if !ok {
		return errors.New("not found")
	}
	if s.Completed {
		return shiftRepo.ErrAlreadyCompleted
	}
	s.Completed = true
	f.shifts[shiftID] = s
	return nil
}

func (f *fakeShiftRepo) AssignEmployee(_ context.Context, shiftID, employeeName string) error {
	s, ok := f.shifts[shiftID]
	if !ok || s.IsTimeOff || strings.TrimSpace(s.EmployeeName) != "" {
		return shiftRepo.ErrShiftTaken
	}
	s.EmployeeName = employeeName
	f.shifts[shiftID] = s
	return nil
}

type fakeEmployeeRepo struct {
	employees []models.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e models.Employee) (models.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context) ([]models.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByName(_ context.Context, name string) (*models.Employee, error) {
	for _, e := range f.employees {
		if strings.EqualFold(e.Name, name) {
			return &e, nil
		}
	}
	return nil, errors.New("not found")
}

func testService(shifts *fakeShiftRepo, employees []models.Employee) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		ShiftRepo:    shifts,
		EmployeeRepo: &fakeEmployeeRepo{employees: employees},
		Recommender:  NewRecommender(NewScorerWithSource(0, rand.New(rand.NewSource(1))), 3),
	}
}

func TestApplySuggestion(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	open := models.Shift{ID: "open", Date: weekStart, StartTime: "09:00", EndTime: "17:00"}
	repo := newFakeShiftRepo(open)
	svc := testService(repo, []models.Employee{{Name: "Alice"}})

	assigned, err := svc.ApplySuggestion(context.Background(), "open", "Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned.EmployeeName != "Alice" {
		t.Errorf("expected returned shift assigned to Alice, got %q", assigned.EmployeeName)
	}
	if repo.shifts["open"].EmployeeName != "Alice" {
		t.Errorf("expected stored shift assigned to Alice, got %q", repo.shifts["open"].EmployeeName)
	}
}

func TestApplySuggestionLostRace(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	taken := models.Shift{ID: "taken", Date: weekStart, EmployeeName: "Bob", StartTime: "09:00", EndTime: "17:00"}
	svc := testService(newFakeShiftRepo(taken), []models.Employee{{Name: "Alice"}})

	_, err := svc.ApplySuggestion(context.Background(), "taken", "Alice")
	if err == nil {
		t.Fatal("expected an error when the shift was already assigned")
	}
}

func TestApplySuggestionRechecksConflicts(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	open := models.Shift{ID: "open", Date: weekStart, StartTime: "09:00", EndTime: "17:00"}
	existing := models.Shift{ID: "other", Date: weekStart, EmployeeName: "Alice", StartTime: "10:00", EndTime: "18:00"}
	repo := newFakeShiftRepo(open, existing)
	svc := testService(repo, []models.Employee{{Name: "Alice"}})

	_, err := svc.ApplySuggestion(context.Background(), "open", "Alice")
	if err == nil {
		t.Fatal("expected a conflict error: Alice already works that day")
	}
	if repo.shifts["open"].EmployeeName != "" {
		t.Error("shift must stay unassigned after a rejected suggestion")
	}
}

func TestBuildSuggestions(t *testing.T) {
	weekStart := day(2026, time.March, 2)
	open := models.Shift{ID: "open", Date: weekStart.AddDate(0, 0, 3), StartTime: "09:00", EndTime: "17:00"}
	worked := models.Shift{ID: "worked", Date: weekStart, EmployeeName: "Bob", StartTime: "09:00", EndTime: "17:00"}
	repo := newFakeShiftRepo(open, worked)
	svc := testService(repo, []models.Employee{{Name: "Alice"}, {Name: "Bob"}})

	suggestions, err := svc.BuildSuggestions(context.Background(), weekStart, weekStart.AddDate(0, 0, 6), weekStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one suggestion for the single open shift, got %d", len(suggestions))
	}
	if len(suggestions[0].Candidates) != 2 {
		t.Fatalf("expected both employees scored, got %d", len(suggestions[0].Candidates))
	}
	top, ok := suggestions[0].Recommended()
	if !ok {
		t.Fatal("expected a recommended candidate")
	}
	if top.Score < suggestions[0].Candidates[1].Score {
		t.Error("recommended candidate is not the highest scored")
	}
}
