package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	shiftRepo "noxshift/database/repository/shift"
	"noxshift/models"
)

// stubShiftRepo is an in-memory ShiftRepository for handler tests.
type stubShiftRepo struct {
	shifts map[string]models.Shift
}

func newStubShiftRepo(shifts ...models.Shift) *stubShiftRepo {
	repo := &stubShiftRepo{shifts: make(map[string]models.Shift)}
	for _, s := range shifts {
		repo.shifts[s.ID] = s
	}
	return repo
}

func (f *stubShiftRepo) Create(_ context.Context, shift models.Shift) (models.Shift, error) {
	f.shifts[shift.ID] = shift
	return shift, nil
}

func (f *stubShiftRepo) GetByID(_ context.Context, id string) (*models.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *stubShiftRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range f.shifts {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *stubShiftRepo) Update(_ context.Context, shift models.Shift) error {
	f.shifts[shift.ID] = shift
	return nil
}

func (f *stubShiftRepo) Delete(_ context.Context, id string) error {
	delete(f.shifts, id)
	return nil
}

func (f *stubShiftRepo) AssignEmployee(_ context.Context, shiftID, employeeName string) error {
	s := f.shifts[shiftID]
	s.EmployeeName = employeeName
	f.shifts[shiftID] = s
	return nil
}

func (f *stubShiftRepo) MarkCompleted(_ context.Context, shiftID string) error {
	s, ok := f.shifts[shiftID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if s.Completed {
		return shiftRepo.ErrAlreadyCompleted
	}
	s.Completed = true
	f.shifts[shiftID] = s
	return nil
}

// countingCompleter records how many completion tasks were enqueued.
type countingCompleter struct {
	enqueued int
}

func (c *countingCompleter) EnqueueShiftCompleted(shiftID, employeeName string) error {
	c.enqueued++
	return nil
}

func completionRouter(repo *stubShiftRepo, completer *countingCompleter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewShiftHandler(repo, nil, completer, zap.NewNop())
	r.POST("/api/shifts/:id/complete", h.CompleteShift)
	return r
}

func TestCompleteShiftIsIdempotent(t *testing.T) {
	repo := newStubShiftRepo(models.Shift{
		ID:           "s1",
		Date:         time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		EmployeeName: "Alice",
		StartTime:    "09:00",
		EndTime:      "17:00",
	})
	completer := &countingCompleter{}
	router := completionRouter(repo, completer)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/shifts/s1/complete", nil))
	if first.Code != http.StatusAccepted {
		t.Fatalf("expected 202 on first completion, got %d: %s", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/shifts/s1/complete", nil))
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409 on repeat completion, got %d: %s", second.Code, second.Body.String())
	}

	if completer.enqueued != 1 {
		t.Errorf("expected exactly one XP award enqueued, got %d", completer.enqueued)
	}
	if !repo.shifts["s1"].Completed {
		t.Error("shift must be persisted as completed")
	}
}

func TestCompleteShiftRejectsUnassignedAndTimeOff(t *testing.T) {
	repo := newStubShiftRepo(
		models.Shift{ID: "open", Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)},
		models.Shift{ID: "off", Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), EmployeeName: "Alice", IsTimeOff: true},
	)
	completer := &countingCompleter{}
	router := completionRouter(repo, completer)

	for _, id := range []string{"open", "off", "missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/shifts/"+id+"/complete", nil))
		if w.Code == http.StatusAccepted {
			t.Errorf("shift %q must not be completable, got %d", id, w.Code)
		}
	}
	if completer.enqueued != 0 {
		t.Errorf("no XP award should be enqueued, got %d", completer.enqueued)
	}
}
