package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	shiftRepo "noxshift/database/repository/shift"
	"noxshift/models"
	"noxshift/services/scheduling"
)

// ShiftHandler serves shift CRUD plus completion.
type ShiftHandler struct {
	Shifts    shiftRepo.ShiftRepository
	Scheduler scheduling.SchedulingService
	Completer ShiftCompleter
	Logger    *zap.Logger
}

// ShiftCompleter enqueues the XP-award follow-up when a shift is worked to
// completion.
type ShiftCompleter interface {
	EnqueueShiftCompleted(shiftID, employeeName string) error
}

// NewShiftHandler constructs a ShiftHandler.
func NewShiftHandler(shifts shiftRepo.ShiftRepository, scheduler scheduling.SchedulingService, completer ShiftCompleter, logger *zap.Logger) *ShiftHandler {
	return &ShiftHandler{Shifts: shifts, Scheduler: scheduler, Completer: completer, Logger: logger}
}

type shiftInput struct {
	Date         time.Time `json:"date" binding:"required"`
	EmployeeName string    `json:"employeeName"`
	StartTime    string    `json:"startTime" binding:"required"`
	EndTime      string    `json:"endTime" binding:"required"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	IsDraft      bool      `json:"isDraft"`
	IsTimeOff    bool      `json:"isTimeOff"`
}

// CreateShift persists a new shift. Conflicts are advisory: the response
// carries the warning and the caller may retry with ?override=true.
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var input shiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	shift := models.Shift{
		Date:         input.Date,
		EmployeeName: input.EmployeeName,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Role:         input.Role,
		Department:   input.Department,
		IsDraft:      input.IsDraft,
		IsTimeOff:    input.IsTimeOff,
	}

	if c.Query("override") != "true" {
		conflict, err := h.Scheduler.CheckConflict(c.Request.Context(), shift, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict check failed", "details": err.Error()})
			return
		}
		if conflict != nil {
			c.JSON(http.StatusConflict, gin.H{
				"warning":  conflict.Message(),
				"conflict": conflict,
			})
			return
		}
	}

	created, err := h.Shifts.Create(c.Request.Context(), shift)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create shift", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListShifts returns shifts in [start, end]; drafts can be filtered out
// with ?includeDrafts=false.
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shifts, err := h.Shifts.GetByDateRange(c.Request.Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shifts", "details": err.Error()})
		return
	}

	if c.Query("includeDrafts") == "false" {
		published := make([]models.Shift, 0, len(shifts))
		for _, s := range shifts {
			if !s.IsDraft {
				published = append(published, s)
			}
		}
		shifts = published
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// UpdateShift replaces a shift's fields, re-running conflict detection with
// the shift's own id excluded.
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id := c.Param("id")
	var input shiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	existing, err := h.Shifts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shift", "details": err.Error()})
		return
	}

	updated := *existing
	updated.Date = input.Date
	updated.EmployeeName = input.EmployeeName
	updated.StartTime = input.StartTime
	updated.EndTime = input.EndTime
	updated.Role = input.Role
	updated.Department = input.Department
	updated.IsDraft = input.IsDraft
	updated.IsTimeOff = input.IsTimeOff

	if c.Query("override") != "true" {
		conflict, err := h.Scheduler.CheckConflict(c.Request.Context(), updated, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict check failed", "details": err.Error()})
			return
		}
		if conflict != nil {
			c.JSON(http.StatusConflict, gin.H{
				"warning":  conflict.Message(),
				"conflict": conflict,
			})
			return
		}
	}

	if err := h.Shifts.Update(c.Request.Context(), updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shift", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteShift removes a shift.
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id := c.Param("id")
	if err := h.Shifts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shift", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// CompleteShift marks a worked shift as finished and queues the XP award
// for its employee.
func (h *ShiftHandler) CompleteShift(c *gin.Context) {
	id := c.Param("id")
	shift, err := h.Shifts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shift", "details": err.Error()})
		return
	}
	if shift.IsTimeOff || shift.EmployeeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only assigned working shifts can be completed"})
		return
	}

	// Flag the shift first: a repeated completion must never enqueue a
	// second XP award.
	if err := h.Shifts.MarkCompleted(c.Request.Context(), shift.ID); err != nil {
		if errors.Is(err, shiftRepo.ErrAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": "shift is already completed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete shift", "details": err.Error()})
		return
	}

	if err := h.Completer.EnqueueShiftCompleted(shift.ID, shift.EmployeeName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue completion reward", "details": err.Error()})
		return
	}

	h.Logger.Info("shift completion queued",
		zap.String("shiftId", shift.ID),
		zap.String("employee", shift.EmployeeName))
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "shiftId": shift.ID})
}

// parseDateRange reads the start/end query params as YYYY-MM-DD dates.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid or missing start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid or missing end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}
	return start, end, nil
}
