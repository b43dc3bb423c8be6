package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"noxshift/config"
	shiftRepo "noxshift/database/repository/shift"
	"noxshift/models"
	"noxshift/services/scheduling"
)

// ScheduleHandler serves coverage and the recommend/assign flow. Built
// suggestions are cached in Redis under a session id so that applying one is
// an explicit second step against the same snapshot.
type ScheduleHandler struct {
	Scheduler scheduling.SchedulingService
	Cache     *redis.Client
	Logger    *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(scheduler scheduling.SchedulingService, cache *redis.Client, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Scheduler: scheduler, Cache: cache, Logger: logger}
}

type recommendSession struct {
	Suggestions []models.ShiftSuggestion `json:"suggestions"`
	WeekStart   time.Time                `json:"weekStart"`
}

// Coverage returns one staffing sample per day in [start, end].
func (h *ScheduleHandler) Coverage(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := config.AppConfig.TargetStaffing
	if raw := c.Query("target"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target staffing"})
			return
		}
		target = parsed
	}

	samples, err := h.Scheduler.CoverageForRange(c.Request.Context(), start, end, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute coverage", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coverage": samples})
}

// Recommend builds suggestions for every open shift in the window and
// caches them under a fresh session id.
func (h *ScheduleHandler) Recommend(c *gin.Context) {
	var input struct {
		Start     string `json:"start" binding:"required"`
		End       string `json:"end" binding:"required"`
		WeekStart string `json:"weekStart"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", input.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", input.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date, expected YYYY-MM-DD"})
		return
	}
	weekStart := start
	if input.WeekStart != "" {
		weekStart, err = time.Parse("2006-01-02", input.WeekStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekStart date, expected YYYY-MM-DD"})
			return
		}
	}

	suggestions, err := h.Scheduler.BuildSuggestions(c.Request.Context(), start, end, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build suggestions", "details": err.Error()})
		return
	}

	sessionID := uuid.New().String()
	sessionData, err := json.Marshal(recommendSession{Suggestions: suggestions, WeekStart: weekStart})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal session", "details": err.Error()})
		return
	}
	ttl := time.Duration(config.AppConfig.RecommendSessionTTL) * time.Minute
	ctx := context.Background()
	if err := h.Cache.Set(ctx, sessionKey(sessionID), sessionData, ttl).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":   sessionID,
		"suggestions": suggestions,
	})
}

// Assign applies one suggestion from a cached session. The underlying write
// is conditional: if the shift was filled in the meantime, the caller gets a
// 409 and should request fresh suggestions.
func (h *ScheduleHandler) Assign(c *gin.Context) {
	var input struct {
		SessionID    string `json:"sessionID" binding:"required"`
		ShiftID      string `json:"shiftId" binding:"required"`
		EmployeeName string `json:"employeeName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	sessionData, err := h.Cache.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recommendation session not found or expired"})
		return
	}
	var session recommendSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse session", "details": err.Error()})
		return
	}
	if !sessionHasCandidate(session, input.ShiftID, input.EmployeeName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee was not suggested for this shift in this session"})
		return
	}

	assigned, err := h.Scheduler.ApplySuggestion(c.Request.Context(), input.ShiftID, input.EmployeeName)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "shift was assigned by someone else; request fresh suggestions"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply suggestion", "details": err.Error()})
		return
	}

	h.Logger.Info("suggestion applied",
		zap.String("shiftId", input.ShiftID),
		zap.String("employee", input.EmployeeName))
	c.JSON(http.StatusOK, gin.H{"shift": assigned})
}

func sessionKey(id string) string {
	return "recommend:" + id
}

func sessionHasCandidate(session recommendSession, shiftID, employeeName string) bool {
	for _, suggestion := range session.Suggestions {
		if suggestion.Shift.ID != shiftID {
			continue
		}
		for _, cand := range suggestion.Candidates {
			if cand.EmployeeName == employeeName {
				return true
			}
		}
	}
	return false
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("not a positive integer")
	}
	return n, nil
}
