package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"noxshift/models"
	"noxshift/services/progression"
)

// ProgressionHandler serves the XP ledger, levels and the reward shop.
type ProgressionHandler struct {
	Service progression.ProgressionService
	Logger  *zap.Logger
}

// NewProgressionHandler constructs a ProgressionHandler.
func NewProgressionHandler(service progression.ProgressionService, logger *zap.Logger) *ProgressionHandler {
	return &ProgressionHandler{Service: service, Logger: logger}
}

// GetProgression returns the employee's balance, level and in-level
// progress in one payload.
func (h *ProgressionHandler) GetProgression(c *gin.Context) {
	employeeID := c.Param("employeeId")
	entry, err := h.Service.Balance(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ledger", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employeeId": employeeID,
		"currentXp":  entry.CurrentXP,
		"level":      progression.LevelOf(entry.CurrentXP),
		"progress":   progression.ProgressToNext(entry.CurrentXP),
	})
}

// AwardXP adds points to an employee's ledger.
func (h *ProgressionHandler) AwardXP(c *gin.Context) {
	employeeID := c.Param("employeeId")
	var input struct {
		Amount int    `json:"amount" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Service.AwardXP(c.Request.Context(), employeeID, input.Amount, input.Reason)
	if err != nil {
		var invalid progression.InvalidAmountError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to award XP", "details": err.Error()})
		return
	}

	h.Logger.Info("XP awarded",
		zap.String("employeeId", employeeID),
		zap.Int("amount", input.Amount),
		zap.String("reason", input.Reason))
	c.JSON(http.StatusOK, entry)
}

// Catalog returns the reward shop contents.
func (h *ProgressionHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rewards": h.Service.Catalog()})
}

// Redeem exchanges XP for a reward. Expected failures (unknown reward,
// insufficient balance) come back as tagged results rather than 5xx.
func (h *ProgressionHandler) Redeem(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employeeId" binding:"required"`
		RewardID   string `json:"rewardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Redeem(c.Request.Context(), input.EmployeeID, input.RewardID)
	if err != nil {
		var contention progression.ContentionError
		if errors.As(err, &contention) {
			c.JSON(http.StatusConflict, gin.H{"error": contention.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "redemption failed", "details": err.Error()})
		return
	}

	status := http.StatusOK
	if result.Code == models.RedemptionRewardNotFound {
		status = http.StatusNotFound
	}
	if result.Success {
		h.Logger.Info("reward redeemed",
			zap.String("employeeId", input.EmployeeID),
			zap.String("rewardId", input.RewardID),
			zap.Int("newXp", result.NewXP))
	}
	c.JSON(status, result)
}

// Redemptions lists an employee's redemption history.
func (h *ProgressionHandler) Redemptions(c *gin.Context) {
	employeeID := c.Param("employeeId")
	history, err := h.Service.Redemptions(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load redemptions", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redemptions": history})
}
