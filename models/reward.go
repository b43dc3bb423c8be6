package models

import "time"

// RewardDefinition is one static catalog entry. Redemption never mutates
// the catalog.
type RewardDefinition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	XPCost    int    `json:"xpCost"`
	Available bool   `json:"available"`
}

// RedemptionCode tags the outcome of a redemption attempt.
type RedemptionCode string

const (
	RedemptionOK                RedemptionCode = "ok"
	RedemptionRewardNotFound    RedemptionCode = "reward_not_found"
	RedemptionInsufficientXP    RedemptionCode = "insufficient_xp"
	RedemptionRewardUnavailable RedemptionCode = "reward_unavailable"
)

// RedemptionResult is returned as data for every redemption attempt;
// failures here are expected outcomes, not Go errors.
type RedemptionResult struct {
	Success bool           `json:"success"`
	Code    RedemptionCode `json:"code"`
	NewXP   int            `json:"newXp"`
	Message string         `json:"message"`
}

// Redemption is the persisted record of a successful redemption.
type Redemption struct {
	ID         string    `bson:"id" json:"id"`
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	RewardID   string    `bson:"rewardId" json:"rewardId"`
	XPCost     int       `bson:"xpCost" json:"xpCost"`
	RedeemedAt time.Time `bson:"redeemedAt" json:"redeemedAt"`
}
