package progression

import (
	"context"

	ledgerRepo "noxshift/database/repository/ledger"
	"noxshift/models"
)

// ProgressionService owns the XP ledger, the level table and the reward
// catalog.
type ProgressionService interface {
	Balance(ctx context.Context, employeeID string) (models.LedgerEntry, error)
	Progress(ctx context.Context, employeeID string) (models.LevelProgress, error)
	AwardXP(ctx context.Context, employeeID string, amount int, reason string) (models.LedgerEntry, error)
	Catalog() []models.RewardDefinition
	Redeem(ctx context.Context, employeeID, rewardID string) (models.RedemptionResult, error)
	Redemptions(ctx context.Context, employeeID string) ([]models.Redemption, error)
}

// DefaultProgressionService implements ProgressionService.
type DefaultProgressionService struct {
	Repo ledgerRepo.LedgerRepository
	// EnforceAvailability hard-blocks redeeming catalog entries flagged
	// unavailable. Off by default; the flag is otherwise caller policy.
	EnforceAvailability bool
}
