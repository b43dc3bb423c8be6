package progression

import (
	"context"
	"errors"
	"fmt"

	ledgerRepo "noxshift/database/repository/ledger"
	"noxshift/models"
)

// rewardCatalog is the static list of redeemable items. Redemption debits
// the ledger but never mutates this table.
var rewardCatalog = []models.RewardDefinition{
	{ID: "coffee-voucher", Name: "Free Coffee Voucher", Category: "perk", XPCost: 100, Available: true},
	{ID: "lunch-voucher", Name: "Lunch Voucher", Category: "perk", XPCost: 250, Available: true},
	{ID: "gift-card-25", Name: "$25 Gift Card", Category: "gift", XPCost: 500, Available: true},
	{ID: "premium-parking", Name: "Premium Parking Spot (1 Month)", Category: "perk", XPCost: 750, Available: true},
	{ID: "gift-card-50", Name: "$50 Gift Card", Category: "gift", XPCost: 1000, Available: true},
	{ID: "extra-day-off", Name: "Extra Paid Day Off", Category: "time", XPCost: 2000, Available: true},
	{ID: "team-dinner", Name: "Team Dinner On Us", Category: "event", XPCost: 3000, Available: false},
}

// redeemMaxAttempts bounds the read-compare-write retry loop under
// concurrent balance changes.
const redeemMaxAttempts = 5

// Catalog returns the full reward list, including unavailable entries so
// callers can render them greyed out.
func (s *DefaultProgressionService) Catalog() []models.RewardDefinition {
	catalog := make([]models.RewardDefinition, len(rewardCatalog))
	copy(catalog, rewardCatalog)
	return catalog
}

// FindReward looks a reward up by id.
func FindReward(rewardID string) (models.RewardDefinition, bool) {
	for _, r := range rewardCatalog {
		if r.ID == rewardID {
			return r, true
		}
	}
	return models.RewardDefinition{}, false
}

// Redeem exchanges XP for a catalog reward. Unknown rewards and insufficient
// balances are expected outcomes returned as tagged results, not errors; a
// Go error only escapes when the ledger itself cannot be read or written.
//
// The debit is a compare-and-set against the balance the attempt read, so a
// concurrent second redemption can never double-spend a stale balance.
func (s *DefaultProgressionService) Redeem(ctx context.Context, employeeID, rewardID string) (models.RedemptionResult, error) {
	reward, ok := FindReward(rewardID)
	if !ok {
		entry, err := s.Repo.Get(ctx, employeeID)
		if err != nil {
			return models.RedemptionResult{}, err
		}
		return models.RedemptionResult{
			Code:    models.RedemptionRewardNotFound,
			NewXP:   entry.CurrentXP,
			Message: fmt.Sprintf("reward %q not found", rewardID),
		}, nil
	}

	for attempt := 1; attempt <= redeemMaxAttempts; attempt++ {
		entry, err := s.Repo.Get(ctx, employeeID)
		if err != nil {
			return models.RedemptionResult{}, err
		}

		if s.EnforceAvailability && !reward.Available {
			return models.RedemptionResult{
				Code:    models.RedemptionRewardUnavailable,
				NewXP:   entry.CurrentXP,
				Message: fmt.Sprintf("%s is currently unavailable", reward.Name),
			}, nil
		}

		if entry.CurrentXP < reward.XPCost {
			return models.RedemptionResult{
				Code:    models.RedemptionInsufficientXP,
				NewXP:   entry.CurrentXP,
				Message: fmt.Sprintf("need %d XP for %s, have %d", reward.XPCost, reward.Name, entry.CurrentXP),
			}, nil
		}

		newXP := entry.CurrentXP - reward.XPCost
		err = s.Repo.CompareAndSetXP(ctx, employeeID, entry.CurrentXP, newXP)
		if errors.Is(err, ledgerRepo.ErrStaleBalance) {
			// Someone else moved the balance between our read and write;
			// re-read and try again.
			continue
		}
		if err != nil {
			return models.RedemptionResult{}, err
		}

		if err := s.Repo.RecordRedemption(ctx, models.Redemption{
			EmployeeID: employeeID,
			RewardID:   reward.ID,
			XPCost:     reward.XPCost,
		}); err != nil {
			return models.RedemptionResult{}, err
		}

		return models.RedemptionResult{
			Success: true,
			Code:    models.RedemptionOK,
			NewXP:   newXP,
			Message: fmt.Sprintf("redeemed %s for %d XP", reward.Name, reward.XPCost),
		}, nil
	}

	return models.RedemptionResult{}, ContentionError{EmployeeID: employeeID, Attempts: redeemMaxAttempts}
}

// Redemptions lists an employee's redemption history, newest first.
func (s *DefaultProgressionService) Redemptions(ctx context.Context, employeeID string) ([]models.Redemption, error) {
	return s.Repo.RedemptionsFor(ctx, employeeID)
}
