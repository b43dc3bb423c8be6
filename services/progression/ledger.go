package progression

import (
	"context"

	"noxshift/models"
)

// Balance returns the employee's current ledger entry; a never-awarded
// employee reads as zero XP.
func (s *DefaultProgressionService) Balance(ctx context.Context, employeeID string) (models.LedgerEntry, error) {
	return s.Repo.Get(ctx, employeeID)
}

// Progress resolves the employee's balance into a level and in-level
// completion percentage.
func (s *DefaultProgressionService) Progress(ctx context.Context, employeeID string) (models.LevelProgress, error) {
	entry, err := s.Repo.Get(ctx, employeeID)
	if err != nil {
		return models.LevelProgress{}, err
	}
	return ProgressToNext(entry.CurrentXP), nil
}

// AwardXP adds a positive amount to the employee's balance, creating the
// ledger entry at zero on first award. Awarding never decreases XP.
func (s *DefaultProgressionService) AwardXP(ctx context.Context, employeeID string, amount int, reason string) (models.LedgerEntry, error) {
	if amount <= 0 {
		return models.LedgerEntry{}, InvalidAmountError{Amount: amount}
	}
	return s.Repo.IncrementXP(ctx, employeeID, amount)
}
