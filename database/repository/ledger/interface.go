// File: database/repository/ledger/interface.go
package ledgerRepo

import (
	"context"
	"errors"

	"noxshift/database"
	"noxshift/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStaleBalance reports that a compare-and-set write found a different
// balance than expected; the caller must re-read and retry.
var ErrStaleBalance = errors.New("ledger balance changed concurrently")

type LedgerRepository interface {
	// Get returns the employee's ledger entry. A missing entry reads as a
	// zero balance: entries are created implicitly on first award.
	Get(ctx context.Context, employeeID string) (models.LedgerEntry, error)
	// IncrementXP atomically adds amount to the balance, creating the entry
	// at zero if absent, and returns the updated entry.
	IncrementXP(ctx context.Context, employeeID string, amount int) (models.LedgerEntry, error)
	// CompareAndSetXP writes newXP only if the stored balance still equals
	// expectedXP; otherwise it returns ErrStaleBalance.
	CompareAndSetXP(ctx context.Context, employeeID string, expectedXP, newXP int) error
	RecordRedemption(ctx context.Context, redemption models.Redemption) error
	RedemptionsFor(ctx context.Context, employeeID string) ([]models.Redemption, error)
}

type mongoLedgerRepo struct {
	entries     *mongo.Collection
	redemptions *mongo.Collection
}

// NewMongoLedgerRepo constructs a new MongoDB LedgerRepository.
func NewMongoLedgerRepo() LedgerRepository {
	db := database.MongoClient.Database("noxshift")
	return &mongoLedgerRepo{
		entries:     db.Collection("ledger"),
		redemptions: db.Collection("redemptions"),
	}
}
