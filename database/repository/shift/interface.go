// File: database/repository/shift/interface.go
package shiftRepo

import (
	"context"
	"errors"
	"time"

	"noxshift/database"
	"noxshift/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrShiftTaken reports that a conditional assignment lost the race: the
// shift was no longer unassigned when the write landed. The caller must
// re-run conflict detection and recommendation against fresh data.
var ErrShiftTaken = errors.New("shift is no longer unassigned")

// ErrAlreadyCompleted reports that a shift was completed before, so the
// completion side effects must not run again.
var ErrAlreadyCompleted = errors.New("shift is already completed")

type ShiftRepository interface {
	Create(ctx context.Context, shift models.Shift) (models.Shift, error)
	GetByID(ctx context.Context, id string) (*models.Shift, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Shift, error)
	Update(ctx context.Context, shift models.Shift) error
	Delete(ctx context.Context, id string) error
	// AssignEmployee writes the employee name onto a shift only if the shift
	// is still unassigned; a lost race returns ErrShiftTaken.
	AssignEmployee(ctx context.Context, shiftID, employeeName string) error
	// MarkCompleted flips the completed flag only if it is not set yet;
	// a repeat completion returns ErrAlreadyCompleted.
	MarkCompleted(ctx context.Context, shiftID string) error
}

type mongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo constructs a new MongoDB ShiftRepository.
func NewMongoShiftRepo() ShiftRepository {
	db := database.MongoClient.Database("noxshift")
	return &mongoShiftRepo{
		coll: db.Collection("shifts"),
	}
}
