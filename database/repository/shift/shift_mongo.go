// File: database/repository/shift/shift_mongo.go
package shiftRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noxshift/models"
)

func (r *mongoShiftRepo) Create(ctx context.Context, shift models.Shift) (models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	if shift.CreatedAt.IsZero() {
		shift.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, shift); err != nil {
		return models.Shift{}, err
	}
	return shift, nil
}

func (r *mongoShiftRepo) GetByID(ctx context.Context, id string) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var shift models.Shift
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// dateRangeFilter matches shifts in the half-open window [start, end).
// Shift dates are midnight timestamps, so an inclusive upper bound would
// leak shifts dated exactly end into the result.
func dateRangeFilter(start, end time.Time) bson.M {
	return bson.M{"date": bson.M{"$gte": start, "$lt": end}}
}

func (r *mongoShiftRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := dateRangeFilter(start, end)
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *mongoShiftRepo) Update(ctx context.Context, shift models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": shift.ID}, shift)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoShiftRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoShiftRepo) AssignEmployee(ctx context.Context, shiftID, employeeName string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The filter only matches while the shift is still unassigned, so two
	// concurrent assignments cannot both succeed.
	filter := bson.M{"id": shiftID, "isTimeOff": false, "employeeName": ""}
	update := bson.M{"$set": bson.M{"employeeName": employeeName}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrShiftTaken
	}
	return nil
}

func (r *mongoShiftRepo) MarkCompleted(ctx context.Context, shiftID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The filter only matches while the flag is unset, so a repeated
	// completion cannot trigger the side effects twice.
	filter := bson.M{"id": shiftID, "completed": bson.M{"$ne": true}}
	update := bson.M{"$set": bson.M{"completed": true}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if err := r.coll.FindOne(ctx, bson.M{"id": shiftID}).Err(); err != nil {
			return err
		}
		return ErrAlreadyCompleted
	}
	return nil
}
