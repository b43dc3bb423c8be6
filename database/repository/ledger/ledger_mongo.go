// File: database/repository/ledger/ledger_mongo.go
package ledgerRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noxshift/models"
)

func (r *mongoLedgerRepo) Get(ctx context.Context, employeeID string) (models.LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.LedgerEntry
	err := r.entries.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.LedgerEntry{EmployeeID: employeeID}, nil
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return entry, nil
}

func (r *mongoLedgerRepo) IncrementXP(ctx context.Context, employeeID string, amount int) (models.LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"employeeId": employeeID}
	update := bson.M{
		"$inc": bson.M{"currentXp": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var entry models.LedgerEntry
	if err := r.entries.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry); err != nil {
		return models.LedgerEntry{}, err
	}
	return entry, nil
}

func (r *mongoLedgerRepo) CompareAndSetXP(ctx context.Context, employeeID string, expectedXP, newXP int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Conditional write: only lands if the balance is still what the caller
	// read, which serializes concurrent redemptions per employee.
	filter := bson.M{"employeeId": employeeID, "currentXp": expectedXP}
	update := bson.M{"$set": bson.M{"currentXp": newXP, "updatedAt": time.Now().UTC()}}

	res, err := r.entries.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStaleBalance
	}
	return nil
}

func (r *mongoLedgerRepo) RecordRedemption(ctx context.Context, redemption models.Redemption) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if redemption.ID == "" {
		redemption.ID = uuid.New().String()
	}
	if redemption.RedeemedAt.IsZero() {
		redemption.RedeemedAt = time.Now().UTC()
	}
	_, err := r.redemptions.InsertOne(ctx, redemption)
	return err
}

func (r *mongoLedgerRepo) RedemptionsFor(ctx context.Context, employeeID string) ([]models.Redemption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.redemptions.Find(ctx, bson.M{"employeeId": employeeID},
		options.Find().SetSort(bson.D{{Key: "redeemedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var redemptions []models.Redemption
	if err := cursor.All(ctx, &redemptions); err != nil {
		return nil, err
	}
	return redemptions, nil
}
