// File: database/repository/employee/employee_mongo.go
package employeeRepo

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noxshift/models"
)

func (r *mongoEmployeeRepo) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, employee); err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (r *mongoEmployeeRepo) GetAll(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *mongoEmployeeRepo) GetByName(ctx context.Context, name string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := nameFilter(name)
	var employee models.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// nameFilter matches the name case-insensitively the way the engine
// compares it; Name is the join key across shifts and the ledger.
func nameFilter(name string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}
}
