// File: database/repository/employee/interface.go
package employeeRepo

import (
	"context"

	"noxshift/database"
	"noxshift/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByName(ctx context.Context, name string) (*models.Employee, error)
}

type mongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo constructs a new MongoDB EmployeeRepository.
func NewMongoEmployeeRepo() EmployeeRepository {
	db := database.MongoClient.Database("noxshift")
	return &mongoEmployeeRepo{
		coll: db.Collection("employees"),
	}
}
