package models

import "time"

// Employee is the join anchor across shifts, hours and the progression
// ledger; Name is unique and used as the key everywhere.
type Employee struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rate      float64   `bson:"rate" json:"rate"` // hourly cost, used by reporting collaborators
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
