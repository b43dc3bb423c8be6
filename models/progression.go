package models

import "time"

// NoMaxXP marks the top level's unbounded ceiling.
const NoMaxXP = -1

// ProgressionLevel is one static threshold-table entry. Levels are
// contiguous and ordered: MinXP of level n+1 equals MaxXP+1 of level n, and
// the final level carries MaxXP = NoMaxXP.
type ProgressionLevel struct {
	Level    int      `json:"level"`
	Name     string   `json:"name"`
	MinXP    int      `json:"minXp"`
	MaxXP    int      `json:"maxXp"`
	Color    string   `json:"color"`
	Benefits []string `json:"benefits"`
}

// Unbounded reports whether this is the final, infinite-ceiling level.
func (l ProgressionLevel) Unbounded() bool {
	return l.MaxXP == NoMaxXP
}

// LevelProgress describes how far into the current level an XP total sits.
type LevelProgress struct {
	Level      ProgressionLevel `json:"level"`
	Current    int              `json:"current"`
	Max        int              `json:"max"`
	Percentage float64          `json:"percentage"`
}

// LedgerEntry is an employee's accumulated XP balance. Created implicitly on
// first award, mutated by awards and redemptions, never deleted.
type LedgerEntry struct {
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	CurrentXP  int       `bson:"currentXp" json:"currentXp"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
