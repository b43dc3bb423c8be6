package progression

import "noxshift/models"

// Levels is the static progression threshold table. Entries are contiguous
// and ordered: each level's MinXP is the previous level's MaxXP+1, the
// lowest level starts at 0 and the top level has no ceiling.
var Levels = []models.ProgressionLevel{
	{Level: 1, Name: "Newcomer", MinXP: 0, MaxXP: 99, Color: "#9CA3AF", Benefits: []string{"Access to the rewards shop"}},
	{Level: 2, Name: "Rising Star", MinXP: 100, MaxXP: 249, Color: "#22C55E", Benefits: []string{"Shift swap priority"}},
	{Level: 3, Name: "Team Player", MinXP: 250, MaxXP: 499, Color: "#3B82F6", Benefits: []string{"Shift swap priority", "Early schedule access"}},
	{Level: 4, Name: "Shift Pro", MinXP: 500, MaxXP: 999, Color: "#8B5CF6", Benefits: []string{"Early schedule access", "Preferred shift requests"}},
	{Level: 5, Name: "Veteran", MinXP: 1000, MaxXP: 1999, Color: "#F59E0B", Benefits: []string{"Preferred shift requests", "Quarterly bonus eligibility"}},
	{Level: 6, Name: "Elite", MinXP: 2000, MaxXP: 3999, Color: "#EF4444", Benefits: []string{"Quarterly bonus eligibility", "Mentor badge"}},
	{Level: 7, Name: "Legend", MinXP: 4000, MaxXP: models.NoMaxXP, Color: "#FFD700", Benefits: []string{"Mentor badge", "Annual recognition award"}},
}

// LevelOf returns the level an XP total falls into by scanning the table
// from the highest MinXP down. The lowest level's MinXP of 0 guarantees a
// match for any non-negative total.
func LevelOf(xp int) models.ProgressionLevel {
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].MinXP {
			return Levels[i]
		}
	}
	return Levels[0]
}

// NextLevel returns the level above l, or false when l is the top level.
func NextLevel(l models.ProgressionLevel) (models.ProgressionLevel, bool) {
	for i, candidate := range Levels {
		if candidate.Level == l.Level && i+1 < len(Levels) {
			return Levels[i+1], true
		}
	}
	return models.ProgressionLevel{}, false
}

// ProgressToNext reports how far an XP total has advanced within its level.
// Inside the unbounded top level, progress is always complete.
func ProgressToNext(xp int) models.LevelProgress {
	level := LevelOf(xp)
	next, ok := NextLevel(level)
	if !ok {
		return models.LevelProgress{
			Level:      level,
			Current:    xp,
			Max:        xp,
			Percentage: 100,
		}
	}

	current := xp - level.MinXP
	max := next.MinXP - level.MinXP
	return models.LevelProgress{
		Level:      level,
		Current:    current,
		Max:        max,
		Percentage: float64(current) / float64(max) * 100,
	}
}
