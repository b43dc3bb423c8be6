package progression

import (
	"testing"

	"noxshift/models"
)

func TestLevelTableIsContiguous(t *testing.T) {
	if Levels[0].MinXP != 0 {
		t.Fatalf("lowest level must start at 0, starts at %d", Levels[0].MinXP)
	}
	for i := 0; i < len(Levels)-1; i++ {
		if Levels[i].MaxXP+1 != Levels[i+1].MinXP {
			t.Errorf("gap between level %d (max %d) and level %d (min %d)",
				Levels[i].Level, Levels[i].MaxXP, Levels[i+1].Level, Levels[i+1].MinXP)
		}
	}
	if !Levels[len(Levels)-1].Unbounded() {
		t.Error("top level must be unbounded")
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
	}{
		{0, 1},
		{99, 1},
		{100, 2}, // exact boundary lands in the higher level
		{249, 2},
		{250, 3},
		{999, 4},
		{1000, 5},
		{4000, 7},
		{1_000_000, 7},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.xp); got.Level != tt.wantLevel {
			t.Errorf("LevelOf(%d) = level %d, expected %d", tt.xp, got.Level, tt.wantLevel)
		}
	}
}

func TestLevelOfEveryTableBoundary(t *testing.T) {
	for _, level := range Levels {
		if got := LevelOf(level.MinXP); got.Level != level.Level {
			t.Errorf("LevelOf(%d) = level %d, expected exactly level %d", level.MinXP, got.Level, level.Level)
		}
	}
}

func TestProgressToNext(t *testing.T) {
	// Fresh entry at the bottom boundary of level 2.
	p := ProgressToNext(100)
	if p.Current != 0 {
		t.Errorf("expected 0 progress at the level boundary, got %d", p.Current)
	}
	if p.Max != 150 {
		t.Errorf("expected 150 XP to the next level, got %d", p.Max)
	}
	if p.Percentage != 0 {
		t.Errorf("expected 0%% at the boundary, got %.2f", p.Percentage)
	}

	// One XP shy of levelling up.
	p = ProgressToNext(249)
	if p.Current != 149 || p.Max != 150 {
		t.Errorf("expected 149/150, got %d/%d", p.Current, p.Max)
	}
	if p.Percentage >= 100 || p.Percentage < 99 {
		t.Errorf("expected percentage just under 100, got %.2f", p.Percentage)
	}
}

func TestProgressToNextTopLevel(t *testing.T) {
	p := ProgressToNext(5000)
	if p.Level.MaxXP != models.NoMaxXP {
		t.Errorf("expected the unbounded top level, got level %d", p.Level.Level)
	}
	if p.Current != 5000 || p.Max != 5000 {
		t.Errorf("expected current = max = xp inside the top level, got %d/%d", p.Current, p.Max)
	}
	if p.Percentage != 100 {
		t.Errorf("expected 100%% inside the top level, got %.2f", p.Percentage)
	}
}

func TestLevelOfIsIdempotent(t *testing.T) {
	first := LevelOf(750)
	second := LevelOf(750)
	if first.Level != second.Level || first.Name != second.Name {
		t.Errorf("repeated calls diverged: %+v then %+v", first, second)
	}
}
