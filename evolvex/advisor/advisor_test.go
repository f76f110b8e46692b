package advisor

import (
	"testing"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

func TestWeaknesses(t *testing.T) {
	tests := []struct {
		name  string
		str   int
		agi   int
		intel int
		want  []string
	}{
		{"balanced profile", 10, 10, 10, nil},
		{"weak agility", 30, 10, 30, []string{models.StatAgility}},
		{"two weak stats", 60, 10, 10, []string{models.StatAgility, models.StatIntelligence}},
		{"slightly uneven is fine", 12, 10, 11, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &models.Stats{Strength: tt.str, Agility: tt.agi, Intelligence: tt.intel}
			got := Weaknesses(stats)
			if len(got) != len(tt.want) {
				t.Fatalf("Weaknesses() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Weaknesses()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBurnout(t *testing.T) {
	tests := []struct {
		name    string
		stamina int
		max     int
		want    bool
	}{
		{"full stamina", 55, 55, false},
		{"just above threshold", 11, 55, false},
		{"below threshold", 10, 55, true},
		{"empty", 0, 55, true},
		{"zero max", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &models.Stats{Stamina: tt.stamina, MaxStamina: tt.max}
			if got := Burnout(stats); got != tt.want {
				t.Errorf("Burnout(%d/%d) = %v, want %v", tt.stamina, tt.max, got, tt.want)
			}
		})
	}
}

func TestLowestCoreStat(t *testing.T) {
	stats := &models.Stats{Strength: 20, Agility: 15, Intelligence: 18}
	if got := LowestCoreStat(stats); got != models.StatAgility {
		t.Errorf("LowestCoreStat() = %s, want agility", got)
	}

	// Ties resolve toward strength
	tied := &models.Stats{Strength: 10, Agility: 10, Intelligence: 10}
	if got := LowestCoreStat(tied); got != models.StatStrength {
		t.Errorf("LowestCoreStat() on tie = %s, want strength", got)
	}
}

func TestApplyStreak(t *testing.T) {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		count    int
		last     time.Time
		now      time.Time
		want     int
		changed  bool
		broken   bool
	}{
		{"first activity", 0, time.Time{}, base, 1, true, false},
		{"same day no-op", 4, base, base.Add(6 * time.Hour), 4, false, false},
		{"next day extends", 4, base, base.AddDate(0, 0, 1), 5, true, false},
		{"one missed day decays", 4, base, base.AddDate(0, 0, 2), 3, true, true},
		{"decay floors at zero", 0, base, base.AddDate(0, 0, 2), 0, true, true},
		{"long gap resets", 9, base, base.AddDate(0, 0, 5), 1, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{StreakCount: tt.count, LastStreakAt: tt.last}
			got := ApplyStreak(user, tt.now)
			if got.Count != tt.want || got.Changed != tt.changed || got.Broken != tt.broken {
				t.Errorf("ApplyStreak() = %+v, want count=%d changed=%v broken=%v",
					got, tt.want, tt.changed, tt.broken)
			}
		})
	}
}
