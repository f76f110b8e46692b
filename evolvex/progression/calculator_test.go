package progression

import (
	"testing"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

func newTestUser(level int, exp int64) (*models.User, *models.Stats) {
	calc := NewCalculator(DefaultConfig())
	user := &models.User{
		DiscordID:   "123",
		Level:       level,
		Exp:         exp,
		ExpRequired: calc.CalculateExpRequirement(level),
	}
	stats := &models.Stats{
		DiscordID:    "123",
		Strength:     10,
		Agility:      10,
		Intelligence: 10,
		Stamina:      50,
		MaxStamina:   55,
		Health:       100,
		MaxHealth:    100,
	}
	return user, stats
}

func TestCalculateExpRequirement(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		level int
		want  int64
	}{
		{1, 100},
		{2, 400},
		{5, 2500},
		{10, 10000},
		{60, 360000},
	}

	for _, tt := range tests {
		if got := calc.CalculateExpRequirement(tt.level); got != tt.want {
			t.Errorf("CalculateExpRequirement(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestApplyNoLevelUp(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	user, stats := newTestUser(1, 0)

	result := calc.Apply(user, stats, 50)

	if result.LeveledUp() {
		t.Fatal("expected no level up")
	}
	if user.Level != 1 {
		t.Errorf("level = %d, want 1", user.Level)
	}
	if user.Exp != 50 {
		t.Errorf("exp = %d, want 50", user.Exp)
	}
	if user.SkillPoints != 0 {
		t.Errorf("skill points = %d, want 0", user.SkillPoints)
	}
	if stats.Strength != 10 {
		t.Errorf("strength = %d, want 10", stats.Strength)
	}
}

func TestApplySingleLevelUp(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	user, stats := newTestUser(1, 80)

	result := calc.Apply(user, stats, 50)

	if result.LevelsGained != 1 {
		t.Fatalf("levels gained = %d, want 1", result.LevelsGained)
	}
	if user.Level != 2 {
		t.Errorf("level = %d, want 2", user.Level)
	}
	if user.Exp != 30 {
		t.Errorf("carried exp = %d, want 30", user.Exp)
	}
	if user.ExpRequired != 400 {
		t.Errorf("exp required = %d, want 400", user.ExpRequired)
	}
	if user.SkillPoints != 1 {
		t.Errorf("skill points = %d, want 1", user.SkillPoints)
	}
	if stats.Strength != 12 || stats.Agility != 12 || stats.Intelligence != 12 {
		t.Errorf("core stats = %d/%d/%d, want 12/12/12",
			stats.Strength, stats.Agility, stats.Intelligence)
	}
	if stats.MaxHealth != 110 {
		t.Errorf("max health = %d, want 110", stats.MaxHealth)
	}
	if stats.MaxStamina != 58 {
		t.Errorf("max stamina = %d, want 58", stats.MaxStamina)
	}
}

func TestApplyLevelUpRefillsPools(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	user, stats := newTestUser(1, 80)
	stats.Stamina = 10
	stats.Health = 40

	result := calc.Apply(user, stats, 50)

	if result.LevelsGained != 1 {
		t.Fatalf("levels gained = %d, want 1", result.LevelsGained)
	}
	if stats.Stamina != stats.MaxStamina || stats.Stamina != 58 {
		t.Errorf("stamina = %d/%d, want 58/58", stats.Stamina, stats.MaxStamina)
	}
	if stats.Health != stats.MaxHealth || stats.Health != 110 {
		t.Errorf("health = %d/%d, want 110/110", stats.Health, stats.MaxHealth)
	}
}

func TestApplyMultiLevelUp(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	user, stats := newTestUser(1, 0)

	// 100 + 400 + 100 carried: clears levels 1 and 2
	result := calc.Apply(user, stats, 600)

	if result.LevelsGained != 2 {
		t.Fatalf("levels gained = %d, want 2", result.LevelsGained)
	}
	if user.Level != 3 {
		t.Errorf("level = %d, want 3", user.Level)
	}
	if user.Exp != 100 {
		t.Errorf("carried exp = %d, want 100", user.Exp)
	}
	if user.SkillPoints != 2 {
		t.Errorf("skill points = %d, want 2", user.SkillPoints)
	}
	if stats.Strength != 14 {
		t.Errorf("strength = %d, want 14", stats.Strength)
	}
}

func TestApplyNegativeClampsAtZero(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	user, stats := newTestUser(3, 50)

	result := calc.Apply(user, stats, -200)

	if result.LeveledUp() {
		t.Fatal("expected no level change")
	}
	if user.Level != 3 {
		t.Errorf("level = %d, want 3", user.Level)
	}
	if user.Exp != 0 {
		t.Errorf("exp = %d, want 0", user.Exp)
	}
}
