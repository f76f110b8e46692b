package titles

import (
	"context"
	"testing"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
)

func TestInClockWindow(t *testing.T) {
	tests := []struct {
		name   string
		window string
		hour   int
		want   bool
	}{
		{"night at 23", "night", 23, true},
		{"night at midnight", "night", 0, true},
		{"night at 3", "night", 3, true},
		{"night ends at 4", "night", 4, false},
		{"night not at noon", "night", 12, false},
		{"dawn at 5", "dawn", 5, true},
		{"dawn at 7", "dawn", 7, true},
		{"dawn ends at 8", "dawn", 8, false},
		{"dawn not at 4", "dawn", 4, false},
		{"unknown window", "afternoon", 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, 3, 10, tt.hour, 30, 0, 0, time.UTC)
			if got := inClockWindow(tt.window, at); got != tt.want {
				t.Errorf("inClockWindow(%q, %dh) = %v, want %v", tt.window, tt.hour, got, tt.want)
			}
		})
	}
}

type stubTitleRepo struct {
	catalog []*models.Title
	held    []*models.UserTitle
}

func (r *stubTitleRepo) GetByID(_ context.Context, titleID string) (*models.Title, error) {
	for _, t := range r.catalog {
		if t.ID == titleID {
			return t, nil
		}
	}
	return nil, &repositories.NotFoundError{Entity: "title", ID: titleID}
}
func (r *stubTitleRepo) GetAll(_ context.Context) ([]*models.Title, error) {
	return r.catalog, nil
}
func (r *stubTitleRepo) GetUserTitles(_ context.Context, _ string) ([]*models.UserTitle, error) {
	return r.held, nil
}
func (r *stubTitleRepo) HasTitle(_ context.Context, _, titleID string) (bool, error) {
	for _, ut := range r.held {
		if ut.TitleID == titleID {
			return true, nil
		}
	}
	return false, nil
}
func (r *stubTitleRepo) Award(_ context.Context, discordID, titleID string) error {
	r.held = append(r.held, &models.UserTitle{DiscordID: discordID, TitleID: titleID})
	return nil
}

type stubSkillCounter struct {
	count int
}

func (r *stubSkillCounter) GetByID(_ context.Context, _ string) (*models.Skill, error) {
	return nil, nil
}
func (r *stubSkillCounter) GetAll(_ context.Context) ([]*models.Skill, error) { return nil, nil }
func (r *stubSkillCounter) GetUserSkill(_ context.Context, _, skillID string) (*models.UserSkill, error) {
	return nil, &repositories.NotFoundError{Entity: "user_skill", ID: skillID}
}
func (r *stubSkillCounter) GetUserSkills(_ context.Context, _ string) ([]*models.UserSkill, error) {
	return nil, nil
}
func (r *stubSkillCounter) CreateUserSkill(_ context.Context, _ *models.UserSkill) error { return nil }
func (r *stubSkillCounter) UpdateUserSkill(_ context.Context, _ *models.UserSkill) error { return nil }
func (r *stubSkillCounter) CountUserSkills(_ context.Context, _ string) (int, error) {
	return r.count, nil
}

type stubProgressRepo struct{}

func (r *stubProgressRepo) Record(_ context.Context, _, _ string, _ map[string]any) error {
	return nil
}
func (r *stubProgressRepo) GetRecent(_ context.Context, _ string, _ int) ([]*models.ProgressLog, error) {
	return nil, nil
}
func (r *stubProgressRepo) GetSince(_ context.Context, _ string, _ time.Time) ([]*models.ProgressLog, error) {
	return nil, nil
}

func TestEvaluateIdempotent(t *testing.T) {
	titleRepo := &stubTitleRepo{catalog: []*models.Title{
		{ID: "novice", Name: "Novice Hunter", RequirementType: models.RequirementLevel, RequirementCount: 5},
	}}
	e := NewEvaluator(titleRepo, nil, nil, &stubProgressRepo{})

	user := &models.User{DiscordID: "123", Level: 7}
	stats := &models.Stats{DiscordID: "123"}

	first, err := e.Evaluate(context.Background(), user, stats)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(first) != 1 || first[0].ID != "novice" {
		t.Fatalf("first Evaluate() awarded %v, want [novice]", first)
	}

	second, err := e.Evaluate(context.Background(), user, stats)
	if err != nil {
		t.Fatalf("second Evaluate() error = %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second Evaluate() awarded %v, want none", second)
	}
}

func TestEvaluateSkillsUnlockedRequirement(t *testing.T) {
	catalog := []*models.Title{
		{ID: "skill_collector", Name: "Skill Collector", RequirementType: models.RequirementSkillsUnlocked, RequirementCount: 5},
	}
	user := &models.User{DiscordID: "123", Level: 10}
	stats := &models.Stats{DiscordID: "123"}

	e := NewEvaluator(&stubTitleRepo{catalog: catalog}, nil, &stubSkillCounter{count: 4}, &stubProgressRepo{})
	awarded, err := e.Evaluate(context.Background(), user, stats)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(awarded) != 0 {
		t.Errorf("awarded with 4 skills, want none")
	}

	e = NewEvaluator(&stubTitleRepo{catalog: catalog}, nil, &stubSkillCounter{count: 5}, &stubProgressRepo{})
	awarded, err = e.Evaluate(context.Background(), user, stats)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(awarded) != 1 || awarded[0].ID != "skill_collector" {
		t.Errorf("awarded = %v, want [skill_collector]", awarded)
	}
}
