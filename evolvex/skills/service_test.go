package skills

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
)

func TestAdvanceMastery(t *testing.T) {
	s := &Service{}

	us := &models.UserSkill{Level: 1, Exp: 90}
	if leveled := s.advanceMastery(us, 5); !leveled {
		t.Fatal("expected mastery level up at 100 exp")
	}
	if us.Level != 2 {
		t.Fatalf("expected level 2, got %d", us.Level)
	}
	if us.Exp != 0 {
		t.Fatalf("expected exp 0 after roll over, got %d", us.Exp)
	}
}

func TestAdvanceMasteryBelowThreshold(t *testing.T) {
	s := &Service{}

	us := &models.UserSkill{Level: 1, Exp: 0}
	if leveled := s.advanceMastery(us, 5); leveled {
		t.Fatal("did not expect a level up at 10 exp")
	}
	if us.Exp != 10 {
		t.Fatalf("expected exp 10, got %d", us.Exp)
	}
}

func TestAdvanceMasteryCapsAtMaxLevel(t *testing.T) {
	s := &Service{}

	us := &models.UserSkill{Level: 5, Exp: 499}
	if leveled := s.advanceMastery(us, 5); leveled {
		t.Fatal("skill at max level must not level up")
	}
	if us.Level != 5 {
		t.Fatalf("expected level to stay at 5, got %d", us.Level)
	}
	if us.Exp != 499 {
		t.Fatalf("expected exp untouched at cap, got %d", us.Exp)
	}
}

type stubSkillRepo struct {
	skill     *models.Skill
	unlocked  map[string]*models.UserSkill
	createErr error
}

func (r *stubSkillRepo) GetByID(_ context.Context, _ string) (*models.Skill, error) {
	return r.skill, nil
}
func (r *stubSkillRepo) GetAll(_ context.Context) ([]*models.Skill, error) {
	return []*models.Skill{r.skill}, nil
}
func (r *stubSkillRepo) GetUserSkill(_ context.Context, _, skillID string) (*models.UserSkill, error) {
	if us, ok := r.unlocked[skillID]; ok {
		return us, nil
	}
	return nil, &repositories.NotFoundError{Entity: "user_skill", ID: skillID}
}
func (r *stubSkillRepo) GetUserSkills(_ context.Context, _ string) ([]*models.UserSkill, error) {
	return nil, nil
}
func (r *stubSkillRepo) CreateUserSkill(_ context.Context, us *models.UserSkill) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.unlocked[us.SkillID] = us
	return nil
}
func (r *stubSkillRepo) UpdateUserSkill(_ context.Context, _ *models.UserSkill) error { return nil }
func (r *stubSkillRepo) CountUserSkills(_ context.Context, _ string) (int, error) {
	return len(r.unlocked), nil
}

type stubUserRepo struct {
	updates int
}

func (r *stubUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (r *stubUserRepo) GetByDiscordID(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Update(_ context.Context, _ *models.User) error {
	r.updates++
	return nil
}
func (r *stubUserRepo) Delete(_ context.Context, _ string) error           { return nil }
func (r *stubUserRepo) AddGold(_ context.Context, _ string, _ int64) error { return nil }
func (r *stubUserRepo) UpdateStreak(_ context.Context, _ string, _ int, _ time.Time) error {
	return nil
}
func (r *stubUserRepo) GetTopUsers(_ context.Context, _ int) ([]*models.User, error) {
	return nil, nil
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

func TestUnlockTwiceDeductsOnce(t *testing.T) {
	skillRepo := &stubSkillRepo{
		skill:    &models.Skill{ID: "focus", Name: "Focus", UnlockLevel: 1, UnlockCost: 2},
		unlocked: map[string]*models.UserSkill{},
	}
	userRepo := &stubUserRepo{}
	s := &Service{skillRepo: skillRepo, userRepo: userRepo, progressRepo: &stubProgressRepo{}}

	user := &models.User{DiscordID: "123", Level: 5, SkillPoints: 3}

	if _, err := s.Unlock(context.Background(), user, "focus"); err != nil {
		t.Fatalf("first Unlock() error = %v", err)
	}
	if user.SkillPoints != 1 {
		t.Errorf("skill points = %d, want 1", user.SkillPoints)
	}

	if _, err := s.Unlock(context.Background(), user, "focus"); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Fatalf("second Unlock() error = %v, want ErrAlreadyUnlocked", err)
	}
	if user.SkillPoints != 1 {
		t.Errorf("skill points after retry = %d, want 1", user.SkillPoints)
	}
	if userRepo.updates != 1 {
		t.Errorf("user persisted %d times, want 1", userRepo.updates)
	}
}

func TestUnlockFailedInsertKeepsPoints(t *testing.T) {
	skillRepo := &stubSkillRepo{
		skill:     &models.Skill{ID: "focus", Name: "Focus", UnlockLevel: 1, UnlockCost: 2},
		unlocked:  map[string]*models.UserSkill{},
		createErr: errors.New("insert failed"),
	}
	userRepo := &stubUserRepo{}
	s := &Service{skillRepo: skillRepo, userRepo: userRepo, progressRepo: &stubProgressRepo{}}

	user := &models.User{DiscordID: "123", Level: 5, SkillPoints: 3}

	if _, err := s.Unlock(context.Background(), user, "focus"); err == nil {
		t.Fatal("Unlock() expected error")
	}
	if user.SkillPoints != 3 {
		t.Errorf("skill points = %d, want 3", user.SkillPoints)
	}
	if userRepo.updates != 0 {
		t.Errorf("user persisted %d times, want 0", userRepo.updates)
	}
}
