package services

import (
	"context"
	"testing"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/progression"
)

type stubItemRepo struct {
	item *models.Item
}

func (r *stubItemRepo) GetByID(_ context.Context, _ string) (*models.Item, error) {
	return r.item, nil
}
func (r *stubItemRepo) GetAll(_ context.Context) ([]*models.Item, error) {
	return []*models.Item{r.item}, nil
}
func (r *stubItemRepo) GetUserItems(_ context.Context, _ string) ([]*models.UserItem, error) {
	return nil, nil
}
func (r *stubItemRepo) AddToInventory(_ context.Context, _, _ string, _ int) error { return nil }
func (r *stubItemRepo) ConsumeFromInventory(_ context.Context, _, _ string, _ int) error {
	return nil
}

type stubUserRepo struct{}

func (r *stubUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (r *stubUserRepo) GetByDiscordID(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Update(_ context.Context, _ *models.User) error     { return nil }
func (r *stubUserRepo) Delete(_ context.Context, _ string) error           { return nil }
func (r *stubUserRepo) AddGold(_ context.Context, _ string, _ int64) error { return nil }
func (r *stubUserRepo) UpdateStreak(_ context.Context, _ string, _ int, _ time.Time) error {
	return nil
}
func (r *stubUserRepo) GetTopUsers(_ context.Context, _ int) ([]*models.User, error) {
	return nil, nil
}

type stubStatsRepo struct{}

func (r *stubStatsRepo) Create(_ context.Context, _ *models.Stats) error { return nil }
func (r *stubStatsRepo) GetByDiscordID(_ context.Context, _ string) (*models.Stats, error) {
	return nil, nil
}
func (r *stubStatsRepo) Update(_ context.Context, _ *models.Stats) error { return nil }
func (r *stubStatsRepo) Delete(_ context.Context, _ string) error        { return nil }

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

func newStubShopService(item *models.Item) *ShopService {
	prog := progression.NewService(progression.DefaultConfig(),
		&stubUserRepo{}, &stubStatsRepo{}, &stubProgressRepo{})
	return &ShopService{
		itemRepo:     &stubItemRepo{item: item},
		userRepo:     &stubUserRepo{},
		statsRepo:    &stubStatsRepo{},
		progressRepo: &stubProgressRepo{},
		prog:         prog,
	}
}

func TestUseItemExpEffectLevelsUp(t *testing.T) {
	s := newStubShopService(&models.Item{
		ID:     "xp_scroll",
		Name:   "XP Scroll",
		Type:   models.ItemTypeConsumable,
		Effect: map[string]int{models.StatExp: 200},
	})

	user := &models.User{DiscordID: "123", Level: 1, Exp: 0, ExpRequired: 100}
	stats := &models.Stats{DiscordID: "123", Stamina: 20, MaxStamina: 55, Health: 60, MaxHealth: 100}

	if _, err := s.UseItem(context.Background(), user, stats, "xp_scroll"); err != nil {
		t.Fatalf("UseItem() error = %v", err)
	}
	if user.Level != 2 {
		t.Errorf("level = %d, want 2", user.Level)
	}
	if user.Exp != 100 {
		t.Errorf("carried exp = %d, want 100", user.Exp)
	}
	if stats.Stamina != stats.MaxStamina {
		t.Errorf("stamina = %d/%d, want full after level-up", stats.Stamina, stats.MaxStamina)
	}
}

func TestUseItemStaminaEffectClampsAtMax(t *testing.T) {
	s := newStubShopService(&models.Item{
		ID:     "stamina_potion",
		Name:   "Stamina Potion",
		Type:   models.ItemTypeConsumable,
		Effect: map[string]int{models.StatStamina: 30},
	})

	user := &models.User{DiscordID: "123", Level: 1, ExpRequired: 100}
	stats := &models.Stats{DiscordID: "123", Stamina: 40, MaxStamina: 55}

	if _, err := s.UseItem(context.Background(), user, stats, "stamina_potion"); err != nil {
		t.Fatalf("UseItem() error = %v", err)
	}
	if stats.Stamina != 55 {
		t.Errorf("stamina = %d, want 55", stats.Stamina)
	}
}
