package quests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

type stubQuestRepo struct {
	byID        *models.Quest
	visible     []*models.Quest
	completions []*models.QuestCompletion
	recorded    int
}

func (r *stubQuestRepo) Create(_ context.Context, _ *models.Quest) error { return nil }
func (r *stubQuestRepo) GetByQuestID(_ context.Context, _ string) (*models.Quest, error) {
	return r.byID, nil
}
func (r *stubQuestRepo) Update(_ context.Context, _ *models.Quest) error { return nil }
func (r *stubQuestRepo) Delete(_ context.Context, _ string) error        { return nil }
func (r *stubQuestRepo) GetAll(_ context.Context) ([]*models.Quest, error) {
	return r.visible, nil
}
func (r *stubQuestRepo) GetVisible(_ context.Context, _ string) ([]*models.Quest, error) {
	return r.visible, nil
}
func (r *stubQuestRepo) GetByCategory(_ context.Context, _ string) ([]*models.Quest, error) {
	return nil, nil
}
func (r *stubQuestRepo) RecordCompletion(_ context.Context, _ *models.QuestCompletion) error {
	r.recorded++
	return nil
}
func (r *stubQuestRepo) CountCompletions(_ context.Context, _ string) (int, error) {
	return len(r.completions), nil
}
func (r *stubQuestRepo) GetRecentCompletions(_ context.Context, _ string, _ int) ([]*models.QuestCompletion, error) {
	return r.completions, nil
}

func TestCompleteInsufficientStaminaLeavesStateUntouched(t *testing.T) {
	repo := &stubQuestRepo{byID: &models.Quest{
		QuestID:     "marathon",
		Title:       "Marathon",
		ExpReward:   500,
		StaminaCost: 30,
		StatRewards: map[string]int{models.StatAgility: 3},
	}}
	s := &Service{questRepo: repo, GoldPerQuest: 10}

	user := &models.User{DiscordID: "123", Level: 1, Exp: 40, Gold: 100, ExpRequired: 100}
	stats := &models.Stats{DiscordID: "123", Agility: 10, Stamina: 10, MaxStamina: 55}

	_, err := s.Complete(context.Background(), user, stats, "marathon")
	if !errors.Is(err, ErrInsufficientStamina) {
		t.Fatalf("Complete() error = %v, want ErrInsufficientStamina", err)
	}
	if user.Exp != 40 || user.Gold != 100 || user.Level != 1 {
		t.Errorf("user mutated: exp=%d gold=%d level=%d", user.Exp, user.Gold, user.Level)
	}
	if stats.Stamina != 10 || stats.Agility != 10 {
		t.Errorf("stats mutated: stamina=%d agility=%d", stats.Stamina, stats.Agility)
	}
	if repo.recorded != 0 {
		t.Errorf("completion recorded despite refusal")
	}
}

func TestListVisibleNoSearch(t *testing.T) {
	repo := &stubQuestRepo{visible: []*models.Quest{
		{QuestID: "morning_run", Title: "Morning Run"},
		{QuestID: "read_book", Title: "Read a Book"},
	}}
	s := &Service{questRepo: repo}

	got, err := s.ListVisible(context.Background(), "123", "")
	if err != nil {
		t.Fatalf("ListVisible() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListVisible() returned %d quests, want 2", len(got))
	}
}

func TestListVisibleFuzzySearch(t *testing.T) {
	repo := &stubQuestRepo{visible: []*models.Quest{
		{QuestID: "morning_run", Title: "Morning Run"},
		{QuestID: "read_book", Title: "Read a Book"},
		{QuestID: "night_run", Title: "Night Run"},
	}}
	s := &Service{questRepo: repo}

	got, err := s.ListVisible(context.Background(), "123", "run")
	if err != nil {
		t.Fatalf("ListVisible() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListVisible(run) returned %d quests, want 2", len(got))
	}
	for _, q := range got {
		if q.QuestID == "read_book" {
			t.Errorf("ListVisible(run) matched %s", q.QuestID)
		}
	}
}

func TestCompletionsTodayCountsSinceMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	repo := &stubQuestRepo{completions: []*models.QuestCompletion{
		{QuestID: "a", CompletedAt: now.Add(-2 * time.Hour)},
		{QuestID: "b", CompletedAt: now.Add(-13 * time.Hour)},
		{QuestID: "c", CompletedAt: now.Add(-20 * time.Hour)},
	}}
	s := &Service{questRepo: repo}

	count, err := s.CompletionsToday(context.Background(), "123", now)
	if err != nil {
		t.Fatalf("CompletionsToday() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CompletionsToday() = %d, want 2", count)
	}
}
