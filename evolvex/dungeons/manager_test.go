package dungeons

import (
	"context"
	"errors"
	"testing"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/dungeons/mock"
	"go.uber.org/mock/gomock"
)

func TestGetRank(t *testing.T) {
	tests := []struct {
		rank     string
		bossHP   int
		minLevel int
		exp      int64
	}{
		{"E", 100, 1, 100},
		{"D", 200, 5, 250},
		{"C", 500, 10, 600},
		{"B", 1000, 20, 1500},
		{"A", 5000, 40, 4000},
		{"S", 10000, 60, 10000},
	}

	for _, tt := range tests {
		cfg, ok := GetRank(tt.rank)
		if !ok {
			t.Fatalf("GetRank(%s) missing", tt.rank)
		}
		if cfg.BossHP != tt.bossHP || cfg.MinLevel != tt.minLevel || cfg.ExpReward != tt.exp {
			t.Errorf("GetRank(%s) = %+v, want hp=%d minLevel=%d exp=%d",
				tt.rank, cfg, tt.bossHP, tt.minLevel, tt.exp)
		}
	}

	if _, ok := GetRank("X"); ok {
		t.Error("GetRank(X) should not exist")
	}
}

func TestEnterRejectsLowLevel(t *testing.T) {
	m := NewManager(mock.NewMockDungeonRepository(gomock.NewController(t)), nil, nil, nil, nil)

	user := &models.User{DiscordID: "123", Level: 3}
	if _, err := m.Enter(context.Background(), user, "C"); !errors.Is(err, ErrLevelTooLow) {
		t.Errorf("Enter() error = %v, want ErrLevelTooLow", err)
	}
}

func TestEnterRejectsUnknownRank(t *testing.T) {
	m := NewManager(mock.NewMockDungeonRepository(gomock.NewController(t)), nil, nil, nil, nil)

	user := &models.User{DiscordID: "123", Level: 10}
	if _, err := m.Enter(context.Background(), user, "Z"); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Enter() error = %v, want ErrInvalidRank", err)
	}
}

func TestEnterRejectsSecondSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(&models.DungeonSession{DiscordID: "123", Status: models.DungeonStatusActive}, nil)

	m := NewManager(repo, nil, nil, nil, nil)
	user := &models.User{DiscordID: "123", Level: 10}
	if _, err := m.Enter(context.Background(), user, "E"); !errors.Is(err, ErrDungeonActive) {
		t.Errorf("Enter() error = %v, want ErrDungeonActive", err)
	}
}

func TestEnterOpensSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(nil, &repositories.NotFoundError{Entity: "dungeon_session", ID: "123"})
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	progress := mock.NewMockProgressRepository(ctrl)
	progress.EXPECT().
		Record(gomock.Any(), "123", models.ActionDungeonEnter, gomock.Any()).
		Return(nil)

	m := NewManager(repo, nil, nil, progress, nil)
	user := &models.User{DiscordID: "123", Level: 10}

	session, err := m.Enter(context.Background(), user, "D")
	if err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if session.BossCurrentHP != 200 || session.BossMaxHP != 200 {
		t.Errorf("boss HP = %d/%d, want 200/200", session.BossCurrentHP, session.BossMaxHP)
	}
	if session.Status != models.DungeonStatusActive {
		t.Errorf("status = %s, want active", session.Status)
	}
}

func TestStrikeBounds(t *testing.T) {
	tests := []struct {
		name    string
		damage  int
		wantErr bool
	}{
		{"zero damage", 0, true},
		{"negative damage", -5, true},
		{"over per-hit cap", 51, true},
		{"at cap", 50, false},
		{"normal hit", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockDungeonRepository(ctrl)
			repo.EXPECT().
				GetActive(gomock.Any(), "123").
				Return(&models.DungeonSession{
					DiscordID:     "123",
					Rank:          "C",
					BossMaxHP:     500,
					BossCurrentHP: 500,
					Status:        models.DungeonStatusActive,
				}, nil)
			if !tt.wantErr {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			}

			m := NewManager(repo, nil, nil, nil, nil)
			_, err := m.Strike(context.Background(), "123", tt.damage)
			if (err != nil) != tt.wantErr {
				t.Errorf("Strike(%d) error = %v, wantErr %v", tt.damage, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrDamageOutOfBounds) {
				t.Errorf("Strike(%d) error = %v, want ErrDamageOutOfBounds", tt.damage, err)
			}
		})
	}
}

func TestStrikeFloorsAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(&models.DungeonSession{
			DiscordID:     "123",
			Rank:          "E",
			BossMaxHP:     100,
			BossCurrentHP: 4,
			Status:        models.DungeonStatusActive,
		}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	m := NewManager(repo, nil, nil, nil, nil)
	session, err := m.Strike(context.Background(), "123", 10)
	if err != nil {
		t.Fatalf("Strike() error = %v", err)
	}
	if session.BossCurrentHP != 0 {
		t.Errorf("boss HP = %d, want 0", session.BossCurrentHP)
	}
}

func TestCompleteRequiresDownedBoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(&models.DungeonSession{
			DiscordID:     "123",
			Rank:          "E",
			BossMaxHP:     100,
			BossCurrentHP: 30,
			Status:        models.DungeonStatusActive,
		}, nil)

	m := NewManager(repo, nil, nil, nil, nil)
	user := &models.User{DiscordID: "123", Level: 2}
	stats := &models.Stats{DiscordID: "123"}
	if _, err := m.Complete(context.Background(), user, stats); !errors.Is(err, ErrBossAlive) {
		t.Errorf("Complete() error = %v, want ErrBossAlive", err)
	}
}

func TestStrikeAfterClearFindsNoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(nil, &repositories.NotFoundError{Entity: "dungeon_session", ID: "123"})

	m := NewManager(repo, nil, nil, nil, nil)
	if _, err := m.Strike(context.Background(), "123", 10); !errors.Is(err, ErrNoActiveDungeon) {
		t.Errorf("Strike() after clear error = %v, want ErrNoActiveDungeon", err)
	}
}

func TestCompleteTwiceRejectsSecondClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDungeonRepository(ctrl)
	repo.EXPECT().
		GetActive(gomock.Any(), "123").
		Return(nil, &repositories.NotFoundError{Entity: "dungeon_session", ID: "123"})

	m := NewManager(repo, nil, nil, nil, nil)
	user := &models.User{DiscordID: "123", Level: 10}
	stats := &models.Stats{DiscordID: "123"}
	if _, err := m.Complete(context.Background(), user, stats); !errors.Is(err, ErrNoActiveDungeon) {
		t.Errorf("second Complete() error = %v, want ErrNoActiveDungeon", err)
	}
}
