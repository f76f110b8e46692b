package services

import (
	"context"
	"fmt"

	"github.com/evolvex/evolvex/evolvex/advisor"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/dungeons"
	"github.com/evolvex/evolvex/evolvex/skills"
	"github.com/evolvex/evolvex/evolvex/titles"
	"golang.org/x/sync/errgroup"
)

// ProfileView is the full aggregated profile shown to the user.
type ProfileView struct {
	User  *models.User
	Stats *models.Stats

	// Display values include title and passive skill bonuses on top of
	// the stored base stats.
	DisplayStrength     int
	DisplayAgility      int
	DisplayIntelligence int

	Skills     []skills.ListEntry
	Titles     []*models.UserTitle
	QuestCount int
	Dungeon    *models.DungeonSession

	Weaknesses  []string
	Burnout     bool
	Recommended *models.Quest
}

// ProfileService aggregates everything the profile surfaces need.
type ProfileService struct {
	questRepo repositories.QuestRepository
	titleRepo repositories.TitleRepository

	skillSvc   *skills.Service
	titleEval  *titles.Evaluator
	dungeonMgr *dungeons.Manager
	adv        *advisor.Advisor
}

func NewProfileService(questRepo repositories.QuestRepository, titleRepo repositories.TitleRepository, skillSvc *skills.Service, titleEval *titles.Evaluator, dungeonMgr *dungeons.Manager, adv *advisor.Advisor) *ProfileService {
	return &ProfileService{
		questRepo:  questRepo,
		titleRepo:  titleRepo,
		skillSvc:   skillSvc,
		titleEval:  titleEval,
		dungeonMgr: dungeonMgr,
		adv:        adv,
	}
}

// Build fans out the independent profile reads and assembles the view.
func (s *ProfileService) Build(ctx context.Context, user *models.User, stats *models.Stats) (*ProfileView, error) {
	view := &ProfileView{
		User:  user,
		Stats: stats,
	}

	g, gctx := errgroup.WithContext(ctx)

	var titleBonuses, skillBonuses map[string]int

	g.Go(func() error {
		entries, err := s.skillSvc.List(gctx, user.DiscordID)
		if err != nil {
			return fmt.Errorf("failed to load skills: %w", err)
		}
		view.Skills = entries
		return nil
	})

	g.Go(func() error {
		held, err := s.titleRepo.GetUserTitles(gctx, user.DiscordID)
		if err != nil {
			return fmt.Errorf("failed to load titles: %w", err)
		}
		view.Titles = held
		return nil
	})

	g.Go(func() error {
		count, err := s.questRepo.CountCompletions(gctx, user.DiscordID)
		if err != nil {
			return fmt.Errorf("failed to count quests: %w", err)
		}
		view.QuestCount = count
		return nil
	})

	g.Go(func() error {
		bonuses, err := s.titleEval.Bonuses(gctx, user.DiscordID)
		if err != nil {
			return fmt.Errorf("failed to load title bonuses: %w", err)
		}
		titleBonuses = bonuses
		return nil
	})

	g.Go(func() error {
		bonuses, err := s.skillSvc.PassiveBonuses(gctx, user.DiscordID)
		if err != nil {
			return fmt.Errorf("failed to load passive bonuses: %w", err)
		}
		skillBonuses = bonuses
		return nil
	})

	g.Go(func() error {
		session, err := s.dungeonMgr.Active(gctx, user.DiscordID)
		if err != nil {
			if err == dungeons.ErrNoActiveDungeon {
				return nil
			}
			return fmt.Errorf("failed to load dungeon: %w", err)
		}
		view.Dungeon = session
		return nil
	})

	g.Go(func() error {
		quest, err := s.adv.RecommendQuest(gctx, user.DiscordID, stats)
		if err != nil {
			return fmt.Errorf("failed to recommend quest: %w", err)
		}
		view.Recommended = quest
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	view.DisplayStrength = stats.Strength + titleBonuses[models.StatStrength] + skillBonuses[models.StatStrength]
	view.DisplayAgility = stats.Agility + titleBonuses[models.StatAgility] + skillBonuses[models.StatAgility]
	view.DisplayIntelligence = stats.Intelligence + titleBonuses[models.StatIntelligence] + skillBonuses[models.StatIntelligence]

	view.Weaknesses = advisor.Weaknesses(stats)
	view.Burnout = advisor.Burnout(stats)

	return view, nil
}
