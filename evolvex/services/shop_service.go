package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/progression"
)

var (
	ErrInsufficientGold = errors.New("not enough gold")
	ErrItemNotOwned     = errors.New("item not in inventory")
	ErrNotConsumable    = errors.New("item cannot be used")
)

// ShopService handles purchases and consumable use.
type ShopService struct {
	itemRepo     repositories.ItemRepository
	userRepo     repositories.UserRepository
	statsRepo    repositories.StatsRepository
	progressRepo repositories.ProgressRepository
	prog         *progression.Service
}

func NewShopService(itemRepo repositories.ItemRepository, userRepo repositories.UserRepository, statsRepo repositories.StatsRepository, progressRepo repositories.ProgressRepository, prog *progression.Service) *ShopService {
	return &ShopService{
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		progressRepo: progressRepo,
		prog:         prog,
	}
}

func (s *ShopService) Catalog(ctx context.Context) ([]*models.Item, error) {
	return s.itemRepo.GetAll(ctx)
}

func (s *ShopService) Inventory(ctx context.Context, discordID string) ([]*models.UserItem, error) {
	return s.itemRepo.GetUserItems(ctx, discordID)
}

func (s *ShopService) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, itemID)
}

// Buy spends gold on a shop item.
func (s *ShopService) Buy(ctx context.Context, user *models.User, itemID string, amount int) (*models.Item, error) {
	if amount < 1 {
		amount = 1
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cost := item.Price * int64(amount)
	if user.Gold < cost {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientGold, user.Gold, cost)
	}

	user.Gold -= cost
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to charge gold: %w", err)
	}
	if err := s.itemRepo.AddToInventory(ctx, user.DiscordID, itemID, amount); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionPurchase, map[string]any{
		"item_id": itemID,
		"amount":  amount,
		"cost":    cost,
	})
	logger.LogGameEvent("item_purchased",
		"discord_id", user.DiscordID,
		"item_id", itemID,
		"amount", amount,
	)
	return item, nil
}

// UseItem consumes one item from the inventory and applies its effect.
func (s *ShopService) UseItem(ctx context.Context, user *models.User, stats *models.Stats, itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Type != models.ItemTypeConsumable {
		return nil, fmt.Errorf("%w: %s", ErrNotConsumable, item.Name)
	}

	if err := s.itemRepo.ConsumeFromInventory(ctx, user.DiscordID, itemID, 1); err != nil {
		if repositories.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotOwned, item.Name)
		}
		return nil, err
	}

	// Exp effects roll through the leveling pipeline, everything else
	// lands on stats directly
	for name, value := range item.Effect {
		if name == models.StatExp {
			if _, err := s.prog.AwardExp(ctx, user, stats, int64(value)); err != nil {
				return nil, fmt.Errorf("failed to apply item effect: %w", err)
			}
			continue
		}
		stats.Apply(name, value)
	}
	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to apply item effect: %w", err)
	}

	return item, nil
}
