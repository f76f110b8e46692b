package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type ItemRepository interface {
	GetByID(ctx context.Context, itemID string) (*models.Item, error)
	GetAll(ctx context.Context) ([]*models.Item, error)

	GetUserItems(ctx context.Context, discordID string) ([]*models.UserItem, error)
	AddToInventory(ctx context.Context, discordID, itemID string, amount int) error
	ConsumeFromInventory(ctx context.Context, discordID, itemID string, amount int) error
}

type itemRepository struct {
	db *bun.DB
}

func NewItemRepository(db *bun.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, itemID string) (*models.Item, error) {
	item := new(models.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("id = ?", itemID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "item", ID: itemID}
		}
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) GetAll(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.NewSelect().
		Model(&items).
		Order("price ASC").
		Scan(ctx)
	return items, err
}

func (r *itemRepository) GetUserItems(ctx context.Context, discordID string) ([]*models.UserItem, error) {
	var items []*models.UserItem
	err := r.db.NewSelect().
		Model(&items).
		Where("discord_id = ?", discordID).
		Where("amount > 0").
		Scan(ctx)
	return items, err
}

func (r *itemRepository) AddToInventory(ctx context.Context, discordID, itemID string, amount int) error {
	ui := &models.UserItem{
		DiscordID: discordID,
		ItemID:    itemID,
		Amount:    amount,
		UpdatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(ui).
		On("CONFLICT (discord_id, item_id) DO UPDATE").
		Set("amount = user_items.amount + EXCLUDED.amount").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *itemRepository) ConsumeFromInventory(ctx context.Context, discordID, itemID string, amount int) error {
	res, err := r.db.NewUpdate().
		Model((*models.UserItem)(nil)).
		Set("amount = amount - ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Where("item_id = ?", itemID).
		Where("amount >= ?", amount).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "user_item", ID: itemID}
	}
	return nil
}
