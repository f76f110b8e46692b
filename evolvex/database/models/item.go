package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ItemTypeConsumable = "consumable"
	ItemTypeCosmetic   = "cosmetic"
)

type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          string         `bun:"id,pk"`
	Name        string         `bun:"name,notnull"`
	Description string         `bun:"description"`
	Type        string         `bun:"type,notnull"`
	Effect      map[string]int `bun:"effect,type:jsonb"`
	Price       int64          `bun:"price,notnull"`
	Emoji       string         `bun:"emoji"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	DiscordID string `bun:"discord_id,pk"`
	ItemID    string `bun:"item_id,pk"`
	Amount    int    `bun:"amount,notnull,default:0"`

	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
