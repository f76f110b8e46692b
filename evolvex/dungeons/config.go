package dungeons

import (
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

// RankConfig defines one dungeon tier.
type RankConfig struct {
	Rank       string
	Duration   time.Duration
	BossHP     int
	ExpReward  int64
	GoldReward int64
	MinLevel   int
}

var rankTable = map[string]RankConfig{
	models.DungeonRankE: {Rank: "E", Duration: 25 * time.Minute, BossHP: 100, ExpReward: 100, GoldReward: 50, MinLevel: 1},
	models.DungeonRankD: {Rank: "D", Duration: 40 * time.Minute, BossHP: 200, ExpReward: 250, GoldReward: 120, MinLevel: 5},
	models.DungeonRankC: {Rank: "C", Duration: 60 * time.Minute, BossHP: 500, ExpReward: 600, GoldReward: 300, MinLevel: 10},
	models.DungeonRankB: {Rank: "B", Duration: 90 * time.Minute, BossHP: 1000, ExpReward: 1500, GoldReward: 750, MinLevel: 20},
	models.DungeonRankA: {Rank: "A", Duration: 120 * time.Minute, BossHP: 5000, ExpReward: 4000, GoldReward: 2000, MinLevel: 40},
	models.DungeonRankS: {Rank: "S", Duration: 240 * time.Minute, BossHP: 10000, ExpReward: 10000, GoldReward: 5000, MinLevel: 60},
}

// RankOrder lists ranks from easiest to hardest.
var RankOrder = []string{
	models.DungeonRankE,
	models.DungeonRankD,
	models.DungeonRankC,
	models.DungeonRankB,
	models.DungeonRankA,
	models.DungeonRankS,
}

// GetRank looks up a rank config.
func GetRank(rank string) (RankConfig, bool) {
	cfg, ok := rankTable[rank]
	return cfg, ok
}
