package dungeons

import "errors"

var (
	ErrInvalidRank       = errors.New("unknown dungeon rank")
	ErrLevelTooLow       = errors.New("level too low for this rank")
	ErrDungeonActive     = errors.New("a dungeon session is already active")
	ErrNoActiveDungeon   = errors.New("no active dungeon session")
	ErrDamageOutOfBounds = errors.New("damage out of bounds")
	ErrBossAlive         = errors.New("the boss still has health left")
)
