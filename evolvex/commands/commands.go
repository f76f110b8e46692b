package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	Profile,
	Quest,
	Skill,
	Dungeon,
	Titles,
	Status,
	Rest,
	Shop,
	Leaderboard,
	Init,
	Version,
}
