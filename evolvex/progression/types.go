package progression

// Result describes the outcome of an exp award.
type Result struct {
	ExpGained    int64
	LevelsGained int
	NewLevel     int
	CurrentExp   int64
	RequiredExp  int64

	SkillPointsGained int
	GoldGained        int64
	StatGains         map[string]int

	Bonuses []string
}

func (r *Result) LeveledUp() bool {
	return r.LevelsGained > 0
}
