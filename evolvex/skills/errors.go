package skills

import "errors"

var (
	ErrAlreadyUnlocked         = errors.New("skill already unlocked")
	ErrNotUnlocked             = errors.New("skill not unlocked")
	ErrLevelTooLow             = errors.New("level too low for this skill")
	ErrInsufficientSkillPoints = errors.New("not enough skill points")
	ErrInsufficientStamina     = errors.New("not enough stamina")
	ErrPassiveSkill            = errors.New("passive skills cannot be activated")
)
