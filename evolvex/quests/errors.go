package quests

import "errors"

var (
	ErrInsufficientStamina = errors.New("not enough stamina")
	ErrQuestExists         = errors.New("quest already exists")
	ErrForbidden           = errors.New("quest belongs to another user")
	ErrBuiltinQuest        = errors.New("built-in quests cannot be modified")
)
