package utils

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex/config"
)

// ResponseHandler provides standardized response methods for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// ErrorType represents different categories of errors for consistent handling
type ErrorType int

const (
	// UserError - User input issues, validation failures, parameter problems
	UserError ErrorType = iota
	// SystemError - Database failures, network issues, internal server errors
	SystemError
	// NotFoundError - Requested resources don't exist
	NotFoundError
	// BusinessLogicError - Insufficient stamina, gold or points, game rule violations
	BusinessLogicError
)

func getErrorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case SystemError:
		return "🔧"
	case NotFoundError:
		return "🔍"
	case BusinessLogicError:
		return "⏰"
	default:
		return "❌"
	}
}

func getErrorColor(errorType ErrorType) int {
	switch errorType {
	case UserError, BusinessLogicError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// CreateErrorEmbed creates a standard error embed for command events
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.ErrorColor,
		}},
	})
}

// CreateSuccessEmbed creates a standard success embed for command events
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.SuccessColor,
		}},
	})
}

// CreateInfoEmbed creates a standard info embed for command events
func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.InfoColor,
		}},
	})
}

// CreateEphemeralError creates an ephemeral error message for component events
func (h *ResponseHandler) CreateEphemeralError(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

// CreateClassifiedError creates an error response with automatic categorization
func (h *ResponseHandler) CreateClassifiedError(event *handler.CommandEvent, errorType ErrorType, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: getErrorPrefix(errorType) + " " + message,
			Color:       getErrorColor(errorType),
		}},
	})
}

// CreateUserError creates an error response for user input issues
func (h *ResponseHandler) CreateUserError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, UserError, message)
}

// CreateSystemError creates an error response for system/technical failures
func (h *ResponseHandler) CreateSystemError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, SystemError, message)
}

// CreateNotFoundError creates an error response for resources that don't exist
func (h *ResponseHandler) CreateNotFoundError(event *handler.CommandEvent, resource, identifier string) error {
	return h.CreateClassifiedError(event, NotFoundError, fmt.Sprintf("%s '%s' not found", resource, identifier))
}

// CreateBusinessLogicError creates an error response for game rule violations
func (h *ResponseHandler) CreateBusinessLogicError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, BusinessLogicError, message)
}

// AutoClassifyError classifies an error by message content and responds
// with the matching style.
func (h *ResponseHandler) AutoClassifyError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, classifyErrorByMessage(message), message)
}

func classifyErrorByMessage(message string) ErrorType {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "not found") ||
		strings.Contains(lowerMsg, "doesn't exist") {
		return NotFoundError
	}

	if strings.Contains(lowerMsg, "invalid") ||
		strings.Contains(lowerMsg, "must be") ||
		strings.Contains(lowerMsg, "required") {
		return UserError
	}

	if strings.Contains(lowerMsg, "not enough") ||
		strings.Contains(lowerMsg, "too low") ||
		strings.Contains(lowerMsg, "already") ||
		strings.Contains(lowerMsg, "still has") {
		return BusinessLogicError
	}

	return SystemError
}
