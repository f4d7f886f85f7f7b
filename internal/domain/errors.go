package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgNotUsable    = "item is passive equipment"
	ErrMsgNotHeld      = "item not in inventory"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient gold"
	ErrMsgNotInTown         = "shopping is only available in town"

	// Adventure errors
	ErrMsgUnknownAction       = "unknown action"
	ErrMsgUnreachableLocation = "location is not reachable from here"
	ErrMsgGameDisabled        = "adventure game is disabled"

	// Quest errors
	ErrMsgQuestNotCompleted   = "quest not completed"
	ErrMsgQuestAlreadyClaimed = "quest reward already claimed today"
	ErrMsgQuestsDisabled      = "daily quests are disabled"

	// Cooldown errors
	ErrMsgOnCooldown = "xp award on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrNotUsable    = errors.New(ErrMsgNotUsable)
	ErrNotHeld      = errors.New(ErrMsgNotHeld)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotInTown         = errors.New(ErrMsgNotInTown)

	// Adventure errors
	ErrUnknownAction       = errors.New(ErrMsgUnknownAction)
	ErrUnreachableLocation = errors.New(ErrMsgUnreachableLocation)
	ErrGameDisabled        = errors.New(ErrMsgGameDisabled)

	// Quest errors
	ErrQuestNotCompleted   = errors.New(ErrMsgQuestNotCompleted)
	ErrQuestAlreadyClaimed = errors.New(ErrMsgQuestAlreadyClaimed)
	ErrQuestsDisabled      = errors.New(ErrMsgQuestsDisabled)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
