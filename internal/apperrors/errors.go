package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCoinNotFound indicates that a coin with the given ID does not exist.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrTranslationNotFound indicates no translation for a specific coin and language combination.
	ErrTranslationNotFound = errors.New("coin translation not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateCoinName indicates that a coin with the same name already exists.
	ErrDuplicateCoinName = errors.New("coin with this name already exists")

	// ErrEmptyName indicates that a required name field is empty or missing.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrAmbiguousFilter indicates that mutually exclusive filter parameters were combined.
	ErrAmbiguousFilter = errors.New("cannot filter by both id and name simultaneously")

	// ErrInvalidID indicates that a provided ID is not a valid numeric identifier.
	ErrInvalidID = errors.New("invalid coin ID")
)

// External feed errors represent failures of the CoinDesk price feed.
// None of these are retried or cached; they surface to the caller unchanged.
var (
	// ErrFeedUnavailable indicates the feed request failed at the transport
	// level or returned a non-2xx status.
	ErrFeedUnavailable = errors.New("coindesk feed unavailable")

	// ErrFeedEmptyResponse indicates the feed call succeeded but carried no body.
	ErrFeedEmptyResponse = errors.New("empty response from coindesk feed")

	// ErrFeedMalformed indicates the feed body is not valid JSON or is
	// missing the structure the transformation depends on.
	ErrFeedMalformed = errors.New("malformed coindesk feed response")
)
