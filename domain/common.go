package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrUserNotAllowed = errors.New("user not allowed")

	// Persistence port sentinels. A collection that has never been
	// written reports ErrCollectionNotFound; corrupt persisted data
	// reports ErrCollectionDecode. Both are recoverable: stores fall
	// back to an empty collection, or for templates, to the built-in
	// seed set.
	ErrCollectionNotFound = errors.New("collection has never been persisted")
	ErrCollectionDecode   = errors.New("failed to decode persisted collection")
)
