package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")
	ErrVersionIsNotSpecified                 = errors.New("app version is not specified")

	ErrAssetStorageNotConfigured = errors.New("asset storage is not configured")
	ErrPresigningFailed          = errors.New("presigning asset url failed")
)

// Client-side errors.
var (
	ErrRegisterOnServer  = errors.New("error registering on server")
	ErrLoginOnServer     = errors.New("error logging in on server")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrServerUnavailable = errors.New("server is temporarily unavailable")
	ErrTooManyRequests   = errors.New("too many requests")
)
