// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// landing builder server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies. The client matches on them to recover the
// business error behind a status code, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTokenCreationFailed is returned when the server cannot sign a
	// session token after a successful register or login.
	MsgTokenCreationFailed = "token creation failed"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user asks for
	// another user's page list.
	MsgAccessDenied = "access denied"

	// MsgVersionIsNotSpecified is returned by /api/version when neither the
	// build nor the config carries a version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgPageNotFound is returned for absent pages, pages of other users and
	// unpublished pages on the public preview route.
	MsgPageNotFound = "page not found"

	// MsgPageAlreadyExists is returned when a create collides with an
	// existing page id.
	MsgPageAlreadyExists = "page already exists"

	// MsgStorageUnavailable is returned when the page store is temporarily
	// unreachable. The request can be repeated.
	MsgStorageUnavailable = "storage is temporarily unavailable"

	// MsgAssetStorageNotConfigured is returned by the presign route when no
	// asset bucket is configured.
	MsgAssetStorageNotConfigured = "asset storage is not configured"

	// MsgTooManyRequests is returned by rate-limited routes.
	MsgTooManyRequests = "too many requests"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"
)
