// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidGzipBody is reported when a request announces gzip encoding
// but its body is not a gzip stream.
var errInvalidGzipBody = errors.New("invalid gzip data")

// Fixed client-facing messages. Error details of collaborators are only
// logged and never sent to clients.
const (
	msgUserCreated            = "User created. Please verify your email"
	msgEmailVerified          = "Email successfully verified"
	msgPasswordResetLinkSent  = "Password reset link sent to email"
	msgPasswordResetSucceeded = "Password reset successful"
	msgPostDeleted            = "Post deleted!"

	msgFieldsCannotBeEmpty = "Fields cannot be empty"
	msgInvalidJSON         = "invalid JSON was passed"
	msgInvalidGzipBody     = "Invalid gzip data"
	msgInvalidCredentials  = "Invalid Credentials"
	msgUnauthorizedAccess  = "Unauthorized Access"
	msgInvalidSessionToken = "Invalid Token"
	msgInvalidToken        = "Invalid token"
	msgPostNotFound        = "No post found"
	msgUserNotFound        = "User not found!"
	msgEmailAlreadyExists  = "Email is already registered"
	msgInternalServerError = "Internal server error"
)
