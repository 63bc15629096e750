// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the services.
//
// Rules live in `validate` struct tags on the models; a violation is
// reported as a [*ValidationError] whose message names the JSON field, so
// the HTTP layer can pass it to the client unchanged.
package validators

import "context"

// Validator validates a request model. When fields are given only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
