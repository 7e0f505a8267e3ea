// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks documents and requests before they reach
// persistence. Handlers and service wrappers depend on the [Validator]
// interface; [PageValidator] is the implementation for landing pages.
package validators

import "context"

// Validator validates a value. When field names are given only those
// fields are checked; otherwise a per-type default set is used.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
