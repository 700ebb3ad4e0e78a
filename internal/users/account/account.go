// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

/*
Package account handles staff profile management.

It lets authenticated cataloging staff view and update their own identity
data. Password rotation and session security live in the auth package; this
package is strictly about the profile surface.

# Architecture

  - Domain: This package depends on the auth package for the User entity
    and its repository; it owns no storage of its own.
  - Security: Every endpoint operates on the authenticated user only.
*/
package account

// # Field Identifiers

const (
	FieldEmail       = "email"
	FieldDisplayName = "display_name"
)

// UpdateProfileInput defines the mutable subset of staff profile fields.
type UpdateProfileInput struct {
	Email       *string
	DisplayName *string
}
