// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for staff accounts.
type UserRepository interface {
	// FindByID returns the account with the given ID.
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail returns the active account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindByUsername returns the active account with the given username.
	FindByUsername(context context.Context, username string) (*User, error)

	// Create persists a newly provisioned staff account.
	Create(context context.Context, user *User) error

	// Update persists changes to mutable profile fields.
	Update(context context.Context, user *User) error

	// UpdatePassword replaces only the account's password hash.
	UpdatePassword(context context.Context, userID, newHash string) error

	// Deactivate flags the account as inactive without removing the row.
	Deactivate(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository defines the contract for volatile refresh sessions.
// Sessions expire on their own; an absent session means "expired or
// revoked".
type SessionRepository interface {
	// Create stores a session until its ExpiresAt timestamp.
	Create(context context.Context, session *Session) error

	// FindByTokenHash returns the live session matching the token hash.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke removes the session matching the token hash.
	Revoke(context context.Context, tokenHash string) error

	// RevokeAll removes every live session belonging to the user.
	RevokeAll(context context.Context, userID string) error
}
