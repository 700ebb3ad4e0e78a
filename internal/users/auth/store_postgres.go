// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mzalesak/periodika/internal/platform/database/schema"
	"github.com/mzalesak/periodika/internal/platform/dberr"
)

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func userSelect(where string) string {
	t := schema.UsersAccount
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s;
	`,
		t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName,
		t.Role, t.IsActive, t.CreatedAt, t.UpdatedAt,
		t.Table,
		where,
	)
}

func (repository *PostgresUserRepository) scanUser(row interface{ Scan(...any) error }, op string) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.DisplayName,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, op)
	}
	return u, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := userSelect(fmt.Sprintf("%s = $1", schema.UsersAccount.ID))
	return repository.scanUser(repository.db.QueryRow(context, query, id), "find_user_by_id")
}

// FindByEmail only matches active accounts; deactivated staff cannot log in.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := userSelect(fmt.Sprintf("%s = $1 AND %s = TRUE",
		schema.UsersAccount.Email, schema.UsersAccount.IsActive))
	return repository.scanUser(repository.db.QueryRow(context, query, email), "find_user_by_email")
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := userSelect(fmt.Sprintf("%s = $1 AND %s = TRUE",
		schema.UsersAccount.Username, schema.UsersAccount.IsActive))
	return repository.scanUser(repository.db.QueryRow(context, query, username), "find_user_by_username")
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		t.Table,
		t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.Role, t.IsActive,
	)

	_, err := repository.db.Exec(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.DisplayName, user.Role, user.IsActive,
	)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1;
	`,
		t.Table,
		t.Email, t.DisplayName, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query, user.ID, user.Email, user.DisplayName)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1;
	`,
		t.Table,
		t.PasswordHash, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresUserRepository) Deactivate(context context.Context, id string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = FALSE, %s = NOW()
		WHERE %s = $1;
	`,
		t.Table,
		t.IsActive, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "deactivate_user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
