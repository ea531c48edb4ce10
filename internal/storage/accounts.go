// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/jackc/pgx/v5"
)

const accountColumns = "id, name, slug, status, tier, max_users, owner_user_id, settings, created_at, updated_at"

func scanAccount(row sq.RowScanner) (*types.Account, error) {
	var a types.Account
	var settings []byte
	if err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Status, &a.Tier, &a.MaxUsers, &a.OwnerUserID, &settings, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if err := scanJSON(settings, &a.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode account settings: %w", err)
	}
	return &a, nil
}

func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	settings, err := jsonb(a.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account settings: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("accounts").
		Columns("name", "slug", "status", "tier", "max_users", "owner_user_id", "settings").
		Values(a.Name, a.Slug, a.Status, a.Tier, a.MaxUsers, a.OwnerUserID, settings).
		Suffix("RETURNING " + accountColumns).
		QueryRowContext(ctx)

	created, err := scanAccount(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(accountColumns).
		From("accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

// GetAccountByOwner returns the account a user owns, if any.
func (s *Storage) GetAccountByOwner(ctx context.Context, userID int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByOwner")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(accountColumns).
		From("accounts").
		Where(sq.Eq{"owner_user_id": userID}).
		QueryRowContext(ctx)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by owner: %w", err)
	}

	return a, nil
}

// GetAccountForUser returns the account the user is a member of, oldest
// membership first.
func (s *Storage) GetAccountForUser(ctx context.Context, userID int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountForUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(
			"a.id", "a.name", "a.slug", "a.status", "a.tier", "a.max_users",
			"a.owner_user_id", "a.settings", "a.created_at", "a.updated_at",
		).
		From("accounts a").
		Join("members m ON a.id = m.account_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("m.created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account for user: %w", err)
	}

	return a, nil
}

// UpdateAccountFields applies the given column values. Callers are
// responsible for allow-listing.
func (s *Storage) UpdateAccountFields(ctx context.Context, id int64, fields map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAccountFields")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("accounts").
		SetMap(fields).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AccountSlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AccountSlugExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("accounts").
		Where(sq.Eq{"slug": slug}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check account slug: %w", err)
	}

	return count > 0, nil
}
