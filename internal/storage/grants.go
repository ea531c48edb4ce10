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

const grantColumns = "id, account_id, utm_id, user_id, access_level, assigned_by, assigned_at"

// UpsertGrant inserts a grant or, if one exists for the (utm_id, user_id)
// pair, replaces its level and assignment metadata.
func (s *Storage) UpsertGrant(ctx context.Context, g *types.UtmAccessGrant) (*types.UtmAccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertGrant")
	defer span.End()

	var stored types.UtmAccessGrant
	err := s.db.Statement(ctx).
		Insert("utm_access_grants").
		Columns("account_id", "utm_id", "user_id", "access_level", "assigned_by").
		Values(g.AccountID, g.UtmID, g.UserID, g.AccessLevel, g.AssignedBy).
		Suffix(`ON CONFLICT (utm_id, user_id) DO UPDATE
			SET access_level = EXCLUDED.access_level,
			    assigned_by = EXCLUDED.assigned_by,
			    assigned_at = NOW()
			RETURNING ` + grantColumns).
		QueryRowContext(ctx).
		Scan(&stored.ID, &stored.AccountID, &stored.UtmID, &stored.UserID, &stored.AccessLevel, &stored.AssignedBy, &stored.AssignedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert grant: %w", err)
	}

	return &stored, nil
}

func (s *Storage) GetGrant(ctx context.Context, utmID, userID int64) (*types.UtmAccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGrant")
	defer span.End()

	var g types.UtmAccessGrant
	err := s.db.Statement(ctx).
		Select(grantColumns).
		From("utm_access_grants").
		Where(sq.Eq{"utm_id": utmID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&g.ID, &g.AccountID, &g.UtmID, &g.UserID, &g.AccessLevel, &g.AssignedBy, &g.AssignedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return &g, nil
}

func (s *Storage) DeleteGrant(ctx context.Context, utmID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGrant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("utm_access_grants").
		Where(sq.Eq{"utm_id": utmID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
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

func (s *Storage) ListGrantsByUtm(ctx context.Context, utmID int64) ([]*types.UtmAccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGrantsByUtm")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(grantColumns).
		From("utm_access_grants").
		Where(sq.Eq{"utm_id": utmID}).
		OrderBy("assigned_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.UtmAccessGrant
	for rows.Next() {
		var g types.UtmAccessGrant
		if err := rows.Scan(&g.ID, &g.AccountID, &g.UtmID, &g.UserID, &g.AccessLevel, &g.AssignedBy, &g.AssignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}
