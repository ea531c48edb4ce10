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

const memberColumns = "id, account_id, user_id, role, feature_permissions, invited_by, invited_at, accepted_at, created_at"

func scanMember(row sq.RowScanner) (*types.Member, error) {
	var m types.Member
	var permissions []byte
	if err := row.Scan(&m.ID, &m.AccountID, &m.UserID, &m.Role, &permissions, &m.InvitedBy, &m.InvitedAt, &m.AcceptedAt, &m.CreatedAt); err != nil {
		return nil, err
	}
	if err := scanJSON(permissions, &m.FeaturePermissions); err != nil {
		return nil, fmt.Errorf("failed to decode member permissions: %w", err)
	}
	return &m, nil
}

func (s *Storage) GetMember(ctx context.Context, accountID, userID int64) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMember")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(memberColumns).
		From("members").
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		QueryRowContext(ctx)

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

func (s *Storage) AddMember(ctx context.Context, m *types.Member) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	permissions, err := jsonb(m.FeaturePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to encode member permissions: %w", err)
	}

	var id int64
	err = s.db.Statement(ctx).
		Insert("members").
		Columns("account_id", "user_id", "role", "feature_permissions", "invited_by", "invited_at", "accepted_at").
		Values(m.AccountID, m.UserID, m.Role, permissions, m.InvitedBy, m.InvitedAt, m.AcceptedAt).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return 0, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return 0, ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to add member: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, accountID, userID int64, role types.AccountRole) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("members").
		Set("role", role).
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
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

func (s *Storage) UpdateMemberPermissions(ctx context.Context, accountID, userID int64, permissions map[string]types.FeaturePermission) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberPermissions")
	defer span.End()

	encoded, err := jsonb(permissions)
	if err != nil {
		return fmt.Errorf("failed to encode member permissions: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Update("members").
		Set("feature_permissions", encoded).
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member permissions: %w", err)
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

func (s *Storage) RemoveMember(ctx context.Context, accountID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("members").
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
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

func (s *Storage) CountMembers(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("members").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

func (s *Storage) ListMembers(ctx context.Context, accountID int64) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(memberColumns).
		From("members").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
