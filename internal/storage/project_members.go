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

func (s *Storage) GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectMember")
	defer span.End()

	var m types.ProjectMember
	err := s.db.Statement(ctx).
		Select("id", "project_id", "user_id", "role", "assigned_by", "created_at").
		From("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.AssignedBy, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project member: %w", err)
	}

	return &m, nil
}

func (s *Storage) AddProjectMember(ctx context.Context, m *types.ProjectMember) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddProjectMember")
	defer span.End()

	var id int64
	err := s.db.Statement(ctx).
		Insert("project_members").
		Columns("project_id", "user_id", "role", "assigned_by").
		Values(m.ProjectID, m.UserID, m.Role, m.AssignedBy).
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
		return 0, fmt.Errorf("failed to add project member: %w", err)
	}

	return id, nil
}

func (s *Storage) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveProjectMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
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

// DeleteProjectMembers removes all membership rows for a project, as part of
// project deletion.
func (s *Storage) DeleteProjectMembers(ctx context.Context, projectID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProjectMembers")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("project_members").
		Where(sq.Eq{"project_id": projectID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete project members: %w", err)
	}

	return nil
}

func (s *Storage) ListProjectMembers(ctx context.Context, projectID int64) ([]*types.ProjectMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "project_id", "user_id", "role", "assigned_by", "created_at").
		From("project_members").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []*types.ProjectMember
	for rows.Next() {
		var m types.ProjectMember
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.AssignedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
