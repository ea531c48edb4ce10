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

const projectColumns = "id, account_id, parent_id, client_id, name, slug, color, status, settings, created_at, updated_at"

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	var settings []byte
	if err := row.Scan(&p.ID, &p.AccountID, &p.ParentID, &p.ClientID, &p.Name, &p.Slug, &p.Color, &p.Status, &settings, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := scanJSON(settings, &p.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode project settings: %w", err)
	}
	return &p, nil
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	settings, err := jsonb(p.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project settings: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns("account_id", "parent_id", "client_id", "name", "slug", "color", "status", "settings").
		Values(p.AccountID, p.ParentID, p.ClientID, p.Name, p.Slug, p.Color, p.Status, settings).
		Suffix("RETURNING " + projectColumns).
		QueryRowContext(ctx)

	created, err := scanProject(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return created, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id int64) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(projectColumns).
		From("projects").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ListProjectsByAccount(ctx context.Context, accountID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByAccount")
	defer span.End()

	return s.listProjects(ctx, sq.Eq{"account_id": accountID})
}

// ListChildProjects returns the direct children of a project.
func (s *Storage) ListChildProjects(ctx context.Context, projectID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChildProjects")
	defer span.End()

	return s.listProjects(ctx, sq.Eq{"parent_id": projectID})
}

func (s *Storage) listProjects(ctx context.Context, where sq.Eq) ([]*types.Project, error) {
	rows, err := s.db.Statement(ctx).
		Select(projectColumns).
		From("projects").
		Where(where).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

func (s *Storage) CountActiveProjects(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveProjects")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects").
		Where(sq.Eq{"account_id": accountID, "status": types.ProjectStatusActive}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active projects: %w", err)
	}

	return count, nil
}

func (s *Storage) CountActiveProjectsForClient(ctx context.Context, clientID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveProjectsForClient")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects").
		Where(sq.Eq{"client_id": clientID, "status": types.ProjectStatusActive}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count client projects: %w", err)
	}

	return count, nil
}

func (s *Storage) CountProjectsForClient(ctx context.Context, clientID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProjectsForClient")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects").
		Where(sq.Eq{"client_id": clientID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count client projects: %w", err)
	}

	return count, nil
}

func (s *Storage) ProjectSlugExists(ctx context.Context, accountID int64, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectSlugExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects").
		Where(sq.Eq{"account_id": accountID, "slug": slug}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check project slug: %w", err)
	}

	return count > 0, nil
}

// UpdateProjectFields applies the given column values. Callers are
// responsible for allow-listing and for validating parent changes.
func (s *Storage) UpdateProjectFields(ctx context.Context, id int64, fields map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectFields")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(fields).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

// ReparentChildren moves all direct children of a project to a new parent.
func (s *Storage) ReparentChildren(ctx context.Context, projectID int64, newParentID *int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReparentChildren")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("projects").
		Set("parent_id", newParentID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"parent_id": projectID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to reparent children: %w", err)
	}

	return nil
}

func (s *Storage) DeleteProject(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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
