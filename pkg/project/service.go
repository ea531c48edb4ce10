// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/slug"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

const (
	// slugAttempts bounds the collision suffix search.
	slugAttempts = 100
	// maxTreeDepth caps every upward walk so a corrupted parent chain can
	// never spin a request.
	maxTreeDepth = 100
)

const defaultColor = "#3498db"

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CanCreate reports whether the account's tier leaves room for another
// active project.
func (s *Service) CanCreate(ctx context.Context, accountID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.CanCreate")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.storage.CountActiveProjects(ctx, accountID)
	if err != nil {
		return false, err
	}

	return authorization.WithinLimit(count, authorization.ProjectLimit(account.Tier)), nil
}

// Create provisions a project and enrolls the creator as its admin in one
// transaction. Returns nil without error when the tier cap is reached or the
// requested parent is invalid.
func (s *Service) Create(ctx context.Context, accountID, creatorID int64, name string, parentID, clientID *int64, color string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Create")
	defer span.End()

	ok, err := s.CanCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if parentID != nil {
		parent, err := s.storage.GetProjectByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if parent.AccountID != accountID {
			return nil, nil
		}
	}

	projectSlug, err := s.uniqueSlug(ctx, accountID, name)
	if err != nil {
		return nil, err
	}

	if color == "" {
		color = defaultColor
	}

	var created *types.Project
	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.storage.CreateProject(txCtx, &types.Project{
			AccountID: accountID,
			ParentID:  parentID,
			ClientID:  clientID,
			Name:      name,
			Slug:      projectSlug,
			Color:     color,
			Status:    types.ProjectStatusActive,
		})
		if txErr != nil {
			return txErr
		}
		_, txErr = s.storage.AddProjectMember(txCtx, &types.ProjectMember{
			ProjectID:  created.ID,
			UserID:     creatorID,
			Role:       types.ProjectRoleAdmin,
			AssignedBy: creatorID,
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, nil
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) uniqueSlug(ctx context.Context, accountID int64, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 1; i < slugAttempts; i++ {
		exists, err := s.storage.ProjectSlugExists(ctx, accountID, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, i)
	}
	return "", fmt.Errorf("could not find a free slug for %q", name)
}

func (s *Service) GetProject(ctx context.Context, id int64) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.GetProject")
	defer span.End()

	p, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context, accountID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.ListProjects")
	defer span.End()

	return s.storage.ListProjectsByAccount(ctx, accountID)
}

func (s *Service) Children(ctx context.Context, projectID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Children")
	defer span.End()

	return s.storage.ListChildProjects(ctx, projectID)
}

// Update applies a partial update. Recognized fields are name, color, status,
// settings and parent_id; a parent change is validated against the hierarchy
// before it is written.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Update")
	defer span.End()

	update := make(map[string]any)
	if name, ok := fields["name"].(string); ok && name != "" {
		update["name"] = name
	}
	if color, ok := fields["color"].(string); ok && color != "" {
		update["color"] = color
	}
	if status, ok := fields["status"].(string); ok {
		if status != types.ProjectStatusActive && status != types.ProjectStatusArchived {
			return false, nil
		}
		update["status"] = status
	}
	if settings, ok := fields["settings"]; ok {
		encoded, err := jsonEncode(settings)
		if err != nil {
			return false, err
		}
		update["settings"] = encoded
	}

	if raw, ok := fields["parent_id"]; ok {
		parentID, err := toParentID(raw)
		if err != nil {
			return false, nil
		}
		if parentID != nil {
			valid, err := s.IsValidParent(ctx, id, *parentID)
			if err != nil {
				return false, err
			}
			if !valid {
				return false, nil
			}
		}
		update["parent_id"] = parentID
	}

	if len(update) == 0 {
		return true, nil
	}

	if err := s.storage.UpdateProjectFields(ctx, id, update); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// IsValidParent reports whether parentID can become the parent of projectID:
// it must exist, live in the same account, differ from the project itself and
// not be one of its descendants.
func (s *Service) IsValidParent(ctx context.Context, projectID, parentID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.IsValidParent")
	defer span.End()

	if projectID == parentID {
		return false, nil
	}

	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	parent, err := s.storage.GetProjectByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if parent.AccountID != project.AccountID {
		return false, nil
	}

	// Walk up from the candidate parent. Hitting the project means the move
	// would close a cycle.
	current := parent
	for depth := 0; depth < maxTreeDepth; depth++ {
		if current.ParentID == nil {
			return true, nil
		}
		if *current.ParentID == projectID {
			return false, nil
		}
		current, err = s.storage.GetProjectByID(ctx, *current.ParentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Dangling parent pointer, treat the chain as ending here.
				return true, nil
			}
			return false, err
		}
	}

	s.logger.Warnf("parent chain for project %d exceeds %d levels", parentID, maxTreeDepth)
	return false, nil
}

// Delete removes a project, re-attaching its children to the deleted node's
// parent so the subtree survives. The re-parenting, the membership cleanup
// and the delete commit atomically.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Delete")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.ReparentChildren(txCtx, id, project.ParentID); err != nil {
			return err
		}
		if err := s.storage.DeleteProjectMembers(txCtx, id); err != nil {
			return err
		}
		return s.storage.DeleteProject(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// HierarchyForAccount builds the project forest for an account. A project
// whose parent cannot be resolved is surfaced as a root rather than dropped.
func (s *Service) HierarchyForAccount(ctx context.Context, accountID int64) ([]*types.ProjectNode, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.HierarchyForAccount")
	defer span.End()

	projects, err := s.storage.ListProjectsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[int64]*types.ProjectNode, len(projects))
	for _, p := range projects {
		nodes[p.ID] = &types.ProjectNode{Project: p}
	}

	var roots []*types.ProjectNode
	for _, p := range projects {
		node := nodes[p.ID]
		if p.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*p.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots, nil
}

// Ancestors returns the chain from the project's direct parent up to the
// root, nearest first.
func (s *Service) Ancestors(ctx context.Context, projectID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Ancestors")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Root first, immediate parent last, for breadcrumb rendering.
	var ancestors []*types.Project
	current := project
	for depth := 0; depth < maxTreeDepth; depth++ {
		if current.ParentID == nil {
			return ancestors, nil
		}
		parent, err := s.storage.GetProjectByID(ctx, *current.ParentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ancestors, nil
			}
			return nil, err
		}
		ancestors = append([]*types.Project{parent}, ancestors...)
		current = parent
	}

	s.logger.Warnf("ancestor chain for project %d exceeds %d levels", projectID, maxTreeDepth)
	return ancestors, nil
}

func (s *Service) UserCanAccess(ctx context.Context, accountID, projectID, userID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.UserCanAccess")
	defer span.End()

	return s.authz.CanAccessProject(ctx, accountID, projectID, userID)
}

// UserRole resolves the caller's effective project role. Account owners and
// admins act as project admins everywhere; otherwise the explicit membership
// row decides, and no row means no role.
func (s *Service) UserRole(ctx context.Context, accountID, projectID, userID int64) (types.ProjectRole, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.UserRole")
	defer span.End()

	role, err := s.authz.AccountRole(ctx, accountID, userID)
	if err != nil {
		return "", err
	}
	if authorization.MeetsMinimum(role, types.RoleAdmin) {
		return types.ProjectRoleAdmin, nil
	}
	if role == "" {
		return "", nil
	}

	member, err := s.storage.GetProjectMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return member.Role, nil
}

func (s *Service) AddMember(ctx context.Context, projectID, userID int64, role types.ProjectRole, assignedBy int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.AddMember")
	defer span.End()

	if authorization.ProjectRoleLevel(role) == 0 {
		return false, nil
	}

	_, err := s.storage.AddProjectMember(ctx, &types.ProjectMember{
		ProjectID:  projectID,
		UserID:     userID,
		Role:       role,
		AssignedBy: assignedBy,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || errors.Is(err, storage.ErrForeignKeyViolation) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) RemoveMember(ctx context.Context, projectID, userID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.RemoveMember")
	defer span.End()

	if err := s.storage.RemoveProjectMember(ctx, projectID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) ListMembers(ctx context.Context, projectID int64) ([]*types.ProjectMember, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.ListMembers")
	defer span.End()

	return s.storage.ListProjectMembers(ctx, projectID)
}
