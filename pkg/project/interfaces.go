// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*types.Project, error)
	ListProjectsByAccount(ctx context.Context, accountID int64) ([]*types.Project, error)
	ListChildProjects(ctx context.Context, projectID int64) ([]*types.Project, error)
	CountActiveProjects(ctx context.Context, accountID int64) (int, error)
	ProjectSlugExists(ctx context.Context, accountID int64, slug string) (bool, error)
	UpdateProjectFields(ctx context.Context, id int64, fields map[string]any) error
	ReparentChildren(ctx context.Context, projectID int64, newParentID *int64) error
	DeleteProject(ctx context.Context, id int64) error

	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
	AddProjectMember(ctx context.Context, m *types.ProjectMember) (int64, error)
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
	DeleteProjectMembers(ctx context.Context, projectID int64) error
	ListProjectMembers(ctx context.Context, projectID int64) ([]*types.ProjectMember, error)

	GetAccountByID(ctx context.Context, id int64) (*types.Account, error)
}

type ServiceInterface interface {
	CanCreate(ctx context.Context, accountID int64) (bool, error)
	Create(ctx context.Context, accountID, creatorID int64, name string, parentID, clientID *int64, color string) (*types.Project, error)
	GetProject(ctx context.Context, id int64) (*types.Project, error)
	ListProjects(ctx context.Context, accountID int64) ([]*types.Project, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	HierarchyForAccount(ctx context.Context, accountID int64) ([]*types.ProjectNode, error)
	Ancestors(ctx context.Context, projectID int64) ([]*types.Project, error)
	Children(ctx context.Context, projectID int64) ([]*types.Project, error)
	IsValidParent(ctx context.Context, projectID, parentID int64) (bool, error)

	UserCanAccess(ctx context.Context, accountID, projectID, userID int64) (bool, error)
	UserRole(ctx context.Context, accountID, projectID, userID int64) (types.ProjectRole, error)

	AddMember(ctx context.Context, projectID, userID int64, role types.ProjectRole, assignedBy int64) (bool, error)
	RemoveMember(ctx context.Context, projectID, userID int64) (bool, error)
	ListMembers(ctx context.Context, projectID int64) ([]*types.ProjectMember, error)
}
