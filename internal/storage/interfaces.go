// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*types.Account, error)
	GetAccountByOwner(ctx context.Context, userID int64) (*types.Account, error)
	GetAccountForUser(ctx context.Context, userID int64) (*types.Account, error)
	UpdateAccountFields(ctx context.Context, id int64, fields map[string]any) error
	AccountSlugExists(ctx context.Context, slug string) (bool, error)

	GetMember(ctx context.Context, accountID, userID int64) (*types.Member, error)
	AddMember(ctx context.Context, m *types.Member) (int64, error)
	UpdateMemberRole(ctx context.Context, accountID, userID int64, role types.AccountRole) error
	UpdateMemberPermissions(ctx context.Context, accountID, userID int64, permissions map[string]types.FeaturePermission) error
	RemoveMember(ctx context.Context, accountID, userID int64) error
	CountMembers(ctx context.Context, accountID int64) (int, error)
	ListMembers(ctx context.Context, accountID int64) ([]*types.Member, error)

	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	DeleteInvite(ctx context.Context, id int64) error

	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*types.Project, error)
	ListProjectsByAccount(ctx context.Context, accountID int64) ([]*types.Project, error)
	ListChildProjects(ctx context.Context, projectID int64) ([]*types.Project, error)
	CountActiveProjects(ctx context.Context, accountID int64) (int, error)
	CountActiveProjectsForClient(ctx context.Context, clientID int64) (int, error)
	CountProjectsForClient(ctx context.Context, clientID int64) (int, error)
	ProjectSlugExists(ctx context.Context, accountID int64, slug string) (bool, error)
	UpdateProjectFields(ctx context.Context, id int64, fields map[string]any) error
	ReparentChildren(ctx context.Context, projectID int64, newParentID *int64) error
	DeleteProject(ctx context.Context, id int64) error

	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
	AddProjectMember(ctx context.Context, m *types.ProjectMember) (int64, error)
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
	DeleteProjectMembers(ctx context.Context, projectID int64) error
	ListProjectMembers(ctx context.Context, projectID int64) ([]*types.ProjectMember, error)

	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByID(ctx context.Context, id int64) (*types.Client, error)
	ListClientsByAccount(ctx context.Context, accountID int64) ([]*types.Client, error)
	CountActiveClients(ctx context.Context, accountID int64) (int, error)
	ClientSlugExists(ctx context.Context, accountID int64, slug string) (bool, error)
	UpdateClientFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteClient(ctx context.Context, id int64) error

	AddClientContact(ctx context.Context, c *types.ClientContact) (int64, error)
	RemoveClientContact(ctx context.Context, clientID, contactID int64) error
	ClearPrimaryContacts(ctx context.Context, clientID int64) error
	SetPrimaryContact(ctx context.Context, clientID, contactID int64) error
	ListClientContacts(ctx context.Context, clientID int64) ([]*types.ClientContact, error)
	CountClientContacts(ctx context.Context, clientID int64) (int, error)

	UpsertGrant(ctx context.Context, g *types.UtmAccessGrant) (*types.UtmAccessGrant, error)
	GetGrant(ctx context.Context, utmID, userID int64) (*types.UtmAccessGrant, error)
	DeleteGrant(ctx context.Context, utmID, userID int64) error
	ListGrantsByUtm(ctx context.Context, utmID int64) ([]*types.UtmAccessGrant, error)
}
