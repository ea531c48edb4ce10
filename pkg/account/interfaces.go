// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

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
}

type DirectoryInterface interface {
	GetUser(ctx context.Context, userID int64) (*types.User, error)
}

type ServiceInterface interface {
	GetOrCreateForUser(ctx context.Context, userID int64) (*types.Account, error)
	GetAccount(ctx context.Context, id int64) (*types.Account, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	SetStatus(ctx context.Context, id int64, status string) (bool, error)
	TransferOwnership(ctx context.Context, accountID, currentOwnerID, newOwnerID int64) (bool, error)

	ListMembers(ctx context.Context, accountID int64) ([]*types.Member, error)
	AddMember(ctx context.Context, accountID, userID int64, role types.AccountRole, invitedBy int64) (bool, error)
	UpdateMemberRole(ctx context.Context, accountID, userID int64, role types.AccountRole) (bool, error)
	RemoveMember(ctx context.Context, accountID, userID int64) (bool, error)
	MemberPermissions(ctx context.Context, accountID, userID int64) (map[string]bool, error)
	UpdateMemberPermissions(ctx context.Context, accountID, userID int64, permissions map[string]types.FeaturePermission) (bool, error)

	InviteMember(ctx context.Context, accountID int64, email string, role types.AccountRole, invitedBy int64) (*types.Invite, error)
	AcceptInvite(ctx context.Context, token string, userID int64) (bool, error)

	AvailableFeatures(tier types.Tier) map[string]bool
}
