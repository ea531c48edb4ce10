// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/slug"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

// slugAttempts bounds the collision suffix search.
const slugAttempts = 100

type Service struct {
	storage   StorageInterface
	db        db.DBClientInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	directory DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		db:        dbClient,
		directory: directory,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetAccount")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// GetOrCreateForUser resolves the account for a user, provisioning one when
// none exists. Resolution order: existing membership, owned account with a
// missing member row (repaired in place), then a fresh account named from
// the directory record. Returns nil when the directory cannot resolve the
// user.
func (s *Service) GetOrCreateForUser(ctx context.Context, userID int64) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetOrCreateForUser")
	defer span.End()

	account, err := s.storage.GetAccountForUser(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	account, err = s.storage.GetAccountByOwner(ctx, userID)
	if err == nil {
		// The user owns an account but lost its member row, repair it.
		if err := s.addOwnerMember(ctx, account.ID, userID); err != nil {
			return nil, err
		}
		return account, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user identity: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	name := user.DisplayName
	if name == "" {
		name = user.Email
	}
	accountName := fmt.Sprintf("%s's Account", name)

	accountSlug, err := s.uniqueSlug(ctx, accountName)
	if err != nil {
		return nil, err
	}

	var created *types.Account
	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.storage.CreateAccount(txCtx, &types.Account{
			Name:        accountName,
			Slug:        accountSlug,
			Status:      types.AccountStatusActive,
			Tier:        types.TierFree,
			MaxUsers:    authorization.UserLimit(types.TierFree),
			OwnerUserID: userID,
		})
		if txErr != nil {
			return txErr
		}
		return s.addOwnerMember(txCtx, created.ID, userID)
	})

	if err != nil {
		// A concurrent call may have won the owner unique index, fall back
		// to its account.
		if errors.Is(err, storage.ErrDuplicateKey) {
			existing, readErr := s.storage.GetAccountByOwner(ctx, userID)
			if readErr != nil {
				return nil, readErr
			}
			if repairErr := s.addOwnerMember(ctx, existing.ID, userID); repairErr != nil {
				return nil, repairErr
			}
			return existing, nil
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) addOwnerMember(ctx context.Context, accountID, userID int64) error {
	now := time.Now()
	_, err := s.storage.AddMember(ctx, &types.Member{
		AccountID:  accountID,
		UserID:     userID,
		Role:       types.RoleOwner,
		AcceptedAt: &now,
	})
	if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
		return err
	}
	return nil
}

func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 1; i < slugAttempts; i++ {
		exists, err := s.storage.AccountSlugExists(ctx, candidate)
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

// Update applies a partial update. Only name and settings are recognized,
// unrecognized fields are dropped and an empty update succeeds as a no-op.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Update")
	defer span.End()

	update := make(map[string]any)
	if name, ok := fields["name"].(string); ok && name != "" {
		update["name"] = name
	}
	if settings, ok := fields["settings"]; ok {
		encoded, err := json.Marshal(settings)
		if err != nil {
			return false, fmt.Errorf("failed to encode settings: %w", err)
		}
		update["settings"] = encoded
	}

	if len(update) == 0 {
		return true, nil
	}

	if err := s.storage.UpdateAccountFields(ctx, id, update); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SetStatus")
	defer span.End()

	switch status {
	case types.AccountStatusActive, types.AccountStatusSuspended, types.AccountStatusCancelled:
	default:
		return false, nil
	}

	if err := s.storage.UpdateAccountFields(ctx, id, map[string]any{"status": status}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// TransferOwnership atomically moves account ownership: the account record,
// the old owner's demotion to admin and the new owner's promotion commit
// together or not at all.
func (s *Service) TransferOwnership(ctx context.Context, accountID, currentOwnerID, newOwnerID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.TransferOwnership")
	defer span.End()

	if currentOwnerID == newOwnerID {
		return false, nil
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if account.OwnerUserID != currentOwnerID {
		return false, nil
	}

	if _, err := s.storage.GetMember(ctx, accountID, newOwnerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.UpdateAccountFields(txCtx, accountID, map[string]any{"owner_user_id": newOwnerID}); err != nil {
			return err
		}
		if err := s.storage.UpdateMemberRole(txCtx, accountID, currentOwnerID, types.RoleAdmin); err != nil {
			return err
		}
		return s.storage.UpdateMemberRole(txCtx, accountID, newOwnerID, types.RoleOwner)
	})
	if err != nil {
		return false, err
	}

	s.logger.Security().OwnershipTransferred(accountID, currentOwnerID, newOwnerID)
	return true, nil
}

func (s *Service) ListMembers(ctx context.Context, accountID int64) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembers(ctx, accountID)
}

// AddMember adds a user to an account. Owner-level roles can only be created
// through provisioning or ownership transfer, and the tier's user cap
// applies.
func (s *Service) AddMember(ctx context.Context, accountID, userID int64, role types.AccountRole, invitedBy int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.AddMember")
	defer span.End()

	if role == types.RoleOwner || authorization.RoleLevel(role) == 0 {
		return false, nil
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.storage.CountMembers(ctx, accountID)
	if err != nil {
		return false, err
	}
	if !authorization.WithinLimit(count, s.userLimit(account)) {
		return false, nil
	}

	now := time.Now()
	_, err = s.storage.AddMember(ctx, &types.Member{
		AccountID:  accountID,
		UserID:     userID,
		Role:       role,
		InvitedBy:  &invitedBy,
		InvitedAt:  &now,
		AcceptedAt: &now,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) userLimit(account *types.Account) int {
	if account.MaxUsers != 0 {
		return account.MaxUsers
	}
	return authorization.UserLimit(account.Tier)
}

func (s *Service) UpdateMemberRole(ctx context.Context, accountID, userID int64, role types.AccountRole) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.UpdateMemberRole")
	defer span.End()

	if role == types.RoleOwner || authorization.RoleLevel(role) == 0 {
		return false, nil
	}

	member, err := s.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if member.Role == types.RoleOwner {
		return false, nil
	}

	if err := s.storage.UpdateMemberRole(ctx, accountID, userID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) RemoveMember(ctx context.Context, accountID, userID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.RemoveMember")
	defer span.End()

	member, err := s.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if member.Role == types.RoleOwner {
		return false, nil
	}

	if err := s.storage.RemoveMember(ctx, accountID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// MemberPermissions resolves the effective feature set for a member. Owners
// and admins always get every feature their tier allows; everyone else gets
// stored overrides, or role defaults when none are stored.
func (s *Service) MemberPermissions(ctx context.Context, accountID, userID int64) (map[string]bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.MemberPermissions")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	member, err := s.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	available := authorization.AvailableFeatures(account.Tier)
	if authorization.MeetsMinimum(member.Role, types.RoleAdmin) {
		return available, nil
	}

	if member.FeaturePermissions == nil {
		return authorization.DefaultFeaturesForRole(member.Role, account.Tier), nil
	}

	permissions := make(map[string]bool, len(available))
	for feature := range available {
		override, ok := member.FeaturePermissions[feature]
		permissions[feature] = ok && override.Access && available[feature]
	}
	return permissions, nil
}

func (s *Service) UpdateMemberPermissions(ctx context.Context, accountID, userID int64, permissions map[string]types.FeaturePermission) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.UpdateMemberPermissions")
	defer span.End()

	member, err := s.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if member.Role == types.RoleOwner {
		return false, nil
	}

	if err := s.storage.UpdateMemberPermissions(ctx, accountID, userID, permissions); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// InviteMember records an invitation for an email address. The invite is
// subject to the same role and capacity rules as a direct add.
func (s *Service) InviteMember(ctx context.Context, accountID int64, email string, role types.AccountRole, invitedBy int64) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.InviteMember")
	defer span.End()

	if role == types.RoleOwner || authorization.RoleLevel(role) == 0 {
		return nil, nil
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	count, err := s.storage.CountMembers(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !authorization.WithinLimit(count, s.userLimit(account)) {
		return nil, nil
	}

	invite, err := s.storage.CreateInvite(ctx, &types.Invite{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		InvitedBy: invitedBy,
	})
	if err != nil {
		return nil, err
	}

	return invite, nil
}

// AcceptInvite converts an invite token into a membership and consumes the
// token. Accepting an invite for an account the user already belongs to
// succeeds and just consumes the token.
func (s *Service) AcceptInvite(ctx context.Context, token string, userID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.AcceptInvite")
	defer span.End()

	invite, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		invitedAt := invite.CreatedAt
		_, err := s.storage.AddMember(txCtx, &types.Member{
			AccountID:  invite.AccountID,
			UserID:     userID,
			Role:       invite.Role,
			InvitedBy:  &invite.InvitedBy,
			InvitedAt:  &invitedAt,
			AcceptedAt: &now,
		})
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return err
		}
		return s.storage.DeleteInvite(txCtx, invite.ID)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *Service) AvailableFeatures(tier types.Tier) map[string]bool {
	return authorization.AvailableFeatures(tier)
}
