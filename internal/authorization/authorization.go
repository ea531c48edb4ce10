// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer resolves a caller's effective role from membership rows and the
// static role tables. Missing rows degrade to no access, never to an error.
type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.storage = storage
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}

// AccountRole returns the caller's role within the account, or the empty
// string if the caller is not a member.
func (a *Authorizer) AccountRole(ctx context.Context, accountID, userID int64) (types.AccountRole, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AccountRole")
	defer span.End()

	member, err := a.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return member.Role, nil
}

func (a *Authorizer) HasAccountRole(ctx context.Context, accountID, userID int64, minimum types.AccountRole) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasAccountRole")
	defer span.End()

	role, err := a.AccountRole(ctx, accountID, userID)
	if err != nil {
		return false, err
	}

	if !MeetsMinimum(role, minimum) {
		a.logger.Security().AuthorizationDenied(userID, accountID, string(minimum))
		return false, nil
	}

	return true, nil
}

// CanAccessProject short-circuits to allowed for account owners and admins.
// Account members and viewers need an explicit project membership row.
func (a *Authorizer) CanAccessProject(ctx context.Context, accountID, projectID, userID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanAccessProject")
	defer span.End()

	role, err := a.AccountRole(ctx, accountID, userID)
	if err != nil {
		return false, err
	}
	if MeetsMinimum(role, types.RoleAdmin) {
		return true, nil
	}
	if role == "" {
		return false, nil
	}

	_, err = a.storage.GetProjectMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// HasProjectRole resolves the caller's effective project role. Account
// owners and admins are treated as project admins everywhere.
func (a *Authorizer) HasProjectRole(ctx context.Context, accountID, projectID, userID int64, minimum types.ProjectRole) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasProjectRole")
	defer span.End()

	role, err := a.AccountRole(ctx, accountID, userID)
	if err != nil {
		return false, err
	}
	if MeetsMinimum(role, types.RoleAdmin) {
		return true, nil
	}
	if role == "" {
		return false, nil
	}

	member, err := a.storage.GetProjectMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !MeetsProjectMinimum(member.Role, minimum) {
		a.logger.Security().AuthorizationDenied(userID, projectID, string(minimum))
		return false, nil
	}

	return true, nil
}
