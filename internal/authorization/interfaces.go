// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

// StorageInterface is the slice of storage the authorizer needs to resolve a
// caller's effective role.
type StorageInterface interface {
	GetMember(ctx context.Context, accountID, userID int64) (*types.Member, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
}

type AuthorizerInterface interface {
	AccountRole(ctx context.Context, accountID, userID int64) (types.AccountRole, error)
	HasAccountRole(ctx context.Context, accountID, userID int64, minimum types.AccountRole) (bool, error)
	CanAccessProject(ctx context.Context, accountID, projectID, userID int64) (bool, error)
	HasProjectRole(ctx context.Context, accountID, projectID, userID int64, minimum types.ProjectRole) (bool, error)
}
