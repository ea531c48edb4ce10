// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type StorageInterface interface {
	UpsertGrant(ctx context.Context, g *types.UtmAccessGrant) (*types.UtmAccessGrant, error)
	GetGrant(ctx context.Context, utmID, userID int64) (*types.UtmAccessGrant, error)
	DeleteGrant(ctx context.Context, utmID, userID int64) error
	ListGrantsByUtm(ctx context.Context, utmID int64) ([]*types.UtmAccessGrant, error)

	GetMember(ctx context.Context, accountID, userID int64) (*types.Member, error)
}

type ServiceInterface interface {
	Grant(ctx context.Context, accountID, utmID, userID int64, level types.AccessLevel, assignedBy int64) (*types.UtmAccessGrant, error)
	Revoke(ctx context.Context, utmID, userID int64) (bool, error)
	BulkAssign(ctx context.Context, accountID int64, utmIDs, userIDs []int64, level types.AccessLevel, assignedBy int64) (int, error)
	UserHasAccess(ctx context.Context, accountID, utmID, userID int64, required types.AccessLevel) (bool, error)
	ListGrants(ctx context.Context, utmID int64) ([]*types.UtmAccessGrant, error)
}
