// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Grant assigns an access level for one UTM record to one user, replacing any
// existing grant for the pair. The target user must be a member of the
// account.
func (s *Service) Grant(ctx context.Context, accountID, utmID, userID int64, level types.AccessLevel, assignedBy int64) (*types.UtmAccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Grant")
	defer span.End()

	if authorization.AccessLevelRank(level) == 0 {
		return nil, nil
	}

	if _, err := s.storage.GetMember(ctx, accountID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return s.storage.UpsertGrant(ctx, &types.UtmAccessGrant{
		AccountID:   accountID,
		UtmID:       utmID,
		UserID:      userID,
		AccessLevel: level,
		AssignedBy:  assignedBy,
	})
}

func (s *Service) Revoke(ctx context.Context, utmID, userID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Revoke")
	defer span.End()

	if err := s.storage.DeleteGrant(ctx, utmID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// BulkAssign writes the Cartesian product of utmIDs x userIDs at the given
// level in one transaction and returns the number of grants written. Empty
// id lists and users outside the account reject the whole batch.
func (s *Service) BulkAssign(ctx context.Context, accountID int64, utmIDs, userIDs []int64, level types.AccessLevel, assignedBy int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.BulkAssign")
	defer span.End()

	if len(utmIDs) == 0 || len(userIDs) == 0 {
		return 0, nil
	}
	if authorization.AccessLevelRank(level) == 0 {
		return 0, nil
	}

	for _, userID := range userIDs {
		if _, err := s.storage.GetMember(ctx, accountID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return 0, nil
			}
			return 0, err
		}
	}

	var written int
	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		for _, utmID := range utmIDs {
			for _, userID := range userIDs {
				_, err := s.storage.UpsertGrant(txCtx, &types.UtmAccessGrant{
					AccountID:   accountID,
					UtmID:       utmID,
					UserID:      userID,
					AccessLevel: level,
					AssignedBy:  assignedBy,
				})
				if err != nil {
					return err
				}
				written++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// UserHasAccess checks a user's level on one UTM record. Account owners and
// admins pass without a grant; everyone else needs a grant at or above the
// required level. An unrecognized required level falls back to view.
func (s *Service) UserHasAccess(ctx context.Context, accountID, utmID, userID int64, required types.AccessLevel) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.UserHasAccess")
	defer span.End()

	member, err := s.storage.GetMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if authorization.MeetsMinimum(member.Role, types.RoleAdmin) {
		return true, nil
	}

	grant, err := s.storage.GetGrant(ctx, utmID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return authorization.MeetsAccessLevel(grant.AccessLevel, required), nil
}

func (s *Service) ListGrants(ctx context.Context, utmID int64) ([]*types.UtmAccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListGrants")
	defer span.End()

	return s.storage.ListGrantsByUtm(ctx, utmID)
}
