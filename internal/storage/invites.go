// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	token, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	var created types.Invite
	err = s.db.Statement(ctx).
		Insert("invites").
		Columns("token", "account_id", "email", "role", "invited_by").
		Values(token.String(), invite.AccountID, invite.Email, invite.Role, invite.InvitedBy).
		Suffix("RETURNING id, token, account_id, email, role, invited_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Token, &created.AccountID, &created.Email, &created.Role, &created.InvitedBy, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	var invite types.Invite
	err := s.db.Statement(ctx).
		Select("id", "token", "account_id", "email", "role", "invited_by", "created_at").
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&invite.ID, &invite.Token, &invite.AccountID, &invite.Email, &invite.Role, &invite.InvitedBy, &invite.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &invite, nil
}

func (s *Storage) DeleteInvite(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvite")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}
