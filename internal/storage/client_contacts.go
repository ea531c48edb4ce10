// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
)

func (s *Storage) AddClientContact(ctx context.Context, c *types.ClientContact) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddClientContact")
	defer span.End()

	var id int64
	err := s.db.Statement(ctx).
		Insert("client_contacts").
		Columns("client_id", "contact_id", "role", "is_primary").
		Values(c.ClientID, c.ContactID, c.Role, c.IsPrimary).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return 0, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return 0, ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to add client contact: %w", err)
	}

	return id, nil
}

func (s *Storage) RemoveClientContact(ctx context.Context, clientID, contactID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveClientContact")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("client_contacts").
		Where(sq.Eq{"client_id": clientID, "contact_id": contactID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove client contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ClearPrimaryContacts unsets is_primary on every contact of a client. Used
// inside the primary-contact swap transaction.
func (s *Storage) ClearPrimaryContacts(ctx context.Context, clientID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearPrimaryContacts")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("client_contacts").
		Set("is_primary", false).
		Where(sq.Eq{"client_id": clientID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear primary contacts: %w", err)
	}

	return nil
}

func (s *Storage) SetPrimaryContact(ctx context.Context, clientID, contactID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPrimaryContact")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("client_contacts").
		Set("is_primary", true).
		Where(sq.Eq{"client_id": clientID, "contact_id": contactID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set primary contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListClientContacts(ctx context.Context, clientID int64) ([]*types.ClientContact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientContacts")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "client_id", "contact_id", "role", "is_primary", "created_at").
		From("client_contacts").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list client contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*types.ClientContact
	for rows.Next() {
		var c types.ClientContact
		if err := rows.Scan(&c.ID, &c.ClientID, &c.ContactID, &c.Role, &c.IsPrimary, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client contact: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contacts, nil
}

func (s *Storage) CountClientContacts(ctx context.Context, clientID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountClientContacts")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("client_contacts").
		Where(sq.Eq{"client_id": clientID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count client contacts: %w", err)
	}

	return count, nil
}
