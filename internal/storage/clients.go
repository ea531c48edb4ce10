// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/jackc/pgx/v5"
)

const clientColumns = "id, account_id, name, slug, legal_name, address_line1, address_line2, city, postal_code, country, " +
	"tax_id, currency, payment_terms, status, is_default, custom_fields, settings, acquired_via, acquired_at, created_at, updated_at"

func scanClient(row sq.RowScanner) (*types.Client, error) {
	var c types.Client
	var customFields, settings []byte
	err := row.Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Slug, &c.LegalName,
		&c.AddressLine1, &c.AddressLine2, &c.City, &c.PostalCode, &c.Country,
		&c.TaxID, &c.Currency, &c.PaymentTerms, &c.Status, &c.IsDefault,
		&customFields, &settings, &c.AcquiredVia, &c.AcquiredAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(customFields, &c.CustomFields); err != nil {
		return nil, fmt.Errorf("failed to decode client custom fields: %w", err)
	}
	if err := scanJSON(settings, &c.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode client settings: %w", err)
	}
	return &c, nil
}

func (s *Storage) CreateClient(ctx context.Context, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClient")
	defer span.End()

	customFields, err := jsonb(c.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode client custom fields: %w", err)
	}
	settings, err := jsonb(c.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode client settings: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("clients").
		Columns(
			"account_id", "name", "slug", "legal_name",
			"address_line1", "address_line2", "city", "postal_code", "country",
			"tax_id", "currency", "payment_terms", "status", "is_default",
			"custom_fields", "settings", "acquired_via", "acquired_at",
		).
		Values(
			c.AccountID, c.Name, c.Slug, c.LegalName,
			c.AddressLine1, c.AddressLine2, c.City, c.PostalCode, c.Country,
			c.TaxID, c.Currency, c.PaymentTerms, c.Status, c.IsDefault,
			customFields, settings, c.AcquiredVia, c.AcquiredAt,
		).
		Suffix("RETURNING " + clientColumns).
		QueryRowContext(ctx)

	created, err := scanClient(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	return created, nil
}

func (s *Storage) GetClientByID(ctx context.Context, id int64) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(clientColumns).
		From("clients").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (s *Storage) ListClientsByAccount(ctx context.Context, accountID int64) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientsByAccount")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(clientColumns).
		From("clients").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*types.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return clients, nil
}

func (s *Storage) CountActiveClients(ctx context.Context, accountID int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveClients")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("clients").
		Where(sq.Eq{"account_id": accountID, "status": types.ClientStatusActive}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active clients: %w", err)
	}

	return count, nil
}

func (s *Storage) ClientSlugExists(ctx context.Context, accountID int64, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ClientSlugExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("clients").
		Where(sq.Eq{"account_id": accountID, "slug": slug}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check client slug: %w", err)
	}

	return count > 0, nil
}

// UpdateClientFields applies the given column values. Callers are
// responsible for allow-listing.
func (s *Storage) UpdateClientFields(ctx context.Context, id int64, fields map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClientFields")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("clients").
		SetMap(fields).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
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

func (s *Storage) DeleteClient(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClient")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("clients").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
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
