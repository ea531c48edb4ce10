// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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
	storage  StorageInterface
	db       db.DBClientInterface
	invoices InvoiceSourceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	invoices InvoiceSourceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		db:       dbClient,
		invoices: invoices,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CanCreate reports whether the account's tier leaves room for another
// active client.
func (s *Service) CanCreate(ctx context.Context, accountID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.CanCreate")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.storage.CountActiveClients(ctx, accountID)
	if err != nil {
		return false, err
	}

	return authorization.WithinLimit(count, authorization.ClientLimit(account.Tier)), nil
}

// Create provisions a client record. Returns nil without error when the tier
// cap is reached.
func (s *Service) Create(ctx context.Context, accountID int64, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.Create")
	defer span.End()

	ok, err := s.CanCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	clientSlug, err := s.uniqueSlug(ctx, accountID, c.Name)
	if err != nil {
		return nil, err
	}

	c.AccountID = accountID
	c.Slug = clientSlug
	if c.Status == "" {
		c.Status = types.ClientStatusActive
	}
	if c.Currency == "" {
		c.Currency = "EUR"
	}

	created, err := s.storage.CreateClient(ctx, c)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, nil
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) uniqueSlug(ctx context.Context, accountID int64, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 1; i < slugAttempts; i++ {
		exists, err := s.storage.ClientSlugExists(ctx, accountID, candidate)
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

func (s *Service) GetClient(ctx context.Context, id int64) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.GetClient")
	defer span.End()

	c, err := s.storage.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context, accountID int64) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.ListClients")
	defer span.End()

	return s.storage.ListClientsByAccount(ctx, accountID)
}

// allowedClientFields are the columns a partial update may touch. JSON
// columns are encoded before they reach storage.
var allowedClientFields = map[string]bool{
	"name": true, "legal_name": true,
	"address_line1": true, "address_line2": true, "city": true,
	"postal_code": true, "country": true, "tax_id": true,
	"currency": true, "payment_terms": true, "status": true,
	"acquired_via": true,
	"custom_fields": true, "settings": true,
}

func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.Update")
	defer span.End()

	update := make(map[string]any)
	for key, value := range fields {
		if !allowedClientFields[key] {
			continue
		}
		switch key {
		case "status":
			status, ok := value.(string)
			if !ok {
				return false, nil
			}
			switch status {
			case types.ClientStatusActive, types.ClientStatusInactive, types.ClientStatusArchived:
			default:
				return false, nil
			}
			update[key] = status
		case "custom_fields", "settings":
			encoded, err := json.Marshal(value)
			if err != nil {
				return false, fmt.Errorf("failed to encode %s: %w", key, err)
			}
			update[key] = encoded
		default:
			update[key] = value
		}
	}

	if len(update) == 0 {
		return true, nil
	}

	if err := s.storage.UpdateClientFields(ctx, id, update); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Delete removes a client. The default client and clients that still have
// active projects attached are protected.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.Delete")
	defer span.End()

	c, err := s.storage.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if c.IsDefault {
		return false, nil
	}

	active, err := s.storage.CountActiveProjectsForClient(ctx, id)
	if err != nil {
		return false, err
	}
	if active > 0 {
		return false, nil
	}

	if err := s.storage.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) AddContact(ctx context.Context, clientID, contactID int64, role types.ContactRole) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.AddContact")
	defer span.End()

	switch role {
	case types.ContactRolePrimary, types.ContactRoleBilling, types.ContactRoleTechnical,
		types.ContactRoleProjectManager, types.ContactRoleOther:
	default:
		return false, nil
	}

	// The first contact of a client becomes primary automatically.
	count, err := s.storage.CountClientContacts(ctx, clientID)
	if err != nil {
		return false, err
	}

	_, err = s.storage.AddClientContact(ctx, &types.ClientContact{
		ClientID:  clientID,
		ContactID: contactID,
		Role:      role,
		IsPrimary: count == 0,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || errors.Is(err, storage.ErrForeignKeyViolation) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) RemoveContact(ctx context.Context, clientID, contactID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.RemoveContact")
	defer span.End()

	if err := s.storage.RemoveClientContact(ctx, clientID, contactID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// SetPrimaryContact moves the primary flag to the given contact. The clear
// and the set commit together so the client never ends up with two primaries.
func (s *Service) SetPrimaryContact(ctx context.Context, clientID, contactID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.SetPrimaryContact")
	defer span.End()

	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.ClearPrimaryContacts(txCtx, clientID); err != nil {
			return err
		}
		return s.storage.SetPrimaryContact(txCtx, clientID, contactID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) ListContacts(ctx context.Context, clientID int64) ([]*types.ClientContact, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.ListContacts")
	defer span.End()

	return s.storage.ListClientContacts(ctx, clientID)
}

// Stats aggregates project and contact counts with billing figures from the
// invoicing collaborator. Billing failures are logged and reported as zeros,
// a stats widget should not break on a flaky upstream.
func (s *Service) Stats(ctx context.Context, clientID int64) (*types.ClientStats, error) {
	ctx, span := s.tracer.Start(ctx, "client.Service.Stats")
	defer span.End()

	if _, err := s.storage.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	stats := &types.ClientStats{ClientID: clientID}

	var err error
	if stats.ProjectCount, err = s.storage.CountProjectsForClient(ctx, clientID); err != nil {
		return nil, err
	}
	if stats.ActiveProjects, err = s.storage.CountActiveProjectsForClient(ctx, clientID); err != nil {
		return nil, err
	}
	if stats.ContactCount, err = s.storage.CountClientContacts(ctx, clientID); err != nil {
		return nil, err
	}

	if count, err := s.invoices.InvoiceCount(ctx, clientID); err != nil {
		s.logger.Warnf("failed to fetch invoice count for client %d: %v", clientID, err)
	} else {
		stats.InvoiceCount = count
	}
	if total, unpaid, err := s.invoices.RevenueTotals(ctx, clientID); err != nil {
		s.logger.Warnf("failed to fetch revenue totals for client %d: %v", clientID, err)
	} else {
		stats.TotalRevenue = total
		stats.UnpaidRevenue = unpaid
	}

	return stats, nil
}
