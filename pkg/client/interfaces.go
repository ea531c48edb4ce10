// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type StorageInterface interface {
	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByID(ctx context.Context, id int64) (*types.Client, error)
	ListClientsByAccount(ctx context.Context, accountID int64) ([]*types.Client, error)
	CountActiveClients(ctx context.Context, accountID int64) (int, error)
	ClientSlugExists(ctx context.Context, accountID int64, slug string) (bool, error)
	UpdateClientFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteClient(ctx context.Context, id int64) error

	AddClientContact(ctx context.Context, c *types.ClientContact) (int64, error)
	RemoveClientContact(ctx context.Context, clientID, contactID int64) error
	ClearPrimaryContacts(ctx context.Context, clientID int64) error
	SetPrimaryContact(ctx context.Context, clientID, contactID int64) error
	ListClientContacts(ctx context.Context, clientID int64) ([]*types.ClientContact, error)
	CountClientContacts(ctx context.Context, clientID int64) (int, error)

	CountActiveProjectsForClient(ctx context.Context, clientID int64) (int, error)
	CountProjectsForClient(ctx context.Context, clientID int64) (int, error)

	GetAccountByID(ctx context.Context, id int64) (*types.Account, error)
}

// InvoiceSourceInterface supplies per-client billing figures. Invoicing lives
// in another service, so stats degrade to zeros when it is unreachable.
type InvoiceSourceInterface interface {
	InvoiceCount(ctx context.Context, clientID int64) (int, error)
	RevenueTotals(ctx context.Context, clientID int64) (total, unpaid float64, err error)
}

type ServiceInterface interface {
	CanCreate(ctx context.Context, accountID int64) (bool, error)
	Create(ctx context.Context, accountID int64, c *types.Client) (*types.Client, error)
	GetClient(ctx context.Context, id int64) (*types.Client, error)
	ListClients(ctx context.Context, accountID int64) ([]*types.Client, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	AddContact(ctx context.Context, clientID, contactID int64, role types.ContactRole) (bool, error)
	RemoveContact(ctx context.Context, clientID, contactID int64) (bool, error)
	SetPrimaryContact(ctx context.Context, clientID, contactID int64) (bool, error)
	ListContacts(ctx context.Context, clientID int64) ([]*types.ClientContact, error)

	Stats(ctx context.Context, clientID int64) (*types.ClientStats, error)
}
