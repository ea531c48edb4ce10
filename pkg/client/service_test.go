// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_client.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockDBClientInterface, *MockInvoiceSourceInterface, *MockTracingInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)
	mockInvoices := NewMockInvoiceSourceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockDB, mockInvoices, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockDB, mockInvoices, mockTracer, mockLogger
}

func TestService_Create(t *testing.T) {
	accountID := int64(7)

	testCases := []struct {
		name       string
		client     *types.Client
		setupMocks func(*MockStorageInterface)
		expectNil  bool
	}{
		{
			name:   "defaults applied",
			client: &types.Client{Name: "Acme GmbH"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierFree}, nil)
				mockStorage.EXPECT().CountActiveClients(gomock.Any(), accountID).Return(0, nil)
				mockStorage.EXPECT().ClientSlugExists(gomock.Any(), accountID, "acme-gmbh").Return(false, nil)
				mockStorage.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, c *types.Client) (*types.Client, error) {
						if c.Slug != "acme-gmbh" || c.Status != types.ClientStatusActive || c.Currency != "EUR" {
							t.Errorf("unexpected client defaults %+v", c)
						}
						created := *c
						created.ID = 5
						return &created, nil
					})
			},
		},
		{
			name:   "tier cap reached",
			client: &types.Client{Name: "Acme GmbH"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierFree}, nil)
				mockStorage.EXPECT().CountActiveClients(gomock.Any(), accountID).Return(3, nil)
			},
			expectNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.Create")
			expectSpan(mockTracer, "client.Service.CanCreate")
			tc.setupMocks(mockStorage)

			created, err := s.Create(context.Background(), accountID, tc.client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectNil {
				if created != nil {
					t.Errorf("expected nil client, got %+v", created)
				}
				return
			}
			if created == nil {
				t.Fatal("expected a client")
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	clientID := int64(5)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "default client is protected",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(&types.Client{ID: clientID, IsDefault: true}, nil)
			},
			expected: false,
		},
		{
			name: "active projects block deletion",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(&types.Client{ID: clientID}, nil)
				mockStorage.EXPECT().CountActiveProjectsForClient(gomock.Any(), clientID).Return(2, nil)
			},
			expected: false,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(&types.Client{ID: clientID}, nil)
				mockStorage.EXPECT().CountActiveProjectsForClient(gomock.Any(), clientID).Return(0, nil)
				mockStorage.EXPECT().DeleteClient(gomock.Any(), clientID).Return(nil)
			},
			expected: true,
		},
		{
			name: "missing client",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.Delete")
			tc.setupMocks(mockStorage)

			ok, err := s.Delete(context.Background(), clientID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_AddContact(t *testing.T) {
	clientID := int64(5)
	contactID := int64(30)

	testCases := []struct {
		name       string
		role       types.ContactRole
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "unknown role rejected",
			role:       types.ContactRole("assistant"),
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name: "first contact becomes primary",
			role: types.ContactRoleBilling,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CountClientContacts(gomock.Any(), clientID).Return(0, nil)
				mockStorage.EXPECT().AddClientContact(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, c *types.ClientContact) (int64, error) {
						if !c.IsPrimary {
							t.Error("expected the first contact to be primary")
						}
						return 1, nil
					})
			},
			expected: true,
		},
		{
			name: "later contacts are not primary",
			role: types.ContactRoleTechnical,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CountClientContacts(gomock.Any(), clientID).Return(2, nil)
				mockStorage.EXPECT().AddClientContact(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, c *types.ClientContact) (int64, error) {
						if c.IsPrimary {
							t.Error("expected a later contact not to be primary")
						}
						return 3, nil
					})
			},
			expected: true,
		},
		{
			name: "duplicate link",
			role: types.ContactRoleOther,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CountClientContacts(gomock.Any(), clientID).Return(1, nil)
				mockStorage.EXPECT().AddClientContact(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrDuplicateKey)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.AddContact")
			tc.setupMocks(mockStorage)

			ok, err := s.AddContact(context.Background(), clientID, contactID, tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_SetPrimaryContact(t *testing.T) {
	clientID := int64(5)
	contactID := int64(30)
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface)
		expected    bool
		expectedErr error
	}{
		{
			name: "clear and set commit together",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				gomock.InOrder(
					mockStorage.EXPECT().ClearPrimaryContacts(gomock.Any(), clientID).Return(nil),
					mockStorage.EXPECT().SetPrimaryContact(gomock.Any(), clientID, contactID).Return(nil),
				)
			},
			expected: true,
		},
		{
			name: "unknown contact",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().ClearPrimaryContacts(gomock.Any(), clientID).Return(nil)
				mockStorage.EXPECT().SetPrimaryContact(gomock.Any(), clientID, contactID).Return(storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "transaction failure surfaces",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expected:    false,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockDB, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.SetPrimaryContact")
			tc.setupMocks(mockStorage, mockDB)

			ok, err := s.SetPrimaryContact(context.Background(), clientID, contactID)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_Stats(t *testing.T) {
	clientID := int64(5)
	upstreamErr := errors.New("upstream unavailable")

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockInvoiceSourceInterface, *MockLoggerInterface)
		check      func(*testing.T, *types.ClientStats)
	}{
		{
			name: "full aggregation",
			setupMocks: func(mockStorage *MockStorageInterface, mockInvoices *MockInvoiceSourceInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(&types.Client{ID: clientID}, nil)
				mockStorage.EXPECT().CountProjectsForClient(gomock.Any(), clientID).Return(4, nil)
				mockStorage.EXPECT().CountActiveProjectsForClient(gomock.Any(), clientID).Return(2, nil)
				mockStorage.EXPECT().CountClientContacts(gomock.Any(), clientID).Return(3, nil)
				mockInvoices.EXPECT().InvoiceCount(gomock.Any(), clientID).Return(7, nil)
				mockInvoices.EXPECT().RevenueTotals(gomock.Any(), clientID).Return(1200.50, 300.25, nil)
			},
			check: func(t *testing.T, stats *types.ClientStats) {
				if stats.ProjectCount != 4 || stats.ActiveProjects != 2 || stats.ContactCount != 3 {
					t.Errorf("unexpected counts %+v", stats)
				}
				if stats.InvoiceCount != 7 || stats.TotalRevenue != 1200.50 || stats.UnpaidRevenue != 300.25 {
					t.Errorf("unexpected billing figures %+v", stats)
				}
			},
		},
		{
			name: "billing failures degrade to zeros",
			setupMocks: func(mockStorage *MockStorageInterface, mockInvoices *MockInvoiceSourceInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(&types.Client{ID: clientID}, nil)
				mockStorage.EXPECT().CountProjectsForClient(gomock.Any(), clientID).Return(4, nil)
				mockStorage.EXPECT().CountActiveProjectsForClient(gomock.Any(), clientID).Return(2, nil)
				mockStorage.EXPECT().CountClientContacts(gomock.Any(), clientID).Return(3, nil)
				mockInvoices.EXPECT().InvoiceCount(gomock.Any(), clientID).Return(0, upstreamErr)
				mockInvoices.EXPECT().RevenueTotals(gomock.Any(), clientID).Return(0.0, 0.0, upstreamErr)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
			check: func(t *testing.T, stats *types.ClientStats) {
				if stats.ProjectCount != 4 {
					t.Errorf("expected project counts to survive, got %+v", stats)
				}
				if stats.InvoiceCount != 0 || stats.TotalRevenue != 0 || stats.UnpaidRevenue != 0 {
					t.Errorf("expected zero billing figures, got %+v", stats)
				}
			},
		},
		{
			name: "missing client",
			setupMocks: func(mockStorage *MockStorageInterface, mockInvoices *MockInvoiceSourceInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetClientByID(gomock.Any(), clientID).Return(nil, storage.ErrNotFound)
			},
			check: func(t *testing.T, stats *types.ClientStats) {
				if stats != nil {
					t.Errorf("expected nil stats, got %+v", stats)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockInvoices, mockTracer, mockLogger := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.Stats")
			tc.setupMocks(mockStorage, mockInvoices, mockLogger)

			stats, err := s.Stats(context.Background(), clientID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, stats)
		})
	}
}

func TestService_Update(t *testing.T) {
	clientID := int64(5)

	testCases := []struct {
		name       string
		fields     map[string]any
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "unknown status rejected",
			fields:     map[string]any{"status": "paused"},
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name:       "unrecognized fields are dropped",
			fields:     map[string]any{"is_default": true, "slug": "sneaky"},
			setupMocks: func(*MockStorageInterface) {},
			expected:   true,
		},
		{
			name:   "allowed fields pass through",
			fields: map[string]any{"name": "New Name", "payment_terms": 30},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateClientFields(gomock.Any(), clientID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id int64, fields map[string]any) error {
						if fields["name"] != "New Name" || fields["payment_terms"] != 30 {
							t.Errorf("unexpected update %+v", fields)
						}
						return nil
					})
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "client.Service.Update")
			tc.setupMocks(mockStorage)

			ok, err := s.Update(context.Background(), clientID, tc.fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}
