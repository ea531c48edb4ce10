// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockDBClientInterface, *MockTracingInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockDB, mockTracer
}

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_Grant(t *testing.T) {
	accountID := int64(7)
	utmID := int64(100)
	userID := int64(42)
	assignedBy := int64(1)

	testCases := []struct {
		name       string
		level      types.AccessLevel
		setupMocks func(*MockStorageInterface)
		expectNil  bool
	}{
		{
			name:       "unknown level rejected",
			level:      types.AccessLevel("admin"),
			setupMocks: func(*MockStorageInterface) {},
			expectNil:  true,
		},
		{
			name:  "target outside the account",
			level: types.AccessEdit,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expectNil: true,
		},
		{
			name:  "success replaces any existing grant",
			level: types.AccessEdit,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().UpsertGrant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, g *types.UtmAccessGrant) (*types.UtmAccessGrant, error) {
						if g.UtmID != utmID || g.UserID != userID || g.AccessLevel != types.AccessEdit || g.AssignedBy != assignedBy {
							t.Errorf("unexpected grant %+v", g)
						}
						return g, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer := newTestService(ctrl)

			expectSpan(mockTracer, "access.Service.Grant")
			tc.setupMocks(mockStorage)

			grant, err := s.Grant(context.Background(), accountID, utmID, userID, tc.level, assignedBy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectNil {
				if grant != nil {
					t.Errorf("expected nil grant, got %+v", grant)
				}
				return
			}
			if grant == nil {
				t.Fatal("expected a grant")
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	utmID := int64(100)
	userID := int64(42)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "no grant to revoke",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteGrant(gomock.Any(), utmID, userID).Return(storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteGrant(gomock.Any(), utmID, userID).Return(nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer := newTestService(ctrl)

			expectSpan(mockTracer, "access.Service.Revoke")
			tc.setupMocks(mockStorage)

			ok, err := s.Revoke(context.Background(), utmID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_BulkAssign(t *testing.T) {
	accountID := int64(7)
	assignedBy := int64(1)
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		utmIDs      []int64
		userIDs     []int64
		level       types.AccessLevel
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface)
		expected    int
		expectedErr error
	}{
		{
			name:       "empty utm list",
			utmIDs:     nil,
			userIDs:    []int64{42},
			level:      types.AccessView,
			setupMocks: func(*MockStorageInterface, *MockDBClientInterface) {},
			expected:   0,
		},
		{
			name:       "unknown level",
			utmIDs:     []int64{100},
			userIDs:    []int64{42},
			level:      types.AccessLevel("write"),
			setupMocks: func(*MockStorageInterface, *MockDBClientInterface) {},
			expected:   0,
		},
		{
			name:    "one outsider rejects the whole batch",
			utmIDs:  []int64{100},
			userIDs: []int64{42, 43},
			level:   types.AccessView,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, int64(42)).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, int64(43)).Return(nil, storage.ErrNotFound)
			},
			expected: 0,
		},
		{
			name:    "writes the full cartesian product",
			utmIDs:  []int64{100, 101},
			userIDs: []int64{42, 43},
			level:   types.AccessFull,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, int64(42)).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, int64(43)).Return(&types.Member{Role: types.RoleViewer}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().UpsertGrant(gomock.Any(), gomock.Any()).Return(&types.UtmAccessGrant{}, nil).Times(4)
			},
			expected: 4,
		},
		{
			name:    "partial failure rolls the batch back",
			utmIDs:  []int64{100},
			userIDs: []int64{42},
			level:   types.AccessView,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, int64(42)).Return(&types.Member{Role: types.RoleMember}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expected:    0,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockDB, mockTracer := newTestService(ctrl)

			expectSpan(mockTracer, "access.Service.BulkAssign")
			tc.setupMocks(mockStorage, mockDB)

			written, err := s.BulkAssign(context.Background(), accountID, tc.utmIDs, tc.userIDs, tc.level, assignedBy)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if written != tc.expected {
				t.Errorf("expected %d grants written, got %d", tc.expected, written)
			}
		})
	}
}

func TestService_UserHasAccess(t *testing.T) {
	accountID := int64(7)
	utmID := int64(100)
	userID := int64(42)

	testCases := []struct {
		name       string
		required   types.AccessLevel
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:     "account admin passes without a grant",
			required: types.AccessFull,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleAdmin}, nil)
			},
			expected: true,
		},
		{
			name:     "non-member denied",
			required: types.AccessView,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:     "member without a grant denied",
			required: types.AccessView,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetGrant(gomock.Any(), utmID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:     "edit grant satisfies view",
			required: types.AccessView,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetGrant(gomock.Any(), utmID, userID).Return(&types.UtmAccessGrant{AccessLevel: types.AccessEdit}, nil)
			},
			expected: true,
		},
		{
			name:     "view grant does not satisfy full",
			required: types.AccessFull,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleViewer}, nil)
				mockStorage.EXPECT().GetGrant(gomock.Any(), utmID, userID).Return(&types.UtmAccessGrant{AccessLevel: types.AccessView}, nil)
			},
			expected: false,
		},
		{
			name:     "unrecognized required level falls back to view",
			required: types.AccessLevel("browse"),
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetGrant(gomock.Any(), utmID, userID).Return(&types.UtmAccessGrant{AccessLevel: types.AccessView}, nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer := newTestService(ctrl)

			expectSpan(mockTracer, "access.Service.UserHasAccess")
			tc.setupMocks(mockStorage)

			ok, err := s.UserHasAccess(context.Background(), accountID, utmID, userID, tc.required)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}
