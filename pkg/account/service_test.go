// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_account.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestService_GetOrCreateForUser(t *testing.T) {
	userID := int64(42)
	existing := &types.Account{ID: 7, Name: "Existing", Slug: "existing", OwnerUserID: userID, Tier: types.TierFree}
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		setupMocks      func(*MockStorageInterface, *MockDBClientInterface, *MockDirectoryInterface)
		expectedAccount *types.Account
		expectedErr     error
	}{
		{
			name: "existing membership",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(existing, nil)
			},
			expectedAccount: existing,
		},
		{
			name: "owned account with missing member row is repaired",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetAccountByOwner(gomock.Any(), userID).Return(existing, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			expectedAccount: existing,
		},
		{
			name: "unknown user yields no account",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetAccountByOwner(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockDirectory.EXPECT().GetUser(gomock.Any(), userID).Return(nil, nil)
			},
			expectedAccount: nil,
		},
		{
			name: "provisions a fresh account",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetAccountByOwner(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockDirectory.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID, DisplayName: "Jane"}, nil)
				mockStorage.EXPECT().AccountSlugExists(gomock.Any(), "jane-s-account").Return(false, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, a *types.Account) (*types.Account, error) {
						if a.Name != "Jane's Account" {
							t.Errorf("unexpected account name %q", a.Name)
						}
						if a.Tier != types.TierFree || a.MaxUsers != 2 {
							t.Errorf("unexpected tier defaults: %s/%d", a.Tier, a.MaxUsers)
						}
						created := *a
						created.ID = 99
						return &created, nil
					})
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *types.Member) (int64, error) {
						if m.AccountID != 99 || m.UserID != userID || m.Role != types.RoleOwner {
							t.Errorf("unexpected owner member %+v", m)
						}
						return 1, nil
					})
			},
			expectedAccount: &types.Account{ID: 99},
		},
		{
			name: "concurrent provisioning falls back to the winner",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetAccountByOwner(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockDirectory.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID, DisplayName: "Jane"}, nil)
				mockStorage.EXPECT().AccountSlugExists(gomock.Any(), "jane-s-account").Return(false, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				mockStorage.EXPECT().GetAccountByOwner(gomock.Any(), userID).Return(existing, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrDuplicateKey)
			},
			expectedAccount: existing,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockDirectory *MockDirectoryInterface) {
				mockStorage.EXPECT().GetAccountForUser(gomock.Any(), userID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.GetOrCreateForUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB, mockDirectory)

			account, err := s.GetOrCreateForUser(context.Background(), userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedAccount == nil {
				if account != nil {
					t.Errorf("expected no account, got %+v", account)
				}
				return
			}
			if account == nil || account.ID != tc.expectedAccount.ID {
				t.Errorf("expected account %+v, got %+v", tc.expectedAccount, account)
			}
		})
	}
}

func TestService_TransferOwnership(t *testing.T) {
	accountID := int64(7)
	ownerID := int64(1)
	newOwnerID := int64(2)
	account := &types.Account{ID: accountID, OwnerUserID: ownerID}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		from, to    int64
		expected    bool
		expectedErr error
	}{
		{
			name:       "self transfer rejected",
			setupMocks: func(*MockStorageInterface, *MockDBClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			from:       ownerID,
			to:         ownerID,
			expected:   false,
		},
		{
			name: "caller is not the owner",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
			},
			from:     newOwnerID,
			to:       ownerID,
			expected: false,
		},
		{
			name: "new owner is not a member",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, newOwnerID).Return(nil, storage.ErrNotFound)
			},
			from:     ownerID,
			to:       newOwnerID,
			expected: false,
		},
		{
			name: "success swaps both roles atomically",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, newOwnerID).Return(&types.Member{AccountID: accountID, UserID: newOwnerID, Role: types.RoleAdmin}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().UpdateAccountFields(gomock.Any(), accountID, map[string]any{"owner_user_id": newOwnerID}).Return(nil)
				mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), accountID, ownerID, types.RoleAdmin).Return(nil)
				mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), accountID, newOwnerID, types.RoleOwner).Return(nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().OwnershipTransferred(accountID, ownerID, newOwnerID)
			},
			from:     ownerID,
			to:       newOwnerID,
			expected: true,
		},
		{
			name: "transaction failure surfaces",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, newOwnerID).Return(&types.Member{AccountID: accountID, UserID: newOwnerID, Role: types.RoleAdmin}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			from:        ownerID,
			to:          newOwnerID,
			expected:    false,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.TransferOwnership").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB, mockLogger, mockSecurity)

			ok, err := s.TransferOwnership(context.Background(), accountID, tc.from, tc.to)

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

func TestService_AddMember(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)
	invitedBy := int64(1)
	account := &types.Account{ID: accountID, Tier: types.TierFree, MaxUsers: 2}

	testCases := []struct {
		name       string
		role       types.AccountRole
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "owner role rejected",
			role:       types.RoleOwner,
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name:       "unknown role rejected",
			role:       types.AccountRole("superuser"),
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name: "tier user cap reached",
			role: types.RoleMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountMembers(gomock.Any(), accountID).Return(2, nil)
			},
			expected: false,
		},
		{
			name: "already a member",
			role: types.RoleMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountMembers(gomock.Any(), accountID).Return(1, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrDuplicateKey)
			},
			expected: false,
		},
		{
			name: "success",
			role: types.RoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountMembers(gomock.Any(), accountID).Return(1, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *types.Member) (int64, error) {
						if m.Role != types.RoleAdmin || m.InvitedBy == nil || *m.InvitedBy != invitedBy {
							t.Errorf("unexpected member %+v", m)
						}
						return 5, nil
					})
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.AddMember").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			ok, err := s.AddMember(context.Background(), accountID, userID, tc.role, invitedBy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_UpdateMemberRole(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)

	testCases := []struct {
		name       string
		role       types.AccountRole
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "promotion to owner rejected",
			role:       types.RoleOwner,
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name: "owner cannot be demoted",
			role: types.RoleMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleOwner}, nil)
			},
			expected: false,
		},
		{
			name: "member not found",
			role: types.RoleViewer,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "success",
			role: types.RoleViewer,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), accountID, userID, types.RoleViewer).Return(nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.UpdateMemberRole").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			ok, err := s.UpdateMemberRole(context.Background(), accountID, userID, tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "owner cannot be removed",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleOwner}, nil)
			},
			expected: false,
		},
		{
			name: "member not found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), accountID, userID).Return(nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.RemoveMember").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			ok, err := s.RemoveMember(context.Background(), accountID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_MemberPermissions(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)
	proAccount := &types.Account{ID: accountID, Tier: types.TierPro}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		check      func(*testing.T, map[string]bool)
	}{
		{
			name: "admins get every tier feature",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(proAccount, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleAdmin}, nil)
			},
			check: func(t *testing.T, permissions map[string]bool) {
				if !permissions["utm"] || !permissions["analytics"] {
					t.Errorf("expected pro admin to get utm and analytics, got %+v", permissions)
				}
				if permissions["monitor"] {
					t.Error("monitor is agency-only, pro admin should not get it")
				}
			},
		},
		{
			name: "nil overrides fall back to role defaults",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(proAccount, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleViewer}, nil)
			},
			check: func(t *testing.T, permissions map[string]bool) {
				for feature, allowed := range permissions {
					if allowed {
						t.Errorf("viewer default should deny %s", feature)
					}
				}
			},
		},
		{
			name: "stored overrides intersect with the tier",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(proAccount, nil)
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{
					Role: types.RoleMember,
					FeaturePermissions: map[string]types.FeaturePermission{
						"utm":     {Access: true},
						"monitor": {Access: true},
					},
				}, nil)
			},
			check: func(t *testing.T, permissions map[string]bool) {
				if !permissions["utm"] {
					t.Error("expected explicit utm grant to apply")
				}
				if permissions["monitor"] {
					t.Error("override cannot grant a feature above the tier")
				}
				if permissions["links"] {
					t.Error("features absent from the override map are denied")
				}
			},
		},
		{
			name: "missing account",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(nil, storage.ErrNotFound)
			},
			check: func(t *testing.T, permissions map[string]bool) {
				if permissions != nil {
					t.Errorf("expected nil permissions, got %+v", permissions)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.MemberPermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			permissions, err := s.MemberPermissions(context.Background(), accountID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, permissions)
		})
	}
}

func TestService_AcceptInvite(t *testing.T) {
	token := "0190b7e4-9d2f-7c3a-b1f5-3f6a2d0c4e71"
	userID := int64(42)
	invite := &types.Invite{ID: 3, Token: token, AccountID: 7, Role: types.RoleMember, InvitedBy: 1}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockDBClientInterface)
		expected   bool
	}{
		{
			name: "unknown token",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "membership created and token consumed",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(invite, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *types.Member) (int64, error) {
						if m.AccountID != invite.AccountID || m.UserID != userID || m.Role != types.RoleMember {
							t.Errorf("unexpected member %+v", m)
						}
						return 9, nil
					})
				mockStorage.EXPECT().DeleteInvite(gomock.Any(), invite.ID).Return(nil)
			},
			expected: true,
		},
		{
			name: "existing membership still consumes the token",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(invite, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrDuplicateKey)
				mockStorage.EXPECT().DeleteInvite(gomock.Any(), invite.ID).Return(nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.AcceptInvite").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB)

			ok, err := s.AcceptInvite(context.Background(), token, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	accountID := int64(7)

	testCases := []struct {
		name       string
		status     string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "unknown status rejected",
			status:     "paused",
			setupMocks: func(*MockStorageInterface) {},
			expected:   false,
		},
		{
			name:   "suspend",
			status: types.AccountStatusSuspended,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateAccountFields(gomock.Any(), accountID, map[string]any{"status": types.AccountStatusSuspended}).Return(nil)
			},
			expected: true,
		},
		{
			name:   "missing account",
			status: types.AccountStatusActive,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateAccountFields(gomock.Any(), accountID, gomock.Any()).Return(storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockDB, mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "account.Service.SetStatus").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			ok, err := s.SetStatus(context.Background(), accountID, tc.status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}
