// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestAuthorizer_AccountRole(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface)
		expectedRole types.AccountRole
		expectedErr  error
	}{
		{
			name: "member role returned",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleAdmin}, nil)
			},
			expectedRole: types.RoleAdmin,
		},
		{
			name: "non-member degrades to empty role",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expectedRole: "",
		},
		{
			name: "storage error surfaces",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "authorization.Authorizer.AccountRole")
			tc.setupMocks(mockStorage)

			role, err := a.AccountRole(context.Background(), accountID, userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.expectedRole {
				t.Errorf("expected role %q, got %q", tc.expectedRole, role)
			}
		})
	}
}

func TestAuthorizer_HasAccountRole(t *testing.T) {
	accountID := int64(7)
	userID := int64(42)

	testCases := []struct {
		name       string
		minimum    types.AccountRole
		setupMocks func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expected   bool
	}{
		{
			name:    "owner passes admin check",
			minimum: types.RoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleOwner}, nil)
			},
			expected: true,
		},
		{
			name:    "denied check is audited",
			minimum: types.RoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthorizationDenied(userID, accountID, string(types.RoleAdmin))
			},
			expected: false,
		},
		{
			name:    "non-member denied",
			minimum: types.RoleViewer,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthorizationDenied(userID, accountID, string(types.RoleViewer))
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "authorization.Authorizer.HasAccountRole")
			expectSpan(mockTracer, "authorization.Authorizer.AccountRole")
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			ok, err := a.HasAccountRole(context.Background(), accountID, userID, tc.minimum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestAuthorizer_CanAccessProject(t *testing.T) {
	accountID := int64(7)
	projectID := int64(11)
	userID := int64(42)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "account admin short-circuits",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleAdmin}, nil)
			},
			expected: true,
		},
		{
			name: "member needs a project row",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(&types.ProjectMember{Role: types.ProjectRoleViewer}, nil)
			},
			expected: true,
		},
		{
			name: "member without a project row denied",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "non-member denied before the project lookup",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "authorization.Authorizer.CanAccessProject")
			expectSpan(mockTracer, "authorization.Authorizer.AccountRole")
			tc.setupMocks(mockStorage)

			ok, err := a.CanAccessProject(context.Background(), accountID, projectID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestAuthorizer_HasProjectRole(t *testing.T) {
	accountID := int64(7)
	projectID := int64(11)
	userID := int64(42)

	testCases := []struct {
		name       string
		minimum    types.ProjectRole
		setupMocks func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expected   bool
	}{
		{
			name:    "account owner acts as project admin",
			minimum: types.ProjectRoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleOwner}, nil)
			},
			expected: true,
		},
		{
			name:    "project member passes member check",
			minimum: types.ProjectRoleMember,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(&types.ProjectMember{Role: types.ProjectRoleMember}, nil)
			},
			expected: true,
		},
		{
			name:    "project viewer fails admin check and is audited",
			minimum: types.ProjectRoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMember(gomock.Any(), accountID, userID).Return(&types.Member{Role: types.RoleMember}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(&types.ProjectMember{Role: types.ProjectRoleViewer}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthorizationDenied(userID, projectID, string(types.ProjectRoleAdmin))
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "authorization.Authorizer.HasProjectRole")
			expectSpan(mockTracer, "authorization.Authorizer.AccountRole")
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			ok, err := a.HasProjectRole(context.Background(), accountID, projectID, userID, tc.minimum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}
