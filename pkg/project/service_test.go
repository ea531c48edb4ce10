// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"testing"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_project.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockDBClientInterface, *authorization.MockAuthorizerInterface, *MockTracingInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)
	mockAuthz := authorization.NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockDB, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockDB, mockAuthz, mockTracer, mockLogger
}

func TestService_CanCreate(t *testing.T) {
	accountID := int64(7)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "free tier with room",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierFree}, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(2, nil)
			},
			expected: true,
		},
		{
			name: "free tier at the cap",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierFree}, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(3, nil)
			},
			expected: false,
		},
		{
			name: "agency tier is uncapped",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierAgency}, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(1000, nil)
			},
			expected: true,
		},
		{
			name: "missing account",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.CanCreate")
			tc.setupMocks(mockStorage)

			ok, err := s.CanCreate(context.Background(), accountID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	accountID := int64(7)
	creatorID := int64(42)
	parentID := int64(3)
	account := &types.Account{ID: accountID, Tier: types.TierPro}

	testCases := []struct {
		name       string
		parentID   *int64
		setupMocks func(*MockStorageInterface, *MockDBClientInterface)
		expectNil  bool
	}{
		{
			name: "creator enrolled as project admin",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(1, nil)
				mockStorage.EXPECT().ProjectSlugExists(gomock.Any(), accountID, "launch").Return(false, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, p *types.Project) (*types.Project, error) {
						if p.Slug != "launch" || p.Color != defaultColor || p.Status != types.ProjectStatusActive {
							t.Errorf("unexpected project %+v", p)
						}
						created := *p
						created.ID = 11
						return &created, nil
					})
				mockStorage.EXPECT().AddProjectMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *types.ProjectMember) (int64, error) {
						if m.ProjectID != 11 || m.UserID != creatorID || m.Role != types.ProjectRoleAdmin || m.AssignedBy != creatorID {
							t.Errorf("unexpected project member %+v", m)
						}
						return 1, nil
					})
			},
		},
		{
			name: "slug collision picks a suffix",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(1, nil)
				mockStorage.EXPECT().ProjectSlugExists(gomock.Any(), accountID, "launch").Return(true, nil)
				mockStorage.EXPECT().ProjectSlugExists(gomock.Any(), accountID, "launch-1").Return(false, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, p *types.Project) (*types.Project, error) {
						if p.Slug != "launch-1" {
							t.Errorf("expected slug launch-1, got %s", p.Slug)
						}
						created := *p
						created.ID = 12
						return &created, nil
					})
				mockStorage.EXPECT().AddProjectMember(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "tier cap reached",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(&types.Account{ID: accountID, Tier: types.TierFree}, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(3, nil)
			},
			expectNil: true,
		},
		{
			name:     "parent in another account",
			parentID: &parentID,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).Return(account, nil)
				mockStorage.EXPECT().CountActiveProjects(gomock.Any(), accountID).Return(1, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), parentID).Return(&types.Project{ID: parentID, AccountID: accountID + 1}, nil)
			},
			expectNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockDB, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.Create")
			expectSpan(mockTracer, "project.Service.CanCreate")
			tc.setupMocks(mockStorage, mockDB)

			created, err := s.Create(context.Background(), accountID, creatorID, "Launch", tc.parentID, nil, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectNil {
				if created != nil {
					t.Errorf("expected nil project, got %+v", created)
				}
				return
			}
			if created == nil {
				t.Fatal("expected a project")
			}
		})
	}
}

func TestService_IsValidParent(t *testing.T) {
	accountID := int64(7)

	testCases := []struct {
		name       string
		projectID  int64
		parentID   int64
		setupMocks func(*MockStorageInterface, *MockLoggerInterface)
		expected   bool
	}{
		{
			name:       "self parent rejected",
			projectID:  1,
			parentID:   1,
			setupMocks: func(*MockStorageInterface, *MockLoggerInterface) {},
			expected:   false,
		},
		{
			name:      "parent in another account",
			projectID: 1,
			parentID:  2,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID + 1}, nil)
			},
			expected: false,
		},
		{
			name:      "root parent accepted",
			projectID: 1,
			parentID:  2,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID}, nil)
			},
			expected: true,
		},
		{
			name:      "reparenting under a descendant closes a cycle",
			projectID: 1,
			parentID:  3,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				// 3's chain is 3 -> 2 -> 1, so 1 cannot adopt 3 as parent.
				parentOfThree := int64(2)
				parentOfTwo := int64(1)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(3)).Return(&types.Project{ID: 3, AccountID: accountID, ParentID: &parentOfThree}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID, ParentID: &parentOfTwo}, nil)
			},
			expected: false,
		},
		{
			name:      "dangling parent pointer ends the chain",
			projectID: 1,
			parentID:  2,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				missing := int64(99)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID, ParentID: &missing}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound)
			},
			expected: true,
		},
		{
			name:      "chain deeper than the walk cap is rejected",
			projectID: 1,
			parentID:  2,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				// Link 2 into a loop that never reaches project 1 or a root.
				self := int64(2)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID, ParentID: &self}, nil).MinTimes(1)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, mockLogger := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.IsValidParent")
			tc.setupMocks(mockStorage, mockLogger)

			ok, err := s.IsValidParent(context.Background(), tc.projectID, tc.parentID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	projectID := int64(11)
	parentID := int64(3)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockDBClientInterface)
		expected   bool
	}{
		{
			name: "children move up to the deleted node's parent",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), projectID).Return(&types.Project{ID: projectID, ParentID: &parentID}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				gomock.InOrder(
					mockStorage.EXPECT().ReparentChildren(gomock.Any(), projectID, &parentID).Return(nil),
					mockStorage.EXPECT().DeleteProjectMembers(gomock.Any(), projectID).Return(nil),
					mockStorage.EXPECT().DeleteProject(gomock.Any(), projectID).Return(nil),
				)
			},
			expected: true,
		},
		{
			name: "deleting a root promotes children to roots",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), projectID).Return(&types.Project{ID: projectID}, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				gomock.InOrder(
					mockStorage.EXPECT().ReparentChildren(gomock.Any(), projectID, (*int64)(nil)).Return(nil),
					mockStorage.EXPECT().DeleteProjectMembers(gomock.Any(), projectID).Return(nil),
					mockStorage.EXPECT().DeleteProject(gomock.Any(), projectID).Return(nil),
				)
			},
			expected: true,
		},
		{
			name: "missing project",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface) {
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), projectID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockDB, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.Delete")
			tc.setupMocks(mockStorage, mockDB)

			ok, err := s.Delete(context.Background(), projectID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestService_HierarchyForAccount(t *testing.T) {
	accountID := int64(7)
	parentOfTwo := int64(1)
	missingParent := int64(99)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

	expectSpan(mockTracer, "project.Service.HierarchyForAccount")
	mockStorage.EXPECT().ListProjectsByAccount(gomock.Any(), accountID).Return([]*types.Project{
		{ID: 1, AccountID: accountID, Name: "Root"},
		{ID: 2, AccountID: accountID, Name: "Child", ParentID: &parentOfTwo},
		{ID: 3, AccountID: accountID, Name: "Orphan", ParentID: &missingParent},
	}, nil)

	roots, err := s.HierarchyForAccount(context.Background(), accountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	byID := make(map[int64]*types.ProjectNode, len(roots))
	for _, r := range roots {
		byID[r.Project.ID] = r
	}
	root, ok := byID[1]
	if !ok || len(root.Children) != 1 || root.Children[0].Project.ID != 2 {
		t.Errorf("expected project 2 under project 1, got %+v", root)
	}
	if _, ok := byID[3]; !ok {
		t.Error("expected the orphan to surface as a root")
	}
}

func TestService_Ancestors(t *testing.T) {
	parentOfThree := int64(2)
	parentOfTwo := int64(1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

	expectSpan(mockTracer, "project.Service.Ancestors")
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(3)).Return(&types.Project{ID: 3, ParentID: &parentOfThree}, nil)
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, ParentID: &parentOfTwo}, nil)
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(1)).Return(&types.Project{ID: 1}, nil)

	ancestors, err := s.Ancestors(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ancestors) != 2 || ancestors[0].ID != 1 || ancestors[1].ID != 2 {
		t.Errorf("expected breadcrumb chain [1 2], got %+v", ancestors)
	}
}

func TestService_Children(t *testing.T) {
	projectID := int64(2)
	parentID := projectID

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

	expectSpan(mockTracer, "project.Service.Children")
	mockStorage.EXPECT().ListChildProjects(gomock.Any(), projectID).Return([]*types.Project{
		{ID: 4, ParentID: &parentID},
		{ID: 5, ParentID: &parentID},
	}, nil)

	children, err := s.Children(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(children) != 2 || children[0].ID != 4 || children[1].ID != 5 {
		t.Errorf("expected children [4 5], got %+v", children)
	}
}

func TestService_UserRole(t *testing.T) {
	accountID := int64(7)
	projectID := int64(11)
	userID := int64(42)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *authorization.MockAuthorizerInterface)
		expected   types.ProjectRole
	}{
		{
			name: "account admin acts as project admin",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *authorization.MockAuthorizerInterface) {
				mockAuthz.EXPECT().AccountRole(gomock.Any(), accountID, userID).Return(types.RoleAdmin, nil)
			},
			expected: types.ProjectRoleAdmin,
		},
		{
			name: "non-member has no role",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *authorization.MockAuthorizerInterface) {
				mockAuthz.EXPECT().AccountRole(gomock.Any(), accountID, userID).Return(types.AccountRole(""), nil)
			},
			expected: "",
		},
		{
			name: "explicit membership row decides",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *authorization.MockAuthorizerInterface) {
				mockAuthz.EXPECT().AccountRole(gomock.Any(), accountID, userID).Return(types.RoleMember, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(&types.ProjectMember{Role: types.ProjectRoleViewer}, nil)
			},
			expected: types.ProjectRoleViewer,
		},
		{
			name: "account member without project row",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *authorization.MockAuthorizerInterface) {
				mockAuthz.EXPECT().AccountRole(gomock.Any(), accountID, userID).Return(types.RoleMember, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), projectID, userID).Return(nil, storage.ErrNotFound)
			},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockAuthz, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.UserRole")
			tc.setupMocks(mockStorage, mockAuthz)

			role, err := s.UserRole(context.Background(), accountID, projectID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.expected {
				t.Errorf("expected role %q, got %q", tc.expected, role)
			}
		})
	}
}

func TestService_Update_ParentChange(t *testing.T) {
	accountID := int64(7)
	projectID := int64(1)

	testCases := []struct {
		name       string
		fields     map[string]any
		setupMocks func(*MockStorageInterface, *MockTracingInterface)
		expected   bool
	}{
		{
			name:   "valid parent move",
			fields: map[string]any{"parent_id": int64(2)},
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				expectSpan(mockTracer, "project.Service.IsValidParent")
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), projectID).Return(&types.Project{ID: projectID, AccountID: accountID}, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(2)).Return(&types.Project{ID: 2, AccountID: accountID}, nil)
				mockStorage.EXPECT().UpdateProjectFields(gomock.Any(), projectID, gomock.Any()).Return(nil)
			},
			expected: true,
		},
		{
			name:       "self parent rejected",
			fields:     map[string]any{"parent_id": int64(1)},
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				expectSpan(mockTracer, "project.Service.IsValidParent")
			},
			expected: false,
		},
		{
			name:   "detach to root",
			fields: map[string]any{"parent_id": nil},
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				mockStorage.EXPECT().UpdateProjectFields(gomock.Any(), projectID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id int64, fields map[string]any) error {
						if fields["parent_id"] != (*int64)(nil) {
							t.Errorf("expected nil parent_id, got %v", fields["parent_id"])
						}
						return nil
					})
			},
			expected: true,
		},
		{
			name:       "malformed parent id rejected",
			fields:     map[string]any{"parent_id": "abc"},
			setupMocks: func(*MockStorageInterface, *MockTracingInterface) {},
			expected:   false,
		},
		{
			name:       "unknown status rejected",
			fields:     map[string]any{"status": "paused"},
			setupMocks: func(*MockStorageInterface, *MockTracingInterface) {},
			expected:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _, mockTracer, _ := newTestService(ctrl)

			expectSpan(mockTracer, "project.Service.Update")
			tc.setupMocks(mockStorage, mockTracer)

			ok, err := s.Update(context.Background(), projectID, tc.fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}
