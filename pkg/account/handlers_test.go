// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/identity"
	domain "github.com/canonical/account-service/internal/types"
	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

type apiFixture struct {
	mux         *chi.Mux
	mockService *MockServiceInterface
	mockAuthz   *authorization.MockAuthorizerInterface
	mockTracer  *MockTracingInterface
	mockLogger  *MockLoggerInterface
}

func newAPIFixture(ctrl *gomock.Controller) *apiFixture {
	f := &apiFixture{
		mockService: NewMockServiceInterface(ctrl),
		mockAuthz:   authorization.NewMockAuthorizerInterface(ctrl),
		mockTracer:  NewMockTracingInterface(ctrl),
		mockLogger:  NewMockLoggerInterface(ctrl),
	}
	api := NewAPI(f.mockService, f.mockAuthz, f.mockTracer, NewMockMonitorInterface(ctrl), f.mockLogger)
	f.mux = chi.NewMux()
	api.RegisterEndpoints(f.mux)
	return f
}

func (f *apiFixture) serve(method, target, body string, userID int64) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != 0 {
		req = req.WithContext(identity.WithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	f.mux.ServeHTTP(rr, req)
	return rr
}

func (f *apiFixture) expectSpan(name string) {
	f.mockTracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

func TestAPI_GetOrCreate(t *testing.T) {
	testCases := []struct {
		name           string
		userID         int64
		setupMocks     func(*apiFixture)
		expectedStatus int
	}{
		{
			name:   "returns the caller's account",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthenticated",
			userID:         0,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "identity unresolved",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAPIFixture(ctrl)
			f.expectSpan("account.API.getOrCreate")
			tc.setupMocks(f)

			rr := f.serve(http.MethodPost, "/api/v0/accounts/me", "", tc.userID)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_GetAccount(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		userID         int64
		setupMocks     func(*apiFixture)
		expectedStatus int
	}{
		{
			name:   "viewer can read",
			target: "/api/v0/accounts/7",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleViewer).Return(true, nil)
				f.mockService.EXPECT().GetAccount(gomock.Any(), int64(7)).Return(&domain.Account{ID: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "outsider is refused",
			target: "/api/v0/accounts/7",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleViewer).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed id",
			target:         "/api/v0/accounts/abc",
			userID:         42,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing account",
			target: "/api/v0/accounts/7",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleViewer).Return(true, nil)
				f.mockService.EXPECT().GetAccount(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAPIFixture(ctrl)
			f.expectSpan("account.API.getAccount")
			tc.setupMocks(f)

			rr := f.serve(http.MethodGet, tc.target, "", tc.userID)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_AddMember(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*apiFixture)
		expectedStatus int
	}{
		{
			name: "admin adds a member",
			body: `{"user_id": 43, "role": "member"}`,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleAdmin).Return(true, nil)
				f.mockService.EXPECT().AddMember(gomock.Any(), int64(7), int64(43), domain.RoleMember, int64(42)).Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "owner role is not assignable",
			body: `{"user_id": 43, "role": "owner"}`,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleAdmin).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "capacity rejection",
			body: `{"user_id": 43, "role": "member"}`,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleAdmin).Return(true, nil)
				f.mockService.EXPECT().AddMember(gomock.Any(), int64(7), int64(43), domain.RoleMember, int64(42)).Return(false, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "non-admin refused",
			body: `{"user_id": 43, "role": "member"}`,
			setupMocks: func(f *apiFixture) {
				f.mockAuthz.EXPECT().HasAccountRole(gomock.Any(), int64(7), int64(42), domain.RoleAdmin).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAPIFixture(ctrl)
			f.expectSpan("account.API.addMember")
			tc.setupMocks(f)

			rr := f.serve(http.MethodPost, "/api/v0/accounts/7/members", tc.body, 42)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_TransferOwnership(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*apiFixture)
		expectedStatus int
	}{
		{
			name: "owner transfers",
			body: `{"new_owner_id": 43}`,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().TransferOwnership(gomock.Any(), int64(7), int64(42), int64(43)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "rejected transfer maps to conflict",
			body: `{"new_owner_id": 43}`,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().TransferOwnership(gomock.Any(), int64(7), int64(42), int64(43)).Return(false, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing target",
			body:           `{}`,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAPIFixture(ctrl)
			f.expectSpan("account.API.transferOwnership")
			tc.setupMocks(f)

			rr := f.serve(http.MethodPost, "/api/v0/accounts/7/transfer-ownership", tc.body, 42)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_AcceptInvite(t *testing.T) {
	token := "0190b7e4-9d2f-7c3a-b1f5-3f6a2d0c4e71"

	testCases := []struct {
		name           string
		userID         int64
		setupMocks     func(*apiFixture)
		expectedStatus int
	}{
		{
			name:   "invite accepted",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().AcceptInvite(gomock.Any(), token, int64(42)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown token",
			userID: 42,
			setupMocks: func(f *apiFixture) {
				f.mockService.EXPECT().AcceptInvite(gomock.Any(), token, int64(42)).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated",
			userID:         0,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAPIFixture(ctrl)
			f.expectSpan("account.API.acceptInvite")
			tc.setupMocks(f)

			rr := f.serve(http.MethodPost, "/api/v0/invites/"+token+"/accept", "", tc.userID)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
