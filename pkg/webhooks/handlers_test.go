// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "github.com/canonical/account-service/internal/types"
	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./handlers.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_UserRegistered(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockAccountProvisionerInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "provisions an account",
			body: `{"user_id": 42}`,
			setupMocks: func(mockAccounts *MockAccountProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockAccounts.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, OwnerUserID: 42}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "replay returns the same account",
			body: `{"user_id": 42}`,
			setupMocks: func(mockAccounts *MockAccountProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockAccounts.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, OwnerUserID: 42}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"user_id":`,
			setupMocks:     func(*MockAccountProvisionerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing user id",
			body:           `{}`,
			setupMocks:     func(*MockAccountProvisionerInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown identity",
			body: `{"user_id": 42}`,
			setupMocks: func(mockAccounts *MockAccountProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockAccounts.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "provisioning failure",
			body: `{"user_id": 42}`,
			setupMocks: func(mockAccounts *MockAccountProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockAccounts.EXPECT().GetOrCreateForUser(gomock.Any(), int64(42)).Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccounts := NewMockAccountProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockAccounts, mockTracer, mockMonitor, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.API.userRegistered").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockAccounts, mockLogger)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
