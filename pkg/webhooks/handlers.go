// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives provisioning events from the surrounding
// platform, currently just user registrations.
package webhooks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/canonical/account-service/internal/http/types"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	domain "github.com/canonical/account-service/internal/types"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AccountProvisionerInterface interface {
	GetOrCreateForUser(ctx context.Context, userID int64) (*domain.Account, error)
}

type API struct {
	accounts AccountProvisionerInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	accounts AccountProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		accounts: accounts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.userRegistered)
}

type registrationEvent struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// userRegistered provisions an account for a newly registered user. The
// operation is idempotent, replays return the same account.
func (a *API) userRegistered(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.userRegistered")
	defer span.End()

	var event registrationEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(event); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	account, err := a.accounts.GetOrCreateForUser(ctx, event.UserID)
	if err != nil {
		a.logger.Errorf("failed to provision account for user %d: %v", event.UserID, err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		types.WriteMessage(w, http.StatusNotFound, "user identity not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, account)
}
