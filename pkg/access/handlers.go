// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/http/types"
	"github.com/canonical/account-service/internal/identity"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	domain "github.com/canonical/account-service/internal/types"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type API struct {
	service ServiceInterface
	authz   authorization.AuthorizerInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/accounts/{accountID}/utms/{utmID}/grants", a.listGrants)
	mux.Put("/api/v0/accounts/{accountID}/utms/{utmID}/grants/{userID}", a.grant)
	mux.Delete("/api/v0/accounts/{accountID}/utms/{utmID}/grants/{userID}", a.revoke)
	mux.Post("/api/v0/accounts/{accountID}/grants/bulk", a.bulkAssign)
	mux.Get("/api/v0/accounts/{accountID}/utms/{utmID}/access", a.checkAccess)
}

func urlID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id, err == nil && id > 0
}

func (a *API) requireRole(w http.ResponseWriter, r *http.Request, accountID int64, minimum domain.AccountRole) (int64, bool) {
	userID, ok := identity.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return 0, false
	}

	allowed, err := a.authz.HasAccountRole(r.Context(), accountID, userID, minimum)
	if err != nil {
		a.logger.Errorf("failed to resolve account role: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return 0, false
	}
	if !allowed {
		types.WriteMessage(w, http.StatusForbidden, "forbidden")
		return 0, false
	}

	return userID, true
}

func (a *API) listGrants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.listGrants")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	utmID, okUtm := urlID(r, "utmID")
	if !okAccount || !okUtm {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	grants, err := a.service.ListGrants(ctx, utmID)
	if err != nil {
		a.logger.Errorf("failed to list grants: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, grants)
}

type grantRequest struct {
	AccessLevel string `json:"access_level" validate:"required,oneof=view edit full"`
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.grant")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	utmID, okUtm := urlID(r, "utmID")
	userID, okUser := urlID(r, "userID")
	if !okAccount || !okUtm || !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	caller, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin)
	if !ok {
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	grant, err := a.service.Grant(ctx, accountID, utmID, userID, domain.AccessLevel(req.AccessLevel), caller)
	if err != nil {
		a.logger.Errorf("failed to grant access: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if grant == nil {
		types.WriteMessage(w, http.StatusConflict, "grant rejected")
		return
	}

	types.WriteJSON(w, http.StatusOK, grant)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.revoke")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	utmID, okUtm := urlID(r, "utmID")
	userID, okUser := urlID(r, "userID")
	if !okAccount || !okUtm || !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	revoked, err := a.service.Revoke(ctx, utmID, userID)
	if err != nil {
		a.logger.Errorf("failed to revoke access: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !revoked {
		types.WriteMessage(w, http.StatusNotFound, "grant not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "grant revoked")
}

type bulkAssignRequest struct {
	UtmIDs      []int64 `json:"utm_ids" validate:"required,min=1,dive,gt=0"`
	UserIDs     []int64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
	AccessLevel string  `json:"access_level" validate:"required,oneof=view edit full"`
}

func (a *API) bulkAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.bulkAssign")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	caller, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin)
	if !ok {
		return
	}

	var req bulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	written, err := a.service.BulkAssign(ctx, accountID, req.UtmIDs, req.UserIDs, domain.AccessLevel(req.AccessLevel), caller)
	if err != nil {
		a.logger.Errorf("failed to bulk assign grants: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if written == 0 {
		types.WriteMessage(w, http.StatusConflict, "bulk assignment rejected")
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]int{"granted": written})
}

func (a *API) checkAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.checkAccess")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	utmID, okUtm := urlID(r, "utmID")
	if !okAccount || !okUtm {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	required := domain.AccessLevel(r.URL.Query().Get("level"))
	if required == "" {
		required = domain.AccessView
	}

	allowed, err := a.service.UserHasAccess(ctx, accountID, utmID, userID, required)
	if err != nil {
		a.logger.Errorf("failed to check access: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]bool{"allowed": allowed})
}
