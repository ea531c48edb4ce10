// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

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
	mux.Post("/api/v0/accounts/me", a.getOrCreate)
	mux.Get("/api/v0/accounts/{id}", a.getAccount)
	mux.Patch("/api/v0/accounts/{id}", a.updateAccount)
	mux.Put("/api/v0/accounts/{id}/status", a.setStatus)
	mux.Post("/api/v0/accounts/{id}/transfer-ownership", a.transferOwnership)
	mux.Get("/api/v0/accounts/{id}/features", a.features)

	mux.Get("/api/v0/accounts/{id}/members", a.listMembers)
	mux.Post("/api/v0/accounts/{id}/members", a.addMember)
	mux.Put("/api/v0/accounts/{id}/members/{userID}/role", a.updateMemberRole)
	mux.Delete("/api/v0/accounts/{id}/members/{userID}", a.removeMember)
	mux.Get("/api/v0/accounts/{id}/members/{userID}/permissions", a.memberPermissions)
	mux.Put("/api/v0/accounts/{id}/members/{userID}/permissions", a.updateMemberPermissions)

	mux.Post("/api/v0/accounts/{id}/invites", a.inviteMember)
	mux.Post("/api/v0/invites/{token}/accept", a.acceptInvite)
}

func urlID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id, err == nil && id > 0
}

// requireRole resolves the caller and checks their account role, writing the
// failure response itself. Returns the caller id and whether to proceed.
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

func (a *API) getOrCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.getOrCreate")
	defer span.End()

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	account, err := a.service.GetOrCreateForUser(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to get or create account: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		types.WriteMessage(w, http.StatusNotFound, "user identity not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, account)
}

func (a *API) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.getAccount")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	account, err := a.service.GetAccount(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to get account: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		types.WriteMessage(w, http.StatusNotFound, "account not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, account)
}

type updateAccountRequest struct {
	Name     string         `json:"name"`
	Settings map[string]any `json:"settings"`
}

func (a *API) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.updateAccount")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]any)
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Settings != nil {
		fields["settings"] = req.Settings
	}

	updated, err := a.service.Update(ctx, accountID, fields)
	if err != nil {
		a.logger.Errorf("failed to update account: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusNotFound, "account not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "updated")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.setStatus")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleOwner); !ok {
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.service.SetStatus(ctx, accountID, req.Status)
	if err != nil {
		a.logger.Errorf("failed to set account status: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusBadRequest, "invalid status")
		return
	}

	types.WriteMessage(w, http.StatusOK, "updated")
}

type transferOwnershipRequest struct {
	NewOwnerID int64 `json:"new_owner_id" validate:"required,gt=0"`
}

func (a *API) transferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.transferOwnership")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req transferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	// The service validates that the caller is the current owner.
	transferred, err := a.service.TransferOwnership(ctx, accountID, userID, req.NewOwnerID)
	if err != nil {
		a.logger.Errorf("failed to transfer ownership: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !transferred {
		types.WriteMessage(w, http.StatusConflict, "ownership transfer rejected")
		return
	}

	types.WriteMessage(w, http.StatusOK, "ownership transferred")
}

func (a *API) features(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.features")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	account, err := a.service.GetAccount(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to get account: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		types.WriteMessage(w, http.StatusNotFound, "account not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, a.service.AvailableFeatures(account.Tier))
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.listMembers")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	members, err := a.service.ListMembers(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to list members: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, members)
}

type addMemberRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required,oneof=admin member viewer"`
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.addMember")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	caller, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin)
	if !ok {
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	added, err := a.service.AddMember(ctx, accountID, req.UserID, domain.AccountRole(req.Role), caller)
	if err != nil {
		a.logger.Errorf("failed to add member: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !added {
		types.WriteMessage(w, http.StatusConflict, "member not added")
		return
	}

	types.WriteMessage(w, http.StatusCreated, "member added")
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member viewer"`
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.updateMemberRole")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	userID, okUser := urlID(r, "userID")
	if !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.service.UpdateMemberRole(ctx, accountID, userID, domain.AccountRole(req.Role))
	if err != nil {
		a.logger.Errorf("failed to update member role: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusConflict, "role change rejected")
		return
	}

	types.WriteMessage(w, http.StatusOK, "role updated")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.removeMember")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	userID, okUser := urlID(r, "userID")
	if !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	removed, err := a.service.RemoveMember(ctx, accountID, userID)
	if err != nil {
		a.logger.Errorf("failed to remove member: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		types.WriteMessage(w, http.StatusConflict, "member not removed")
		return
	}

	types.WriteMessage(w, http.StatusOK, "member removed")
}

func (a *API) memberPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.memberPermissions")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	userID, okUser := urlID(r, "userID")
	if !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	permissions, err := a.service.MemberPermissions(ctx, accountID, userID)
	if err != nil {
		a.logger.Errorf("failed to resolve member permissions: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if permissions == nil {
		types.WriteMessage(w, http.StatusNotFound, "member not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, permissions)
}

func (a *API) updateMemberPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.updateMemberPermissions")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	userID, okUser := urlID(r, "userID")
	if !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	var permissions map[string]domain.FeaturePermission
	if err := json.NewDecoder(r.Body).Decode(&permissions); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := a.service.UpdateMemberPermissions(ctx, accountID, userID, permissions)
	if err != nil {
		a.logger.Errorf("failed to update member permissions: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusConflict, "permission change rejected")
		return
	}

	types.WriteMessage(w, http.StatusOK, "permissions updated")
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin member viewer"`
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.inviteMember")
	defer span.End()

	accountID, ok := urlID(r, "id")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	caller, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin)
	if !ok {
		return
	}

	var req inviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	invite, err := a.service.InviteMember(ctx, accountID, req.Email, domain.AccountRole(req.Role), caller)
	if err != nil {
		a.logger.Errorf("failed to invite member: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if invite == nil {
		types.WriteMessage(w, http.StatusConflict, "invite rejected")
		return
	}

	types.WriteJSON(w, http.StatusCreated, invite)
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.acceptInvite")
	defer span.End()

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	token := chi.URLParam(r, "token")
	if token == "" {
		types.WriteMessage(w, http.StatusBadRequest, "invalid token")
		return
	}

	accepted, err := a.service.AcceptInvite(ctx, token, userID)
	if err != nil {
		a.logger.Errorf("failed to accept invite: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !accepted {
		types.WriteMessage(w, http.StatusNotFound, "invite not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "invite accepted")
}
