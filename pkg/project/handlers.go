// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

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
	mux.Get("/api/v0/accounts/{accountID}/projects", a.listProjects)
	mux.Post("/api/v0/accounts/{accountID}/projects", a.createProject)
	mux.Get("/api/v0/accounts/{accountID}/projects/hierarchy", a.hierarchy)
	mux.Get("/api/v0/accounts/{accountID}/projects/{id}", a.getProject)
	mux.Patch("/api/v0/accounts/{accountID}/projects/{id}", a.updateProject)
	mux.Delete("/api/v0/accounts/{accountID}/projects/{id}", a.deleteProject)
	mux.Get("/api/v0/accounts/{accountID}/projects/{id}/ancestors", a.ancestors)
	mux.Get("/api/v0/accounts/{accountID}/projects/{id}/children", a.children)

	mux.Get("/api/v0/accounts/{accountID}/projects/{id}/members", a.listMembers)
	mux.Post("/api/v0/accounts/{accountID}/projects/{id}/members", a.addMember)
	mux.Delete("/api/v0/accounts/{accountID}/projects/{id}/members/{userID}", a.removeMember)

	mux.Get("/api/v0/accounts/{accountID}/projects/{id}/role", a.userRole)
}

func urlID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id, err == nil && id > 0
}

func (a *API) requireAccountRole(w http.ResponseWriter, r *http.Request, accountID int64, minimum domain.AccountRole) (int64, bool) {
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

func (a *API) requireProjectRole(w http.ResponseWriter, r *http.Request, accountID, projectID int64, minimum domain.ProjectRole) (int64, bool) {
	userID, ok := identity.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return 0, false
	}

	allowed, err := a.authz.HasProjectRole(r.Context(), accountID, projectID, userID, minimum)
	if err != nil {
		a.logger.Errorf("failed to resolve project role: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return 0, false
	}
	if !allowed {
		types.WriteMessage(w, http.StatusForbidden, "forbidden")
		return 0, false
	}

	return userID, true
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.listProjects")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireAccountRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	projects, err := a.service.ListProjects(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to list projects: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, projects)
}

type createProjectRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
	ClientID *int64 `json:"client_id" validate:"omitempty,gt=0"`
	Color    string `json:"color"`
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.createProject")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	caller, ok := a.requireAccountRole(w, r.WithContext(ctx), accountID, domain.RoleMember)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.service.Create(ctx, accountID, caller, req.Name, req.ParentID, req.ClientID, req.Color)
	if err != nil {
		a.logger.Errorf("failed to create project: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if created == nil {
		types.WriteMessage(w, http.StatusConflict, "project not created")
		return
	}

	types.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.getProject")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleViewer); !ok {
		return
	}

	project, err := a.service.GetProject(ctx, projectID)
	if err != nil {
		a.logger.Errorf("failed to get project: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if project == nil || project.AccountID != accountID {
		types.WriteMessage(w, http.StatusNotFound, "project not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, project)
}

func (a *API) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.updateProject")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleAdmin); !ok {
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := a.service.Update(ctx, projectID, fields)
	if err != nil {
		a.logger.Errorf("failed to update project: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusConflict, "update rejected")
		return
	}

	types.WriteMessage(w, http.StatusOK, "updated")
}

func (a *API) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.deleteProject")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireAccountRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}

	deleted, err := a.service.Delete(ctx, projectID)
	if err != nil {
		a.logger.Errorf("failed to delete project: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		types.WriteMessage(w, http.StatusNotFound, "project not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "project deleted")
}

func (a *API) hierarchy(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.hierarchy")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireAccountRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	roots, err := a.service.HierarchyForAccount(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to build project hierarchy: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, roots)
}

func (a *API) ancestors(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.ancestors")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleViewer); !ok {
		return
	}

	ancestors, err := a.service.Ancestors(ctx, projectID)
	if err != nil {
		a.logger.Errorf("failed to resolve ancestors: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, ancestors)
}

func (a *API) children(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.children")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleViewer); !ok {
		return
	}

	children, err := a.service.Children(ctx, projectID)
	if err != nil {
		a.logger.Errorf("failed to list child projects: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, children)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.listMembers")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleViewer); !ok {
		return
	}

	members, err := a.service.ListMembers(ctx, projectID)
	if err != nil {
		a.logger.Errorf("failed to list project members: %v", err)
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
	ctx, span := a.tracer.Start(r.Context(), "project.API.addMember")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	caller, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleAdmin)
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

	added, err := a.service.AddMember(ctx, projectID, req.UserID, domain.ProjectRole(req.Role), caller)
	if err != nil {
		a.logger.Errorf("failed to add project member: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !added {
		types.WriteMessage(w, http.StatusConflict, "member not added")
		return
	}

	types.WriteMessage(w, http.StatusCreated, "member added")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.removeMember")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	userID, okUser := urlID(r, "userID")
	if !okAccount || !okProject || !okUser {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireProjectRole(w, r.WithContext(ctx), accountID, projectID, domain.ProjectRoleAdmin); !ok {
		return
	}

	removed, err := a.service.RemoveMember(ctx, projectID, userID)
	if err != nil {
		a.logger.Errorf("failed to remove project member: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		types.WriteMessage(w, http.StatusNotFound, "member not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "member removed")
}

func (a *API) userRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.userRole")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	projectID, okProject := urlID(r, "id")
	if !okAccount || !okProject {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	role, err := a.service.UserRole(ctx, accountID, projectID, userID)
	if err != nil {
		a.logger.Errorf("failed to resolve project role: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]string{"role": string(role)})
}
