// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

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
	mux.Get("/api/v0/accounts/{accountID}/clients", a.listClients)
	mux.Post("/api/v0/accounts/{accountID}/clients", a.createClient)
	mux.Get("/api/v0/accounts/{accountID}/clients/{id}", a.getClient)
	mux.Patch("/api/v0/accounts/{accountID}/clients/{id}", a.updateClient)
	mux.Delete("/api/v0/accounts/{accountID}/clients/{id}", a.deleteClient)
	mux.Get("/api/v0/accounts/{accountID}/clients/{id}/stats", a.stats)

	mux.Get("/api/v0/accounts/{accountID}/clients/{id}/contacts", a.listContacts)
	mux.Post("/api/v0/accounts/{accountID}/clients/{id}/contacts", a.addContact)
	mux.Delete("/api/v0/accounts/{accountID}/clients/{id}/contacts/{contactID}", a.removeContact)
	mux.Put("/api/v0/accounts/{accountID}/clients/{id}/contacts/{contactID}/primary", a.setPrimaryContact)
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

// resolveClient loads a client and checks it belongs to the account in the
// URL, writing the 404 itself.
func (a *API) resolveClient(w http.ResponseWriter, r *http.Request, accountID, clientID int64) (*domain.Client, bool) {
	c, err := a.service.GetClient(r.Context(), clientID)
	if err != nil {
		a.logger.Errorf("failed to get client: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	if c == nil || c.AccountID != accountID {
		types.WriteMessage(w, http.StatusNotFound, "client not found")
		return nil, false
	}
	return c, true
}

func (a *API) listClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.listClients")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	clients, err := a.service.ListClients(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to list clients: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, clients)
}

type createClientRequest struct {
	Name         string         `json:"name" validate:"required"`
	LegalName    string         `json:"legal_name"`
	AddressLine1 string         `json:"address_line1"`
	AddressLine2 string         `json:"address_line2"`
	City         string         `json:"city"`
	PostalCode   string         `json:"postal_code"`
	Country      string         `json:"country"`
	TaxID        string         `json:"tax_id"`
	Currency     string         `json:"currency" validate:"omitempty,iso4217"`
	PaymentTerms string         `json:"payment_terms"`
	AcquiredVia  string         `json:"acquired_via"`
	CustomFields map[string]any `json:"custom_fields"`
	Settings     map[string]any `json:"settings"`
}

func (a *API) createClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.createClient")
	defer span.End()

	accountID, ok := urlID(r, "accountID")
	if !ok {
		types.WriteMessage(w, http.StatusBadRequest, "invalid account id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleMember); !ok {
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.service.Create(ctx, accountID, &domain.Client{
		Name:         req.Name,
		LegalName:    req.LegalName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		TaxID:        req.TaxID,
		Currency:     req.Currency,
		PaymentTerms: req.PaymentTerms,
		AcquiredVia:  req.AcquiredVia,
		CustomFields: req.CustomFields,
		Settings:     req.Settings,
	})
	if err != nil {
		a.logger.Errorf("failed to create client: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if created == nil {
		types.WriteMessage(w, http.StatusConflict, "client not created")
		return
	}

	types.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.getClient")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}

	c, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID)
	if !ok {
		return
	}

	types.WriteJSON(w, http.StatusOK, c)
}

func (a *API) updateClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.updateClient")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleMember); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := a.service.Update(ctx, clientID, fields)
	if err != nil {
		a.logger.Errorf("failed to update client: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusConflict, "update rejected")
		return
	}

	types.WriteMessage(w, http.StatusOK, "updated")
}

func (a *API) deleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.deleteClient")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleAdmin); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	deleted, err := a.service.Delete(ctx, clientID)
	if err != nil {
		a.logger.Errorf("failed to delete client: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		types.WriteMessage(w, http.StatusConflict, "client not deleted")
		return
	}

	types.WriteMessage(w, http.StatusOK, "client deleted")
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.stats")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	stats, err := a.service.Stats(ctx, clientID)
	if err != nil {
		a.logger.Errorf("failed to build client stats: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if stats == nil {
		types.WriteMessage(w, http.StatusNotFound, "client not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, stats)
}

func (a *API) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.listContacts")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleViewer); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	contacts, err := a.service.ListContacts(ctx, clientID)
	if err != nil {
		a.logger.Errorf("failed to list client contacts: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, contacts)
}

type addContactRequest struct {
	ContactID int64  `json:"contact_id" validate:"required,gt=0"`
	Role      string `json:"role" validate:"required,oneof=primary billing technical project_manager other"`
}

func (a *API) addContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.addContact")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	if !okAccount || !okClient {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleMember); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	var req addContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err)
		return
	}

	added, err := a.service.AddContact(ctx, clientID, req.ContactID, domain.ContactRole(req.Role))
	if err != nil {
		a.logger.Errorf("failed to add client contact: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !added {
		types.WriteMessage(w, http.StatusConflict, "contact not added")
		return
	}

	types.WriteMessage(w, http.StatusCreated, "contact added")
}

func (a *API) removeContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.removeContact")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	contactID, okContact := urlID(r, "contactID")
	if !okAccount || !okClient || !okContact {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleMember); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	removed, err := a.service.RemoveContact(ctx, clientID, contactID)
	if err != nil {
		a.logger.Errorf("failed to remove client contact: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		types.WriteMessage(w, http.StatusNotFound, "contact not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "contact removed")
}

func (a *API) setPrimaryContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "client.API.setPrimaryContact")
	defer span.End()

	accountID, okAccount := urlID(r, "accountID")
	clientID, okClient := urlID(r, "id")
	contactID, okContact := urlID(r, "contactID")
	if !okAccount || !okClient || !okContact {
		types.WriteMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, ok := a.requireRole(w, r.WithContext(ctx), accountID, domain.RoleMember); !ok {
		return
	}
	if _, ok := a.resolveClient(w, r.WithContext(ctx), accountID, clientID); !ok {
		return
	}

	updated, err := a.service.SetPrimaryContact(ctx, clientID, contactID)
	if err != nil {
		a.logger.Errorf("failed to set primary contact: %v", err)
		types.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !updated {
		types.WriteMessage(w, http.StatusNotFound, "contact not found")
		return
	}

	types.WriteMessage(w, http.StatusOK, "primary contact updated")
}
