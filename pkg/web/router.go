// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/identity"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/access"
	"github.com/canonical/account-service/pkg/account"
	"github.com/canonical/account-service/pkg/client"
	"github.com/canonical/account-service/pkg/metrics"
	"github.com/canonical/account-service/pkg/project"
	"github.com/canonical/account-service/pkg/status"
	"github.com/canonical/account-service/pkg/webhooks"
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	accountAPI *account.API,
	projectAPI *project.API,
	clientAPI *client.API,
	accessAPI *access.API,
	webhooksAPI *webhooks.API,
	identityMiddleware *identity.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", identity.HeaderName},
		}),
		identityMiddleware.HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI().RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	accountAPI.RegisterEndpoints(router)
	projectAPI.RegisterEndpoints(router)
	clientAPI.RegisterEndpoints(router)
	accessAPI.RegisterEndpoints(router)
	webhooksAPI.RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
