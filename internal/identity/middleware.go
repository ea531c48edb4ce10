// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strconv"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

// HeaderName carries the already-authenticated user id set by the gateway.
const HeaderName = "X-Authenticated-User-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		header := r.Header.Get(HeaderName)
		if header != "" {
			userID, err := strconv.ParseInt(header, 10, 64)
			if err != nil {
				m.logger.Warnf("invalid %s header: %q", HeaderName, header)
			} else {
				ctx = WithUserID(ctx, userID)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
