// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoicing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

type ClientInterface interface {
	InvoiceCount(ctx context.Context, clientID int64) (int, error)
	RevenueTotals(ctx context.Context, clientID int64) (total, unpaid float64, err error)
}

// Client talks to the invoicing service for per-client billing figures.
type Client struct {
	baseURL string
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

type summaryResponse struct {
	InvoiceCount  int     `json:"invoice_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	UnpaidRevenue float64 `json:"unpaid_revenue"`
}

func (c *Client) summary(ctx context.Context, clientID int64) (*summaryResponse, error) {
	url := fmt.Sprintf("%s/admin/clients/%d/summary", c.baseURL, clientID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoicing request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoicing request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &summaryResponse{}, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("invoicing returned status %d", resp.StatusCode)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode invoicing response: %w", err)
	}

	return &summary, nil
}

func (c *Client) InvoiceCount(ctx context.Context, clientID int64) (int, error) {
	ctx, span := c.tracer.Start(ctx, "invoicing.Client.InvoiceCount")
	defer span.End()

	summary, err := c.summary(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return summary.InvoiceCount, nil
}

func (c *Client) RevenueTotals(ctx context.Context, clientID int64) (float64, float64, error) {
	ctx, span := c.tracer.Start(ctx, "invoicing.Client.RevenueTotals")
	defer span.End()

	summary, err := c.summary(ctx, clientID)
	if err != nil {
		return 0, 0, err
	}
	return summary.TotalRevenue, summary.UnpaidRevenue, nil
}
