// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoicing

import "context"

// NoopClient stands in when no invoicing service is configured. All figures
// come back as zeros.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) InvoiceCount(ctx context.Context, clientID int64) (int, error) {
	return 0, nil
}

func (c *NoopClient) RevenueTotals(ctx context.Context, clientID int64) (float64, float64, error) {
	return 0, 0, nil
}
