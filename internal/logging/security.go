// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthorizationDenied(userID, resourceID int64, required string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz.denied"),
		zap.Int64("user_id", userID),
		zap.Int64("resource_id", resourceID),
		zap.String("required", required),
	)
}

func (s *SecurityLogger) OwnershipTransferred(accountID, fromUserID, toUserID int64) {
	s.l.Info("account ownership transferred",
		zap.String("event", "account.ownership_transferred"),
		zap.Int64("account_id", accountID),
		zap.Int64("from_user_id", fromUserID),
		zap.Int64("to_user_id", toUserID),
	)
}
