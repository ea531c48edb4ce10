// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Fatalf(template string, args ...any)
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits the audit events that must survive log-level
// filtering.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthorizationDenied(userID, resourceID int64, required string)
	OwnershipTransferred(accountID, fromUserID, toUserID int64)
}
