// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/account-service/internal/types"
)

// Unlimited is the sentinel for tiers with no quantity cap.
const Unlimited = -1

var accountRoleLevels = map[types.AccountRole]int{
	types.RoleViewer: 1,
	types.RoleMember: 2,
	types.RoleAdmin:  3,
	types.RoleOwner:  4,
}

var projectRoleLevels = map[types.ProjectRole]int{
	types.ProjectRoleViewer: 1,
	types.ProjectRoleMember: 2,
	types.ProjectRoleAdmin:  3,
}

var tierLevels = map[types.Tier]int{
	types.TierFree:   0,
	types.TierPro:    1,
	types.TierAgency: 2,
}

var accessLevelRanks = map[types.AccessLevel]int{
	types.AccessView: 1,
	types.AccessEdit: 2,
	types.AccessFull: 3,
}

// Feature keys and the minimum tier each one requires.
var featureTiers = map[string]types.Tier{
	"utm":         types.TierFree,
	"links":       types.TierFree,
	"contacts":    types.TierFree,
	"webhooks":    types.TierFree,
	"visitors":    types.TierPro,
	"attribution": types.TierPro,
	"analytics":   types.TierPro,
	"popups":      types.TierPro,
	"monitor":     types.TierAgency,
}

var userLimits = map[types.Tier]int{
	types.TierFree:   2,
	types.TierPro:    10,
	types.TierAgency: Unlimited,
}

var projectLimits = map[types.Tier]int{
	types.TierFree:   3,
	types.TierPro:    25,
	types.TierAgency: Unlimited,
}

var clientLimits = map[types.Tier]int{
	types.TierFree:   3,
	types.TierPro:    50,
	types.TierAgency: Unlimited,
}

// RoleLevel maps an account role to its numeric level. Unknown roles map to
// 0 so that unrecognised input never grants access.
func RoleLevel(role types.AccountRole) int {
	return accountRoleLevels[role]
}

// ProjectRoleLevel maps a project role to its numeric level, 0 for unknown.
func ProjectRoleLevel(role types.ProjectRole) int {
	return projectRoleLevels[role]
}

// TierLevel maps a tier to its numeric level, 0 for unknown.
func TierLevel(tier types.Tier) int {
	return tierLevels[tier]
}

// AccessLevelRank maps a grant level to its numeric rank, 0 for unknown.
func AccessLevelRank(level types.AccessLevel) int {
	return accessLevelRanks[level]
}

// MeetsMinimum reports whether actual satisfies the required account role.
func MeetsMinimum(actual, required types.AccountRole) bool {
	return accountRoleLevels[actual] >= accountRoleLevels[required]
}

// MeetsProjectMinimum reports whether actual satisfies the required project role.
func MeetsProjectMinimum(actual, required types.ProjectRole) bool {
	return projectRoleLevels[actual] >= projectRoleLevels[required]
}

// MeetsAccessLevel reports whether a grant level satisfies the required one.
// An unknown required level degrades to "view".
func MeetsAccessLevel(actual, required types.AccessLevel) bool {
	req := accessLevelRanks[required]
	if req == 0 {
		req = accessLevelRanks[types.AccessView]
	}
	return accessLevelRanks[actual] >= req
}

// AvailableFeatures returns, for every known feature key, whether the given
// tier meets the feature's minimum tier.
func AvailableFeatures(tier types.Tier) map[string]bool {
	features := make(map[string]bool, len(featureTiers))
	for feature, minTier := range featureTiers {
		features[feature] = tierLevels[tier] >= tierLevels[minTier]
	}
	return features
}

// DefaultFeaturesForRole returns the feature set a member gets when no
// explicit permissions are stored. Owners and admins are resolved before
// this table is consulted.
func DefaultFeaturesForRole(role types.AccountRole, tier types.Tier) map[string]bool {
	features := make(map[string]bool, len(featureTiers))
	available := AvailableFeatures(tier)
	for feature := range featureTiers {
		switch role {
		case types.RoleAdmin, types.RoleMember:
			features[feature] = available[feature]
		default:
			features[feature] = false
		}
	}
	return features
}

// UserLimit returns the member cap for a tier, Unlimited for agency.
// Unknown tiers get the free limit.
func UserLimit(tier types.Tier) int {
	if limit, ok := userLimits[tier]; ok {
		return limit
	}
	return userLimits[types.TierFree]
}

// ProjectLimit returns the active project cap for a tier.
func ProjectLimit(tier types.Tier) int {
	if limit, ok := projectLimits[tier]; ok {
		return limit
	}
	return projectLimits[types.TierFree]
}

// ClientLimit returns the client cap for a tier.
func ClientLimit(tier types.Tier) int {
	if limit, ok := clientLimits[tier]; ok {
		return limit
	}
	return clientLimits[types.TierFree]
}

// WithinLimit reports whether count more entities fit under limit.
func WithinLimit(current, limit int) bool {
	if limit == Unlimited {
		return true
	}
	return current < limit
}
