// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"

	"github.com/canonical/account-service/internal/types"
)

func TestRoleLevel(t *testing.T) {
	testCases := []struct {
		role     types.AccountRole
		expected int
	}{
		{types.RoleViewer, 1},
		{types.RoleMember, 2},
		{types.RoleAdmin, 3},
		{types.RoleOwner, 4},
		{types.AccountRole(""), 0},
		{types.AccountRole("superuser"), 0},
	}

	for _, tc := range testCases {
		if got := RoleLevel(tc.role); got != tc.expected {
			t.Errorf("RoleLevel(%q) = %d, expected %d", tc.role, got, tc.expected)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	testCases := []struct {
		name     string
		actual   types.AccountRole
		required types.AccountRole
		expected bool
	}{
		{"owner meets admin", types.RoleOwner, types.RoleAdmin, true},
		{"admin meets admin", types.RoleAdmin, types.RoleAdmin, true},
		{"member fails admin", types.RoleMember, types.RoleAdmin, false},
		{"viewer meets viewer", types.RoleViewer, types.RoleViewer, true},
		{"empty role fails viewer", types.AccountRole(""), types.RoleViewer, false},
		{"unknown role fails viewer", types.AccountRole("superuser"), types.RoleViewer, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsMinimum(tc.actual, tc.required); got != tc.expected {
				t.Errorf("MeetsMinimum(%q, %q) = %v, expected %v", tc.actual, tc.required, got, tc.expected)
			}
		})
	}
}

func TestMeetsProjectMinimum(t *testing.T) {
	testCases := []struct {
		name     string
		actual   types.ProjectRole
		required types.ProjectRole
		expected bool
	}{
		{"admin meets member", types.ProjectRoleAdmin, types.ProjectRoleMember, true},
		{"viewer fails member", types.ProjectRoleViewer, types.ProjectRoleMember, false},
		{"unknown fails viewer", types.ProjectRole("lead"), types.ProjectRoleViewer, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsProjectMinimum(tc.actual, tc.required); got != tc.expected {
				t.Errorf("MeetsProjectMinimum(%q, %q) = %v, expected %v", tc.actual, tc.required, got, tc.expected)
			}
		})
	}
}

func TestMeetsAccessLevel(t *testing.T) {
	testCases := []struct {
		name     string
		actual   types.AccessLevel
		required types.AccessLevel
		expected bool
	}{
		{"full meets edit", types.AccessFull, types.AccessEdit, true},
		{"edit meets view", types.AccessEdit, types.AccessView, true},
		{"view fails edit", types.AccessView, types.AccessEdit, false},
		{"unknown required degrades to view", types.AccessView, types.AccessLevel("browse"), true},
		{"unknown actual never passes", types.AccessLevel("browse"), types.AccessView, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsAccessLevel(tc.actual, tc.required); got != tc.expected {
				t.Errorf("MeetsAccessLevel(%q, %q) = %v, expected %v", tc.actual, tc.required, got, tc.expected)
			}
		})
	}
}

func TestAvailableFeatures(t *testing.T) {
	free := AvailableFeatures(types.TierFree)
	if !free["utm"] || !free["links"] {
		t.Error("free tier should include utm and links")
	}
	if free["analytics"] || free["monitor"] {
		t.Error("free tier should exclude pro and agency features")
	}

	pro := AvailableFeatures(types.TierPro)
	if !pro["analytics"] || pro["monitor"] {
		t.Error("pro tier should include analytics but not monitor")
	}

	agency := AvailableFeatures(types.TierAgency)
	for feature, allowed := range agency {
		if !allowed {
			t.Errorf("agency tier should include %s", feature)
		}
	}
}

func TestDefaultFeaturesForRole(t *testing.T) {
	member := DefaultFeaturesForRole(types.RoleMember, types.TierPro)
	if !member["utm"] || !member["analytics"] {
		t.Error("member defaults should mirror the tier")
	}
	if member["monitor"] {
		t.Error("member defaults cannot exceed the tier")
	}

	viewer := DefaultFeaturesForRole(types.RoleViewer, types.TierAgency)
	for feature, allowed := range viewer {
		if allowed {
			t.Errorf("viewer defaults should deny %s", feature)
		}
	}
}

func TestLimits(t *testing.T) {
	testCases := []struct {
		name     string
		got      int
		expected int
	}{
		{"free users", UserLimit(types.TierFree), 2},
		{"pro users", UserLimit(types.TierPro), 10},
		{"agency users", UserLimit(types.TierAgency), Unlimited},
		{"free projects", ProjectLimit(types.TierFree), 3},
		{"pro projects", ProjectLimit(types.TierPro), 25},
		{"free clients", ClientLimit(types.TierFree), 3},
		{"pro clients", ClientLimit(types.TierPro), 50},
		{"unknown tier gets free limits", UserLimit(types.Tier("enterprise")), 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, tc.got)
			}
		})
	}
}

func TestWithinLimit(t *testing.T) {
	testCases := []struct {
		name     string
		current  int
		limit    int
		expected bool
	}{
		{"under the cap", 1, 2, true},
		{"at the cap", 2, 2, false},
		{"over the cap", 3, 2, false},
		{"unlimited", 100000, Unlimited, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinLimit(tc.current, tc.limit); got != tc.expected {
				t.Errorf("WithinLimit(%d, %d) = %v, expected %v", tc.current, tc.limit, got, tc.expected)
			}
		})
	}
}
