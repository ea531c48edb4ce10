// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slug

import "testing"

func TestMake(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Launch", "launch"},
		{"spaces collapse to dashes", "Spring  Campaign", "spring-campaign"},
		{"punctuation collapses", "Jane's Account!", "jane-s-account"},
		{"leading and trailing noise trimmed", "  --Acme-- ", "acme"},
		{"unicode letters survive", "Café Müller", "café-müller"},
		{"digits survive", "Q3 2026", "q3-2026"},
		{"empty input", "", "untitled"},
		{"only punctuation", "!!!", "untitled"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.input); got != tc.expected {
				t.Errorf("Make(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestWithSuffix(t *testing.T) {
	if got := WithSuffix("launch", 2); got != "launch-2" {
		t.Errorf("WithSuffix(launch, 2) = %q", got)
	}
}
