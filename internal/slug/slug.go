// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make turns an arbitrary name into a url-safe slug: lowercased, runs of
// non-alphanumerics collapsed to single dashes, trimmed.
func Make(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		s = "untitled"
	}
	return s
}

// WithSuffix appends a numeric collision suffix, Make("launch"), 2 -> "launch-2".
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
