// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"encoding/json"
	"fmt"
)

func jsonEncode(v any) ([]byte, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return encoded, nil
}

// toParentID normalizes the decoded parent_id field. JSON numbers arrive as
// float64; nil clears the parent.
func toParentID(raw any) (*int64, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int64:
		if v <= 0 {
			return nil, fmt.Errorf("invalid parent id %v", raw)
		}
		return &v, nil
	case float64:
		id := int64(v)
		if float64(id) != v || id <= 0 {
			return nil, fmt.Errorf("invalid parent id %v", raw)
		}
		return &id, nil
	default:
		return nil, fmt.Errorf("invalid parent id %v", raw)
	}
}
