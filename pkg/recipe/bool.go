// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"strings"
)

// BoolValue normalizes a loosely typed flag value to a strict bool.
// Values come from defaults files and recipe overrides where a flag may
// be absent, a bool, or a string like "False"; every falsy
// representation means false. Branching code must only ever see the
// result of this function, never the raw value.
func BoolValue(val interface{}) bool {
	switch typedVal := val.(type) {
	case nil:
		return false
	case bool:
		return typedVal
	case string:
		switch strings.ToLower(strings.TrimSpace(typedVal)) {
		case "", "false", "no", "0":
			return false
		}
		return true
	case int:
		return typedVal != 0
	case int64:
		return typedVal != 0
	case float64:
		return typedVal != 0
	default:
		return true
	}
}
