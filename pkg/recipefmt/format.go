// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"fmt"
)

type Format string

const (
	FormatYAML  Format = "yaml"
	FormatPlist Format = "plist"
)

func NewFormat(val string) (Format, error) {
	switch val {
	case "", string(FormatYAML):
		return FormatYAML, nil
	case string(FormatPlist):
		return FormatPlist, nil
	}
	return "", fmt.Errorf("Unknown recipe format '%s' (expected 'plist' or 'yaml')", val)
}
