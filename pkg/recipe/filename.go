// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"github.com/prowarehouse-nl/recipemaker/pkg/recipefmt"
)

// Filename computes the output filename: the sanitized name, a
// -pkg-upload suffix unless a policy is included, the .jamf.recipe
// naming convention, and a .yaml extension for the YAML format.
func Filename(name string, makePolicy bool, format recipefmt.Format) string {
	result := SanitizeName(name)
	if !makePolicy {
		result += "-pkg-upload"
	}
	result += ".jamf.recipe"
	if format == recipefmt.FormatYAML {
		result += ".yaml"
	}
	return result
}
