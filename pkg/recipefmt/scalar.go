// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"strconv"
	"strings"
	"unicode"
)

// yamlScalar renders a string value, quoting only when a plain scalar
// would be invalid or would resolve to another type. Placeholder values
// like %NAME% get single quotes (a plain scalar must not start with
// '%'); the placeholder text itself is never altered.
func yamlScalar(s string) string {
	if s == "" {
		return `""`
	}

	if strings.ContainsAny(s, "\n\t") || hasControlChars(s) {
		// strconv.Quote escaping (\n, \t, \", \\) is valid YAML
		// double-quote escaping
		return strconv.Quote(s)
	}

	if needsSingleQuote(s) {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}

	return s
}

func needsSingleQuote(s string) bool {
	// plain scalars that resolve to bool/null/number
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "on", "off", "null", "~", "y", "n":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}

	// indicator characters cannot start a plain scalar
	if strings.ContainsRune("!&*%@\"'#|>{}[],"+"`", rune(s[0])) {
		return true
	}
	switch {
	case s == "-" || s == ":" || s == "?":
		return true
	case strings.HasPrefix(s, "- ") || strings.HasPrefix(s, ": ") || strings.HasPrefix(s, "? "):
		return true
	}

	// sequences that terminate a plain scalar mid-line
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") || strings.Contains(s, " #") {
		return true
	}

	// leading/trailing whitespace would be folded away
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return true
	}

	return false
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
