// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"strings"
)

// sectionTokens mark the spots where a blank line aids readability of
// generated YAML recipes.
var sectionTokens = []string{"Input:", "Process:", "- Processor:", "ParentRecipeTrustInfo:"}

// PostProcessYAML applies the cosmetic pass over serialized YAML:
// blank lines before each section and step, no blank line between
// Process: and its first step, escaped multiline scalars rewritten as
// block literals, and exactly one trailing newline. The result parses
// to the same document; only layout changes.
func PostProcessYAML(output string) string {
	for _, token := range sectionTokens {
		output = strings.ReplaceAll(output, token, "\n"+token)
	}

	// the step list should start right under Process:
	output = strings.ReplaceAll(output, "Process:\n\n-", "Process:\n-")

	var recipe []string
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if strings.Contains(line, `\n`) {
			line = blockLiteral(line)
		}
		recipe = append(recipe, line)
	}
	recipe = append(recipe, "")
	return strings.Join(recipe, "\n")
}

// blockLiteral converts a `key: "...\n..."` line into a block literal
// scalar indented two past the key, with escaped tabs widened to four
// spaces and escaped quotes unescaped.
func blockLiteral(line string) string {
	indent := strings.Repeat(" ", len(line)-len(strings.TrimLeft(line, " "))+2)

	line = strings.Replace(line, `: "`, ": |\n"+indent, 1)
	line = strings.ReplaceAll(line, `\t`, "    ")
	line = strings.TrimSuffix(line, `\n"`)
	line = strings.ReplaceAll(line, `\n`, "\n"+indent)
	line = strings.TrimSuffix(line, `"`)
	line = strings.ReplaceAll(line, `\"`, `"`)
	return line
}

// EncodeYAML serializes the ordered document and applies the cosmetic
// pass.
func EncodeYAML(doc interface{}) string {
	return PostProcessYAML(NewPrinter().PrintStr(doc))
}
