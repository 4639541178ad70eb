// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"fmt"
	"strings"

	"github.com/prowarehouse-nl/recipemaker/pkg/orderedmap"
	plist "howett.net/plist"
)

// EncodePlist serializes the document as an XML property list with tab
// indentation and exactly one trailing newline. The encoder sorts dict
// keys, matching what plistlib-generated recipes look like, so no
// canonical reordering applies on this path.
func EncodePlist(doc *orderedmap.Map) (string, error) {
	data := orderedmap.Conversion{Object: doc}.AsUnorderedStringMaps()

	bs, err := plist.MarshalIndent(data, plist.XMLFormat, "\t")
	if err != nil {
		return "", fmt.Errorf("Marshaling plist: %s", err)
	}

	return strings.TrimRight(string(bs), "\n") + "\n", nil
}
