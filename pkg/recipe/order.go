// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"github.com/prowarehouse-nl/recipemaker/pkg/orderedmap"
)

// topLevelKeyOrder is the canonical order of recipe keys. Keys outside
// this list are dropped during reordering.
var topLevelKeyOrder = []string{
	"Comment",
	"Description",
	"Identifier",
	"ParentRecipe",
	"MinimumVersion",
	"Input",
	"Process",
	"ParentRecipeTrustInfo",
}

// Reorder imposes the canonical key order used for YAML output:
// within each step the Processor key comes first and Comment and
// Arguments are pushed to the end; NAME becomes the first Input key;
// top-level keys follow topLevelKeyOrder. Purely cosmetic, consuming
// frameworks do not depend on key order.
func Reorder(doc *orderedmap.Map) *orderedmap.Map {
	if process, found := doc.Get("Process"); found {
		if steps, ok := process.([]interface{}); ok {
			for _, step := range steps {
				stepMap, ok := step.(*orderedmap.Map)
				if !ok {
					continue
				}
				stepMap.MoveToEnd("Comment")
				stepMap.MoveToEnd("Arguments")
			}
		}
	}

	if input, found := doc.Get("Input"); found {
		if inputMap, ok := input.(*orderedmap.Map); ok {
			inputMap.MoveToFront("NAME")
		}
	}

	result := orderedmap.NewMap()
	for _, key := range topLevelKeyOrder {
		if val, found := doc.Get(key); found {
			result.Set(key, val)
		}
	}
	return result
}
