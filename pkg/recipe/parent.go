// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/prowarehouse-nl/recipemaker/pkg/files"
	yaml "gopkg.in/yaml.v2"
	plist "howett.net/plist"
)

// Parent identifies the upstream recipe the generated one extends.
type Parent struct {
	Identifier     string
	MinimumVersion string
}

// parentRecipe is the subset of a parent recipe file this tool reads.
type parentRecipe struct {
	Identifier     string `yaml:"Identifier" plist:"Identifier"`
	MinimumVersion string `yaml:"MinimumVersion" plist:"MinimumVersion"`
}

// ResolveParent determines the parent reference for the recipe being
// generated. When the cache directory indicates a downstream (.jss. or
// local override) run, the first packaging recipe among candidates is
// parsed for its Identifier; its final dot segment becomes the
// reference. Any failure degrades to the cache directory's base name
// with a warning, never an error.
func ResolveParent(cacheDir string, candidates []string, ui files.UI) Parent {
	fallback := Parent{Identifier: filepath.Base(cacheDir)}

	if !strings.Contains(cacheDir, ".jss.") && !strings.Contains(cacheDir, "local.") {
		return fallback
	}

	for _, path := range candidates {
		if !strings.Contains(path, ".pkg.recipe") {
			continue
		}

		parsed, err := readParentRecipe(path, ui)
		if err != nil || parsed.Identifier == "" {
			break
		}

		segments := strings.Split(parsed.Identifier, ".")
		return Parent{
			Identifier:     segments[len(segments)-1],
			MinimumVersion: parsed.MinimumVersion,
		}
	}

	ui.Printf("WARNING: could not find parent recipe identifier. "+
		"Defaulting to %s which may need editing.\n", cacheDir)
	return fallback
}

func readParentRecipe(path string, ui files.UI) (parentRecipe, error) {
	var parsed parentRecipe

	data, err := os.ReadFile(path)
	if err != nil {
		return parsed, err
	}

	if strings.Contains(path, ".yaml") {
		ui.Debugf("parent is a YAML recipe: %s\n", path)
		err = yaml.Unmarshal(data, &parsed)
	} else {
		ui.Debugf("parent is a plist recipe: %s\n", path)
		_, err = plist.Unmarshal(data, &parsed)
	}
	return parsed, err
}
