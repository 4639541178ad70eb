// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"strings"

	"github.com/prowarehouse-nl/recipemaker/pkg/orderedmap"
)

// Processor identifiers referenced by generated recipes. They are
// opaque to this tool; the AutoPkg run that consumes the recipe is what
// resolves them.
const (
	ProcessorCategoryUploader      = "com.github.grahampugh.jamf-upload.processors/JamfCategoryUploader"
	ProcessorPackageUploader       = "com.github.grahampugh.jamf-upload.processors/JamfPackageUploader"
	ProcessorComputerGroupUploader = "com.github.grahampugh.jamf-upload.processors/JamfComputerGroupUploader"
	ProcessorPolicyUploader        = "com.github.grahampugh.jamf-upload.processors/JamfPolicyUploader"
	ProcessorStopProcessingIf      = "StopProcessingIf"
	ProcessorVersionRegexGenerator = "com.github.grahampugh.recipes.commonprocessors/VersionRegexGenerator"
)

type Document struct {
	Comment        string
	Identifier     string
	ParentRecipe   string
	MinimumVersion string
	Input          *orderedmap.Map
	Process        []Step
}

type Step struct {
	Processor string
	Comment   string
	Arguments *orderedmap.Map
}

// AsMap converts the document into the generic ordered-map tree that
// the orderer and the serializers operate on. Empty metadata fields are
// omitted; a recipe file only carries populated keys.
func (d *Document) AsMap() *orderedmap.Map {
	result := orderedmap.NewMap()
	if d.Comment != "" {
		result.Set("Comment", d.Comment)
	}
	result.Set("Identifier", d.Identifier)
	if d.ParentRecipe != "" {
		result.Set("ParentRecipe", d.ParentRecipe)
	}
	result.Set("MinimumVersion", d.MinimumVersion)
	result.Set("Input", d.Input)

	steps := []interface{}{}
	for _, step := range d.Process {
		steps = append(steps, step.AsMap())
	}
	result.Set("Process", steps)

	return result
}

func (s Step) AsMap() *orderedmap.Map {
	result := orderedmap.NewMap()
	result.Set("Processor", s.Processor)
	if s.Comment != "" {
		result.Set("Comment", s.Comment)
	}
	if s.Arguments != nil && s.Arguments.Len() > 0 {
		result.Set("Arguments", s.Arguments)
	}
	return result
}

// SanitizeName strips spaces so the name can be used inside identifiers
// and filenames.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
