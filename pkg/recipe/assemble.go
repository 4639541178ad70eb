// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"fmt"
	"path/filepath"

	semver "github.com/hashicorp/go-version"
	"github.com/prowarehouse-nl/recipemaker/pkg/orderedmap"
)

// minimumVersionFloor is the lowest AutoPkg version generated recipes
// declare. A parent recipe may raise it (see minimumVersionFor).
const minimumVersionFloor = "2.3"

// Settings carries all inputs for one assembly. Boolean fields must
// already be normalized (see BoolValue); Parent must already be
// resolved (see ResolveParent).
type Settings struct {
	Name                   string
	Category               string
	IdentifierPrefix       string
	SelfServiceDescription string
	GroupName              string
	GroupTemplate          string
	PolicyName             string
	PolicyTemplate         string

	MakeCategories bool
	AddRegex       bool
	MakePolicy     bool

	CacheDir string
	Parent   Parent
}

// Assemble builds the recipe document for the given settings. The
// package-upload step is always present; category, halt, version-regex,
// group and policy steps are added per flags, in pipeline order.
func Assemble(s Settings) (*Document, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("Expected NAME to be non-empty")
	}

	identifier := s.IdentifierPrefix + ".jamf." + SanitizeName(s.Name)
	if !s.MakePolicy {
		identifier += "-pkg-upload"
	}

	input := orderedmap.NewMap()
	input.Set("NAME", s.Name)
	input.Set("CATEGORY", s.Category)

	doc := &Document{
		Comment: fmt.Sprintf("Recipe automatically generated from %s by recipemaker",
			filepath.Base(s.CacheDir)),
		Identifier:     identifier,
		ParentRecipe:   s.Parent.Identifier,
		MinimumVersion: minimumVersionFor(s.Parent),
		Input:          input,
	}

	if s.MakeCategories {
		doc.Process = append(doc.Process, Step{
			Processor: ProcessorCategoryUploader,
			Arguments: args("category_name", "%CATEGORY%"),
		})
	}

	doc.Process = append(doc.Process, Step{
		Processor: ProcessorPackageUploader,
		Arguments: args("pkg_category", "%CATEGORY%"),
	})

	if s.MakePolicy {
		input.Set("GROUP_NAME", s.GroupName)
		input.Set("GROUP_TEMPLATE", s.GroupTemplate)
		input.Set("TESTING_GROUP_NAME", "Testing")
		input.Set("POLICY_CATEGORY", "Testing")
		input.Set("POLICY_NAME", s.PolicyName)
		input.Set("POLICY_TEMPLATE", s.PolicyTemplate)
		input.Set("SELF_SERVICE_DISPLAY_NAME", s.PolicyName)
		input.Set("SELF_SERVICE_DESCRIPTION", s.SelfServiceDescription)
		input.Set("SELF_SERVICE_ICON", "%NAME%.png")
		input.Set("UPDATE_PREDICATE", "pkg_uploaded == False")

		doc.Process = append(doc.Process, Step{
			Processor: ProcessorStopProcessingIf,
			Arguments: args("predicate", "%UPDATE_PREDICATE%"),
		})

		if s.AddRegex {
			doc.Process = append(doc.Process, Step{
				Processor: ProcessorVersionRegexGenerator,
			})
		}

		doc.Process = append(doc.Process, Step{
			Processor: ProcessorComputerGroupUploader,
			Arguments: args(
				"computergroup_name", "%GROUP_NAME%",
				"computergroup_template", "%GROUP_TEMPLATE%",
			),
		})

		if s.MakeCategories {
			doc.Process = append(doc.Process, Step{
				Processor: ProcessorCategoryUploader,
				Arguments: args("category_name", "%POLICY_CATEGORY%"),
			})
		}

		doc.Process = append(doc.Process, Step{
			Processor: ProcessorPolicyUploader,
			Arguments: args(
				"policy_name", "%POLICY_NAME%",
				"policy_template", "%POLICY_TEMPLATE%",
				"icon", "%SELF_SERVICE_ICON%",
			),
		})
	}

	return doc, nil
}

// minimumVersionFor keeps the floor unless the parent recipe declares a
// semantically higher MinimumVersion; an unparsable parent value is
// ignored.
func minimumVersionFor(parent Parent) string {
	if parent.MinimumVersion == "" {
		return minimumVersionFloor
	}

	parentVer, err := semver.NewVersion(parent.MinimumVersion)
	if err != nil {
		return minimumVersionFloor
	}

	if parentVer.GreaterThan(semver.Must(semver.NewVersion(minimumVersionFloor))) {
		return parent.MinimumVersion
	}
	return minimumVersionFloor
}

func args(kvs ...string) *orderedmap.Map {
	result := orderedmap.NewMap()
	for i := 0; i < len(kvs); i += 2 {
		result.Set(kvs[i], kvs[i+1])
	}
	return result
}
