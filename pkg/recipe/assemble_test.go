// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipe_test

import (
	"strings"
	"testing"

	"github.com/prowarehouse-nl/recipemaker/pkg/recipe"
	"github.com/prowarehouse-nl/recipemaker/pkg/recipefmt"
	"github.com/stretchr/testify/require"
)

func baseSettings() recipe.Settings {
	return recipe.Settings{
		Name:             "Firefox",
		Category:         "Browsers",
		IdentifierPrefix: "apple.prowarehouse.patch-management-recipes",
		GroupName:        "SW - Patch Management",
		GroupTemplate:    "_Smart_Group.xml",
		PolicyName:       "%NAME% - Installer From AutoPKG",
		PolicyTemplate:   "_Install_Policy.xml",
		CacheDir:         "/cache/Firefox",
		Parent:           recipe.Parent{Identifier: "Firefox"},
	}
}

func processors(doc *recipe.Document) []string {
	var result []string
	for _, step := range doc.Process {
		result = append(result, step.Processor)
	}
	return result
}

func TestAssemblePkgUploadOnly(t *testing.T) {
	doc, err := recipe.Assemble(baseSettings())
	require.NoError(t, err)

	require.Equal(t, "apple.prowarehouse.patch-management-recipes.jamf.Firefox-pkg-upload", doc.Identifier)
	require.Equal(t, "Firefox", doc.ParentRecipe)
	require.Equal(t, "2.3", doc.MinimumVersion)
	require.Equal(t, "Recipe automatically generated from Firefox by recipemaker", doc.Comment)

	require.Equal(t, []string{recipe.ProcessorPackageUploader}, processors(doc))
	require.Equal(t, []string{"NAME", "CATEGORY"}, doc.Input.Keys())

	category, _ := doc.Process[0].Arguments.Get("pkg_category")
	require.Equal(t, "%CATEGORY%", category)
}

func TestAssembleMakeCategoriesInsertsStepBeforeUpload(t *testing.T) {
	settings := baseSettings()
	settings.MakeCategories = true

	doc, err := recipe.Assemble(settings)
	require.NoError(t, err)

	require.Equal(t, []string{
		recipe.ProcessorCategoryUploader,
		recipe.ProcessorPackageUploader,
	}, processors(doc))

	categoryName, _ := doc.Process[0].Arguments.Get("category_name")
	require.Equal(t, "%CATEGORY%", categoryName)
}

func TestAssemblePolicyWithRegex(t *testing.T) {
	settings := baseSettings()
	settings.MakePolicy = true
	settings.AddRegex = true

	doc, err := recipe.Assemble(settings)
	require.NoError(t, err)

	require.Equal(t, "apple.prowarehouse.patch-management-recipes.jamf.Firefox", doc.Identifier)
	require.False(t, strings.HasSuffix(doc.Identifier, "-pkg-upload"))

	require.Equal(t, []string{
		recipe.ProcessorPackageUploader,
		recipe.ProcessorStopProcessingIf,
		recipe.ProcessorVersionRegexGenerator,
		recipe.ProcessorComputerGroupUploader,
		recipe.ProcessorPolicyUploader,
	}, processors(doc))

	require.Equal(t, []string{
		"NAME", "CATEGORY", "GROUP_NAME", "GROUP_TEMPLATE", "TESTING_GROUP_NAME",
		"POLICY_CATEGORY", "POLICY_NAME", "POLICY_TEMPLATE", "SELF_SERVICE_DISPLAY_NAME",
		"SELF_SERVICE_DESCRIPTION", "SELF_SERVICE_ICON", "UPDATE_PREDICATE",
	}, doc.Input.Keys())

	icon, _ := doc.Input.Get("SELF_SERVICE_ICON")
	require.Equal(t, "%NAME%.png", icon)
	predicate, _ := doc.Input.Get("UPDATE_PREDICATE")
	require.Equal(t, "pkg_uploaded == False", predicate)

	regexStep := doc.Process[2]
	require.Nil(t, regexStep.Arguments)
}

func TestAssemblePolicyAndCategoriesAddsSecondCategoryStep(t *testing.T) {
	settings := baseSettings()
	settings.MakePolicy = true
	settings.MakeCategories = true

	doc, err := recipe.Assemble(settings)
	require.NoError(t, err)

	require.Equal(t, []string{
		recipe.ProcessorCategoryUploader,
		recipe.ProcessorPackageUploader,
		recipe.ProcessorStopProcessingIf,
		recipe.ProcessorComputerGroupUploader,
		recipe.ProcessorCategoryUploader,
		recipe.ProcessorPolicyUploader,
	}, processors(doc))

	policyCategory, _ := doc.Process[4].Arguments.Get("category_name")
	require.Equal(t, "%POLICY_CATEGORY%", policyCategory)
}

func TestAssembleSanitizesName(t *testing.T) {
	settings := baseSettings()
	settings.Name = "Firefox Developer Edition"

	doc, err := recipe.Assemble(settings)
	require.NoError(t, err)

	require.Equal(t, "apple.prowarehouse.patch-management-recipes.jamf.FirefoxDeveloperEdition-pkg-upload", doc.Identifier)

	name, _ := doc.Input.Get("NAME")
	require.Equal(t, "Firefox Developer Edition", name, "NAME input keeps the original spelling")
}

func TestAssembleRequiresName(t *testing.T) {
	settings := baseSettings()
	settings.Name = ""

	_, err := recipe.Assemble(settings)
	require.Error(t, err)
}

func TestAssembleMinimumVersionRaisedByParent(t *testing.T) {
	settings := baseSettings()
	settings.Parent = recipe.Parent{Identifier: "Firefox", MinimumVersion: "2.5"}

	doc, err := recipe.Assemble(settings)
	require.NoError(t, err)
	require.Equal(t, "2.5", doc.MinimumVersion)

	settings.Parent.MinimumVersion = "1.4"
	doc, err = recipe.Assemble(settings)
	require.NoError(t, err)
	require.Equal(t, "2.3", doc.MinimumVersion)

	settings.Parent.MinimumVersion = "not-a-version"
	doc, err = recipe.Assemble(settings)
	require.NoError(t, err)
	require.Equal(t, "2.3", doc.MinimumVersion)
}

func TestAssembleIsDeterministic(t *testing.T) {
	settings := baseSettings()
	settings.MakePolicy = true
	settings.MakeCategories = true
	settings.AddRegex = true

	first, err := recipe.Assemble(settings)
	require.NoError(t, err)
	second, err := recipe.Assemble(settings)
	require.NoError(t, err)

	firstOut := recipefmt.EncodeYAML(recipe.Reorder(first.AsMap()))
	secondOut := recipefmt.EncodeYAML(recipe.Reorder(second.AsMap()))
	require.Equal(t, firstOut, secondOut)
}
