// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt_test

import (
	"strings"
	"testing"

	"github.com/prowarehouse-nl/recipemaker/pkg/recipefmt"
	"github.com/stretchr/testify/require"
	plist "howett.net/plist"
)

func TestEncodePlist(t *testing.T) {
	result, err := recipefmt.EncodePlist(pkgUploadDoc())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(result, "<?xml"))
	require.True(t, strings.HasSuffix(result, "</plist>\n"))
	require.False(t, strings.HasSuffix(result, "\n\n"), "exactly one trailing newline")

	var parsed struct {
		Identifier   string `plist:"Identifier"`
		ParentRecipe string `plist:"ParentRecipe"`
		Process      []struct {
			Processor string `plist:"Processor"`
		} `plist:"Process"`
	}
	_, err = plist.Unmarshal([]byte(result), &parsed)
	require.NoError(t, err)

	require.Equal(t, "apple.prowarehouse.patch-management-recipes.jamf.Firefox-pkg-upload", parsed.Identifier)
	require.Equal(t, "Firefox", parsed.ParentRecipe)
	require.Len(t, parsed.Process, 1)
	require.Equal(t, "com.github.grahampugh.jamf-upload.processors/JamfPackageUploader", parsed.Process[0].Processor)
}

func TestEncodePlistDeterministic(t *testing.T) {
	first, err := recipefmt.EncodePlist(pkgUploadDoc())
	require.NoError(t, err)
	second, err := recipefmt.EncodePlist(pkgUploadDoc())
	require.NoError(t, err)

	require.Equal(t, first, second)
}
