// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYAMLScalarPlain(t *testing.T) {
	plain := []string{
		"Firefox",
		"com.github.grahampugh.jamf-upload.processors/JamfPackageUploader",
		"pkg_uploaded == False",
		"_Install_Policy.xml",
		"SW - Patch Management",
		"it's",
	}
	for _, s := range plain {
		require.Equal(t, s, yamlScalar(s), "expected %q to stay unquoted", s)
	}
}

func TestYAMLScalarQuotesPlaceholders(t *testing.T) {
	require.Equal(t, "'%CATEGORY%'", yamlScalar("%CATEGORY%"))
	require.Equal(t, "'%NAME%.png'", yamlScalar("%NAME%.png"))
	require.Equal(t, "'%NAME% - Installer From AutoPKG'", yamlScalar("%NAME% - Installer From AutoPKG"))
}

func TestYAMLScalarQuotesAmbiguousPlainScalars(t *testing.T) {
	require.Equal(t, "'2.3'", yamlScalar("2.3"))
	require.Equal(t, "'42'", yamlScalar("42"))
	require.Equal(t, "'true'", yamlScalar("true"))
	require.Equal(t, "'No'", yamlScalar("No"))
	require.Equal(t, `""`, yamlScalar(""))
	require.Equal(t, "'key: value'", yamlScalar("key: value"))
	require.Equal(t, "' padded '", yamlScalar(" padded "))
	require.Equal(t, "'''quoted'''", yamlScalar("'quoted'"))
}

func TestYAMLScalarEscapesMultiline(t *testing.T) {
	require.Equal(t, `"line one\nline two"`, yamlScalar("line one\nline two"))
	require.Equal(t, `"col\tcol"`, yamlScalar("col\tcol"))
}
