// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the build version of recipemaker.
var Version = "0.3.0"
