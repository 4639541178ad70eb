// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

// Package recipe assembles Jamf AutoPkg recipe documents: an ordered
// set of metadata keys, input variables and processor steps. Assembly
// is deterministic; the same settings always produce the same document.
package recipe
