// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

// Package files writes generated recipe files to disk.
package files
