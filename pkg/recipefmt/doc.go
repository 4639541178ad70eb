// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

// Package recipefmt serializes recipe documents to their two on-disk
// formats: block-style YAML (with a cosmetic post-processing pass for
// readability) and XML plist. Structural serialization and cosmetic
// formatting are separate stages so each is testable on its own.
package recipefmt
