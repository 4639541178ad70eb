// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

// Package orderedmap provides a map that remembers insertion order of
// its keys and allows explicit reordering. Recipe files are read by
// humans, so key order is part of the output contract.
package orderedmap
