// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package files

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
}
