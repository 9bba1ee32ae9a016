// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// check
	interactive bool
	// check
	showPassword bool
	// check
	estimate bool
	// generate
	length int
	// generate
	symbols bool
	// generate
	count int
	// generate
	copyLast bool
)
