// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// selector server, its clients and the terminal browser.
//
// Section failures are reported inside response bodies rather than as
// transport errors, so the wording is part of the wire contract and lives
// in one place.
package app

const (
	// MsgConfigNotFound is reported when the TOML source file does not
	// exist.
	MsgConfigNotFound = "Config file not found"

	// MsgSectionNotFound is a format string taking the requested section
	// name. It is reported when the source has no such section.
	MsgSectionNotFound = "Section '%s' not found"

	// MsgConfigReloaded accompanies a successful reload.
	MsgConfigReloaded = "Configuration reloaded successfully"

	MsgRecordCopied = "Record copied to clipboard"

	// MsgServerUnreachable replaces low-level dial and timeout errors in the
	// terminal browser.
	MsgServerUnreachable = "Selector server is unreachable"
)
