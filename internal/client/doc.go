// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the selector command-line client.
//
// It wires configuration, the in-process services, the remote server
// adapter, the workflow adapter and the terminal browser behind a cobra
// command tree.
package client
