// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run executes args and blocks until the command finishes.
	Run(ctx context.Context, args []string) error
}
