// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of the selector CLI.
//
// [ServerAdapter] talks to a running selector server over its REST routes.
// [WorkflowAdapter] writes a chosen section into the selector nodes of a
// ComfyUI workflow and queues it.
//
// Status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/models"
)

// ServerAdapter is the remote view of the selector server.
type ServerAdapter interface {
	// SetToken stores the bearer token sent with reload requests.
	SetToken(token string)
	Token() string

	GetSection(ctx context.Context, req models.SectionRequest) (models.SectionResponse, error)
	GetConfig(ctx context.Context) (models.ConfigResponse, error)
	Reload(ctx context.Context) (models.ReloadResponse, error)

	Nodes(ctx context.Context) ([]models.NodeDeclaration, error)
	Node(ctx context.Context, name string) (models.NodeDeclaration, error)
	Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error)
	IsChanged(ctx context.Context, name, section string) (string, error)

	Version(ctx context.Context) (string, error)
}

// WorkflowAdapter applies a section to a host workflow.
type WorkflowAdapter interface {
	// Apply sets section on every selector node of the workflow file, queues
	// the workflow and waits until it stops. It returns the number of nodes
	// updated.
	Apply(ctx context.Context, workflowPath, section string) (int, error)
}
