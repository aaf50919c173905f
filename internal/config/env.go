// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a T from the process environment. Variable names are the
// envPrefix of the group joined with the env tag of the field, so
// Source.Path is SOURCE_PATH and Adapter.ComfyPort is ADAPTER_COMFY_PORT.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
