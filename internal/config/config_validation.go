// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against the `validate` struct
// tags. Field failures are reported together and wrapped with the sentinel
// of the group they belong to.
func (cfg *StructuredConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	var joined error
	for _, fe := range fieldErrs {
		joined = errors.Join(joined, fmt.Errorf("%w: %s failed on %q", groupError(fe.StructNamespace()), fe.StructNamespace(), fe.Tag()))
	}

	return joined
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Source.Kind == SourceKindTOML && cfg.Source.Path == "" {
		return ErrInvalidSourceConfigs
	}

	return nil
}

func groupError(namespace string) error {
	switch {
	case hasGroup(namespace, "App"):
		return ErrInvalidAppConfigs
	case hasGroup(namespace, "Source"):
		return ErrInvalidSourceConfigs
	case hasGroup(namespace, "Storage"):
		return ErrInvalidStorageConfigs
	case hasGroup(namespace, "Server"):
		return ErrInvalidServerConfigs
	case hasGroup(namespace, "Adapter"):
		return ErrInvalidAdapterConfigs
	case hasGroup(namespace, "Workers"):
		return ErrInvalidWorkerConfigs
	default:
		return ErrInvalidConfig
	}
}

func hasGroup(namespace, group string) bool {
	prefix := "StructuredConfig." + group + "."
	return len(namespace) > len(prefix) && namespace[:len(prefix)] == prefix
}
