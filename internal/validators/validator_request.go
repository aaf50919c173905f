package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-toml-selector/models"
)

const (
	FieldSection = "section"
	FieldNodeID  = "node_id"
)

const (
	MaxSectionLength = 256
	MaxNodeIDLength  = 64
)

// RequestValidator checks section and node id arguments. An empty value is
// always valid: a missing section falls back to a default and a missing node
// id just skips caching.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SectionRequest:
		return v.validate(value.Section, value.NodeID, fields...)
	case *models.SectionRequest:
		return v.validate(value.Section, value.NodeID, fields...)

	case models.Invocation:
		return v.validate(value.Section, value.NodeID, fields...)
	case *models.Invocation:
		return v.validate(value.Section, value.NodeID, fields...)

	case models.NodeCacheEntry:
		return v.validate(value.Section, value.NodeID, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validate(section, nodeID string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSection, FieldNodeID}
	}

	for _, field := range fields {
		switch field {
		case FieldSection:
			if err := validateSection(section); err != nil {
				return err
			}
		case FieldNodeID:
			if err := validateNodeID(nodeID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func validateSection(section string) error {
	if !utf8.ValidString(section) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidSection)
	}
	if utf8.RuneCountInString(section) > MaxSectionLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidSection, MaxSectionLength)
	}
	for _, r := range section {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: contains control characters", ErrInvalidSection)
		}
	}
	return nil
}

// validateNodeID accepts host ids such as "12" or "4:7" (nodes inside
// subgraphs).
func validateNodeID(nodeID string) error {
	if len(nodeID) > MaxNodeIDLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidNodeID, MaxNodeIDLength)
	}
	for _, r := range nodeID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == ':' || r == '.':
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidNodeID, r)
		}
	}
	return nil
}
