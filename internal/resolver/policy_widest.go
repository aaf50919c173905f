package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-toml-selector/models"
)

// SourceSized is implemented by policies whose arity depends on the current
// source snapshot. The resolver asks for the concrete policy on every load.
type SourceSized interface {
	ForSource(src models.Source, ok bool) Policy
}

// WidestSectionPolicy passes field values through unchanged, with one slot
// per field of the widest section, capped at a limit. An unavailable or
// empty source gets the fallback arity.
type WidestSectionPolicy struct {
	limit    int
	fallback *DynamicPolicy
}

// NewWidestSectionPolicy returns a policy with at most limit slots and
// fallback slots when the source gives no hint.
func NewWidestSectionPolicy(limit, fallback int) (*WidestSectionPolicy, error) {
	if err := checkArity(limit); err != nil {
		return nil, err
	}
	if fallback > limit {
		return nil, fmt.Errorf("%w: fallback %d exceeds limit %d", ErrInvalidArity, fallback, limit)
	}
	dyn, err := NewDynamicPolicy(fallback)
	if err != nil {
		return nil, err
	}
	return &WidestSectionPolicy{limit: limit, fallback: dyn}, nil
}

// ForSource implements [SourceSized].
func (p *WidestSectionPolicy) ForSource(src models.Source, ok bool) Policy {
	if !ok || src.IsEmpty() {
		return p.fallback
	}

	widest := 1
	for _, sec := range src.Sections() {
		widest = max(widest, sec.Record.Len())
	}
	dyn, _ := NewDynamicPolicy(min(widest, p.limit))
	return dyn
}

// Arity implements [Policy] with the fallback arity.
func (p *WidestSectionPolicy) Arity() int { return p.fallback.Arity() }

// SlotTypes implements [Policy] with the fallback arity.
func (p *WidestSectionPolicy) SlotTypes() []models.SlotType { return p.fallback.SlotTypes() }

// Empty implements [Policy] with the fallback arity.
func (p *WidestSectionPolicy) Empty() models.Projection { return p.fallback.Empty() }

// Project implements [Policy] with the fallback arity.
func (p *WidestSectionPolicy) Project(section string, rec models.Record) models.Projection {
	return p.fallback.Project(section, rec)
}
