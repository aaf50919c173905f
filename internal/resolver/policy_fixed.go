package resolver

import (
	"slices"

	"github.com/MKhiriev/go-toml-selector/models"
)

// FixedSchemaPolicy projects onto a declared list of slot types. Fields are
// assigned positionally and coerced to the slot type, except for sections
// listed in the named table, whose slots are filled by field name.
//
// With slot types (INT, STRING, STRING, STRING, STRING) the record
// {output_1: "A", output_2: "B"} projects to (0, "B", "", "", ""): field 0
// lands in the integer slot and "A" is not numeric. With the order
// (STRING, STRING, STRING, STRING, INT) the same record gives
// ("A", "B", "", "", 0).
type FixedSchemaPolicy struct {
	types []models.SlotType
	named map[string]map[int]string
}

// NamedSlots maps a slot index to the field name that fills it.
type NamedSlots map[int]string

// NewFixedSchemaPolicy validates types and builds the policy. named may be
// nil; slot indexes outside the arity are ignored.
func NewFixedSchemaPolicy(types []models.SlotType, named map[string]NamedSlots) (*FixedSchemaPolicy, error) {
	if err := checkArity(len(types)); err != nil {
		return nil, err
	}

	p := &FixedSchemaPolicy{
		types: slices.Clone(types),
		named: make(map[string]map[int]string, len(named)),
	}
	for section, slots := range named {
		m := make(map[int]string, len(slots))
		for i, key := range slots {
			if i >= 0 && i < len(types) {
				m[i] = key
			}
		}
		p.named[section] = m
	}

	return p, nil
}

// Arity implements [Policy].
func (p *FixedSchemaPolicy) Arity() int { return len(p.types) }

// SlotTypes implements [Policy].
func (p *FixedSchemaPolicy) SlotTypes() []models.SlotType { return slices.Clone(p.types) }

// Empty implements [Policy].
func (p *FixedSchemaPolicy) Empty() models.Projection { return emptyFor(p.types) }

// IsNamed reports whether section is projected by field name.
func (p *FixedSchemaPolicy) IsNamed(section string) bool {
	_, ok := p.named[section]
	return ok
}

// Project implements [Policy].
func (p *FixedSchemaPolicy) Project(section string, rec models.Record) models.Projection {
	out := p.Empty()

	if slots, ok := p.named[section]; ok {
		for i, key := range slots {
			if v, found := rec.Get(key); found {
				out[i] = Coerce(p.types[i], v)
			}
		}
		return out
	}

	for i, f := range rec.Fields() {
		if i >= len(out) {
			break
		}
		out[i] = Coerce(p.types[i], f.Value)
	}
	return out
}
