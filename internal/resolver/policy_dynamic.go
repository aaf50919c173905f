package resolver

import (
	"slices"

	"github.com/MKhiriev/go-toml-selector/models"
)

// DynamicPolicy passes field values through unchanged: slot i holds the
// i-th field of the record, missing slots hold null.
type DynamicPolicy struct {
	n int
}

// NewDynamicPolicy returns a pass-through policy with n slots.
func NewDynamicPolicy(n int) (*DynamicPolicy, error) {
	if err := checkArity(n); err != nil {
		return nil, err
	}
	return &DynamicPolicy{n: n}, nil
}

// Arity implements [Policy].
func (p *DynamicPolicy) Arity() int { return p.n }

// SlotTypes implements [Policy]. Every slot is ANY.
func (p *DynamicPolicy) SlotTypes() []models.SlotType {
	return slices.Repeat([]models.SlotType{models.SlotAny}, p.n)
}

// Empty implements [Policy]. Every slot is null.
func (p *DynamicPolicy) Empty() models.Projection {
	return make(models.Projection, p.n)
}

// Project implements [Policy].
func (p *DynamicPolicy) Project(_ string, rec models.Record) models.Projection {
	out := p.Empty()
	for i, v := range rec.Values() {
		if i >= p.n {
			break
		}
		out[i] = v
	}
	return out
}
