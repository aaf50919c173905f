package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-toml-selector/models"
)

// Policy turns a record into a projection. Implementations are pure: the
// same section and record always give the same projection.
type Policy interface {
	// Arity is the number of slots, between 1 and models.MaxArity.
	Arity() int

	// SlotTypes returns one type tag per slot.
	SlotTypes() []models.SlotType

	// Project assigns record fields to slots. Fields beyond the arity are
	// dropped, missing slots hold their zero value.
	Project(section string, rec models.Record) models.Projection

	// Empty returns the all-zero projection used for an absent section.
	Empty() models.Projection
}

func checkArity(n int) error {
	if n < 1 || n > models.MaxArity {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidArity, n, models.MaxArity)
	}
	return nil
}

func emptyFor(types []models.SlotType) models.Projection {
	out := make(models.Projection, len(types))
	for i, t := range types {
		out[i] = t.Zero()
	}
	return out
}
