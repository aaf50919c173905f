package resolver

import (
	"github.com/MKhiriev/go-toml-selector/models"
)

// Coerce converts v to the slot type t. A value that cannot be converted
// yields the slot's zero value; coercion never fails.
//
//	INT     int, float (truncated), bool (0/1), numeric string
//	FLOAT   int, float, numeric string
//	STRING  textual form of any non-null value
//	BOOLEAN bool, non-zero int, "true"/"false"
//	ANY     unchanged
func Coerce(t models.SlotType, v models.Value) models.Value {
	switch t {
	case models.SlotInt:
		if i, ok := v.AsInt(); ok {
			return models.IntValue(i)
		}
	case models.SlotFloat:
		if v.Kind() == models.KindBool {
			break
		}
		if f, ok := v.AsFloat(); ok {
			return models.FloatValue(f)
		}
	case models.SlotString, models.SlotJSON, models.SlotDict:
		if !v.IsNull() {
			return models.StringValue(v.String())
		}
	case models.SlotBoolean:
		if v.Kind() == models.KindFloat {
			break
		}
		if b, ok := v.AsBool(); ok {
			return models.BoolValue(b)
		}
	case models.SlotAny:
		return v
	}

	return t.Zero()
}
