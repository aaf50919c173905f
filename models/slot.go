// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SlotType is the type tag a host sees for one output slot.
type SlotType string

const (
	// SlotInt holds an integer; zero value 0.
	SlotInt SlotType = "INT"
	// SlotFloat holds a float; zero value 0.0.
	SlotFloat SlotType = "FLOAT"
	// SlotString holds a string; zero value "".
	SlotString SlotType = "STRING"
	// SlotBoolean holds a boolean; zero value false.
	SlotBoolean SlotType = "BOOLEAN"
	// SlotAny holds whatever the field holds; zero value null.
	SlotAny SlotType = "ANY"
	// SlotJSON tags the serialized full-record output.
	SlotJSON SlotType = "JSON"
	// SlotDict tags a full-record output the host treats as a mapping.
	SlotDict SlotType = "DICT"
)

// MaxArity is the largest projection any selector declares.
const MaxArity = 16

// Zero returns the type-appropriate empty value for a slot of type t.
func (t SlotType) Zero() Value {
	switch t {
	case SlotInt:
		return IntValue(0)
	case SlotFloat:
		return FloatValue(0)
	case SlotString, SlotJSON, SlotDict:
		return StringValue("")
	case SlotBoolean:
		return BoolValue(false)
	default:
		return Null()
	}
}

// SlotTypeOf infers the slot type matching the kind of v. Null maps to ANY.
func SlotTypeOf(v Value) SlotType {
	switch v.Kind() {
	case KindInt:
		return SlotInt
	case KindFloat:
		return SlotFloat
	case KindBool:
		return SlotBoolean
	case KindString:
		return SlotString
	default:
		return SlotAny
	}
}

// Projection is the fixed-arity ordered sequence of slot values derived from
// a record.
type Projection []Value

// Interfaces returns the slot values as plain Go values.
func (p Projection) Interfaces() []any {
	out := make([]any, len(p))
	for i, v := range p {
		out[i] = v.Interface()
	}
	return out
}

// Filled returns the number of non-null slots.
func (p Projection) Filled() int {
	n := 0
	for _, v := range p {
		if !v.IsNull() {
			n++
		}
	}
	return n
}
