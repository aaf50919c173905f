// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind enumerates the scalar kinds a configuration field can hold.
type ValueKind int

const (
	// KindNull marks an absent value.
	KindNull ValueKind = iota
	// KindString marks a UTF-8 string value.
	KindString
	// KindInt marks a signed 64-bit integer value.
	KindInt
	// KindFloat marks a 64-bit floating-point value.
	KindFloat
	// KindBool marks a boolean value.
	KindBool
)

// String returns the inferred type name reported in diagnostics and schema
// events.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// ErrUnsupportedValue is returned when a decoded value is not a scalar.
var ErrUnsupportedValue = errors.New("unsupported value type")

// Value is a tagged scalar: string, integer, float, boolean or null.
//
// The zero Value is null. Value is comparable with ==.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

// Null returns the absent value.
func Null() Value { return Value{} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf converts a decoded Go scalar into a [Value].
//
// nil becomes null; all signed and unsigned integer types become KindInt;
// float32 and float64 become KindFloat; json.Number is parsed as an integer
// when possible and as a float otherwise. Any other type (maps, slices,
// structs, time values) yields [ErrUnsupportedValue].
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int8:
		return IntValue(int64(t)), nil
	case int16:
		return IntValue(int64(t)), nil
	case int32:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint:
		return IntValue(int64(t)), nil
	case uint8:
		return IntValue(int64(t)), nil
	case uint16:
		return IntValue(int64(t)), nil
	case uint32:
		return IntValue(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return FloatValue(float64(t)), nil
		}
		return IntValue(int64(t)), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Null(), fmt.Errorf("%w: %q", ErrUnsupportedValue, t.String())
		}
		return FloatValue(f), nil
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Kind reports the scalar kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// TypeName reports the inferred type name of v.
func (v Value) TypeName() string { return v.kind.String() }

// Interface returns v as a plain Go value (nil, string, int64, float64 or bool).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String returns the textual form of v. Null is rendered as the empty string,
// floats in their shortest round-tripping form with at least one fractional
// digit ("7.0", "0.25", "1e+21").
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// AsString returns the string payload when v is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsInt converts v to an integer. Floats are truncated, booleans map to 0/1
// and strings are accepted when they parse as a number.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		return int64(v.f), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		s := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat converts v to a float. Integers widen, booleans map to 0/1 and
// numeric strings are parsed.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsBool converts v to a boolean. Numbers are true when non-zero; strings
// must spell a boolean ("true", "false", "1", "0", ...).
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindInt:
		return v.i != 0, true
	case KindFloat:
		return v.f != 0, true
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.s))
		return b, err == nil
	default:
		return false, false
	}
}

// MarshalJSON encodes v as the matching JSON scalar. Floats always carry a
// fraction or an exponent so they decode back as floats. Non-finite floats
// have no JSON form and are encoded as strings ("NaN", "+Inf", "-Inf").
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return encodeString(v.s)
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return encodeString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
		return []byte(formatFloat(v.f)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar. Numbers without a fraction or exponent
// become integers.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	decoded, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// formatFloat renders f in shortest form, appending ".0" to integral values.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

// encodeString quotes s as a JSON string without escaping <, > and &.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
