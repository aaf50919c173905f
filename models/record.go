// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field is a single key/value pair of a section record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered mapping from field name to [Value].
//
// Field order is the insertion order of the backing source and is preserved
// by every accessor and by the JSON encoding. Keys are unique: adding an
// existing key replaces its value in place.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields in the given order.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r = r.With(f.Key, f.Value)
	}
	return r
}

// With returns a copy of r with key set to value. A new key is appended; an
// existing key keeps its position.
func (r Record) With(key string, value Value) Record {
	out := make([]Field, len(r.fields), len(r.fields)+1)
	copy(out, r.fields)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return Record{fields: out}
		}
	}
	return Record{fields: append(out, Field{Key: key, Value: value})}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// IsEmpty reports whether the record has no fields.
func (r Record) IsEmpty() bool { return len(r.fields) == 0 }

// At returns the i-th field in insertion order.
func (r Record) At(i int) (Field, bool) {
	if i < 0 || i >= len(r.fields) {
		return Field{}, false
	}
	return r.fields[i], true
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Null(), false
}

// Fields returns a copy of the fields in insertion order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the field values in insertion order.
func (r Record) Values() []Value {
	values := make([]Value, len(r.fields))
	for i, f := range r.fields {
		values[i] = f.Value
	}
	return values
}

// MarshalJSON encodes the record as a JSON object whose keys follow the
// record's insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeString(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of scalars, keeping key order.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = Record{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("record must be a JSON object")
	}

	var out Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("record key must be a string")
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err = v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("decode field %q: %w", key, err)
		}
		out = out.With(key, v)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// Serialize returns the record as human-readable JSON indented with two
// spaces. The empty record serializes to "{}".
func (r Record) Serialize() string {
	raw, err := r.MarshalJSON()
	if err != nil {
		return "{}"
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, raw, "", "  "); err != nil {
		return "{}"
	}
	return buf.String()
}
