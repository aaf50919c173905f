// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DefaultSectionName is the single selectable name exposed when a source is
// empty or cannot be loaded.
const DefaultSectionName = "default"

// Section is a named record, the unit of selection.
type Section struct {
	Name   string
	Record Record
}

// Source is an immutable snapshot of a configuration source: an ordered list
// of uniquely named sections. A new snapshot is produced on every load.
type Source struct {
	sections []Section
}

// NewSource builds a snapshot keeping the order of sections. A repeated name
// replaces the earlier section in place.
func NewSource(sections ...Section) Source {
	var out []Section
	for _, s := range sections {
		replaced := false
		for i := range out {
			if out[i].Name == s.Name {
				out[i].Record = s.Record
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, s)
		}
	}
	return Source{sections: out}
}

// Len returns the number of sections.
func (s Source) Len() int { return len(s.sections) }

// IsEmpty reports whether the source has no sections.
func (s Source) IsEmpty() bool { return len(s.sections) == 0 }

// Names returns the section names in source order.
func (s Source) Names() []string {
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.Name
	}
	return names
}

// Sections returns a copy of the sections in source order.
func (s Source) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Lookup returns the record of the named section.
func (s Source) Lookup(name string) (Record, bool) {
	for _, sec := range s.sections {
		if sec.Name == name {
			return sec.Record, true
		}
	}
	return Record{}, false
}

// MarshalJSON encodes the source as an ordered object of section objects.
func (s Source) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := encodeString(sec.Name)
		if err != nil {
			return nil, err
		}
		rec, err := sec.Record.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of flat section objects, keeping order.
func (s *Source) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = Source{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("source must be a JSON object")
	}

	var sections []Section
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return errors.New("section name must be a string")
		}

		var rec Record
		if err = dec.Decode(&rec); err != nil {
			return err
		}
		sections = append(sections, Section{Name: name, Record: rec})
	}
	if _, err = dec.Token(); err != nil {
		return err
	}

	*s = NewSource(sections...)
	return nil
}
