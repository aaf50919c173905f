package node

import (
	"fmt"

	"github.com/MKhiriev/go-toml-selector/models"
)

// RecordOutputName is the return name of the serialized record output.
const RecordOutputName = "json_data"

// NameFunc derives the slot return names. ok is false when the source could
// not be loaded. The result must hold exactly arity names.
type NameFunc func(src models.Source, ok bool, arity int) []string

// FirstSectionKeys names slots after the fields of the first section,
// padding with output_<i+1>.
func FirstSectionKeys() NameFunc {
	return func(src models.Source, ok bool, arity int) []string {
		names := sequence("output_", 1, arity)
		if !ok || src.IsEmpty() {
			return names
		}
		first := src.Sections()[0].Record
		for i, key := range first.Keys() {
			if i >= arity {
				break
			}
			names[i] = key
		}
		return names
	}
}

// UniqueKeys names slots after the distinct field names of all sections, in
// order of first appearance, padding with unused_<i+1>. An unavailable
// source gives value_<i+1>.
func UniqueKeys() NameFunc {
	return UniqueKeysPadded("unused_")
}

// UniqueKeysPadded is [UniqueKeys] with padding names prefix<i+1>.
func UniqueKeysPadded(prefix string) NameFunc {
	return func(src models.Source, ok bool, arity int) []string {
		if !ok {
			return sequence("value_", 1, arity)
		}

		names := sequence(prefix, 1, arity)
		seen := make(map[string]struct{})
		i := 0
		for _, sec := range src.Sections() {
			for _, key := range sec.Record.Keys() {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if i < arity {
					names[i] = key
				}
				i++
			}
		}
		return names
	}
}

func sequence(prefix string, first, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, first+i)
	}
	return out
}
