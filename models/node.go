// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OptionalInput describes a boolean toggle a node accepts besides the
// section. Toggles only affect diagnostic logging, never outputs.
type OptionalInput struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
	Label   string `json:"label"`
}

// NodeDeclaration is the static description a host queries to discover a
// selector node: the selectable sections, the output schema and the optional
// inputs.
type NodeDeclaration struct {
	// Name is the registry key the host uses to refer to the node type.
	Name string `json:"name"`

	// DisplayName is the human-readable title.
	DisplayName string `json:"display_name"`

	// Category groups nodes in the host's node menu.
	Category string `json:"category"`

	// Sections lists the selectable section names, in source order.
	// It is never empty; an unavailable source yields ["default"].
	Sections []string `json:"sections"`

	// DefaultSection is the first entry of Sections.
	DefaultSection string `json:"default_section"`

	// RecordOutput reports whether output 0 is the serialized full record.
	RecordOutput bool `json:"record_output"`

	// ReturnTypes holds one type tag per output. With RecordOutput, index 0
	// tags the serialized record and the rest tag the projection slots.
	ReturnTypes []SlotType `json:"return_types"`

	// ReturnNames holds one name per output, aligned with ReturnTypes.
	ReturnNames []string `json:"return_names"`

	OptionalInputs []OptionalInput `json:"optional_inputs,omitempty"`

	// OutputNode marks nodes the host should always execute.
	OutputNode bool `json:"output_node"`
}

// Arity returns the number of projection slots.
func (d NodeDeclaration) Arity() int {
	if d.RecordOutput && len(d.ReturnTypes) > 0 {
		return len(d.ReturnTypes) - 1
	}
	return len(d.ReturnTypes)
}

// SlotNames returns the return names of the projection slots, leaving out
// the record output.
func (d NodeDeclaration) SlotNames() []string {
	if d.RecordOutput && len(d.ReturnNames) > 0 {
		return d.ReturnNames[1:]
	}
	return d.ReturnNames
}

// SlotTypes returns the type tags of the projection slots.
func (d NodeDeclaration) SlotTypes() []SlotType {
	if d.RecordOutput && len(d.ReturnTypes) > 0 {
		return d.ReturnTypes[1:]
	}
	return d.ReturnTypes
}

// Invocation carries the arguments of a single node evaluation.
type Invocation struct {
	// Section is the user-selected section. It may name a section that does
	// not exist; the node then returns an all-empty projection.
	Section string `json:"section"`

	// NodeID is the host's identifier of the node instance, if any.
	NodeID string `json:"node_id,omitempty"`

	// ShowInfo toggles per-field diagnostics. Nil means enabled.
	ShowInfo *bool `json:"show_info,omitempty"`

	// ShowKeys and DisplayInfo are the same toggle under the names other
	// nodes declare.
	ShowKeys    *bool `json:"show_keys,omitempty"`
	DisplayInfo *bool `json:"display_info,omitempty"`

	// Reload is accepted for compatibility: the source is always re-read.
	Reload bool `json:"reload,omitempty"`
}

// Diagnostics reports whether per-field diagnostics are enabled.
func (i Invocation) Diagnostics() bool {
	switch {
	case i.ShowInfo != nil:
		return *i.ShowInfo
	case i.ShowKeys != nil:
		return *i.ShowKeys
	case i.DisplayInfo != nil:
		return *i.DisplayInfo
	default:
		return true
	}
}

// NodeOutput is the ordered result of a node evaluation.
type NodeOutput struct {
	// Record is the selected section serialized as indented JSON ("{}" when
	// the section is absent).
	Record string `json:"record"`

	// Outputs is the projection, exactly Arity slots long.
	Outputs Projection `json:"outputs"`

	// RecordOutput mirrors the declaration of the node that produced it.
	RecordOutput bool `json:"-"`
}

// Tuple returns the flat host tuple: (record, slot_0, ..., slot_{N-1}), or
// just the slots when the node declares no record output.
func (o NodeOutput) Tuple() []any {
	if !o.RecordOutput {
		return o.Outputs.Interfaces()
	}
	out := make([]any, 0, len(o.Outputs)+1)
	out = append(out, o.Record)
	return append(out, o.Outputs.Interfaces()...)
}
