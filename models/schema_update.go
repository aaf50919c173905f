package models

import "time"

// SchemaUpdateEvent is the event name used on the push channel.
const SchemaUpdateEvent = "toml.selector.update"

// SchemaUpdate announces that the outputs of a node changed shape: a
// dynamic-arity node resolved a section with these keys and values, or the
// backing source changed (empty NodeID, Keys holding the new section names).
type SchemaUpdate struct {
	NodeID  string     `json:"node_id,omitempty"`
	Section string     `json:"section,omitempty"`
	Keys    []string   `json:"keys"`
	Values  []Value    `json:"values,omitempty"`
	Types   []SlotType `json:"types,omitempty"`
	At      time.Time  `json:"at"`
}

// NewSchemaUpdate builds the event for a resolved section.
func NewSchemaUpdate(nodeID, section string, rec Record) SchemaUpdate {
	values := rec.Values()
	types := make([]SlotType, len(values))
	for i, v := range values {
		types[i] = SlotTypeOf(v)
	}

	return SchemaUpdate{
		NodeID:  nodeID,
		Section: section,
		Keys:    rec.Keys(),
		Values:  values,
		Types:   types,
		At:      time.Now().UTC(),
	}
}

// Envelope is the message written to push-channel subscribers.
type Envelope struct {
	Type string       `json:"type"`
	Data SchemaUpdate `json:"data"`
}
