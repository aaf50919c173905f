package models

// SectionRequest asks for the data of one section. NodeID, when present, also
// caches the result for that host node.
type SectionRequest struct {
	Section string `json:"section"`
	NodeID  string `json:"node_id,omitempty"`
}

// SectionResponse is the reply to a section query. On failure Success is
// false and Error carries the reason; the data fields are then empty.
// SectionData and Data hold the same record under the two names clients
// read it by.
type SectionResponse struct {
	Success     bool     `json:"success"`
	Section     string   `json:"section,omitempty"`
	SectionData *Record  `json:"section_data,omitempty"`
	Data        *Record  `json:"data,omitempty"`
	Keys        []string `json:"keys,omitempty"`
	Values      []Value  `json:"values,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// ConfigResponse is the reply to a whole-config query.
type ConfigResponse struct {
	Success  bool     `json:"success"`
	Config   *Source  `json:"config,omitempty"`
	Sections []string `json:"sections,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ReloadResponse is the reply to a reload request.
type ReloadResponse struct {
	Success bool    `json:"success"`
	Config  *Source `json:"config,omitempty"`
	Message string  `json:"message,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// ChangeTokenResponse carries an opaque change token.
type ChangeTokenResponse struct {
	Token string `json:"token"`
}
