// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-toml-selector/models"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "section request", obj: models.SectionRequest{Section: "player_1", NodeID: "12"}},
		{name: "section request pointer", obj: &models.SectionRequest{Section: "player_1"}},
		{name: "invocation", obj: models.Invocation{Section: "Lovehent", NodeID: "4:7"}},
		{name: "invocation pointer", obj: &models.Invocation{}},
		{name: "cache entry", obj: models.NodeCacheEntry{NodeID: "3", Section: "donald"}},
		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Section(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		section string
		wantErr bool
	}{
		{name: "empty", section: ""},
		{name: "plain", section: "player_1"},
		{name: "spaces and unicode", section: "Jogador Número 1 ⚽"},
		{name: "exactly max", section: strings.Repeat("é", MaxSectionLength)},
		{name: "too long", section: strings.Repeat("a", MaxSectionLength+1), wantErr: true},
		{name: "newline", section: "a\nb", wantErr: true},
		{name: "nul", section: "a\x00", wantErr: true},
		{name: "invalid utf8", section: "\xff\xfe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.SectionRequest{Section: tt.section}, FieldSection)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSection)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_NodeID(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		nodeID  string
		wantErr bool
	}{
		{name: "empty", nodeID: ""},
		{name: "numeric", nodeID: "17"},
		{name: "subgraph", nodeID: "4:7"},
		{name: "uuid-like", nodeID: "a1b2-c3d4_e5.f6"},
		{name: "too long", nodeID: strings.Repeat("1", MaxNodeIDLength+1), wantErr: true},
		{name: "slash", nodeID: "1/2", wantErr: true},
		{name: "space", nodeID: "1 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Invocation{NodeID: tt.nodeID}, FieldNodeID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNodeID)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	req := models.SectionRequest{Section: "ok", NodeID: "bad id"}

	assert.NoError(t, v.Validate(ctx, req, FieldSection))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldNodeID), ErrInvalidNodeID)
	assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidNodeID)
	assert.ErrorIs(t, v.Validate(ctx, req, "version"), ErrUnknownField)
}
