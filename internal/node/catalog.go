// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package node

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/resolver"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

// Node type names.
const (
	ProfileSelector      = "ProfileSelector"
	TomlSelector         = "TomlSelector"
	TomlSelectorPro      = "TomlSelectorPro"
	TomlSelectorBasic    = "TomlSelectorBasic"
	TomlSelectorAdvanced = "TomlSelectorAdvanced"
	TomlSelectorDynamic  = "TomlSelectorDynamic"
	TomlSelectorFixed    = "TomlSelectorFixed"
	TomlSelectorNamed    = "TomlSelectorNamed"
	TomlSelectorUltra    = "TomlSelectorUltra"
)

const (
	selectorOutputs = 10
	profileOutputs  = 5

	// proFallbackOutputs is the TomlSelectorPro arity while the source is
	// unavailable.
	proFallbackOutputs = 5
)

// NamedSections are the sections TomlSelector projects by field name.
func NamedSections() map[string]resolver.NamedSlots {
	return map[string]resolver.NamedSlots{
		"player_1": {0: "numero", 1: "jujuba", 2: "animal"},
		"donald":   {1: "leao", 2: "software"},
	}
}

var (
	showInfo = models.OptionalInput{Name: "show_info", Default: true, Label: "Show Info"}
	reload   = models.OptionalInput{Name: "reload", Default: false, Label: "Reload Config"}
	showKeys = models.OptionalInput{Name: "show_keys", Default: true, Label: "Display Keys"}
	display  = models.OptionalInput{Name: "display_info", Default: true, Label: "Show Info"}
)

// Deps are the collaborators of the default node set.
type Deps struct {
	// Static backs ProfileSelector.
	Static store.SourceLoader

	// TOML backs every TomlSelector variant.
	TOML store.SourceLoader

	// Publisher and Session receive TomlSelectorUltra schema updates.
	// Publisher may be nil.
	Publisher events.Publisher
	Session   *resolver.Session
}

// NewDefaultRegistry registers the nine selector node types.
func NewDefaultRegistry(deps Deps, log *logger.Logger) (*Registry, error) {
	profileTypes := append(slices.Repeat([]models.SlotType{models.SlotString}, profileOutputs-1), models.SlotInt)
	tomlTypes := append([]models.SlotType{models.SlotInt}, slices.Repeat([]models.SlotType{models.SlotString}, profileOutputs-1)...)
	basicTypes := slices.Repeat([]models.SlotType{models.SlotString}, selectorOutputs)

	profile, err := resolver.NewFixedSchemaPolicy(profileTypes, nil)
	if err != nil {
		return nil, err
	}
	named, err := resolver.NewFixedSchemaPolicy(tomlTypes, NamedSections())
	if err != nil {
		return nil, err
	}
	basic, err := resolver.NewFixedSchemaPolicy(basicTypes, nil)
	if err != nil {
		return nil, err
	}
	dynamic, err := resolver.NewDynamicPolicy(selectorOutputs)
	if err != nil {
		return nil, err
	}
	ultra, err := resolver.NewDynamicPolicy(models.MaxArity)
	if err != nil {
		return nil, err
	}
	widest, err := resolver.NewWidestSectionPolicy(selectorOutputs, proFallbackOutputs)
	if err != nil {
		return nil, err
	}

	var pushOpts []Option
	if deps.Publisher != nil {
		pushOpts = append(pushOpts, WithSchemaPush(deps.Publisher, deps.Session))
	}

	entries := []struct {
		def    Definition
		loader store.SourceLoader
		policy resolver.Policy
		opts   []Option
	}{
		{
			def:    Definition{Name: ProfileSelector, DisplayName: "Profile Selector", Category: "utils"},
			loader: deps.Static,
			policy: profile,
		},
		{
			def: Definition{
				Name:         TomlSelector,
				DisplayName:  "TOML Selector",
				Category:     "utils/toml",
				RecordOutput: true,
				RecordType:   models.SlotString,
			},
			loader: deps.TOML,
			policy: named,
		},
		{
			def: Definition{
				Name:         TomlSelectorPro,
				DisplayName:  "TOML Selector Pro",
				Category:     "utils/toml",
				RecordOutput: true,
				RecordType:   models.SlotString,
			},
			loader: deps.TOML,
			policy: widest,
			opts:   []Option{WithNames(UniqueKeysPadded("value_"))},
		},
		{
			def:    Definition{Name: TomlSelectorBasic, DisplayName: "TOML Selector (Basic)", Category: "utils/selector"},
			loader: deps.TOML,
			policy: basic,
		},
		{
			def: Definition{
				Name:           TomlSelectorAdvanced,
				DisplayName:    "TOML Selector (Advanced)",
				Category:       "utils/selector",
				RecordOutput:   true,
				RecordType:     models.SlotDict,
				RecordName:     "full_data",
				OptionalInputs: []models.OptionalInput{display},
				OutputNode:     true,
			},
			loader: deps.TOML,
			policy: dynamic,
			opts:   []Option{WithStaticNames("value_", 1)},
		},
		{
			def: Definition{
				Name:           TomlSelectorDynamic,
				DisplayName:    "TOML Selector (Dynamic)",
				Category:       "utils/selector",
				RecordOutput:   true,
				OptionalInputs: []models.OptionalInput{reload, showKeys},
				OutputNode:     true,
			},
			loader: deps.TOML,
			policy: dynamic,
			opts:   []Option{WithStaticNames("out_", 1)},
		},
		{
			def: Definition{
				Name:           TomlSelectorFixed,
				DisplayName:    "TOML Selector (Fixed Types)",
				Category:       "utils/selector/fixed",
				RecordOutput:   true,
				OptionalInputs: []models.OptionalInput{showInfo},
				OutputNode:     true,
			},
			loader: deps.TOML,
			policy: dynamic,
			opts:   []Option{WithNames(FirstSectionKeys())},
		},
		{
			def: Definition{
				Name:         TomlSelectorNamed,
				DisplayName:  "TOML Selector (Named Outputs)",
				Category:     "utils/selector/named",
				RecordOutput: true,
				OutputNode:   true,
			},
			loader: deps.TOML,
			policy: dynamic,
			opts:   []Option{WithNames(UniqueKeys())},
		},
		{
			def: Definition{
				Name:        TomlSelectorUltra,
				DisplayName: "TOML Selector (Ultra Dynamic)",
				Category:    "utils/selector/ultra",
				OutputNode:  true,
			},
			loader: deps.TOML,
			policy: ultra,
			opts:   append([]Option{WithStaticNames("output_", 0)}, pushOpts...),
		},
	}

	reg := NewRegistry()
	for _, e := range entries {
		if e.loader == nil {
			return nil, fmt.Errorf("node %s: %w", e.def.Name, ErrNilLoader)
		}
		n, err := New(e.def, resolver.New(e.loader, e.policy, log), log, e.opts...)
		if err != nil {
			return nil, err
		}
		if err = reg.Register(n); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
