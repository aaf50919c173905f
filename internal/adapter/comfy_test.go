package adapter

import (
	"testing"

	"github.com/richinsley/comfy2go/graphapi"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
)

func selectorTypes(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func TestApplySection(t *testing.T) {
	profile := &graphapi.GraphNode{Type: "TOMLProfileSelector", WidgetValues: []interface{}{"default", true}}
	dynamic := &graphapi.GraphNode{Type: "TOMLDynamicSelector", WidgetValues: []interface{}{"player_1"}}
	sampler := &graphapi.GraphNode{Type: "KSampler", WidgetValues: []interface{}{"player_1", 20}}
	noWidgets := &graphapi.GraphNode{Type: "TOMLDynamicSelector"}
	emptyWidgets := &graphapi.GraphNode{Type: "TOMLDynamicSelector", WidgetValues: []interface{}{}}

	nodes := []*graphapi.GraphNode{profile, nil, dynamic, sampler, noWidgets, emptyWidgets}
	n := applySection(nodes, selectorTypes("TOMLProfileSelector", "TOMLDynamicSelector"), "donald")

	assert.Equal(t, 2, n)
	assert.Equal(t, []interface{}{"donald", true}, profile.WidgetValues)
	assert.Equal(t, []interface{}{"donald"}, dynamic.WidgetValues)
	assert.Equal(t, []interface{}{"player_1", 20}, sampler.WidgetValues)
	assert.Nil(t, noWidgets.WidgetValues)
}

func TestApplySection_NoSelectors(t *testing.T) {
	nodes := []*graphapi.GraphNode{{Type: "KSampler", WidgetValues: []interface{}{1}}}
	assert.Zero(t, applySection(nodes, selectorTypes("TOMLProfileSelector"), "x"))
}

func TestNewComfyWorkflowAdapter_NodeTypes(t *testing.T) {
	a := NewComfyWorkflowAdapter(
		config.ClientAdapter{ComfyHost: "127.0.0.1", ComfyPort: 8188},
		[]string{"TOMLProfileSelector", "TOMLDynamicSelector"},
		logger.Nop(),
	).(*comfyWorkflowAdapter)

	assert.Len(t, a.nodeTypes, 2)
	assert.Contains(t, a.nodeTypes, "TOMLDynamicSelector")
	assert.NotNil(t, a.client)
}
