package node

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/mock"
	"github.com/MKhiriev/go-toml-selector/internal/resolver"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

const playersTOML = `
[player_1]
numero = 7
jujuba = "doce"
animal = "gato"

[donald]
leao = "rei"
software = "go"
`

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newDynamicNode(t *testing.T, loader store.SourceLoader, arity int, def Definition, opts ...Option) *Node {
	t.Helper()
	p, err := resolver.NewDynamicPolicy(arity)
	require.NoError(t, err)
	n, err := New(def, resolver.New(loader, p, logger.Nop()), logger.Nop(), opts...)
	require.NoError(t, err)
	return n
}

func boolPtr(b bool) *bool { return &b }

func TestNew_NilResolver(t *testing.T) {
	_, err := New(Definition{Name: "x"}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilResolver)
}

func TestNode_Declare(t *testing.T) {
	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 3, Definition{
		Name:           "Sel",
		DisplayName:    "Selector",
		Category:       "utils/selector",
		RecordOutput:   true,
		OptionalInputs: []models.OptionalInput{showInfo},
		OutputNode:     true,
	})

	decl := n.Declare(context.Background())

	assert.Equal(t, "Sel", decl.Name)
	assert.Equal(t, "Selector", decl.DisplayName)
	assert.Equal(t, []string{"player_1", "donald"}, decl.Sections)
	assert.Equal(t, "player_1", decl.DefaultSection)
	assert.Equal(t, []models.SlotType{models.SlotJSON, models.SlotAny, models.SlotAny, models.SlotAny}, decl.ReturnTypes)
	assert.Equal(t, []string{"json_data", "output_1", "output_2", "output_3"}, decl.ReturnNames)
	assert.Equal(t, 3, decl.Arity())
	assert.True(t, decl.OutputNode)
	assert.Equal(t, []models.OptionalInput{showInfo}, decl.OptionalInputs)
}

func TestNode_Declare_MissingSource(t *testing.T) {
	loader := store.NewTOMLFileSource(filepath.Join(t.TempDir(), "absent.toml"), logger.Nop())
	n := newDynamicNode(t, loader, 2, Definition{Name: "Sel"})

	decl := n.Declare(context.Background())

	assert.Equal(t, []string{"default"}, decl.Sections)
	assert.Equal(t, "default", decl.DefaultSection)
	assert.Equal(t, []string{"output_1", "output_2"}, decl.ReturnNames)
	assert.Equal(t, 2, decl.Arity())
}

func TestNode_Declare_SeesFileEdits(t *testing.T) {
	path := writeTOML(t, playersTOML)
	n := newDynamicNode(t, store.NewTOMLFileSource(path, logger.Nop()), 2, Definition{Name: "Sel"})
	require.Equal(t, []string{"player_1", "donald"}, n.Declare(context.Background()).Sections)

	require.NoError(t, os.WriteFile(path, []byte("[zeta]\na = 1\n"), 0o600))

	assert.Equal(t, []string{"zeta"}, n.Declare(context.Background()).Sections)
}

func TestNode_Invoke(t *testing.T) {
	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 4, Definition{Name: "Sel", RecordOutput: true})

	out := n.Invoke(context.Background(), models.Invocation{Section: "donald", ShowInfo: boolPtr(false)})

	assert.JSONEq(t, `{"leao": "rei", "software": "go"}`, out.Record)
	assert.Equal(t, []any{out.Record, "rei", "go", nil, nil}, out.Tuple())
}

func TestNode_Invoke_UnknownSection(t *testing.T) {
	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 2, Definition{Name: "Sel", RecordOutput: true})

	out := n.Invoke(context.Background(), models.Invocation{Section: "Unknown", Reload: true})

	assert.Equal(t, "{}", out.Record)
	assert.Equal(t, []any{"{}", nil, nil}, out.Tuple())
}

func TestNode_Invoke_WithoutRecordOutput(t *testing.T) {
	n := newDynamicNode(t, store.NewStaticSource("static", store.DefaultProfiles()), 2, Definition{Name: "Sel"})

	out := n.Invoke(context.Background(), models.Invocation{Section: "VixMavis"})

	assert.Len(t, out.Tuple(), 2)
}

func TestNode_Invoke_PublishesSchemaUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher(ctrl)
	session := resolver.NewSession(store.NewMemoryNodeCache())

	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 4, Definition{Name: "Ultra", RecordOutput: true}, WithSchemaPush(pub, session))

	var got models.SchemaUpdate
	pub.EXPECT().Publish(gomock.Any()).Do(func(u models.SchemaUpdate) { got = u }).Times(1)

	n.Invoke(context.Background(), models.Invocation{Section: "player_1", NodeID: "42"})

	assert.Equal(t, "42", got.NodeID)
	assert.Equal(t, "player_1", got.Section)
	assert.Equal(t, []string{"numero", "jujuba", "animal"}, got.Keys)
	assert.Equal(t, []models.SlotType{models.SlotInt, models.SlotString, models.SlotString}, got.Types)

	entry, ok := session.Lookup(context.Background(), "42")
	require.True(t, ok)
	assert.Equal(t, "player_1", entry.Section)
	assert.Equal(t, []string{"numero", "jujuba", "animal"}, entry.Keys())
}

func TestNode_Invoke_NoPublishWithoutNodeIDOrSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any()).Times(0)
	cache := store.NewMemoryNodeCache()
	session := resolver.NewSession(cache)

	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 4, Definition{Name: "Ultra"}, WithSchemaPush(pub, session))

	n.Invoke(context.Background(), models.Invocation{Section: "player_1"})
	n.Invoke(context.Background(), models.Invocation{Section: "missing", NodeID: "9"})

	_, err := cache.Get(context.Background(), "9")
	assert.ErrorIs(t, err, store.ErrNodeCacheEntryNotFound)
}

func TestNode_Invoke_CacheSaveFailureKeepsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any()).Times(1)
	cache := mock.NewMockNodeCacheRepository(ctrl)
	cache.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())
	n := newDynamicNode(t, loader, 2, Definition{Name: "Ultra"}, WithSchemaPush(pub, resolver.NewSession(cache)))

	out := n.Invoke(context.Background(), models.Invocation{Section: "donald", NodeID: "3"})
	assert.Equal(t, []any{"rei", "go"}, out.Outputs.Interfaces())
}

func TestNode_IsChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockSourceLoader(ctrl)
	loader.EXPECT().Version(gomock.Any()).Return("1700", true)
	loader.EXPECT().Version(gomock.Any()).Return("", false)

	n := newDynamicNode(t, loader, 1, Definition{Name: "Sel"})

	assert.Equal(t, "1700_donald", n.IsChanged(context.Background(), "donald"))
	assert.Equal(t, resolver.NoSourceToken, n.IsChanged(context.Background(), "donald"))
}

func TestNode_ReturnNames_Strategies(t *testing.T) {
	loader := store.NewTOMLFileSource(writeTOML(t, playersTOML), logger.Nop())

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{name: "default", want: []string{"output_1", "output_2", "output_3", "output_4"}},
		{name: "static prefix", opts: []Option{WithStaticNames("out_", 0)}, want: []string{"out_0", "out_1", "out_2", "out_3"}},
		{name: "first section keys", opts: []Option{WithNames(FirstSectionKeys())}, want: []string{"numero", "jujuba", "animal", "output_4"}},
		{name: "unique keys", opts: []Option{WithNames(UniqueKeys())}, want: []string{"numero", "jujuba", "animal", "leao"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newDynamicNode(t, loader, 4, Definition{Name: "Sel"}, tt.opts...)
			assert.Equal(t, tt.want, n.ReturnNames(context.Background()))
		})
	}
}

func TestUniqueKeysPadded(t *testing.T) {
	src := models.NewSource(
		models.Section{Name: "a", Record: models.NewRecord(models.Field{Key: "x", Value: models.IntValue(1)})},
		models.Section{Name: "b", Record: models.NewRecord(
			models.Field{Key: "x", Value: models.IntValue(2)},
			models.Field{Key: "y", Value: models.IntValue(3)},
		)},
	)

	assert.Equal(t, []string{"x", "y", "value_3", "value_4"}, UniqueKeysPadded("value_")(src, true, 4))
	assert.Equal(t, []string{"x"}, UniqueKeysPadded("value_")(src, true, 1))
	assert.Equal(t, []string{"value_1", "value_2"}, UniqueKeysPadded("pad_")(models.Source{}, false, 2))
}
