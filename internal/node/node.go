// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package node

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/resolver"
	"github.com/MKhiriev/go-toml-selector/models"
)

// Definition is the static part of a node declaration.
type Definition struct {
	Name        string
	DisplayName string
	Category    string

	// RecordOutput prepends the serialized record to the outputs.
	RecordOutput bool

	// RecordType tags the record output. Empty means models.SlotJSON.
	RecordType models.SlotType

	// RecordName names the record output. Empty means RecordOutputName.
	RecordName string

	OptionalInputs []models.OptionalInput
	OutputNode     bool
}

// Node is one selector node type.
type Node struct {
	def      Definition
	resolver *resolver.Resolver

	prefix string
	first  int
	names  NameFunc

	publisher events.Publisher
	session   *resolver.Session

	logger *logger.Logger
}

// Option configures a Node.
type Option func(*Node)

// WithStaticNames names slots prefix+first, prefix+(first+1), ...
// The default is output_1 ... output_N.
func WithStaticNames(prefix string, first int) Option {
	return func(n *Node) {
		n.prefix = prefix
		n.first = first
		n.names = nil
	}
}

// WithNames derives slot names from the source on every declaration.
func WithNames(fn NameFunc) Option {
	return func(n *Node) {
		n.names = fn
	}
}

// WithSchemaPush makes invocations that carry a node id remember the
// resolved section in session and publish a schema update. session may be
// nil.
func WithSchemaPush(pub events.Publisher, session *resolver.Session) Option {
	return func(n *Node) {
		n.publisher = pub
		n.session = session
	}
}

// New builds a node type.
func New(def Definition, r *resolver.Resolver, log *logger.Logger, opts ...Option) (*Node, error) {
	if r == nil {
		return nil, ErrNilResolver
	}
	if def.RecordOutput && def.RecordType == "" {
		def.RecordType = models.SlotJSON
	}
	if def.RecordOutput && def.RecordName == "" {
		def.RecordName = RecordOutputName
	}

	n := &Node{
		def:      def,
		resolver: r,
		prefix:   "output_",
		first:    1,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = &logger.Logger{Logger: log.With().Str("node", def.Name).Logger()}

	return n, nil
}

// Name returns the node type name.
func (n *Node) Name() string { return n.def.Name }

// Resolver returns the resolver behind the node.
func (n *Node) Resolver() *resolver.Resolver { return n.resolver }

// Arity returns the number of projection slots for the current source.
func (n *Node) Arity(ctx context.Context) int {
	return n.resolver.CurrentPolicy(ctx).Arity()
}

// ReturnTypes returns the output type tags, the record output first when
// the node has one.
func (n *Node) ReturnTypes(ctx context.Context) []models.SlotType {
	return n.returnTypes(n.resolver.CurrentPolicy(ctx))
}

// ReturnNames returns the output names aligned with ReturnTypes. Names that
// depend on the source are recomputed from a fresh load.
func (n *Node) ReturnNames(ctx context.Context) []string {
	return n.returnNames(ctx, n.Arity(ctx))
}

func (n *Node) returnTypes(p resolver.Policy) []models.SlotType {
	types := p.SlotTypes()
	if n.def.RecordOutput {
		types = slices.Insert(types, 0, n.def.RecordType)
	}
	return types
}

func (n *Node) returnNames(ctx context.Context, arity int) []string {
	var names []string
	if n.names == nil {
		names = sequence(n.prefix, n.first, arity)
	} else {
		src, ok := n.resolver.Source(ctx)
		names = n.names(src, ok, arity)
	}

	if n.def.RecordOutput {
		names = slices.Insert(names, 0, n.def.RecordName)
	}
	return names
}

// Declare returns the declaration the host shows: a fresh section list
// with its first entry as default, output types and names.
func (n *Node) Declare(ctx context.Context) models.NodeDeclaration {
	sections := n.resolver.ListSections(ctx)
	policy := n.resolver.CurrentPolicy(ctx)

	return models.NodeDeclaration{
		Name:           n.def.Name,
		DisplayName:    n.def.DisplayName,
		Category:       n.def.Category,
		Sections:       sections,
		DefaultSection: sections[0],
		RecordOutput:   n.def.RecordOutput,
		ReturnTypes:    n.returnTypes(policy),
		ReturnNames:    n.returnNames(ctx, policy.Arity()),
		OptionalInputs: slices.Clone(n.def.OptionalInputs),
		OutputNode:     n.def.OutputNode,
	}
}

// Invoke evaluates the node for one selection. The optional toggles only
// affect logging.
func (n *Node) Invoke(ctx context.Context, inv models.Invocation) models.NodeOutput {
	if inv.Reload {
		n.logger.Info().Str("section", inv.Section).Msg("reload requested")
	}

	res := n.resolver.Resolve(ctx, inv.Section, resolver.WithDiagnostics(inv.Diagnostics()))

	if n.publisher != nil && inv.NodeID != "" && res.Found {
		if n.session != nil {
			if err := n.session.Remember(ctx, inv.NodeID, res); err != nil {
				n.logger.Warn().Err(err).Str("node_id", inv.NodeID).Msg("node cache save failed")
			}
		}
		n.publisher.Publish(models.NewSchemaUpdate(inv.NodeID, inv.Section, res.Record))
	}

	out := res.Output()
	out.RecordOutput = n.def.RecordOutput
	return out
}

// IsChanged returns the change token the host caches invocations by.
func (n *Node) IsChanged(ctx context.Context, section string) string {
	return n.resolver.ChangeToken(ctx, section)
}
