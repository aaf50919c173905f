package node

import (
	"fmt"
	"slices"
)

// Registry maps node type names to nodes, keeping registration order.
type Registry struct {
	order []string
	nodes map[string]*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Register adds n. Names must be unique.
func (r *Registry) Register(n *Node) error {
	if _, ok := r.nodes[n.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.Name())
	}
	r.order = append(r.order, n.Name())
	r.nodes[n.Name()] = n
	return nil
}

// Get returns the node registered under name.
func (r *Registry) Get(name string) (*Node, bool) {
	n, ok := r.nodes[name]
	return n, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Nodes returns the registered nodes in registration order.
func (r *Registry) Nodes() []*Node {
	out := make([]*Node, len(r.order))
	for i, name := range r.order {
		out[i] = r.nodes[name]
	}
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int { return len(r.order) }
