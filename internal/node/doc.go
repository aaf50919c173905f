// Package node describes the selector node types a host discovers and
// invokes. Each [Node] pairs a static declaration (category, output types,
// return names, optional inputs) with a resolver; the [Registry] keeps the
// node types in registration order, the way the host lists them.
package node
