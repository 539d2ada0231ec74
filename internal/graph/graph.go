// Package graph provides an adjacency-list graph that is either directed or
// undirected. Neighbor lists keep insertion order and may hold duplicates,
// so self-loops and parallel edges are recorded and counted. Traversals and
// cycle detection use explicit work lists rather than recursion.
package graph

import "slices"

// Graph maps each vertex to the ordered list of its neighbors. The zero
// value is not usable; construct one with New. A Graph is not safe for
// concurrent mutation.
type Graph[T comparable] struct {
	directed bool
	// adjacency maps vertex → neighbors in the order edges were added.
	adjacency map[T][]T
	// order records vertices in the order they were first added.
	order []T
}

// New creates an empty graph. The directed flag is fixed for the graph's
// lifetime.
func New[T comparable](directed bool) *Graph[T] {
	return &Graph[T]{
		directed:  directed,
		adjacency: make(map[T][]T),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[T]) Directed() bool {
	return g.directed
}

// AddVertex adds v with no neighbors. Adding an existing vertex is a no-op.
func (g *Graph[T]) AddVertex(v T) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	g.order = append(g.order, v)
}

// AddEdge records an edge from a to b, creating either vertex if needed.
// Undirected graphs also record the mirror edge from b to a.
func (g *Graph[T]) AddEdge(a, b T) {
	g.AddVertex(a)
	g.AddVertex(b)
	g.adjacency[a] = append(g.adjacency[a], b)
	if !g.directed {
		g.adjacency[b] = append(g.adjacency[b], a)
	}
}

// RemoveEdge removes one occurrence of the edge from a to b (and its mirror
// in an undirected graph). Removing an edge that does not exist is a no-op.
func (g *Graph[T]) RemoveEdge(a, b T) {
	g.removeOne(a, b)
	if !g.directed {
		g.removeOne(b, a)
	}
}

func (g *Graph[T]) removeOne(from, to T) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		return
	}
	if i := slices.Index(neighbors, to); i >= 0 {
		g.adjacency[from] = slices.Delete(neighbors, i, i+1)
	}
}

// RemoveVertex deletes v and strips every edge pointing at it. Removing an
// unknown vertex is a no-op.
func (g *Graph[T]) RemoveVertex(v T) {
	if _, ok := g.adjacency[v]; !ok {
		return
	}
	delete(g.adjacency, v)
	for u, neighbors := range g.adjacency {
		g.adjacency[u] = slices.DeleteFunc(neighbors, func(n T) bool { return n == v })
	}
	if i := slices.Index(g.order, v); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}
}

// Neighbors returns a copy of v's neighbor list, or an empty slice when v
// is unknown.
func (g *Graph[T]) Neighbors(v T) []T {
	return slices.Clone(g.adjacency[v])
}

// HasEdge reports whether b appears in a's neighbor list.
func (g *Graph[T]) HasEdge(a, b T) bool {
	return slices.Contains(g.adjacency[a], b)
}

// HasVertex reports whether v is in the graph.
func (g *Graph[T]) HasVertex(v T) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Vertices returns every vertex in the order it was first added.
func (g *Graph[T]) Vertices() []T {
	return slices.Clone(g.order)
}

// VertexCount returns the number of vertices.
func (g *Graph[T]) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of edges. Each undirected edge is stored
// twice and counted once.
func (g *Graph[T]) EdgeCount() int {
	count := 0
	for _, neighbors := range g.adjacency {
		count += len(neighbors)
	}
	if g.directed {
		return count
	}
	return count / 2
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[T]) IsEmpty() bool {
	return len(g.adjacency) == 0
}
