package graph

// frame is one entry of an explicit depth-first work list: the vertex being
// expanded and the index of the next neighbor to look at.
type frame[T comparable] struct {
	vertex T
	next   int
	// parent is the vertex this one was reached from; only meaningful
	// when hasParent is set. Used by the undirected cycle check.
	parent    T
	hasParent bool
}

// DepthFirstSearch returns the vertices reachable from start in depth-first
// visitation order, expanding neighbors in the order their edges were added.
// The start vertex is always visited, even when the graph does not hold it.
func (g *Graph[T]) DepthFirstSearch(start T) []T {
	visited := map[T]bool{start: true}
	result := []T{start}
	work := []frame[T]{{vertex: start}}

	for len(work) > 0 {
		top := &work[len(work)-1]
		neighbors := g.adjacency[top.vertex]
		if top.next >= len(neighbors) {
			work = work[:len(work)-1]
			continue
		}
		n := neighbors[top.next]
		top.next++
		if visited[n] {
			continue
		}
		visited[n] = true
		result = append(result, n)
		work = append(work, frame[T]{vertex: n})
	}
	return result
}

// BreadthFirstSearch returns the vertices reachable from start in
// breadth-first order. Each vertex appears once. The start vertex is always
// visited, even when the graph does not hold it.
func (g *Graph[T]) BreadthFirstSearch(start T) []T {
	visited := map[T]bool{start: true}
	queue := []T{start}
	var result []T

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		result = append(result, cur)
		for _, n := range g.adjacency[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return result
}

// HasCycle reports whether the graph contains a cycle. Directed graphs look
// for a back-edge to a vertex still on the active search path. Undirected
// graphs look for an already-visited neighbor other than the vertex the
// search arrived from; that exception covers the mirrored edge only, so a
// parallel edge between two vertices still counts as a cycle.
func (g *Graph[T]) HasCycle() bool {
	visited := make(map[T]bool, len(g.adjacency))
	for _, v := range g.order {
		if visited[v] {
			continue
		}
		var found bool
		if g.directed {
			found = g.directedCycleFrom(v, visited)
		} else {
			found = g.undirectedCycleFrom(v, visited)
		}
		if found {
			return true
		}
	}
	return false
}

func (g *Graph[T]) directedCycleFrom(start T, visited map[T]bool) bool {
	onStack := map[T]bool{start: true}
	visited[start] = true
	work := []frame[T]{{vertex: start}}

	for len(work) > 0 {
		top := &work[len(work)-1]
		neighbors := g.adjacency[top.vertex]
		if top.next >= len(neighbors) {
			delete(onStack, top.vertex)
			work = work[:len(work)-1]
			continue
		}
		n := neighbors[top.next]
		top.next++
		switch {
		case !visited[n]:
			visited[n] = true
			onStack[n] = true
			work = append(work, frame[T]{vertex: n})
		case onStack[n]:
			return true
		}
	}
	return false
}

func (g *Graph[T]) undirectedCycleFrom(start T, visited map[T]bool) bool {
	visited[start] = true
	work := []frame[T]{{vertex: start}}

	for len(work) > 0 {
		top := &work[len(work)-1]
		neighbors := g.adjacency[top.vertex]
		if top.next >= len(neighbors) {
			work = work[:len(work)-1]
			continue
		}
		n := neighbors[top.next]
		top.next++
		switch {
		case !visited[n]:
			visited[n] = true
			work = append(work, frame[T]{vertex: n, parent: top.vertex, hasParent: true})
		case !top.hasParent || n != top.parent:
			return true
		}
	}
	return false
}
