// Package graph implements a directed graph with weighted edges over an
// arena-indexed node table, with breadth-first and depth-first traversal
// and Dijkstra shortest paths.
//
// Nodes are addressed by small integer ids. Internally every node lives in
// an internal/arena slot and edges refer to their targets by handle, so
// the node table owns all node storage and edge links carry no ownership.
package graph

import (
	"container/heap"
	"slices"

	"github.com/DarinM223/arenacache/deque"
	"github.com/DarinM223/arenacache/internal/arena"
	"github.com/DarinM223/arenacache/stack"
)

type edge struct {
	cost int
	to   arena.Handle
}

type node[T any] struct {
	id    int
	data  T
	edges []edge
}

// Graph is a directed graph whose nodes carry T payloads.
//
// Not safe for concurrent use.
type Graph[T any] struct {
	nodes  *arena.Arena[node[T]]
	ids    map[int]arena.Handle
	root   int
	nextID int
}

// New returns a graph containing a single root node (id 0) with the given
// payload.
func New[T any](rootData T) *Graph[T] {
	g := &Graph[T]{
		nodes:  arena.New[node[T]](0),
		ids:    make(map[int]arena.Handle),
		nextID: 1,
	}
	g.ids[0] = g.nodes.Alloc(node[T]{id: 0, data: rootData})
	return g
}

// AddNode inserts a node with the given payload and returns its id.
func (g *Graph[T]) AddNode(data T) int {
	id := g.nextID
	g.nextID++
	g.ids[id] = g.nodes.Alloc(node[T]{id: id, data: data})
	return id
}

// AddEdge adds a directed edge from -> to with the given cost.
// Unknown ids are ignored.
func (g *Graph[T]) AddEdge(from, to, cost int) {
	fh, okFrom := g.ids[from]
	th, okTo := g.ids[to]
	if !okFrom || !okTo {
		return
	}
	n := g.nodes.Get(fh)
	n.edges = append(n.edges, edge{cost: cost, to: th})
}

// Root returns the id traversals start from.
func (g *Graph[T]) Root() int { return g.root }

// SetRoot changes the traversal start node.
func (g *Graph[T]) SetRoot(id int) { g.root = id }

// Len returns the number of nodes.
func (g *Graph[T]) Len() int { return g.nodes.Len() }

// BFS visits every node reachable from the root in breadth-first order,
// following edges in insertion order.
func (g *Graph[T]) BFS(visit func(id int, data T)) {
	rh, ok := g.ids[g.root]
	if !ok {
		return
	}
	seen := map[int]bool{g.root: true}
	frontier := deque.New[arena.Handle]()
	frontier.PushBack(rh)

	for {
		h, ok := frontier.PopFront()
		if !ok {
			return
		}
		n := g.nodes.Get(h)
		visit(n.id, n.data)
		for _, e := range n.edges {
			to := g.nodes.Get(e.to)
			if !seen[to.id] {
				seen[to.id] = true
				frontier.PushBack(e.to)
			}
		}
	}
}

// DFS visits every node reachable from the root in depth-first order.
// Among a node's edges, the most recently added branch is explored first.
func (g *Graph[T]) DFS(visit func(id int, data T)) {
	rh, ok := g.ids[g.root]
	if !ok {
		return
	}
	seen := map[int]bool{g.root: true}
	var pending stack.Stack[arena.Handle]
	pending.Push(rh)

	for {
		h, ok := pending.Pop()
		if !ok {
			return
		}
		n := g.nodes.Get(h)
		visit(n.id, n.data)
		for _, e := range n.edges {
			to := g.nodes.Get(e.to)
			if !seen[to.id] {
				seen[to.id] = true
				pending.Push(e.to)
			}
		}
	}
}

// ShortestPath returns the cheapest path from start to end as an ordered
// sequence of node ids, both endpoints included. It returns an empty
// sequence when end is unreachable from start or either id is unknown.
// Edge costs must be non-negative (Dijkstra).
func (g *Graph[T]) ShortestPath(start, end int) []int {
	if _, ok := g.ids[start]; !ok {
		return nil
	}
	if _, ok := g.ids[end]; !ok {
		return nil
	}

	dist := map[int]int{start: 0}
	prev := make(map[int]int)

	pq := &costHeap{{id: start, cost: 0}}
	for pq.Len() > 0 {
		st := heap.Pop(pq).(costed)
		if st.cost > dist[st.id] {
			continue // a cheaper route to st.id was already settled
		}
		n := g.nodes.Get(g.ids[st.id])
		for _, e := range n.edges {
			to := g.nodes.Get(e.to).id
			alt := st.cost + e.cost
			if cur, ok := dist[to]; !ok || alt < cur {
				dist[to] = alt
				prev[to] = st.id
				heap.Push(pq, costed{id: to, cost: alt})
			}
		}
	}

	if start != end {
		if _, ok := prev[end]; !ok {
			return nil
		}
	}

	path := []int{end}
	for cur := end; cur != start; cur = prev[cur] {
		path = append(path, prev[cur])
	}
	slices.Reverse(path)
	return path
}

// costed is a (node id, accumulated cost) pair in the priority queue.
type costed struct {
	id   int
	cost int
}

// costHeap is a min-heap of costed states ordered by cost.
type costHeap []costed

func (h costHeap) Len() int           { return len(h) }
func (h costHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x any)        { *h = append(*h, x.(costed)) }
func (h *costHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
