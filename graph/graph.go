// Package graph provides incremental graph representations built as thin
// consumers of the trie's set and map views: a graph as a named edge list,
// and a graph as a finite map from node to outgoing adjacency list. Both
// are persistent and carry an explicit engine for memoized reductions.
//
// Callers name each edge they add; distinct edges should carry distinct
// names, since those identities key the cells installed by the fold-based
// reductions.
package graph

import (
	"encoding/binary"

	"github.com/twmb/murmur3"

	"github.com/go-nominal/nomtrie/dict"
	"github.com/go-nominal/nomtrie/engine"
	"github.com/go-nominal/nomtrie/set"
	"github.com/go-nominal/nomtrie/trie"
)

// Edge is a directed edge between two node ids.
type Edge[N trie.Key[N]] struct {
	Src N
	Dst N
}

// Hash64 implements trie.Key.
func (e Edge[N]) Hash64() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], e.Src.Hash64())
	binary.LittleEndian.PutUint64(buf[8:], e.Dst.Hash64())
	return murmur3.SeedSum64(trie.PlacementSeed, buf[:])
}

// Equals implements trie.Key.
func (e Edge[N]) Equals(o Edge[N]) bool {
	return e.Src.Equals(o.Src) && e.Dst.Equals(o.Dst)
}

type namedEdge[N trie.Key[N]] struct {
	nm   engine.Name
	edge Edge[N]
}

// Graph represents a graph as a list of named edges.
type Graph[N trie.Key[N]] struct {
	eng   *engine.Engine
	edges []namedEdge[N]
}

// New returns an empty edge-list graph bound to eng.
func New[N trie.Key[N]](eng *engine.Engine) Graph[N] {
	return Graph[N]{eng: eng}
}

// AddEdge returns g with the edge (src, dst) added under identity nm.
func (g Graph[N]) AddEdge(nm engine.Name, src, dst N) Graph[N] {
	edges := make([]namedEdge[N], len(g.edges), len(g.edges)+1)
	copy(edges, g.edges)
	edges = append(edges, namedEdge[N]{nm: nm, edge: Edge[N]{Src: src, Dst: dst}})
	return Graph[N]{eng: g.eng, edges: edges}
}

// Edges returns the set of edges, each added under the identity it was
// inserted with.
func (g Graph[N]) Edges() set.Set[Edge[N]] {
	s := set.New[Edge[N]]()
	for _, ne := range g.edges {
		s = s.AddNamed(ne.nm, ne.edge)
	}
	return s
}

// Vertices returns the set of nodes that occur in any edge.
func (g Graph[N]) Vertices() set.Set[N] {
	s := set.New[N]()
	for _, ne := range g.edges {
		s = s.Add(ne.edge.Src)
		s = s.Add(ne.edge.Dst)
	}
	return s
}

// ReverseEdges returns a graph whose edges are the reversed edges of g.
func (g Graph[N]) ReverseEdges() Graph[N] {
	rev := New[N](g.eng)
	for _, ne := range g.edges {
		rev = rev.AddEdge(engine.Pair(ne.nm, engine.OfString("rev")), ne.edge.Dst, ne.edge.Src)
	}
	return rev
}

// AdjacencyGraph represents a graph as a finite map from node ids to their
// outgoing adjacency lists.
type AdjacencyGraph[N trie.Key[N]] struct {
	eng *engine.Engine
	adj dict.Dict[N, []N]
}

// NewAdjacency returns an empty adjacency graph bound to eng.
func NewAdjacency[N trie.Key[N]](eng *engine.Engine) AdjacencyGraph[N] {
	return AdjacencyGraph[N]{eng: eng, adj: dict.New[N, []N]()}
}

// AddEdge returns g with dst appended to src's adjacency list, rebinding
// src under identity nm.
func (g AdjacencyGraph[N]) AddEdge(nm engine.Name, src, dst N) AdjacencyGraph[N] {
	prev, _ := g.adj.Get(src)
	next := make([]N, len(prev), len(prev)+1)
	copy(next, prev)
	next = append(next, dst)
	return AdjacencyGraph[N]{eng: g.eng, adj: g.adj.Extend(nm, src, next)}
}

// Edges returns the set of edges. The reduction runs left to right over the
// adjacency map and installs a named cell at every Name boundary, so a
// nominal engine can reuse the partial sets of unchanged subtrees.
func (g AdjacencyGraph[N]) Edges() set.Set[Edge[N]] {
	return engine.Ns(g.eng, engine.OfString("edges"), func() set.Set[Edge[N]] {
		return trie.FoldSeq(g.adj.Trie(), set.New[Edge[N]](),
			func(e trie.Entry[N, []N], s set.Set[Edge[N]]) set.Set[Edge[N]] {
				for _, dst := range e.Cod {
					s = s.Add(Edge[N]{Src: e.Dom, Dst: dst})
				}
				return s
			},
			func(s set.Set[Edge[N]]) set.Set[Edge[N]] { return s },
			func(nm engine.Name, s set.Set[Edge[N]]) set.Set[Edge[N]] {
				return set.FromTrie(trie.Name(nm, trie.Art(engine.Cell(g.eng, nm, s.Trie()))))
			})
	})
}

// Vertices returns the set of nodes that occur as a source or destination.
func (g AdjacencyGraph[N]) Vertices() set.Set[N] {
	return engine.Ns(g.eng, engine.OfString("vertices"), func() set.Set[N] {
		return trie.FoldSeq(g.adj.Trie(), set.New[N](),
			func(e trie.Entry[N, []N], s set.Set[N]) set.Set[N] {
				s = s.Add(e.Dom)
				for _, dst := range e.Cod {
					s = s.Add(dst)
				}
				return s
			},
			func(s set.Set[N]) set.Set[N] { return s },
			func(nm engine.Name, s set.Set[N]) set.Set[N] {
				return set.FromTrie(trie.Name(nm, trie.Art(engine.Cell(g.eng, nm, s.Trie()))))
			})
	})
}

// ReverseEdges returns a graph whose edges are the reversed edges of g.
func (g AdjacencyGraph[N]) ReverseEdges() AdjacencyGraph[N] {
	rev := NewAdjacency[N](g.eng)
	i := uint64(0)
	return set.Fold(g.Edges(), rev, func(e Edge[N], acc AdjacencyGraph[N]) AdjacencyGraph[N] {
		nm := engine.Pair(engine.OfString("rev"), engine.OfUint64(i))
		i++
		return acc.AddEdge(nm, e.Dst, e.Src)
	})
}

// AdjacencyOfEdgeList converts an edge-list graph to an adjacency graph,
// reusing each edge's identity.
func AdjacencyOfEdgeList[N trie.Key[N]](g Graph[N]) AdjacencyGraph[N] {
	ag := NewAdjacency[N](g.eng)
	for _, ne := range g.edges {
		ag = ag.AddEdge(ne.nm, ne.edge.Src, ne.edge.Dst)
	}
	return ag
}

// EdgeListOfAdjacency converts an adjacency graph to an edge-list graph.
// Output edges are re-tagged with the identity of the adjacency subtree
// they came from, threaded to the leaves by the name-aware fold.
func EdgeListOfAdjacency[N trie.Key[N]](ag AdjacencyGraph[N]) Graph[N] {
	i := uint64(0)
	return trie.FoldSeqNm(ag.adj.Trie(), nil, New[N](ag.eng),
		func(nm *engine.Name, e trie.Entry[N, []N], acc Graph[N]) Graph[N] {
			base := engine.Unit()
			if nm != nil {
				base = *nm
			}
			for _, dst := range e.Cod {
				acc = acc.AddEdge(engine.Pair(base, engine.OfUint64(i)), e.Dom, dst)
				i++
			}
			return acc
		},
		func(acc Graph[N]) Graph[N] { return acc },
		func(acc Graph[N]) Graph[N] { return acc })
}
