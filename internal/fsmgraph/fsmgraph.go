// Package fsmgraph turns the five-state task lifecycle into an
// executable graph instead of prose, using
// gonum.org/v1/gonum/graph/multi and graph/topo the way a dependency
// grapher would use them for a build order, repurposed here for a state
// machine: the FSM graph is built once from the fixed set of licensed
// transitions, and
// - Validate checks a recorded sequence of actual transitions against
//   that fixed edge set, turning the lifecycle table into a
//   runtime-checkable invariant;
// - Cycles reports every simple cycle graph/topo can find in the FSM,
//   which a caller uses to see the ways the graph is cyclic
//   (Runnable/Running oscillation, the Running->Sleeping->Runnable wait
//   loop, and the full birth-to-retirement loop).
package fsmgraph

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

// State names a lifecycle state by its label.
type State string

const (
	Unused   State = "unused"
	Runnable State = "runnable"
	Running  State = "running"
	Sleeping State = "sleeping"
	Zombie   State = "zombie"
)

// Transition is one observed or licensed state change.
type Transition struct {
	From State
	To   State
}

// stateNode adapts a State into a graph.Node: an fnv hash of the label
// gives a stable int64 ID without a separate counter to keep in sync.
type stateNode struct {
	state State
	id    int64
}

func (n *stateNode) ID() int64 { return n.id }

func nodeFor(s State) *stateNode {
	h := fnv.New64()
	h.Write([]byte(s))
	return &stateNode{state: s, id: int64(h.Sum64())}
}

// licensedEdges is the lifecycle graph's edge set.
var licensedEdges = []Transition{
	{Unused, Runnable},
	{Runnable, Running},
	{Running, Runnable},
	{Running, Sleeping},
	{Sleeping, Runnable},
	{Running, Zombie},
	{Zombie, Unused},
}

// Graph builds the fixed lifecycle FSM as a multi.DirectedGraph, one
// node per State and one line per entry in licensedEdges.
func Graph() (*multi.DirectedGraph, map[State]*stateNode) {
	g := multi.NewDirectedGraph()
	nodes := map[State]*stateNode{}
	for _, s := range []State{Unused, Runnable, Running, Sleeping, Zombie} {
		nodes[s] = nodeFor(s)
	}
	for _, e := range licensedEdges {
		g.SetLine(g.NewLine(nodes[e.From], nodes[e.To]))
	}
	return g, nodes
}

// Validate reports an error naming the first transition in observed
// that is not a member of the licensed edge set. A caller
// passes the sequence of transitions recorded for one task's entire
// life, from its first Unused->Runnable to its last Zombie->Unused.
//
// This is plain edge-set membership, not a graph traversal: the FSM
// graph itself is a small fixed cyclic structure (Runnable and Running
// each reach the other, and the whole table of states forms one large
// cycle through a task's repeated reuse of a slot), so asking whether
// an observed sequence is "topologically sortable" would reject every
// real scenario. Cycles below is where graph/topo's cycle-finding
// earns its keep instead.
func Validate(observed []Transition) error {
	allowed := map[Transition]bool{}
	for _, e := range licensedEdges {
		allowed[e] = true
	}
	for _, tr := range observed {
		if !allowed[tr] {
			return fmt.Errorf("fsmgraph: illegal transition %s -> %s", tr.From, tr.To)
		}
	}
	return nil
}

// Cycles returns every simple cycle in the licensed lifecycle graph, as
// slices of State in the order graph/topo's Tarjan-based search visited
// them. loomdemo validate prints them, and this package's own test
// checks that at least one exists. The licensed edge set has three: the
// Runnable<->Running 2-cycle, the Running->Sleeping->Runnable wait loop,
// and the loop that carries a retired slot back through Zombie and
// Unused into reuse.
func Cycles() [][]State {
	g, _ := Graph()
	cycles := topo.DirectedCyclesIn(g)

	out := make([][]State, len(cycles))
	for i, cycle := range cycles {
		labels := make([]State, len(cycle))
		for j, n := range cycle {
			labels[j] = n.(*stateNode).state
		}
		out[i] = labels
	}
	return out
}

// StatesObserved returns the distinct states present as either endpoint
// of a transition in observed, in no particular order. loomdemo's
// validate subcommand uses this to report which of the five states a
// scenario actually exercised.
func StatesObserved(observed []Transition) []State {
	set := map[State]struct{}{}
	for _, tr := range observed {
		set[tr.From] = struct{}{}
		set[tr.To] = struct{}{}
	}
	return maps.Keys(set)
}

var _ graph.Node = (*stateNode)(nil)
