// File: traversal.go
// Role: Directional walks over a single-genome projection, reconstructing
// block orders and fragment orders per chromosome.
// Invariants:
//   - Start vertices are consumed in sorted name order; every block vertex
//     belongs to exactly one reconstructed chromosome.
//   - Ambiguous continuations follow the lowest-ID incident edge.
//   - A forward/reverse topology disagreement aborts the whole call.

package traversal

import (
	"fmt"

	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/vertex"
)

// BlocksOrder reconstructs every chromosome of the named genome as an
// oriented block sequence. Chromosomes appear in order of their
// first-visited vertex name.
func BlocksOrder(g *core.BreakpointGraph, genome string) ([]Fragment, error) {
	chs, err := walkGenome(g, genome)
	if err != nil {
		return nil, err
	}
	out := make([]Fragment, len(chs))
	for i, c := range chs {
		out[i] = Fragment{Topology: c.topology, Blocks: c.blocks}
	}
	return out, nil
}

// FragmentsOrders reconstructs every chromosome of the named genome as an
// oriented assembly-fragment sequence, read off the fragment records of the
// traversed edges. Consecutive repeats of the same oriented fragment
// collapse into one occurrence; on a circular chromosome a wraparound
// repeat between the last and first occurrence collapses as well.
func FragmentsOrders(g *core.BreakpointGraph, genome string) ([]FragmentOrder, error) {
	chs, err := walkGenome(g, genome)
	if err != nil {
		return nil, err
	}
	out := make([]FragmentOrder, len(chs))
	for i, c := range chs {
		frs := orientedFragments(c.steps)
		if c.topology == Circular && len(frs) > 1 && frs[0] == frs[len(frs)-1] {
			frs = frs[:len(frs)-1]
		}
		out[i] = FragmentOrder{Topology: c.topology, Fragments: frs}
	}
	return out, nil
}

// step is one traversed adjacency in walk direction.
type step struct {
	edge     *core.BGEdge
	from, to string
}

// chromosome is one fully merged walk result.
type chromosome struct {
	topology Topology
	blocks   []Block
	steps    []step
}

type walker struct {
	proj    *core.BreakpointGraph
	visited map[string]struct{}
}

// walkGenome projects g onto the genome color and walks every chromosome.
func walkGenome(g *core.BreakpointGraph, genome string) ([]chromosome, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !hasColor(g, genome) {
		return nil, fmt.Errorf("%q: %w", genome, ErrGenomeNotFound)
	}
	w := &walker{
		proj:    g.GetGenomeGraph(genome),
		visited: make(map[string]struct{}),
	}

	var out []chromosome
	for _, v := range w.proj.Vertices() {
		bv, ok := v.(*vertex.BlockVertex)
		if !ok {
			continue
		}
		if _, seen := w.visited[bv.Name()]; seen {
			continue
		}
		ch, err := w.walkFrom(bv)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// walkFrom runs the forward and reverse walks from start and merges them.
// Both walks always run: each direction classifies the topology on its own
// and any disagreement is an error, never a silently picked answer.
func (w *walker) walkFrom(start *vertex.BlockVertex) (chromosome, error) {
	fwdBlocks, fwdSteps, fwdTop, err := w.forward(start)
	if err != nil {
		return chromosome{}, err
	}
	revBlocks, revSteps, revTop, err := w.reverse(start)
	if err != nil {
		return chromosome{}, err
	}
	if fwdTop != revTop {
		return chromosome{}, fmt.Errorf("start %s: %w", start.Name(), ErrTopologyConflict)
	}
	if fwdTop == Circular {
		return chromosome{topology: Circular, blocks: fwdBlocks, steps: fwdSteps}, nil
	}
	return chromosome{
		topology: Linear,
		blocks:   append(flipBlocks(revBlocks), fwdBlocks...),
		steps:    append(flipSteps(revSteps), fwdSteps...),
	}, nil
}

// forward walks rightwards: the start block is read first, continuation
// leaves through the start's mate.
func (w *walker) forward(start *vertex.BlockVertex) ([]Block, []step, Topology, error) {
	blocks := []Block{{Sign: enterSign(start), Name: start.BlockName()}}
	w.mark(start)
	var steps []step

	cur := start
	for {
		m, err := w.mate(cur)
		if err != nil {
			return nil, nil, 0, err
		}
		e, opp, err := w.next(m)
		if err != nil {
			return nil, nil, 0, err
		}
		steps = append(steps, step{edge: e, from: m.Name(), to: opp.Name()})
		if opp.IsInfinity() {
			return blocks, steps, Linear, nil
		}
		if opp.Name() == start.Name() {
			return blocks, steps, Circular, nil
		}
		bv, ok := opp.(*vertex.BlockVertex)
		if !ok {
			return nil, nil, 0, fmt.Errorf("at %s: %w", opp.Name(), ErrBrokenFragment)
		}
		blocks = append(blocks, Block{Sign: enterSign(bv), Name: bv.BlockName()})
		w.mark(bv)
		cur = bv
	}
}

// reverse walks leftwards: continuation leaves through the start vertex
// itself and signs are recorded as seen, to be flipped on merge. Reaching
// the start's mate closes a cycle.
func (w *walker) reverse(start *vertex.BlockVertex) ([]Block, []step, Topology, error) {
	var (
		blocks []Block
		steps  []step
	)

	cur := vertex.Vertex(start)
	for {
		e, opp, err := w.next(cur)
		if err != nil {
			return nil, nil, 0, err
		}
		steps = append(steps, step{edge: e, from: cur.Name(), to: opp.Name()})
		if opp.IsInfinity() {
			return blocks, steps, Linear, nil
		}
		if opp.Name() == start.MateName() {
			return blocks, steps, Circular, nil
		}
		bv, ok := opp.(*vertex.BlockVertex)
		if !ok {
			return nil, nil, 0, fmt.Errorf("at %s: %w", opp.Name(), ErrBrokenFragment)
		}
		blocks = append(blocks, Block{Sign: enterSign(bv), Name: bv.BlockName()})
		w.mark(bv)
		cur, err = w.mate(bv)
		if err != nil {
			return nil, nil, 0, err
		}
	}
}

// next follows the lowest-ID edge incident to from and returns it together
// with the opposite endpoint.
func (w *walker) next(from vertex.Vertex) (*core.BGEdge, vertex.Vertex, error) {
	edges := w.proj.EdgesByVertex(from)
	if len(edges) == 0 {
		return nil, nil, fmt.Errorf("at %s: %w", from.Name(), ErrBrokenFragment)
	}
	e := edges[0]
	if e.Vertex1.Name() == from.Name() {
		return e, e.Vertex2, nil
	}
	return e, e.Vertex1, nil
}

// mate resolves the in-projection instance of v's mate extremity.
func (w *walker) mate(v *vertex.BlockVertex) (vertex.Vertex, error) {
	if stored := w.proj.GetVertexByName(v.MateName()); stored != nil {
		return stored, nil
	}
	return nil, fmt.Errorf("mate %s: %w", v.MateName(), ErrBrokenFragment)
}

func (w *walker) mark(v *vertex.BlockVertex) {
	w.visited[v.Name()] = struct{}{}
	w.visited[v.MateName()] = struct{}{}
}

// enterSign derives the reading orientation from the entered extremity: a
// block entered at its tail is read forward.
func enterSign(v *vertex.BlockVertex) Sign {
	if v.IsTail() {
		return Forward
	}
	return Reverse
}

// flipBlocks reverses the raw leftwards reading into final reading order.
func flipBlocks(raw []Block) []Block {
	out := make([]Block, len(raw))
	for i, b := range raw {
		out[len(raw)-1-i] = Block{Sign: b.Sign.Flip(), Name: b.Name}
	}
	return out
}

// flipSteps reverses the raw leftwards steps into final reading order,
// swapping the direction of each step.
func flipSteps(raw []step) []step {
	out := make([]step, len(raw))
	for i, s := range raw {
		out[len(raw)-1-i] = step{edge: s.edge, from: s.to, to: s.from}
	}
	return out
}

// orientedFragments maps traversed steps to oriented fragment occurrences.
// A fragment record carrying a forward-orientation vertex pair yields '+'
// when the walk direction matches it and '-' when opposite; records without
// orientation (including multi-name fusion records) default to '+'.
func orientedFragments(steps []step) []OrientedFragment {
	var out []OrientedFragment
	for _, s := range steps {
		names := core.FragmentNames(s.edge)
		for _, name := range names {
			sign := Forward
			if pair, ok := core.FragmentOrientation(s.edge); ok && len(names) == 1 {
				if pair == [2]string{s.to, s.from} {
					sign = Reverse
				}
			}
			entry := OrientedFragment{Sign: sign, Name: name}
			if n := len(out); n > 0 && out[n-1] == entry {
				continue
			}
			out = append(out, entry)
		}
	}
	return out
}

func hasColor(g *core.BreakpointGraph, color string) bool {
	for _, c := range g.GetOverallSetOfColors() {
		if c == color {
			return true
		}
	}
	return false
}
