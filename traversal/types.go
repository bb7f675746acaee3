// File: types.go
// Role: Result types and error definitions for genome traversal.

package traversal

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("traversal: graph is nil")

	// ErrGenomeNotFound is returned when the requested genome color does
	// not appear on any edge of the graph.
	ErrGenomeNotFound = errors.New("traversal: genome color not present in graph")

	// ErrTopologyConflict is returned when the forward and reverse walks
	// from the same start vertex disagree on chromosome topology.
	ErrTopologyConflict = errors.New("traversal: forward and reverse walks disagree on topology")

	// ErrBrokenFragment is returned when a walk reaches a block extremity
	// with no continuation: no incident edge in the genome projection and
	// no infinity edge marking an open end.
	ErrBrokenFragment = errors.New("traversal: walk reached an extremity with no continuation")
)

// Sign is the reading orientation of a block or fragment occurrence.
type Sign byte

const (
	// Forward marks a block read tail-to-head.
	Forward Sign = '+'
	// Reverse marks a block read head-to-tail.
	Reverse Sign = '-'
)

// Flip returns the opposite orientation.
func (s Sign) Flip() Sign {
	if s == Forward {
		return Reverse
	}
	return Forward
}

// Topology classifies a reconstructed chromosome.
type Topology int

const (
	// Linear chromosomes terminate in infinity vertices on both ends.
	Linear Topology = iota
	// Circular chromosomes close back onto their first block.
	Circular
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Block is one oriented block occurrence in a reconstructed chromosome.
type Block struct {
	Sign Sign
	Name string
}

// String renders the occurrence as "+name" or "-name".
func (b Block) String() string {
	return fmt.Sprintf("%c%s", b.Sign, b.Name)
}

// Fragment is one reconstructed chromosome of a genome: its topology and
// the ordered, oriented blocks spanning it.
type Fragment struct {
	Topology Topology
	Blocks   []Block
}

// OrientedFragment is one assembly-fragment occurrence along a chromosome.
type OrientedFragment struct {
	Sign Sign
	Name string
}

// String renders the occurrence as "+name" or "-name".
func (f OrientedFragment) String() string {
	return fmt.Sprintf("%c%s", f.Sign, f.Name)
}

// FragmentOrder is the assembly-fragment view of one reconstructed
// chromosome: the ordered, oriented fragments whose annotations were seen
// along the walk. Edges carrying no fragment record contribute nothing.
type FragmentOrder struct {
	Topology  Topology
	Fragments []OrientedFragment
}
