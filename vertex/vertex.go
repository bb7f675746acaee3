// File: vertex.go
// Role: Capability interface, safe-default base, and the concrete block and
//       infinity vertex variants.

package vertex

import (
	"errors"
	"strings"
)

// Reserved name syntax shared by the encode and decode sides.
const (
	// Separator joins the root name, rendered tags, and any variant suffix
	// inside a canonical vertex name.
	Separator = "__"

	// InfinitySuffix marks the canonical name of an irregular vertex.
	InfinitySuffix = "infinity"

	// TagValueSeparator joins a tag key to its value inside one name part.
	TagValueSeparator = ":"

	// HeadOrientation and TailOrientation are the trailing orientation
	// characters of a block vertex root name.
	HeadOrientation = 'h'
	TailOrientation = 't'
)

// ErrInvalidBlockName is returned when a block vertex root name is too short
// or does not end with a head/tail orientation character.
var ErrInvalidBlockName = errors.New("vertex: invalid block vertex name")

// Vertex is the capability interface implemented by every graph vertex.
// Identity is the canonical Name; graphs deduplicate vertices by it.
//
// Every predicate has a safe default of false (see Base); concrete variants
// override only the capabilities they actually have.
type Vertex interface {
	// Name renders the canonical identity: root, sorted tags, and any
	// variant-specific suffix, joined by the reserved separator.
	Name() string

	// Root returns the caller-supplied root name the identity derives from.
	Root() string

	// IsRegular reports a real chromosomal adjacency endpoint.
	IsRegular() bool
	// IsIrregular reports an artificial open-end marker.
	IsIrregular() bool
	// IsBlock reports an extremity of a conserved block.
	IsBlock() bool
	// IsInfinity reports an infinity (open chromosome end) vertex.
	IsInfinity() bool
	// IsTagged reports a variant that supports tag annotations.
	IsTagged() bool
	// HasTag reports whether a tag with the given key is attached.
	HasTag(key string) bool
}

// Base is the safe-default capability implementation: every predicate
// answers false. Embed it when defining a new variant and override only
// what the variant can do.
type Base struct{}

// IsRegular implements Vertex with the default answer.
func (Base) IsRegular() bool { return false }

// IsIrregular implements Vertex with the default answer.
func (Base) IsIrregular() bool { return false }

// IsBlock implements Vertex with the default answer.
func (Base) IsBlock() bool { return false }

// IsInfinity implements Vertex with the default answer.
func (Base) IsInfinity() bool { return false }

// IsTagged implements Vertex with the default answer.
func (Base) IsTagged() bool { return false }

// HasTag implements Vertex with the default answer.
func (Base) HasTag(string) bool { return false }

// BlockVertex represents one extremity of a conserved block. The root name
// is the block name plus a trailing orientation character ("1h", "1t").
//
// Mate points at the opposite extremity of the same block; callers must keep
// the relation symmetric (a.Mate == b iff b.Mate == a). Pair does both
// assignments at once.
type BlockVertex struct {
	TagSet

	root string

	// Mate is the opposite extremity of the same block.
	Mate *BlockVertex
}

// NewBlockVertex builds a block vertex from a root name ending in an
// orientation character.
func NewBlockVertex(root string) (*BlockVertex, error) {
	if len(root) < 2 || strings.Contains(root, Separator) {
		return nil, ErrInvalidBlockName
	}
	if c := root[len(root)-1]; c != HeadOrientation && c != TailOrientation {
		return nil, ErrInvalidBlockName
	}
	return &BlockVertex{root: root}, nil
}

// Name renders the canonical identity: root plus sorted tags.
func (v *BlockVertex) Name() string {
	return strings.Join(v.renderTags([]string{v.root}), Separator)
}

// Root returns the orientation-carrying root name.
func (v *BlockVertex) Root() string { return v.root }

// BlockName returns the root without its orientation character.
func (v *BlockVertex) BlockName() string { return v.root[:len(v.root)-1] }

// Orientation returns the trailing head/tail orientation character.
func (v *BlockVertex) Orientation() byte { return v.root[len(v.root)-1] }

// IsHead reports whether this extremity is the block head.
func (v *BlockVertex) IsHead() bool { return v.Orientation() == HeadOrientation }

// IsTail reports whether this extremity is the block tail.
func (v *BlockVertex) IsTail() bool { return v.Orientation() == TailOrientation }

// MateName returns the canonical name of the opposite extremity: the same
// block name with the orientation flipped and the same tags.
func (v *BlockVertex) MateName() string {
	flipped := v.BlockName() + string(flipOrientation(v.Orientation()))
	return strings.Join(v.renderTags([]string{flipped}), Separator)
}

// IsRegular reports true: a block vertex is a real endpoint.
func (v *BlockVertex) IsRegular() bool { return true }

// IsIrregular reports false for the block variant.
func (v *BlockVertex) IsIrregular() bool { return false }

// IsBlock reports true.
func (v *BlockVertex) IsBlock() bool { return true }

// IsInfinity reports false for the block variant.
func (v *BlockVertex) IsInfinity() bool { return false }

// IsTagged reports true: the block variant supports tags.
func (v *BlockVertex) IsTagged() bool { return true }

// Clone returns an independent copy. The mate reference is carried over
// as-is; re-pair clones explicitly when cloning both extremities.
func (v *BlockVertex) Clone() *BlockVertex {
	return &BlockVertex{root: v.root, TagSet: v.cloneTags(), Mate: v.Mate}
}

// Pair makes a and b mates of each other, keeping the relation symmetric.
func Pair(a, b *BlockVertex) {
	a.Mate = b
	b.Mate = a
}

// flipOrientation swaps head and tail.
func flipOrientation(c byte) byte {
	if c == HeadOrientation {
		return TailOrientation
	}
	return HeadOrientation
}

// InfinityVertex represents the artificial open end of a linear chromosome
// fragment. Only the root is stored; the canonical name is derived on every
// access, so renaming the root transparently renames the identity.
type InfinityVertex struct {
	TagSet

	root string
}

// NewInfinityVertex builds an infinity vertex for the given root name.
func NewInfinityVertex(root string) (*InfinityVertex, error) {
	if root == "" || strings.Contains(root, Separator) {
		return nil, ErrReservedSyntax
	}
	return &InfinityVertex{root: root}, nil
}

// Name renders root, sorted tags, and the reserved infinity suffix.
func (v *InfinityVertex) Name() string {
	parts := v.renderTags([]string{v.root})
	parts = append(parts, InfinitySuffix)
	return strings.Join(parts, Separator)
}

// Root returns the stored root name.
func (v *InfinityVertex) Root() string { return v.root }

// SetRoot renames the root; the derived identity changes with it.
// Never rename a vertex already held by a graph.
func (v *InfinityVertex) SetRoot(root string) error {
	if root == "" || strings.Contains(root, Separator) {
		return ErrReservedSyntax
	}
	v.root = root
	return nil
}

// IsRegular reports false for the infinity variant.
func (v *InfinityVertex) IsRegular() bool { return false }

// IsIrregular reports true: an infinity vertex is artificial.
func (v *InfinityVertex) IsIrregular() bool { return true }

// IsBlock reports false for the infinity variant.
func (v *InfinityVertex) IsBlock() bool { return false }

// IsInfinity reports true.
func (v *InfinityVertex) IsInfinity() bool { return true }

// IsTagged reports true: the infinity variant supports tags.
func (v *InfinityVertex) IsTagged() bool { return true }

// Clone returns an independent copy.
func (v *InfinityVertex) Clone() *InfinityVertex {
	return &InfinityVertex{root: v.root, TagSet: v.cloneTags()}
}
