// File: multicolor.go
// Role: Multicolor value type and its multiset operators.
// Determinism:
//   - Colors()/String()/key() render labels in ascending order.
// Error policy:
//   - Sentinels only; callers branch with errors.Is.

package multicolor

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNegativeMultiplier is returned by Multiply when the multiplier is
// negative. Scaling by zero is legal and yields the empty multicolor.
var ErrNegativeMultiplier = errors.New("multicolor: negative multiplier")

// Multicolor is a multiset of genome labels with positive per-label counts.
// A nil pointer behaves as the empty multiset for read-only operations; the
// zero value is ready to use and initializes itself on first mutation.
type Multicolor struct {
	counts map[string]int
}

// New builds a Multicolor from a variable number of labels. Repeated labels
// increase the corresponding count.
func New(colors ...string) *Multicolor {
	m := &Multicolor{counts: make(map[string]int, len(colors))}
	for _, c := range colors {
		m.counts[c]++
	}
	return m
}

// NewFromMap builds a Multicolor from explicit per-label counts.
// Labels with non-positive counts are dropped.
func NewFromMap(counts map[string]int) *Multicolor {
	m := &Multicolor{counts: make(map[string]int, len(counts))}
	for c, n := range counts {
		if n > 0 {
			m.counts[c] = n
		}
	}
	return m
}

// Clone returns a deep copy of m.
func (m *Multicolor) Clone() *Multicolor {
	if m == nil {
		return New()
	}
	return NewFromMap(m.counts)
}

// Colors returns the distinct labels of m in ascending order.
func (m *Multicolor) Colors() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.counts))
	for c := range m.counts {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Multiplicity returns the count of the given label, zero if absent.
func (m *Multicolor) Multiplicity(color string) int {
	if m == nil {
		return 0
	}
	return m.counts[color]
}

// CardinalityOfColors returns the number of distinct labels in m.
func (m *Multicolor) CardinalityOfColors() int {
	if m == nil {
		return 0
	}
	return len(m.counts)
}

// TotalMultiplicity returns the sum of all counts in m.
func (m *Multicolor) TotalMultiplicity() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

// Empty reports whether m contains no labels at all.
func (m *Multicolor) Empty() bool {
	return m == nil || len(m.counts) == 0
}

// ensure lazily initializes the count map, so a zero-value Multicolor
// behaves like New() on first mutation.
func (m *Multicolor) ensure() {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
}

// Update adds the given labels to m in place, increasing counts.
// Returns the receiver for chaining.
func (m *Multicolor) Update(colors ...string) *Multicolor {
	m.ensure()
	for _, c := range colors {
		m.counts[c]++
	}
	return m
}

// LeftMerge folds o into m in place (multiset union by count addition) and
// returns the receiver. A nil o is a no-op.
func (m *Multicolor) LeftMerge(o *Multicolor) *Multicolor {
	if o == nil {
		return m
	}
	m.ensure()
	for c, n := range o.counts {
		m.counts[c] += n
	}
	return m
}

// Merge returns a new Multicolor holding the multiset union of all arguments.
func Merge(ms ...*Multicolor) *Multicolor {
	out := New()
	for _, m := range ms {
		out.LeftMerge(m)
	}
	return out
}

// Add returns a new Multicolor holding the multiset union of a and b.
func Add(a, b *Multicolor) *Multicolor {
	return Merge(a, b)
}

// Delete removes the counts of o from m in place, flooring every count at
// zero (never negative). Labels whose count reaches zero disappear.
// Returns the receiver.
func (m *Multicolor) Delete(o *Multicolor) *Multicolor {
	if o == nil {
		return m
	}
	for c, n := range o.counts {
		cur, ok := m.counts[c]
		if !ok {
			continue
		}
		if cur <= n {
			delete(m.counts, c)
		} else {
			m.counts[c] = cur - n
		}
	}
	return m
}

// Sub returns a new Multicolor holding the multiset difference a - b with
// counts floored at zero.
func Sub(a, b *Multicolor) *Multicolor {
	return a.Clone().Delete(b)
}

// Equal reports whether m and o contain exactly the same labels with exactly
// the same counts.
func (m *Multicolor) Equal(o *Multicolor) bool {
	if m.CardinalityOfColors() != o.CardinalityOfColors() {
		return false
	}
	if m == nil || o == nil {
		return true // both empty
	}
	for c, n := range m.counts {
		if o.counts[c] != n {
			return false
		}
	}
	return true
}

// LessEq reports whether m is multiset-contained in o: every label of m is
// present in o with at least the same count.
func (m *Multicolor) LessEq(o *Multicolor) bool {
	if m == nil {
		return true
	}
	for c, n := range m.counts {
		if o.Multiplicity(c) < n {
			return false
		}
	}
	return true
}

// Less reports whether m is strictly multiset-contained in o: LessEq holds
// and at least one count of o is strictly larger.
func (m *Multicolor) Less(o *Multicolor) bool {
	return m.LessEq(o) && !m.Equal(o)
}

// SimilarityScore returns the size of the multiset intersection of a and b:
// the sum over shared labels of the smaller count. The graph engine uses it
// to pick the most relevant of several candidate parallel edges.
func SimilarityScore(a, b *Multicolor) int {
	if a == nil || b == nil {
		return 0
	}
	// Iterate the smaller map.
	if len(b.counts) < len(a.counts) {
		a, b = b, a
	}
	score := 0
	for c, n := range a.counts {
		if bn := b.counts[c]; bn < n {
			score += bn
		} else {
			score += n
		}
	}
	return score
}

// Intersect returns a new Multicolor holding the per-label minimum of counts.
func Intersect(a, b *Multicolor) *Multicolor {
	out := New()
	if a == nil || b == nil {
		return out
	}
	if len(b.counts) < len(a.counts) {
		a, b = b, a
	}
	for c, n := range a.counts {
		if bn := b.counts[c]; bn > 0 {
			if bn < n {
				out.counts[c] = bn
			} else {
				out.counts[c] = n
			}
		}
	}
	return out
}

// Multiply returns a new Multicolor with every count scaled by n.
// n == 0 yields the empty multicolor; a negative n is rejected with
// ErrNegativeMultiplier.
func (m *Multicolor) Multiply(n int) (*Multicolor, error) {
	if n < 0 {
		return nil, ErrNegativeMultiplier
	}
	out := New()
	if m == nil || n == 0 {
		return out, nil
	}
	for c, cnt := range m.counts {
		out.counts[c] = cnt * n
	}
	return out, nil
}

// String renders m deterministically as {label, label:count, ...} with labels
// in ascending order; counts above one are shown explicitly.
func (m *Multicolor) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range m.Colors() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c)
		if n := m.counts[c]; n > 1 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(n))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// key returns a canonical textual form used for deduplication and as a
// deterministic tie-breaker. Unlike String it always spells out counts.
func (m *Multicolor) key() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, c := range m.Colors() {
		sb.WriteString(c)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(m.counts[c]))
		sb.WriteByte('|')
	}
	return sb.String()
}
