// File: split.go
// Role: Guidance-driven multiset partitioning (Split) with functional options.
// Determinism:
//   - Guidance is deduplicated and ordered (largest template first, canonical
//     key as tie-breaker) unless the caller asserts WithSortedGuidance.

package multicolor

import "sort"

// SplitOption configures Split via functional arguments.
type SplitOption func(*SplitOptions)

// SplitOptions holds parameters customizing the Split partition.
type SplitOptions struct {
	// Guidance is an ordered collection of template multicolors steering the
	// partition. When empty, every distinct label of the target (with its own
	// multiplicity) acts as its own template.
	Guidance []*Multicolor

	// SortedGuidance asserts that Guidance is already deduplicated and
	// ordered largest-template-first, skipping the internal normalization.
	SortedGuidance bool

	// AccountForMultiplicity controls whether template and target counts
	// participate in matching. When false, matching happens on unit
	// multiplicities and the original target counts are restored in the
	// final result.
	AccountForMultiplicity bool
}

// DefaultSplitOptions returns the SplitOptions used when no options are
// supplied: no guidance, unsorted, multiplicities accounted for.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{AccountForMultiplicity: true}
}

// WithGuidance supplies the ordered template multicolors for Split.
func WithGuidance(templates ...*Multicolor) SplitOption {
	return func(o *SplitOptions) { o.Guidance = templates }
}

// WithSortedGuidance promises that the guidance is already deduplicated and
// sorted largest-first, so Split must preserve the caller's ordering.
func WithSortedGuidance() SplitOption {
	return func(o *SplitOptions) { o.SortedGuidance = true }
}

// WithoutMultiplicity makes Split match on unit multiplicities and restore
// the target's original counts in the final result.
func WithoutMultiplicity() SplitOption {
	return func(o *SplitOptions) { o.AccountForMultiplicity = false }
}

// Split partitions target into a list of multicolors whose multiset union
// equals target exactly. Templates are tried in two passes: pass one peels
// off every fully contained template occurrence, pass two captures partial
// overlaps via repeated intersection. Whatever remains after both passes is
// appended as one final entry.
//
// The result is deterministic for deterministic input ordering, which the
// graph engine relies on for reproducible edge splitting.
func Split(target *Multicolor, opts ...SplitOption) []*Multicolor {
	o := DefaultSplitOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if target.Empty() {
		return nil
	}

	guidance := o.Guidance
	if len(guidance) == 0 {
		// Default guidance: one template per distinct label, carrying the
		// label's own multiplicity in the target.
		for _, c := range target.Colors() {
			guidance = append(guidance, NewFromMap(map[string]int{c: target.Multiplicity(c)}))
		}
	}

	work := target.Clone()
	var restore *Multicolor
	if !o.AccountForMultiplicity {
		restore = target
		guidance = unitTemplates(guidance)
		work = unitOf(target)
	}
	if !o.SortedGuidance {
		guidance = normalizeGuidance(guidance)
	}

	var parts []*Multicolor

	// Pass 1: peel off full template matches, larger templates first, so a
	// large template is never starved by a smaller overlapping one.
	for _, t := range guidance {
		if t.Empty() {
			continue
		}
		for t.LessEq(work) {
			work.Delete(t)
			parts = append(parts, t.Clone())
		}
	}

	// Pass 2: capture partial overlaps surviving pass 1.
	for _, t := range guidance {
		for {
			inter := Intersect(t, work)
			if inter.Empty() {
				break
			}
			work.Delete(inter)
			parts = append(parts, inter)
		}
	}

	if !work.Empty() {
		parts = append(parts, work)
	}

	if restore != nil {
		// Matching ran on unit counts, so every label landed in exactly one
		// part; put the original target multiplicities back.
		for _, p := range parts {
			for c := range p.counts {
				p.counts[c] = restore.Multiplicity(c)
			}
		}
	}
	return parts
}

// unitTemplates reduces every template to unit multiplicity per label and
// drops duplicates by label set, keeping the first occurrence.
func unitTemplates(guidance []*Multicolor) []*Multicolor {
	seen := make(map[string]struct{}, len(guidance))
	out := make([]*Multicolor, 0, len(guidance))
	for _, t := range guidance {
		u := unitOf(t)
		k := u.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, u)
	}
	return out
}

// unitOf returns a copy of m with every present label's count forced to one.
func unitOf(m *Multicolor) *Multicolor {
	out := New()
	if m == nil {
		return out
	}
	for c := range m.counts {
		out.counts[c] = 1
	}
	return out
}

// normalizeGuidance deduplicates exact-equal templates (first occurrence
// kept) and orders them largest first: by descending distinct-label count,
// then descending total multiplicity, then ascending canonical key.
func normalizeGuidance(guidance []*Multicolor) []*Multicolor {
	seen := make(map[string]struct{}, len(guidance))
	out := make([]*Multicolor, 0, len(guidance))
	for _, t := range guidance {
		k := t.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].CardinalityOfColors(), out[j].CardinalityOfColors()
		if ci != cj {
			return ci > cj
		}
		ti, tj := out[i].TotalMultiplicity(), out[j].TotalMultiplicity()
		if ti != tj {
			return ti > tj
		}
		return out[i].key() < out[j].key()
	})
	return out
}
