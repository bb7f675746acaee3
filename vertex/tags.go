// File: tags.go
// Role: Ordered (key, optional value) tag pairs shared by all tagged
//       vertex variants.
// Invariants:
//   - Tags are kept sorted by key then value.
//   - Exact duplicates are forbidden.

package vertex

import (
	"errors"
	"strings"
)

// Sentinel errors for tag manipulation.
var (
	// ErrDuplicateTag is returned when adding a (key, value) pair that is
	// already present.
	ErrDuplicateTag = errors.New("vertex: duplicate tag")

	// ErrTagNotFound is returned when removing a (key, value) pair that is
	// not present.
	ErrTagNotFound = errors.New("vertex: tag not found")

	// ErrReservedSyntax is returned when a root name or tag component
	// contains the reserved separator or would collide with the reserved
	// infinity suffix.
	ErrReservedSyntax = errors.New("vertex: reserved name syntax")
)

// Tag is a single (key, optional value) annotation. An empty Value means the
// tag carries no value and renders as the bare key.
type Tag struct {
	Key   string
	Value string
}

// render returns the canonical textual form: "key:value" or bare "key".
func (t Tag) render() string {
	if t.Value == "" {
		return t.Key
	}
	return t.Key + TagValueSeparator + t.Value
}

// less orders tags by key, then by value.
func (t Tag) less(o Tag) bool {
	if t.Key != o.Key {
		return t.Key < o.Key
	}
	return t.Value < o.Value
}

// TagSet is an ordered, duplicate-free collection of tags. The zero value is
// an empty, ready-to-use set. TagSet is embedded by the concrete vertex
// variants; its mutators preserve sort order on every change.
type TagSet struct {
	tags []Tag
}

// AddTag inserts the (key, value) pair keeping the set sorted.
// An exact duplicate is rejected with ErrDuplicateTag; a key or value
// containing reserved syntax is rejected with ErrReservedSyntax.
func (ts *TagSet) AddTag(key, value string) error {
	if strings.Contains(key, Separator) || strings.Contains(value, Separator) ||
		key == "" || key == InfinitySuffix {
		return ErrReservedSyntax
	}
	tag := Tag{Key: key, Value: value}
	i := ts.searchIndex(tag)
	if i < len(ts.tags) && ts.tags[i] == tag {
		return ErrDuplicateTag
	}
	ts.tags = append(ts.tags, Tag{})
	copy(ts.tags[i+1:], ts.tags[i:])
	ts.tags[i] = tag
	return nil
}

// RemoveTag deletes the exact (key, value) pair, preserving order.
func (ts *TagSet) RemoveTag(key, value string) error {
	tag := Tag{Key: key, Value: value}
	i := ts.searchIndex(tag)
	if i >= len(ts.tags) || ts.tags[i] != tag {
		return ErrTagNotFound
	}
	ts.tags = append(ts.tags[:i], ts.tags[i+1:]...)
	return nil
}

// HasTag reports whether any tag with the given key is present.
func (ts *TagSet) HasTag(key string) bool {
	for _, t := range ts.tags {
		if t.Key == key {
			return true
		}
	}
	return false
}

// TagValue returns the value of the first tag with the given key and whether
// such a tag exists.
func (ts *TagSet) TagValue(key string) (string, bool) {
	for _, t := range ts.tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// Tags returns a copy of the ordered tag list.
func (ts *TagSet) Tags() []Tag {
	out := make([]Tag, len(ts.tags))
	copy(out, ts.tags)
	return out
}

// renderTags appends the canonical form of every tag, in order.
func (ts *TagSet) renderTags(parts []string) []string {
	for _, t := range ts.tags {
		parts = append(parts, t.render())
	}
	return parts
}

// cloneTags returns an independent copy of the set.
func (ts *TagSet) cloneTags() TagSet {
	return TagSet{tags: ts.Tags()}
}

// searchIndex returns the insertion index of tag in the sorted slice.
func (ts *TagSet) searchIndex(tag Tag) int {
	lo, hi := 0, len(ts.tags)
	for lo < hi {
		mid := (lo + hi) / 2
		if ts.tags[mid].less(tag) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
