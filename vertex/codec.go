// File: codec.go
// Role: The single decode function for canonical vertex names.
//       Name() on each variant is the matching single encode function.

package vertex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned by Parse for names that no vertex variant can
// have produced.
var ErrInvalidName = errors.New("vertex: invalid canonical name")

// Parse decodes a canonical vertex name back into a structured vertex.
// The round trip is exact: for any vertex v, Parse(v.Name()) yields a vertex
// with the same root, tag list, and variant, and the same Name().
//
// The trailing reserved suffix selects the infinity variant; every part
// between the root and the suffix is a tag rendered as "key:value" or as a
// bare "key".
func Parse(name string) (Vertex, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	parts := strings.Split(name, Separator)
	root, rest := parts[0], parts[1:]

	infinity := false
	if n := len(rest); n > 0 && rest[n-1] == InfinitySuffix {
		infinity = true
		rest = rest[:n-1]
	}

	if infinity {
		v, err := NewInfinityVertex(root)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", name, err)
		}
		if err = addParsedTags(&v.TagSet, name, rest); err != nil {
			return nil, err
		}
		return v, nil
	}

	v, err := NewBlockVertex(root)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", name, err)
	}
	if err = addParsedTags(&v.TagSet, name, rest); err != nil {
		return nil, err
	}
	return v, nil
}

// addParsedTags decodes and attaches each rendered tag part.
func addParsedTags(ts *TagSet, name string, parts []string) error {
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("parse %q: empty tag part: %w", name, ErrInvalidName)
		}
		key, value := p, ""
		if i := strings.Index(p, TagValueSeparator); i >= 0 {
			key, value = p[:i], p[i+1:]
		}
		if err := ts.AddTag(key, value); err != nil {
			return fmt.Errorf("parse %q: %w", name, err)
		}
	}
	return nil
}
