package supplier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Operation selects what a supplier should do with a request. Search and
// GetDetail are the well-known operations; Other carries a free-form name
// from the supplier's own vocabulary.
type Operation struct {
	kind opKind
	name string
}

type opKind uint8

const (
	opSearch opKind = iota
	opGetDetail
	opOther
)

// Wire names of the well-known operations.
const (
	wireSearch    = "search"
	wireGetDetail = "get_detail"
	wireOtherKey  = "other"
)

var (
	// Search queries a supplier for a list of matches.
	Search = Operation{kind: opSearch}
	// GetDetail fetches the detail of a single item.
	GetDetail = Operation{kind: opGetDetail}
)

// Other returns a free-form operation named by the caller.
func Other(name string) Operation {
	return Operation{kind: opOther, name: name}
}

// IsOther reports whether o is a free-form operation.
func (o Operation) IsOther() bool { return o.kind == opOther }

// String returns the wire name of the operation.
func (o Operation) String() string {
	switch o.kind {
	case opSearch:
		return wireSearch
	case opGetDetail:
		return wireGetDetail
	default:
		return o.name
	}
}

// Normalize returns the canonical form of the operation: Other names are
// lowercased and trimmed, and runs of spaces, hyphens, slashes and
// underscores collapse to a single underscore. Search and GetDetail are
// fixed points. Normalize is pure and idempotent; it is never applied
// automatically, callers opt in.
func (o Operation) Normalize() Operation {
	if o.kind != opOther {
		return o
	}
	return Other(normalizeName(o.name))
}

// MarshalJSON encodes Search and GetDetail as bare strings and Other as
// an {"other": name} object.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.kind == opOther {
		return json.Marshal(map[string]string{wireOtherKey: o.name})
	}
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes both wire forms produced by MarshalJSON.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case wireSearch:
			*o = Search
		case wireGetDetail:
			*o = GetDetail
		default:
			return fmt.Errorf("unknown operation %q", s)
		}
		return nil
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}
	name, ok := obj[wireOtherKey]
	if !ok {
		return fmt.Errorf("invalid operation: missing %q key", wireOtherKey)
	}
	*o = Other(name)
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '-', '/', '_':
		return true
	}
	return false
}
