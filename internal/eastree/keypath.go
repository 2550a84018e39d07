package eastree

import "strconv"

// KeyPath is an array-index-based dot-joined path into the source JSON,
// used solely to localize diagnostics. It is immutable; Child returns a
// new, extended path.
type KeyPath struct {
	parts []string
}

// RootKeyPath is the empty path, conventionally printed as "".
func RootKeyPath() KeyPath { return KeyPath{} }

// Child returns a new path with index appended.
func (p KeyPath) Child(index int) KeyPath {
	next := make([]string, len(p.parts)+1)
	copy(next, p.parts)
	next[len(p.parts)] = strconv.Itoa(index)
	return KeyPath{parts: next}
}

// String joins the path components with ".".
func (p KeyPath) String() string {
	if len(p.parts) == 0 {
		return ""
	}
	s := p.parts[0]
	for _, part := range p.parts[1:] {
		s += "." + part
	}
	return s
}
