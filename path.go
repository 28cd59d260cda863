// Package pathlib represents filesystem paths as ordered segment sequences
// and provides shell-style wildcard matching and pattern-based file discovery
// (Glob / Rglob) on top of a pluggable filesystem.
package pathlib

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced by the OS-facing APIs. Use errors.Is to test for
// them; the underlying OS error, when present, is wrapped alongside.
var (
	ErrNotExist = errors.New("path does not exist")
	ErrExists   = errors.New("path already exists")
)

// Path is an ordered sequence of path segments. A segment never contains a
// separator between characters; the leading separator run of an absolute path
// stays attached to the first segment so that absoluteness remains derivable
// from the segments alone. The zero value is the empty path, which renders to
// "" and has no parent.
type Path struct {
	parts []string
}

func isSeparator(r rune) bool { return r == '/' || r == '\\' }

// FromString parses a path string, splitting on '/' and '\'. Empty segments
// are dropped. FromString("") yields the empty path.
func FromString(s string) Path {
	i := 0
	for i < len(s) && isSeparator(rune(s[i])) {
		i++
	}
	lead := s[:i]
	parts := strings.FieldsFunc(s[i:], isSeparator)
	if len(parts) == 0 {
		if lead == "" {
			return Path{}
		}
		return Path{parts: []string{lead}}
	}
	if lead != "" {
		parts[0] = lead + parts[0]
	}
	return Path{parts: parts}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.parts) }

// Parts returns a copy of the segments.
func (p Path) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// Add appends a segment in place.
func (p *Path) Add(part string) {
	p.parts = append(p.parts, part)
}

// Copy returns a path that shares no segment storage with p.
func (p Path) Copy() Path {
	if len(p.parts) == 0 {
		return Path{}
	}
	return Path{parts: p.Parts()}
}

// Join returns a new path holding p's segments followed by other's.
func (p Path) Join(other Path) Path {
	joined := make([]string, 0, len(p.parts)+len(other.parts))
	joined = append(joined, p.parts...)
	joined = append(joined, other.parts...)
	return Path{parts: joined}
}

// Child returns a copy of p with one more segment appended.
func (p Path) Child(name string) Path {
	child := make([]string, 0, len(p.parts)+1)
	child = append(child, p.parts...)
	child = append(child, name)
	return Path{parts: child}
}

// Parent returns the logical parent: the path without its final segment. The
// parent of a single-segment path is ".", and the empty path is its own
// parent (the "no parent" terminal case).
func (p Path) Parent() Path {
	switch len(p.parts) {
	case 0:
		return Path{}
	case 1:
		return FromString(".")
	default:
		return Path{parts: p.Parts()[:len(p.parts)-1]}
	}
}

// Parents returns the chain of logical parents, ending at ".".
// For a/b/c it yields [a/b, a, .].
func (p Path) Parents() Paths {
	var out Paths
	if len(p.parts) <= 1 {
		out.Add(FromString("."))
		return out
	}
	cur := p
	for i := 0; i < len(p.parts); i++ {
		cur = cur.Parent()
		out.Add(cur)
	}
	return out
}

// Name returns the final segment, or "" for the empty path.
func (p Path) Name() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// Suffix returns the final dot-separated portion of the name, including the
// dot, or "" if the name has none. A leading dot (dotfiles) does not count.
func (p Path) Suffix() string {
	name := p.Name()
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// Suffixes returns every dot suffix of the name, outermost first, e.g.
// "a.tar.gz" yields [".tar", ".gz"].
func (p Path) Suffixes() []string {
	name := strings.TrimPrefix(p.Name(), ".")
	if !strings.Contains(name, ".") {
		return nil
	}
	split := strings.Split(name, ".")
	out := make([]string, 0, len(split)-1)
	for _, s := range split[1:] {
		out = append(out, "."+s)
	}
	return out
}

// Stem returns the final segment without its suffix.
func (p Path) Stem() string {
	name := p.Name()
	return strings.TrimSuffix(name, p.Suffix())
}

// WithSuffix returns a copy of p whose name suffix is replaced by suffix
// (added if the name has none). On the empty path the suffix becomes the
// only segment.
func (p Path) WithSuffix(suffix string) Path {
	if len(p.parts) == 0 {
		return Path{parts: []string{suffix}}
	}
	out := p.Copy()
	out.parts[len(out.parts)-1] = p.Stem() + suffix
	return out
}

// IsAbsolute reports whether the path is absolute in either the POSIX sense
// (a segment starting with '/') or the Windows sense (a two-character drive
// spec like "C:", or a UNC prefix). Both styles are checked regardless of the
// host OS so parsed foreign paths behave predictably.
func (p Path) IsAbsolute() bool {
	for _, part := range p.parts {
		if strings.HasPrefix(part, "/") {
			return true
		}
	}
	if len(p.parts) == 0 {
		return false
	}
	first := p.parts[0]
	if len(first) == 2 && first[1] == ':' && isAlpha(first[0]) {
		return true
	}
	return strings.HasPrefix(first, `\\`)
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsRelativeTo reports whether other has p's segments as a prefix.
func (p Path) IsRelativeTo(other Path) bool {
	if len(p.parts) > len(other.parts) {
		return false
	}
	for i, part := range p.parts {
		if part != other.parts[i] {
			return false
		}
	}
	return true
}

// Hash returns a djb2 hash over the segments, with a separator folded in
// after each one so that ab/c and a/bc hash differently.
func (p Path) Hash() uint64 {
	var hash uint64 = 5381
	for _, part := range p.parts {
		for i := 0; i < len(part); i++ {
			hash = hash*33 + uint64(part[i])
		}
		hash = hash*33 + '/'
	}
	return hash
}

// String renders the path with segments joined by '/'. The empty path
// renders to "".
func (p Path) String() string {
	return strings.Join(p.parts, "/")
}
