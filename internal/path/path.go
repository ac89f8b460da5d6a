package path

import "strings"

// Root is the canonical path for the tree's root node.
const Root = "/"

// Path is a normalized path string: slash-prefixed, no doubled separators,
// no trailing separator except for Root itself. Path values are always
// produced by Normalize and are safe to compare byte-wise.
type Path string

// Normalize validates s and returns its canonical form.
//
// Canonicalization does NOT collapse redundant separators: a path
// containing "//" is rejected outright, matching §4.1 of the design — the
// caller is expected to supply well-formed input, not have it silently
// repaired.
func Normalize(s string) (Path, error) {
	if s == "" || s[0] != '/' {
		return "", ErrInvalidPath
	}
	if s == Root {
		return Root, nil
	}
	if strings.Contains(s, "//") {
		return "", ErrInvalidPath
	}
	if strings.HasSuffix(s, "/") {
		s = s[:len(s)-1]
	}
	if s == "" {
		return Root, nil
	}
	for _, seg := range strings.Split(s[1:], "/") {
		if seg == "" {
			return "", ErrInvalidPath
		}
	}
	return Path(s), nil
}

// Segments returns the ordered, non-empty path segments of p. Root yields
// an empty slice.
func Segments(p Path) []string {
	if p == Root || p == "" {
		return nil
	}
	return strings.Split(string(p)[1:], "/")
}

// ChildPrefix returns the prefix under which every descendant key of p
// lives: p + "/", with root special-cased to "/" itself (root's own
// canonical form already ends the prefix a child key would be appended
// to).
func ChildPrefix(p Path) string {
	if p == Root {
		return string(Root)
	}
	return string(p) + "/"
}

// Join appends a single segment to p, returning the canonical child path.
func Join(p Path, segment string) Path {
	if p == Root {
		return Path("/" + segment)
	}
	return Path(string(p) + "/" + segment)
}

// IsRoot reports whether p is the root path.
func IsRoot(p Path) bool {
	return p == Root
}

// Parent returns the strict parent of p and true, or ("", false) if p is
// root.
func Parent(p Path) (Path, bool) {
	if p == Root {
		return "", false
	}
	idx := strings.LastIndexByte(string(p), '/')
	if idx == 0 {
		return Root, true
	}
	return Path(string(p)[:idx]), true
}

// Ancestors returns every strict ancestor of p, ordered from root down to
// (but excluding) p itself.
func Ancestors(p Path) []Path {
	segs := Segments(p)
	if len(segs) == 0 {
		return nil
	}
	out := make([]Path, 0, len(segs))
	cur := Path(Root)
	out = append(out, cur)
	for _, s := range segs[:len(segs)-1] {
		cur = Join(cur, s)
		out = append(out, cur)
	}
	return out
}

// HasPrefix reports whether p falls under the child prefix of q (i.e. q is
// a strict ancestor of p).
func HasPrefix(p Path, q Path) bool {
	return strings.HasPrefix(string(p), ChildPrefix(q))
}
