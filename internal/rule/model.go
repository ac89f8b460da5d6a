package rule

// Type distinguishes the three rule kinds named in §4.7/§4.8.
type Type uint8

const (
	TypeRead Type = iota
	TypeWrite
	TypeValidate
)

// PathRules is one node of the rule tree (§4.7): the predicates declared
// at this path, plus its children keyed by literal segment or "$name"
// pattern. ChildNames preserves document order, which §4.8 step 2
// requires ("try variable children in document order").
type PathRules struct {
	Read     string
	Write    string
	Validate string

	ChildNames []string
	Children   map[string]*PathRules
}

func newNode() *PathRules {
	return &PathRules{Children: make(map[string]*PathRules)}
}

// RuleFor returns the predicate string declared at this node for t, or
// "" if none was declared.
func (n *PathRules) RuleFor(t Type) string {
	if n == nil {
		return ""
	}
	switch t {
	case TypeRead:
		return n.Read
	case TypeWrite:
		return n.Write
	case TypeValidate:
		return n.Validate
	default:
		return ""
	}
}

// isVariable reports whether a child key is a "$name" binding pattern.
func isVariable(name string) bool {
	return len(name) > 1 && name[0] == '$'
}
