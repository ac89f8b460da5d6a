package rule

import "github.com/elkyn-db/elkyn/internal/path"

// Evaluator walks a parsed rule tree, implementing the cascade semantics
// of §4.8: "deepest matching rule wins, else nearest ancestor's rule of
// that type applies, else deny".
type Evaluator struct {
	root *PathRules
}

// NewEvaluator wraps a parsed rule document.
func NewEvaluator(root *PathRules) *Evaluator {
	return &Evaluator{root: root}
}

// Allow reports whether a of the given rule type is permitted at p,
// given a.
func (e *Evaluator) Allow(t Type, p path.Path, a Auth) bool {
	if e.root == nil {
		return false
	}
	segs := path.Segments(p)

	node := e.root
	vars := map[string]string{}
	cascadeExpr := node.RuleFor(t)
	cascadeVars := cloneVars(vars)

	for _, seg := range segs {
		child, nextVars, ok := descend(node, seg, vars)
		if !ok {
			return evalCascade(cascadeExpr, a, cascadeVars)
		}
		node, vars = child, nextVars
		if expr := node.RuleFor(t); expr != "" {
			cascadeExpr = expr
			cascadeVars = cloneVars(vars)
		}
	}

	if expr := node.RuleFor(t); expr != "" {
		return evalPredicate(expr, a, vars)
	}
	return evalCascade(cascadeExpr, a, cascadeVars)
}

func evalCascade(expr string, a Auth, vars map[string]string) bool {
	if expr == "" {
		return false
	}
	return evalPredicate(expr, a, vars)
}

// descend prefers an exact-match child (§4.8 step 1), falling back to
// variable children tried in document order (§4.8 step 2), binding undone
// on mismatch by simply not returning that branch's bindings.
func descend(node *PathRules, seg string, vars map[string]string) (*PathRules, map[string]string, bool) {
	if child, ok := node.Children[seg]; ok {
		return child, vars, true
	}
	for _, name := range node.ChildNames {
		if !isVariable(name) {
			continue
		}
		child := node.Children[name]
		nv := cloneVars(vars)
		nv[name[1:]] = seg
		return child, nv, true
	}
	return nil, nil, false
}

func cloneVars(v map[string]string) map[string]string {
	out := make(map[string]string, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
