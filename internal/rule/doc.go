// Package rule implements the hierarchical rule document model, its
// parser, and the cascading evaluator with a minimal predicate language
// (§4.7, §4.8).
//
// # Overview
//
// A rule document is a nested mapping mirroring the shape of the tree it
// governs. Reserved keys ".read", ".write", and ".validate" hold
// predicate strings at the node where they appear; every other key is
// either a literal path segment or a "$name" pattern that binds a
// variable to whatever segment actually matched there. Evaluating a rule
// of a given type at a given path walks the document from the root down
// along that path, remembering the deepest rule of that type seen so far
// — the "cascade rule" — and falls back to it the moment the path runs
// out of matching document structure.
//
// # Key Types
//
//	type PathRules struct {
//	    Read, Write, Validate string
//	    ChildNames []string          // document order, for $var fallback
//	    Children   map[string]*PathRules
//	}
//	type Evaluator struct { ... }    // wraps a parsed PathRules tree
//	type Auth struct {
//	    Authenticated bool
//	    UID, Email    string
//	    Roles         []string
//	}
//
// # Loading a Document
//
//	root, err := rule.ParseDocument(jsonOrYAMLBytes)
//	if err != nil {
//	    return err
//	}
//	ev := rule.NewEvaluator(root)
//
// ParseDocument validates the document's shape with
// santhosh-tekuri/jsonschema/v5 before building the PathRules tree, so a
// malformed document (a reserved key in the wrong position, for example)
// fails before any rule is ever evaluated against live traffic.
//
// # Evaluating a Rule
//
//	allowed := ev.Allow(rule.TypeWrite, p, rule.Auth{
//	    Authenticated: true,
//	    UID:           "alice",
//	})
//
// Allow walks p's segments against the document: an exact-match child
// wins over a "$name" child, and "$name" children are tried in document
// order (§4.8 step 2) so the first one that exists wins deterministically
// rather than by map iteration order. Absence of a matching rule of the
// requested type, at any depth, denies — §4.8's default-deny posture has
// no exception.
//
// # The Predicate Language
//
// A predicate string is a small boolean expression over literals,
// "auth.*" references, and "$var" bindings, split at the top level into
// "||"-joined clauses of "&&"-joined comparisons. There is no operator
// precedence beyond that two-tier split, no parentheses, and no
// arithmetic — the spec's predicate language is intentionally this
// small.
//
// # Related Packages
//
//   - github.com/elkyn-db/elkyn/internal/auth: supplies the Context this
//     package's Auth is built from.
//   - github.com/elkyn-db/elkyn/internal/engine: the only caller of
//     Evaluator.Allow on the live read/write path.
package rule
