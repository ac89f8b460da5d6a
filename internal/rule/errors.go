package rule

import "errors"

// ErrRuleParse indicates a rule document failed schema validation or
// structural parsing. Per §7, rule loading is atomic: the caller must
// keep the previously loaded rules live when this is returned.
var ErrRuleParse = errors.New("rule: parse error")
