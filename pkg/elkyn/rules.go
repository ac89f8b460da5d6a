package elkyn

import "github.com/elkyn-db/elkyn/internal/rule"

// ParseRuleDocument validates document's shape and parses it without
// installing it on any DB — used to validate a rule document on disk
// before calling LoadRules or WatchRulesFile.
func ParseRuleDocument(document []byte) error {
	_, err := rule.ParseDocument(document)
	return err
}
