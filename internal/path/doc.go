// Package path implements the canonical path codec: normalization of
// filesystem-like address strings, segment iteration, and the child-prefix
// helper used throughout the tree store and event bus for range scans.
package path
