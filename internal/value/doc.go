// Package value implements Elkyn's tagged-union value model: the
// primitive/compound variants described in §3 of the design, JSON
// marshaling for the wire format, and the compact on-disk leaf encoding
// (§4.2) used by the tree store for every primitive it writes.
package value
