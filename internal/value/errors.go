package value

import "errors"

var (
	// ErrInvalidJSON indicates FromJSON was given bytes that do not parse
	// as a JSON value.
	ErrInvalidJSON = errors.New("value: invalid json")

	// ErrDecode indicates DecodeLeaf was given bytes that are too short,
	// carry an unrecognized type prefix, or fail the compound fallback
	// decode.
	ErrDecode = errors.New("value: leaf decode error")

	// ErrNotPrimitive indicates EncodeLeaf was given a Value whose Kind is
	// none of the six known kinds. Compound values are not rejected; they
	// take the compact fallback encoding.
	ErrNotPrimitive = errors.New("value: not a primitive value")
)
