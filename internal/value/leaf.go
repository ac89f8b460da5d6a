package value

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// Leaf type-prefix bytes, §3.
const (
	prefixString byte = 's'
	prefixNumber byte = 'n'
	prefixBool   byte = 'b'
	prefixNull   byte = 'z'
	prefixCbor   byte = 'm'
)

// BranchMarkerPrefix is the reserved first byte of a branch marker (§3,
// §4.4). It can never collide with a leaf prefix above. The byte that
// follows tags the reconstructed shape: ShapeObject or ShapeArray
// (SPEC_FULL.md §C.1 — resolves the object/array ambiguity the baseline
// design left open in §9).
const BranchMarkerPrefix byte = '#'

type Shape byte

const (
	ShapeObject Shape = 'o'
	ShapeArray  Shape = 'a'
)

// BranchMarker encodes the branch-marker bytes for the given shape.
func BranchMarker(s Shape) []byte {
	return []byte{BranchMarkerPrefix, byte(s)}
}

// IsBranchMarker reports whether b is a branch marker and, if so, its
// tagged shape.
func IsBranchMarker(b []byte) (Shape, bool) {
	if len(b) < 2 || b[0] != BranchMarkerPrefix {
		return 0, false
	}
	s := Shape(b[1])
	if s != ShapeObject && s != ShapeArray {
		return 0, false
	}
	return s, true
}

// EncodeLeaf encodes a primitive value using the type-prefix layout in §3.
// Compound values (array/object) are encoded through the compact CBOR
// fallback (prefix 'm') only when the caller explicitly stores a value at
// a non-decomposed key — the tree store never calls this for compounds,
// since it always decomposes them (§4.2).
func EncodeLeaf(v Value) ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte{prefixNull}, nil
	case KindBool:
		b := byte(0)
		if v.Bool {
			b = 1
		}
		return []byte{prefixBool, b}, nil
	case KindNumber:
		out := make([]byte, 9)
		out[0] = prefixNumber
		binary.LittleEndian.PutUint64(out[1:], math.Float64bits(v.Number))
		return out, nil
	case KindString:
		out := make([]byte, 1+len(v.Str))
		out[0] = prefixString
		copy(out[1:], v.Str)
		return out, nil
	case KindArray, KindObject:
		payload, err := cbor.Marshal(toCborAny(v))
		if err != nil {
			return nil, fmt.Errorf("value: cbor encode compound fallback: %w", err)
		}
		out := make([]byte, 1+len(payload))
		out[0] = prefixCbor
		copy(out[1:], payload)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: kind %v", ErrNotPrimitive, v.Kind)
	}
}

// DecodeLeaf decodes bytes produced by EncodeLeaf (or the branch-marker
// sequence passed through unrecognized, which callers must check for via
// IsBranchMarker before calling DecodeLeaf).
func DecodeLeaf(b []byte) (Value, error) {
	if len(b) == 0 {
		return Value{}, fmt.Errorf("%w: empty leaf", ErrDecode)
	}
	switch b[0] {
	case prefixNull:
		return Null, nil
	case prefixBool:
		if len(b) < 2 {
			return Value{}, fmt.Errorf("%w: truncated bool", ErrDecode)
		}
		return Bool(b[1] != 0), nil
	case prefixNumber:
		if len(b) < 9 {
			return Value{}, fmt.Errorf("%w: truncated number", ErrDecode)
		}
		bits := binary.LittleEndian.Uint64(b[1:9])
		return Number(math.Float64frombits(bits)), nil
	case prefixString:
		return String(string(b[1:])), nil
	case prefixCbor:
		var raw any
		if err := cbor.Unmarshal(b[1:], &raw); err != nil {
			return Value{}, fmt.Errorf("%w: cbor decode: %s", ErrDecode, err)
		}
		return fromCborAny(raw)
	default:
		return Value{}, fmt.Errorf("%w: unrecognized prefix %q", ErrDecode, b[0])
	}
}

// toCborAny/fromCborAny bridge Value to the generic interface{} shapes
// fxamacker/cbor marshals, mirroring the json.go bridge to
// encoding/json's any-based decoding.
func toCborAny(v Value) any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = toCborAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Obj))
		for k, e := range v.Obj {
			out[k] = toCborAny(e)
		}
		return out
	default:
		return nil
	}
}

func fromCborAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case uint64:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case string:
		return String(v), nil
	case []any:
		items := make([]Value, len(v))
		for i, e := range v {
			cv, err := fromCborAny(e)
			if err != nil {
				return Value{}, err
			}
			items[i] = cv
		}
		return Array(items), nil
	case map[any]any:
		fields := make(map[string]Value, len(v))
		for k, e := range v {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: non-string cbor map key", ErrDecode)
			}
			cv, err := fromCborAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[ks] = cv
		}
		return Object(fields), nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for k, e := range v {
			cv, err := fromCborAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[k] = cv
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported cbor type %T", ErrDecode, raw)
	}
}
