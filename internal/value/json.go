package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromJSON parses bytes into a Value. Object key order is not preserved
// (§3 states iteration order is semantically irrelevant).
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	return fromAny(raw)
}

func fromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
		}
		return Number(f), nil
	case string:
		return String(v), nil
	case []any:
		items := make([]Value, len(v))
		for i, e := range v {
			cv, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			items[i] = cv
		}
		return Array(items), nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for k, e := range v {
			cv, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[k] = cv
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidJSON, raw)
	}
}

// ToJSON renders v as compact JSON bytes.
func ToJSON(v Value) []byte {
	var buf bytes.Buffer
	writeJSON(&buf, v)
	return buf.Bytes()
}

func writeJSON(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		b, _ := json.Marshal(v.Number)
		buf.Write(b)
	case KindString:
		b, _ := json.Marshal(v.Str)
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSON(buf, item)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		for k, item := range v.Obj {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			writeJSON(buf, item)
		}
		buf.WriteByte('}')
	}
}
