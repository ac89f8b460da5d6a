package value

import "testing"

func TestLeafRoundTrip(t *testing.T) {
	cases := []Value{
		Null,
		Bool(true),
		Bool(false),
		Number(30),
		Number(-1.5),
		String("Alice"),
		String(""),
	}
	for _, v := range cases {
		enc, err := EncodeLeaf(v)
		if err != nil {
			t.Fatalf("EncodeLeaf(%v): %v", v, err)
		}
		got, err := DecodeLeaf(enc)
		if err != nil {
			t.Fatalf("DecodeLeaf(%x): %v", enc, err)
		}
		if !Equal(got, v) {
			t.Errorf("round trip mismatch: got %+v want %+v", got, v)
		}
	}
}

func TestLeafCompoundFallback(t *testing.T) {
	v := Object(map[string]Value{"a": Number(1), "b": Array([]Value{String("x")})})
	enc, err := EncodeLeaf(v)
	if err != nil {
		t.Fatalf("EncodeLeaf: %v", err)
	}
	if enc[0] != prefixCbor {
		t.Fatalf("expected cbor prefix, got %q", enc[0])
	}
	got, err := DecodeLeaf(enc)
	if err != nil {
		t.Fatalf("DecodeLeaf: %v", err)
	}
	if !Equal(got, v) {
		t.Errorf("compound round trip mismatch: got %+v want %+v", got, v)
	}
}

func TestBranchMarker(t *testing.T) {
	m := BranchMarker(ShapeArray)
	shape, ok := IsBranchMarker(m)
	if !ok || shape != ShapeArray {
		t.Fatalf("IsBranchMarker(%x) = %v, %v", m, shape, ok)
	}
	leaf, _ := EncodeLeaf(String("s"))
	if _, ok := IsBranchMarker(leaf); ok {
		t.Error("string leaf misidentified as branch marker")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := []byte(`{"name":"Alice","age":30,"active":true,"tags":["a","b"],"meta":null}`)
	v, err := FromJSON(in)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	out := ToJSON(v)
	v2, err := FromJSON(out)
	if err != nil {
		t.Fatalf("FromJSON(ToJSON): %v", err)
	}
	if !Equal(v, v2) {
		t.Errorf("json round trip mismatch: %+v vs %+v", v, v2)
	}
}
