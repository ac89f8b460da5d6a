package path

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in      string
		want    Path
		wantErr bool
	}{
		{"/", Root, false},
		{"/a", "/a", false},
		{"/a/b", "/a/b", false},
		{"/a/b/", "/a/b", false},
		{"", "", true},
		{"a/b", "", true},
		{"/a//b", "", true},
		{"//", "", true},
	}
	for _, c := range cases {
		got, err := Normalize(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Normalize(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Normalize(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSegments(t *testing.T) {
	if got := Segments(Root); len(got) != 0 {
		t.Errorf("Segments(root) = %v, want empty", got)
	}
	got := Segments(Path("/users/alice/email"))
	want := []string{"users", "alice", "email"}
	if len(got) != len(want) {
		t.Fatalf("Segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segments[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChildPrefix(t *testing.T) {
	if ChildPrefix(Root) != "/" {
		t.Errorf("ChildPrefix(root) = %q, want %q", ChildPrefix(Root), "/")
	}
	if ChildPrefix(Path("/a")) != "/a/" {
		t.Errorf("ChildPrefix(/a) = %q, want %q", ChildPrefix(Path("/a")), "/a/")
	}
}

func TestAncestors(t *testing.T) {
	got := Ancestors(Path("/a/b/c"))
	want := []Path{Root, "/a", "/a/b"}
	if len(got) != len(want) {
		t.Fatalf("Ancestors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ancestors[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHasPrefix(t *testing.T) {
	if !HasPrefix(Path("/a/b"), Path("/a")) {
		t.Error("expected /a/b to have prefix /a")
	}
	if HasPrefix(Path("/ab"), Path("/a")) {
		t.Error("did not expect /ab to have prefix /a")
	}
}
