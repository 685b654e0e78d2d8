package sax

import "testing"

func TestIsNameStartChar(t *testing.T) {
	cases := map[rune]bool{
		'a': true, 'Z': true, '_': true, ':': true,
		'0': false, '-': false, '.': false, ' ': false,
	}
	for r, want := range cases {
		if got := isNameStartChar(r); got != want {
			t.Errorf("isNameStartChar(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestIsNameBodyChar(t *testing.T) {
	cases := map[rune]bool{
		'a': true, '0': true, '-': true, '.': true, '_': true,
		' ': false, '<': false, '&': false,
	}
	for r, want := range cases {
		if got := isNameBodyChar(r); got != want {
			t.Errorf("isNameBodyChar(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r'} {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false, want true", r)
		}
	}
	if isWhitespace('x') {
		t.Error("isWhitespace('x') = true, want false")
	}
}

func TestQname(t *testing.T) {
	tests := []struct {
		name        string
		isAttribute bool
		wantPrefix  string
		wantLocal   string
	}{
		{"foo", false, "", "foo"},
		{"ns:foo", false, "ns", "foo"},
		{"xmlns", true, "xmlns", ""},
		{"xmlns:ns", true, "xmlns", "ns"},
		{"xmlns", false, "", "xmlns"},
	}
	for _, tt := range tests {
		prefix, local := qname(tt.name, tt.isAttribute)
		if prefix != tt.wantPrefix || local != tt.wantLocal {
			t.Errorf("qname(%q, %v) = (%q, %q), want (%q, %q)",
				tt.name, tt.isAttribute, prefix, local, tt.wantPrefix, tt.wantLocal)
		}
	}
}
