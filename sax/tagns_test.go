package sax

import "testing"

func TestBalancedNesting(t *testing.T) {
	c := parseOne(true, "<a><b/></a>")

	var opens, closes []string
	for _, ev := range c.Events {
		switch ev.Kind {
		case EventOpenTag:
			opens = append(opens, ev.Tag.Name)
		case EventCloseTag:
			closes = append(closes, ev.CloseTagName)
		}
	}

	if got, want := opens, []string{"a", "b"}; !equalSlices(got, want) {
		t.Errorf("opens = %v, want %v", got, want)
	}
	if got, want := closes, []string{"b", "a"}; !equalSlices(got, want) {
		t.Errorf("closes = %v, want %v", got, want)
	}
}

func TestDuplicateAttributeIgnored(t *testing.T) {
	c := parseOne(true, `<a x="1" x="2"/>`)

	var values []string
	for _, ev := range c.Events {
		if ev.Kind == EventAttribute {
			values = append(values, ev.Attribute.Value)
		}
	}
	if got, want := values, []string{"1"}; !equalSlices(got, want) {
		t.Errorf("attribute values = %v, want %v", got, want)
	}
}

func TestNamespaceResolution(t *testing.T) {
	c := parseOne(true, `<a xmlns:ns="urn:x"><ns:b/></a>`, XMLNS())

	var opensNS, closesNS []string
	var bURI string
	for _, ev := range c.Events {
		switch ev.Kind {
		case EventOpenNamespace:
			opensNS = append(opensNS, ev.Namespace.Prefix+"="+ev.Namespace.URI)
		case EventCloseNamespace:
			closesNS = append(closesNS, ev.Namespace.Prefix+"="+ev.Namespace.URI)
		case EventOpenTag:
			if ev.Tag.Local == "b" {
				bURI = ev.Tag.URI
			}
		}
	}

	if got, want := opensNS, []string{"ns=urn:x"}; !equalSlices(got, want) {
		t.Errorf("opennamespace = %v, want %v", got, want)
	}
	if got, want := closesNS, []string{"ns=urn:x"}; !equalSlices(got, want) {
		t.Errorf("closenamespace = %v, want %v", got, want)
	}
	if bURI != "urn:x" {
		t.Errorf("b's resolved URI = %q, want %q", bURI, "urn:x")
	}
}

func TestMismatchedClosingTagRecovers(t *testing.T) {
	c := &Collector{}
	p := New(false, c)
	p.Write("<a><b></c></b></a>")
	if err := p.Close(); err != nil {
		t.Fatalf("Close returned error in non-strict mode: %v", err)
	}

	var closes []string
	for _, ev := range c.Events {
		if ev.Kind == EventCloseTag {
			closes = append(closes, ev.CloseTagName)
		}
	}
	if got, want := closes, []string{"B", "A"}; !equalSlices(got, want) {
		t.Errorf("closes = %v, want %v", got, want)
	}
}

func TestMismatchedClosingTagStrictFails(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("<a><b></c></b></a>")
	p.Close()

	sawErr := false
	for _, ev := range c.Events {
		if ev.Kind == EventError {
			sawErr = true
		}
	}
	if !sawErr {
		t.Error("expected an error event for an unmatched closing tag in strict mode")
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
