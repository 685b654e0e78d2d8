package sax

import "testing"

func TestReadyAndEndEventsBracketADocument(t *testing.T) {
	c := parseOne(true, "<a/>")
	if len(c.Events) == 0 || c.Events[0].Kind != EventReady {
		t.Fatalf("first event = %v, want ready", c.Events[0].Kind)
	}
	// End resets the parser and the reset emits a fresh ready, so end is the
	// second-to-last event and ready the last.
	n := len(c.Events)
	if n < 2 || c.Events[n-2].Kind != EventEnd {
		t.Fatalf("second-to-last event = %v, want end", c.Events[n-2].Kind)
	}
	if last := c.Events[n-1]; last.Kind != EventReady {
		t.Fatalf("last event = %v, want ready", last.Kind)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("<a/>")
	if err := p.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	n := len(c.Events)
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if len(c.Events) != n {
		t.Errorf("second Close emitted %d more events, want 0", len(c.Events)-n)
	}
}

func TestWriteAfterCloseFails(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("<a/>")
	p.Close()

	if err := p.Write("<b/>"); err == nil {
		t.Fatal("Write after Close: want error, got nil")
	}
}

func TestEndResetsParserForReuse(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("<a/>")
	if err := p.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	c.Events = nil
	if err := p.Write("<b/>"); err != nil {
		t.Fatalf("Write on reused parser: %v", err)
	}
	if err := p.End(); err != nil {
		t.Fatalf("second End: %v", err)
	}

	sawB := false
	for _, ev := range c.Events {
		if ev.Kind == EventOpenTag && ev.Tag.Name == "b" {
			sawB = true
		}
	}
	if !sawB {
		t.Error("expected to see a fresh document after End() reset the parser")
	}
}

func TestResumeClearsLatchedError(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("x")
	if p.err == nil {
		t.Fatal("expected an error from non-whitespace before the first tag")
	}
	p.Resume()
	if err := p.Write("<a/>"); err != nil {
		t.Errorf("Write after Resume: %v", err)
	}
}

func TestUnclosedRootIsFatalOnEnd(t *testing.T) {
	c := &Collector{}
	p := New(true, c)
	p.Write("<a><b/>")
	if err := p.End(); err == nil {
		t.Fatal("End with unclosed root: want error, got nil")
	}
}

func TestUnclosedRootRecoversSilentlyInNonStrictMode(t *testing.T) {
	c := &Collector{}
	p := New(false, c)
	p.Write("<a><b/>")
	if err := p.End(); err != nil {
		t.Fatalf("End with unclosed root in non-strict mode: want nil, got %v", err)
	}
	for _, ev := range c.Events {
		if ev.Kind == EventError {
			t.Errorf("unexpected error event in non-strict mode: %v", ev.Err)
		}
	}
}

func TestChunkingDoesNotChangeEvents(t *testing.T) {
	doc := `<a x="1"><b>hello &amp; world</b><c/></a>`

	whole := &Collector{}
	p1 := New(true, whole)
	p1.Write(doc)
	p1.Close()

	chunked := &Collector{}
	p2 := New(true, chunked)
	for i := 0; i < len(doc); i++ {
		p2.Write(doc[i : i+1])
	}
	p2.Close()

	if len(whole.Events) != len(chunked.Events) {
		t.Fatalf("event count differs: whole=%d chunked=%d", len(whole.Events), len(chunked.Events))
	}
	for i := range whole.Events {
		a, b := whole.Events[i], chunked.Events[i]
		if a.Kind != b.Kind {
			t.Fatalf("event %d kind differs: %v vs %v", i, a.Kind, b.Kind)
		}
	}
}

func TestCDataSection(t *testing.T) {
	c := parseOne(true, "<a><![CDATA[<not a tag>]]></a>")

	var got string
	for _, ev := range c.Events {
		if ev.Kind == EventCData {
			got = ev.Text
		}
	}
	if want := "<not a tag>"; got != want {
		t.Errorf("cdata = %q, want %q", got, want)
	}
}

func TestComment(t *testing.T) {
	c := parseOne(true, "<a><!-- hi --></a>")

	var got string
	for _, ev := range c.Events {
		if ev.Kind == EventComment {
			got = ev.Text
		}
	}
	if want := " hi "; got != want {
		t.Errorf("comment = %q, want %q", got, want)
	}
}

func TestCommentWithInternalDoubleDashRecoversAsOneEvent(t *testing.T) {
	c := parseOne(false, "<a><!-- blah -- bloo --></a>")

	var comments []string
	for _, ev := range c.Events {
		if ev.Kind == EventComment {
			comments = append(comments, ev.Text)
		}
	}
	if len(comments) != 1 {
		t.Fatalf("comment events = %v, want exactly one", comments)
	}
	if want := " blah -- bloo "; comments[0] != want {
		t.Errorf("comment = %q, want %q", comments[0], want)
	}
}

func TestProcessingInstruction(t *testing.T) {
	c := parseOne(true, `<?xml-stylesheet type="text/xsl" href="x.xsl"?><a/>`)

	var name, body string
	for _, ev := range c.Events {
		if ev.Kind == EventProcessingInstruction {
			name = ev.ProcInst.Name
			body = ev.ProcInst.Body
		}
	}
	if name != "xml-stylesheet" {
		t.Errorf("proc inst name = %q, want %q", name, "xml-stylesheet")
	}
	if want := `type="text/xsl" href="x.xsl"`; body != want {
		t.Errorf("proc inst body = %q, want %q", body, want)
	}
}

func TestTrimAndNormalizeOptions(t *testing.T) {
	c := parseOne(true, "<a>  hello   world  </a>", Trim(), Normalize())
	if got, want := textOf(c), "hello world"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestBufferWatchdogFailsOnOverlongTagName(t *testing.T) {
	c := &Collector{}
	p := New(true, c, WithMaxBufferLength(16))
	longName := "a"
	for i := 0; i < 64; i++ {
		longName += "x"
	}
	p.Write("<" + longName)

	sawErr := false
	for _, ev := range c.Events {
		if ev.Kind == EventError {
			sawErr = true
		}
	}
	if !sawErr {
		t.Error("expected buffer overflow to raise an error event")
	}
}

func TestBufferWatchdogAutoFlushesText(t *testing.T) {
	c := &Collector{}
	p := New(true, c, WithMaxBufferLength(16))
	p.Write("<a>")
	longText := ""
	for i := 0; i < 64; i++ {
		longText += "x"
	}
	if err := p.Write(longText); err != nil {
		t.Fatalf("Write: %v", err)
	}

	textEvents := 0
	for _, ev := range c.Events {
		if ev.Kind == EventText {
			textEvents++
		}
	}
	if textEvents < 1 {
		t.Error("expected text to be auto-flushed rather than failing")
	}
}

func TestScriptRawContentMode(t *testing.T) {
	c := parseOne(false, "<script>if (1 < 2) { alert('<b>'); }</script>")

	var got string
	for _, ev := range c.Events {
		if ev.Kind == EventScript {
			got = ev.Text
		}
	}
	if want := "if (1 < 2) { alert('<b>'); }"; got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}
