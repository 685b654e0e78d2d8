package sax

import "strings"

// stagedAttribute is one entry of the attribute staging list (spec §3):
// used only in namespace mode, so every binding on a tag is visible before
// attribute URIs get resolved.
type stagedAttribute struct {
	Name  string
	Value string
}

// Parser is a single streaming XML lexer instance. It is not safe for
// concurrent use: callers must serialize Write calls (spec §5).
type Parser struct {
	sink Sink

	strict          bool
	trim            bool
	normalize       bool
	lowercase       bool
	xmlns           bool
	trackPosition   bool
	strictEntities  bool
	noscript        bool
	maxBufferLength int

	state            State
	previousChar     rune
	startTagPosition int

	line       int
	column     int
	charOffset int

	err    error
	closed bool

	sawRoot    bool
	closedRoot bool
	scripting  bool

	nextCheckOffset int

	entities map[string]string

	buffers BufferSet

	tag *Tag

	attribList []stagedAttribute

	tags []*Tag // open-tag stack (LIFO)
	ns   *NamespaceScope

	doctypeSeen bool
}

// New constructs a Parser. strict toggles whether XML violations latch an
// error (true) or are silently recovered from using lenient SGML-ish rules
// (false), mirroring the upstream split between parsing "mode" and the
// functional Options that configure it.
func New(strict bool, sink Sink, opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		sink:            sink,
		strict:          strict,
		trim:            cfg.trim,
		normalize:       cfg.normalize,
		lowercase:       cfg.lowercase,
		xmlns:           cfg.xmlns,
		trackPosition:   cfg.trackPosition,
		strictEntities:  cfg.strictEntities,
		noscript:        cfg.noscript,
		maxBufferLength: cfg.maxBufferLength,
	}
	p.init()
	return p
}

// init (re)establishes the transient per-document state; called both from
// New and from end()'s reset-on-end.
func (p *Parser) init() {
	p.state = StateBegin
	p.previousChar = 0
	p.startTagPosition = 0
	p.line = 0
	p.column = 0
	p.charOffset = 0
	p.err = nil
	p.sawRoot = false
	p.closedRoot = false
	p.scripting = false
	p.nextCheckOffset = p.maxBufferLength
	p.entities = entityTableFor(p.strictEntities)
	p.buffers.reset()
	p.tag = nil
	p.attribList = nil
	p.tags = nil
	p.ns = rootNamespaceScope()
	p.doctypeSeen = false

	p.sink.Emit(Event{Kind: EventReady})
}

// parentNamespace returns the namespace scope a newly opened tag inherits:
// the innermost open tag's scope, or the root scope if the stack is empty.
func (p *Parser) parentNamespace() *NamespaceScope {
	if len(p.tags) == 0 {
		return p.ns
	}
	return p.tags[len(p.tags)-1].NS
}

func (p *Parser) parentTag() *Tag {
	if len(p.tags) == 0 {
		return nil
	}
	return p.tags[len(p.tags)-1]
}

// looseCase applies the non-strict case-normalization rule (spec §4.5):
// lowercase when the Lowercase option is set, uppercase otherwise. Strict
// mode never normalizes case.
func (p *Parser) looseCase(name string) string {
	if p.strict {
		return name
	}
	if p.lowercase {
		return strings.ToLower(name)
	}
	return strings.ToUpper(name)
}

// Write feeds the parser the next chunk of already-decoded text. Callers
// with a byte stream are responsible for decoding upstream of this call
// (spec §1's "binary decoding... assumed to be done upstream").
func (p *Parser) Write(chunk string) error {
	if p.err != nil {
		return p.err
	}
	if p.closed {
		p.fail("Cannot write after close")
		return p.err
	}

	runes := []rune(chunk)
	i := 0
	for i < len(runes) {
		if p.state == StateText {
			j := i
			for j < len(runes) && runes[j] != '<' && runes[j] != '&' {
				j++
			}
			if j > i {
				p.appendTextSpan(runes[i:j])
				i = j
				continue
			}
		}

		c := runes[i]
		p.advancePosition(c)
		p.processChar(c)
		i++
	}

	if p.charOffset >= p.nextCheckOffset {
		p.checkBufferLength()
	}

	return p.err
}

// appendTextSpan bulk-appends a run of ordinary text characters (containing
// neither '<' nor '&') to the textNode buffer. Spec §9 calls out this fast
// path as the 5-10x win over a per-character dispatch; it still performs the
// per-character position update and "text outside root" check the dispatch
// loop would otherwise do one at a time.
func (p *Parser) appendTextSpan(span []rune) {
	for _, c := range span {
		p.advancePosition(c)
		if !isWhitespace(c) && (!p.sawRoot || p.closedRoot) {
			p.strictFail("Text data outside of root node")
		}
	}
	p.buffers.TextNode.WriteString(string(span))
}

// emit routes every event through closeText first (except the text event
// itself), which is what gives the whole parser its "pending text is
// flushed before any structural event" ordering guarantee (spec §5) without
// every call site needing to remember to do it.
func (p *Parser) emit(ev Event) {
	if ev.Kind != EventText {
		p.closeText()
	}
	p.sink.Emit(ev)
}

func (p *Parser) closeText() {
	if p.buffers.TextNode.Len() == 0 {
		return
	}
	text := p.applyTextOptions(p.buffers.TextNode.String())
	p.buffers.TextNode.Reset()
	if text != "" {
		p.sink.Emit(Event{Kind: EventText, Text: text})
	}
}

func (p *Parser) applyTextOptions(s string) string {
	if p.trim {
		s = strings.TrimSpace(s)
	}
	if p.normalize {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}

func (p *Parser) flushCData() {
	if p.buffers.CData.Len() == 0 {
		return
	}
	text := p.buffers.CData.String()
	p.buffers.CData.Reset()
	p.emit(Event{Kind: EventCData, Text: text})
}

func (p *Parser) flushScript() {
	if p.buffers.Script.Len() == 0 {
		return
	}
	text := p.buffers.Script.String()
	p.buffers.Script.Reset()
	p.emit(Event{Kind: EventScript, Text: text})
}

// Flush forces emission of any pending text, cdata or script buffers
// without otherwise altering parser state.
func (p *Parser) Flush() {
	p.closeText()
	p.flushCData()
	p.flushScript()
}

// Resume clears a latched error, allowing further Write calls to proceed.
func (p *Parser) Resume() {
	p.err = nil
}

// End signals end-of-document: it validates that the root element was
// properly closed and that parsing stopped in a quiescent state, flushes
// remaining text, emits EventEnd, and resets all transient state so the
// Parser instance can be reused for a fresh document.
func (p *Parser) End() error {
	if p.sawRoot && !p.closedRoot {
		p.strictFail("Unclosed root tag")
	}
	if p.state != StateBegin && p.state != StateBeginWhitespace && p.state != StateText {
		p.fail("Unexpected end")
	}
	p.closeText()
	p.sink.Emit(Event{Kind: EventEnd})
	err := p.err
	p.init()
	return err
}

// Close ends the document and latches the parser closed: further Write
// calls fail with "Cannot write after close" instead of silently starting a
// new document. Calling Close on an already-closed parser is a no-op, so
// ending is idempotent (spec §8 "Idempotence of end()").
func (p *Parser) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.End()
}
