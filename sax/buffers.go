package sax

import "strings"

// BufferSet is the mapping from the twelve named text accumulators to their
// growable character sequences (spec §3 "Buffer set"). It is grounded on the
// teacher's string-accumulation style (xml/map.go's OrderedMap), adapted
// here to a fixed set of named strings.Builders rather than a dynamic map,
// since the accumulator set is closed and known at compile time.
type BufferSet struct {
	Comment      strings.Builder
	SgmlDecl     strings.Builder
	TextNode     strings.Builder
	TagName      strings.Builder
	Doctype      strings.Builder
	ProcInstName strings.Builder
	ProcInstBody strings.Builder
	Entity       strings.Builder
	AttribName   strings.Builder
	AttribValue  strings.Builder
	CData        strings.Builder
	Script       strings.Builder
}

// reset truncates every buffer to empty, per the data model's reset rule.
func (b *BufferSet) reset() {
	b.Comment.Reset()
	b.SgmlDecl.Reset()
	b.TextNode.Reset()
	b.TagName.Reset()
	b.Doctype.Reset()
	b.ProcInstName.Reset()
	b.ProcInstBody.Reset()
	b.Entity.Reset()
	b.AttribName.Reset()
	b.AttribValue.Reset()
	b.CData.Reset()
	b.Script.Reset()
}

// checkBufferLength implements the §4.3 watchdog. It is invoked after each
// Write call once the stream offset has crossed nextCheckOffset: textNode,
// cdata and script overflow by auto-flushing as their respective event;
// every other buffer overflowing is fatal.
func (p *Parser) checkBufferLength() {
	maxLen := p.maxBufferLength
	if maxLen < minBufferLength {
		maxLen = minBufferLength
	}

	maxObserved := 0
	observe := func(n int) {
		if n > maxObserved {
			maxObserved = n
		}
	}

	b := &p.buffers
	observe(b.Comment.Len())
	observe(b.SgmlDecl.Len())
	observe(b.TagName.Len())
	observe(b.Doctype.Len())
	observe(b.ProcInstName.Len())
	observe(b.ProcInstBody.Len())
	observe(b.Entity.Len())
	observe(b.AttribName.Len())
	observe(b.AttribValue.Len())

	if b.TextNode.Len() > maxLen {
		p.closeText()
	}
	observe(b.TextNode.Len())

	if b.CData.Len() > maxLen {
		p.flushCData()
	}
	observe(b.CData.Len())

	if b.Script.Len() > maxLen {
		p.flushScript()
	}
	observe(b.Script.Len())

	for _, n := range []int{
		b.Comment.Len(), b.SgmlDecl.Len(), b.TagName.Len(), b.Doctype.Len(),
		b.ProcInstName.Len(), b.ProcInstBody.Len(), b.Entity.Len(),
		b.AttribName.Len(), b.AttribValue.Len(),
	} {
		if n > maxLen {
			p.fail("Max buffer length exceeded")
			return
		}
	}

	p.nextCheckOffset = p.charOffset + (maxLen - maxObserved)
}
