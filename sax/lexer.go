package sax

import "strings"

// processChar is the single per-character dispatch (spec §4.4): a 36-state
// switch, one case per lexer state. Position has already been advanced for
// c by Write's loop (the bulk Text path, appendTextSpan, advances position
// itself and does not call processChar).
func (p *Parser) processChar(c rune) {
	switch p.state {

	case StateBegin:
		p.state = StateBeginWhitespace
		if c == '\uFEFF' {
			return
		}
		p.handleBeginWhitespace(c)

	case StateBeginWhitespace:
		p.handleBeginWhitespace(c)

	case StateText:
		p.handleText(c)

	case StateTextEntity:
		p.handleEntityChar(c, &p.buffers.TextNode, StateText)

	case StateOpenWaka:
		p.handleOpenWaka(c)

	case StateSgmlDecl:
		p.handleSgmlDecl(c)

	case StateSgmlDeclQuoted:
		p.buffers.SgmlDecl.WriteRune(c)
		if c == p.previousChar {
			p.previousChar = 0
			p.state = StateSgmlDecl
		}

	case StateDocType:
		p.handleDocType(c)

	case StateDocTypeQuoted:
		p.buffers.Doctype.WriteRune(c)
		if c == p.previousChar {
			p.previousChar = 0
			p.state = StateDocType
		}

	case StateDocTypeDTD:
		p.buffers.Doctype.WriteRune(c)
		switch {
		case c == ']':
			p.state = StateDocType
		case isQuoteChar(c):
			p.previousChar = c
			p.state = StateDocTypeDTDQuoted
		}

	case StateDocTypeDTDQuoted:
		p.buffers.Doctype.WriteRune(c)
		if c == p.previousChar {
			p.state = StateDocTypeDTD
		}

	case StateCommentStarting:
		p.state = StateComment
		if c == '-' {
			p.state = StateCommentEnding
		} else {
			p.buffers.Comment.WriteRune(c)
		}

	case StateComment:
		if c == '-' {
			p.state = StateCommentEnding
		} else {
			p.buffers.Comment.WriteRune(c)
		}

	case StateCommentEnding:
		if c == '-' {
			p.state = StateCommentEnded
		} else {
			p.buffers.Comment.WriteRune('-')
			p.buffers.Comment.WriteRune(c)
			p.state = StateComment
		}

	case StateCommentEnded:
		if c == '>' {
			comment := p.applyTextOptions(p.buffers.Comment.String())
			p.buffers.Comment.Reset()
			p.state = StateText
			if comment != "" {
				p.emit(Event{Kind: EventComment, Text: comment})
			}
		} else {
			p.strictFail("Malformed comment")
			p.buffers.Comment.WriteString("--")
			p.buffers.Comment.WriteRune(c)
			p.state = StateComment
		}

	case StateCData:
		if c == ']' {
			p.state = StateCDataEnding
		} else {
			p.buffers.CData.WriteRune(c)
		}

	case StateCDataEnding:
		if c == ']' {
			p.state = StateCDataEnding2
		} else {
			p.buffers.CData.WriteRune(']')
			p.buffers.CData.WriteRune(c)
			p.state = StateCData
		}

	case StateCDataEnding2:
		switch c {
		case '>':
			p.flushCData()
			p.emit(Event{Kind: EventCloseCDATA})
			p.state = StateText
		case ']':
			p.buffers.CData.WriteRune(']')
		default:
			p.buffers.CData.WriteString("]]")
			p.buffers.CData.WriteRune(c)
			p.state = StateCData
		}

	case StateProcInst:
		switch {
		case c == '?':
			p.state = StateProcInstEnding
		case isWhitespace(c):
			p.state = StateProcInstBody
		default:
			p.buffers.ProcInstName.WriteRune(c)
		}

	case StateProcInstBody:
		if p.buffers.ProcInstBody.Len() == 0 && isWhitespace(c) {
			return
		}
		if c == '?' {
			p.state = StateProcInstEnding
		} else {
			p.buffers.ProcInstBody.WriteRune(c)
		}

	case StateProcInstEnding:
		if c == '>' {
			name := p.buffers.ProcInstName.String()
			body := p.buffers.ProcInstBody.String()
			p.buffers.ProcInstName.Reset()
			p.buffers.ProcInstBody.Reset()
			p.emit(Event{Kind: EventProcessingInstruction, ProcInst: ProcInstPayload{Name: name, Body: body}})
			p.state = StateText
		} else {
			p.buffers.ProcInstBody.WriteRune('?')
			p.buffers.ProcInstBody.WriteRune(c)
			p.state = StateProcInstBody
		}

	case StateOpenTag:
		p.handleOpenTag(c)

	case StateOpenTagSlash:
		if c == '>' {
			p.openTag(true)
			p.closeTag()
		} else {
			p.strictFail("Forward-slash in opening tag not followed by >")
			p.state = StateAttrib
		}

	case StateAttrib:
		p.handleAttrib(c)

	case StateAttribName:
		p.handleAttribName(c)

	case StateAttribNameSawWhite:
		p.handleAttribNameSawWhite(c)

	case StateAttribValue:
		p.handleAttribValue(c)

	case StateAttribValueQuoted:
		p.handleAttribValueQuoted(c)

	case StateAttribValueClosed:
		p.handleAttribValueClosed(c)

	case StateAttribValueUnquoted:
		p.handleAttribValueUnquoted(c)

	case StateAttribValueEntityQ:
		p.handleEntityChar(c, &p.buffers.AttribValue, StateAttribValueQuoted)

	case StateAttribValueEntityU:
		p.handleEntityChar(c, &p.buffers.AttribValue, StateAttribValueUnquoted)

	case StateCloseTag:
		p.handleCloseTag(c)

	case StateCloseTagSawWhite:
		if isWhitespace(c) {
			return
		}
		if c == '>' {
			p.closeTag()
		} else {
			p.strictFail("Invalid characters in closing tag")
		}

	case StateScript:
		if c == '<' {
			p.state = StateScriptEnding
		} else {
			p.buffers.Script.WriteRune(c)
		}

	case StateScriptEnding:
		if c == '/' {
			p.state = StateCloseTag
			p.buffers.TagName.Reset()
		} else {
			p.buffers.Script.WriteRune('<')
			p.buffers.Script.WriteRune(c)
			p.state = StateScript
		}
	}
}

func (p *Parser) handleBeginWhitespace(c rune) {
	if isWhitespace(c) {
		return
	}
	if c == '<' {
		p.state = StateOpenWaka
		p.startTagPosition = p.charOffset
		return
	}
	p.strictFail("Non-whitespace before first tag")
	p.buffers.TextNode.WriteRune(c)
	p.state = StateText
}

func (p *Parser) handleText(c rune) {
	if c == '<' {
		p.state = StateOpenWaka
		p.startTagPosition = p.charOffset
		return
	}
	if c == '&' {
		p.state = StateTextEntity
		p.buffers.Entity.Reset()
		return
	}
	if !isWhitespace(c) && (!p.sawRoot || p.closedRoot) {
		p.strictFail("Text data outside of root node")
	}
	p.buffers.TextNode.WriteRune(c)
}

// handleEntityChar implements the shared entity-parsing state machine used
// by TextEntity, AttribValueEntityQ and AttribValueEntityU: accumulate a
// name, resolve it on ';', or bail out leniently on anything else.
func (p *Parser) handleEntityChar(c rune, target *strings.Builder, returnState State) {
	if c == ';' {
		target.WriteString(p.parseEntity(p.buffers.Entity.String()))
		p.buffers.Entity.Reset()
		p.state = returnState
		return
	}

	isFirst := p.buffers.Entity.Len() == 0
	matches := isEntityBodyChar(c)
	if isFirst {
		matches = isEntityStartChar(c)
	}
	if matches {
		p.buffers.Entity.WriteRune(c)
		return
	}

	p.strictFail("Invalid character in entity name")
	target.WriteRune('&')
	target.WriteString(p.buffers.Entity.String())
	target.WriteRune(c)
	p.buffers.Entity.Reset()
	p.state = returnState
}

func (p *Parser) handleOpenWaka(c rune) {
	switch {
	case c == '!':
		p.state = StateSgmlDecl
		p.buffers.SgmlDecl.Reset()
	case isWhitespace(c):
		// wait for it...
	case isNameStartChar(c):
		p.state = StateOpenTag
		p.buffers.TagName.Reset()
		p.buffers.TagName.WriteRune(c)
	case c == '/':
		p.state = StateCloseTag
		p.buffers.TagName.Reset()
	case c == '?':
		p.state = StateProcInst
		p.buffers.ProcInstName.Reset()
		p.buffers.ProcInstBody.Reset()
	default:
		p.strictFail("Unencoded <")
		if pad := p.charOffset - p.startTagPosition - 1; pad > 0 {
			p.buffers.TextNode.WriteString(strings.Repeat(" ", pad))
		}
		p.buffers.TextNode.WriteRune('<')
		p.buffers.TextNode.WriteRune(c)
		p.state = StateText
	}
}

func (p *Parser) handleSgmlDecl(c rune) {
	p.buffers.SgmlDecl.WriteRune(c)
	s := p.buffers.SgmlDecl.String()

	switch {
	case strings.EqualFold(s, "[CDATA["):
		p.emit(Event{Kind: EventOpenCDATA})
		p.buffers.CData.Reset()
		p.buffers.SgmlDecl.Reset()
		p.state = StateCData
	case s == "--":
		p.buffers.Comment.Reset()
		p.buffers.SgmlDecl.Reset()
		p.state = StateCommentStarting
	case strings.EqualFold(s, "DOCTYPE"):
		if p.doctypeSeen || p.sawRoot {
			p.strictFail("Inappropriately located doctype declaration")
		}
		p.buffers.Doctype.Reset()
		p.buffers.SgmlDecl.Reset()
		p.state = StateDocType
	case c == '>':
		decl := s[:len(s)-1]
		p.buffers.SgmlDecl.Reset()
		p.emit(Event{Kind: EventSGMLDeclaration, Text: decl})
		p.state = StateText
	case isQuoteChar(c):
		p.previousChar = c
		p.state = StateSgmlDeclQuoted
	}
}

func (p *Parser) handleDocType(c rune) {
	if c == '>' {
		p.state = StateText
		doctype := p.buffers.Doctype.String()
		p.buffers.Doctype.Reset()
		p.emit(Event{Kind: EventDoctype, Text: doctype})
		p.doctypeSeen = true
		return
	}
	p.buffers.Doctype.WriteRune(c)
	switch {
	case c == '[':
		p.state = StateDocTypeDTD
	case isQuoteChar(c):
		p.previousChar = c
		p.state = StateDocTypeQuoted
	}
}

func (p *Parser) handleOpenTag(c rune) {
	if isNameBodyChar(c) {
		p.buffers.TagName.WriteRune(c)
		return
	}

	p.newTag()

	switch {
	case c == '>':
		p.openTag(false)
	case c == '/':
		p.state = StateOpenTagSlash
	default:
		if !isWhitespace(c) {
			p.strictFail("Invalid character in tag name")
		}
		p.state = StateAttrib
	}
}

func (p *Parser) handleAttrib(c rune) {
	switch {
	case isWhitespace(c):
	case c == '>':
		p.openTag(false)
	case c == '/':
		p.state = StateOpenTagSlash
	case isNameStartChar(c):
		p.buffers.AttribName.Reset()
		p.buffers.AttribName.WriteRune(c)
		p.buffers.AttribValue.Reset()
		p.state = StateAttribName
	default:
		p.strictFail("Invalid attribute name")
	}
}

func (p *Parser) handleAttribName(c rune) {
	switch {
	case c == '=':
		p.state = StateAttribValue
	case c == '>':
		p.strictFail("Attribute without value")
		p.buffers.AttribValue.Reset()
		p.buffers.AttribValue.WriteString(p.buffers.AttribName.String())
		p.commitAttribute()
		p.openTag(false)
	case isWhitespace(c):
		p.state = StateAttribNameSawWhite
	case isNameBodyChar(c):
		p.buffers.AttribName.WriteRune(c)
	default:
		p.strictFail("Invalid attribute name")
	}
}

func (p *Parser) handleAttribNameSawWhite(c rune) {
	if c == '=' {
		p.state = StateAttribValue
		return
	}
	if isWhitespace(c) {
		return
	}

	p.strictFail("Attribute without value")
	name := p.buffers.AttribName.String()
	p.commitAttributeNamed(name, "")
	p.buffers.AttribName.Reset()

	switch {
	case c == '>':
		p.openTag(false)
	case isNameStartChar(c):
		p.buffers.AttribName.WriteRune(c)
		p.state = StateAttribName
	default:
		p.strictFail("Invalid attribute name")
		p.state = StateAttrib
	}
}

func (p *Parser) handleAttribValue(c rune) {
	switch {
	case isWhitespace(c):
	case isQuoteChar(c):
		p.previousChar = c
		p.state = StateAttribValueQuoted
	default:
		p.strictFail("Unquoted attribute value")
		p.buffers.AttribValue.Reset()
		p.buffers.AttribValue.WriteRune(c)
		p.state = StateAttribValueUnquoted
	}
}

func (p *Parser) handleAttribValueQuoted(c rune) {
	if c != p.previousChar {
		if c == '&' {
			p.state = StateAttribValueEntityQ
			p.buffers.Entity.Reset()
		} else {
			p.buffers.AttribValue.WriteRune(c)
		}
		return
	}
	p.commitAttribute()
	p.previousChar = 0
	p.state = StateAttribValueClosed
}

func (p *Parser) handleAttribValueClosed(c rune) {
	switch {
	case isWhitespace(c):
		p.state = StateAttrib
	case c == '>':
		p.openTag(false)
	case c == '/':
		p.state = StateOpenTagSlash
	case isNameStartChar(c):
		p.strictFail("No whitespace between attributes")
		p.buffers.AttribName.Reset()
		p.buffers.AttribName.WriteRune(c)
		p.buffers.AttribValue.Reset()
		p.state = StateAttribName
	default:
		p.strictFail("Invalid attribute name")
	}
}

func (p *Parser) handleAttribValueUnquoted(c rune) {
	if !isAttribEnd(c) {
		if c == '&' {
			p.state = StateAttribValueEntityU
			p.buffers.Entity.Reset()
		} else {
			p.buffers.AttribValue.WriteRune(c)
		}
		return
	}
	p.commitAttribute()
	if c == '>' {
		p.openTag(false)
	} else {
		p.state = StateAttrib
	}
}

func (p *Parser) handleCloseTag(c rune) {
	if p.buffers.TagName.Len() == 0 {
		switch {
		case isWhitespace(c):
		case !isNameStartChar(c):
			if p.scripting {
				p.buffers.Script.WriteString("</")
				p.buffers.Script.WriteRune(c)
				p.state = StateScript
			} else {
				p.strictFail("Invalid tag name in closing tag")
			}
		default:
			p.buffers.TagName.WriteRune(c)
		}
		return
	}

	switch {
	case c == '>':
		p.closeTag()
	case isNameBodyChar(c):
		p.buffers.TagName.WriteRune(c)
	case p.scripting:
		p.buffers.Script.WriteString("</")
		p.buffers.Script.WriteString(p.buffers.TagName.String())
		p.buffers.TagName.Reset()
		p.state = StateScript
	default:
		if !isWhitespace(c) {
			p.strictFail("Invalid tag name in closing tag")
		}
		p.state = StateCloseTagSawWhite
	}
}
