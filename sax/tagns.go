package sax

import "strings"

// newTag is invoked when the open-tag name is complete (spec §4.5): it
// stages a fresh Tag, inherits the parent's namespace scope, clears the
// attribute staging list, and emits opentagstart.
func (p *Parser) newTag() {
	name := p.buffers.TagName.String()
	name = p.looseCase(name)

	tag := &Tag{
		Name:       name,
		Attributes: newAttributeMap(),
	}
	if p.xmlns {
		tag.NS = p.parentNamespace()
	}

	p.tag = tag
	p.attribList = nil

	p.emit(Event{Kind: EventOpenTagStart, Tag: tag})
}

// commitAttribute commits the currently-buffered attribName/attribValue
// pair (spec §4.6's attrib commit), then clears both buffers.
func (p *Parser) commitAttribute() {
	name := p.buffers.AttribName.String()
	value := p.buffers.AttribValue.String()
	p.commitAttributeNamed(name, value)
	p.buffers.AttribName.Reset()
	p.buffers.AttribValue.Reset()
}

func (p *Parser) commitAttributeNamed(name, value string) {
	name = p.looseCase(name)

	for _, staged := range p.attribList {
		if staged.Name == name {
			return
		}
	}
	if p.tag.Attributes.Has(name) {
		return
	}

	if p.xmlns {
		prefix, local := qname(name, true)
		if prefix == "xmlns" {
			switch local {
			case "xml":
				if value != XMLNamespaceURI {
					p.strictFail("xml: prefix must be bound to " + XMLNamespaceURI)
				}
			case "xmlns":
				if value != XMLNSNamespaceURI {
					p.strictFail("xmlns: prefix must be bound to " + XMLNSNamespaceURI)
				}
			}
			parentNS := p.parentNamespace()
			if p.tag.NS == parentNS {
				p.tag.NS = parentNS.clone()
			}
			p.tag.NS.set(local, value)
		}
		p.attribList = append(p.attribList, stagedAttribute{Name: name, Value: value})
		return
	}

	attr := &Attribute{Name: name, Value: value}
	p.tag.Attributes.Set(name, attr)
	p.emit(Event{Kind: EventAttribute, Attribute: attr})
}

// openTag finalizes the current tag (spec §4.6 step on openTag(selfClosing)):
// qualifies names against the namespace scope, emits opennamespace for any
// newly introduced bindings, resolves and emits each staged attribute, pushes
// the tag onto the open-tag stack, and emits opentag.
func (p *Parser) openTag(selfClosing bool) {
	tag := p.tag

	if p.xmlns {
		prefix, local := qname(tag.Name, false)
		tag.Prefix = prefix
		tag.Local = local
		uri, ok := tag.NS.lookup(prefix)
		if prefix != "" && (!ok || uri == "") {
			p.strictFail("Unbound namespace prefix")
			uri = prefix
		}
		tag.URI = uri

		parent := p.parentTag()
		parentNS := p.ns
		if parent != nil {
			parentNS = parent.NS
		}
		if tag.NS != parentNS {
			for prefix, uri := range tag.NS.bindings {
				if puri, ok := parentNS.lookup(prefix); ok && puri == uri {
					continue
				}
				p.emit(Event{Kind: EventOpenNamespace, Namespace: NamespacePayload{Prefix: prefix, URI: uri}})
			}
		}

		for _, staged := range p.attribList {
			qprefix, qlocal := qname(staged.Name, true)
			uri := ""
			if qprefix != "" {
				uri, _ = tag.NS.lookup(qprefix)
			}
			if qprefix != "" && qprefix != "xmlns" && uri == "" {
				p.strictFail("Unbound namespace prefix")
				uri = qprefix
			}
			attr := &Attribute{Name: staged.Name, Value: staged.Value, Prefix: qprefix, Local: qlocal, URI: uri}
			tag.Attributes.Set(staged.Name, attr)
			p.emit(Event{Kind: EventAttribute, Attribute: attr})
		}
		p.attribList = nil
	}

	tag.IsSelfClosing = selfClosing
	p.tags = append(p.tags, tag)
	p.sawRoot = true
	p.emit(Event{Kind: EventOpenTag, Tag: tag})

	if !selfClosing {
		if !p.noscript && !p.strict && strings.ToLower(tag.Name) == "script" {
			p.state = StateScript
			p.scripting = true
		} else {
			p.state = StateText
		}
		p.tag = nil
		p.buffers.TagName.Reset()
	}
}

// closeTag implements the recovery semantics for mismatched closings
// (spec §4.7): walk the stack for a matching name, strict-failing on every
// intervening tag, then pop everything from the match up.
func (p *Parser) closeTag() {
	name := p.buffers.TagName.String()
	if name == "" {
		p.strictFail("Weird empty close tag")
		p.buffers.TextNode.WriteString("</>")
		p.state = StateText
		return
	}

	if p.scripting && strings.ToLower(name) != "script" {
		p.buffers.Script.WriteString("</")
		p.buffers.Script.WriteString(name)
		p.buffers.Script.WriteString(">")
		p.buffers.TagName.Reset()
		p.state = StateScript
		return
	}
	if p.scripting {
		p.flushScript()
		p.scripting = false
	}

	closeTo := p.looseCase(name)

	matchIndex := -1
	for i := len(p.tags) - 1; i >= 0; i-- {
		if p.tags[i].Name == closeTo {
			matchIndex = i
			break
		}
		p.strictFail("Unexpected close tag")
	}

	if matchIndex < 0 {
		p.strictFail("Unmatched closing tag")
		p.buffers.TextNode.WriteString("</")
		p.buffers.TextNode.WriteString(name)
		p.buffers.TextNode.WriteString(">")
		p.buffers.TagName.Reset()
		p.state = StateText
		return
	}

	for len(p.tags) > matchIndex {
		top := p.tags[len(p.tags)-1]
		p.tags = p.tags[:len(p.tags)-1]
		p.emit(Event{Kind: EventCloseTag, CloseTagName: top.Name})

		if p.xmlns {
			parentNS := p.ns
			if len(p.tags) > 0 {
				parentNS = p.tags[len(p.tags)-1].NS
			}
			if top.NS != parentNS {
				for prefix, uri := range top.NS.bindings {
					if puri, ok := parentNS.lookup(prefix); ok && puri == uri {
						continue
					}
					p.emit(Event{Kind: EventCloseNamespace, Namespace: NamespacePayload{Prefix: prefix, URI: uri}})
				}
			}
		}
	}

	if len(p.tags) == 0 {
		p.closedRoot = true
	}

	p.buffers.TagName.Reset()
	p.buffers.AttribName.Reset()
	p.buffers.AttribValue.Reset()
	p.attribList = nil
	p.state = StateText
}
