// Package sax is a streaming, push-style parser for XML 1.0 documents, with
// an optional SGML-ish leniency mode for tag soup.
//
//	sax v1.0 - "The Incremental Tag Stream"
//	========================================
//	A single character-driven state machine that consumes input in
//	arbitrarily sized chunks and emits a linear sequence of structural
//	events (tag open/close, text, comment, CDATA, processing instruction,
//	doctype, attribute, namespace enter/leave, script, errors, end).
//
//	It never builds a document tree. Callers get a Sink and build whatever
//	model they need from the events it emits.
//
// Feature list:
//  1. 36-state lexer over already-decoded text (decoding is the caller's job).
//  2. Buffer-bounded lexing: every accumulator is watched against
//     MaxBufferLength so a pathological document can't grow memory forever.
//  3. Namespace resolution with copy-on-write scope inheritance.
//  4. Lenient (non-strict) recovery for common tag-soup mistakes: unquoted
//     attributes, unencoded '<', mismatched closing tags, HTML entities.
//  5. A <script> raw-content mode for embedded script bodies in lenient mode.
//  6. Optional line/column/offset position tracking, annotated onto errors.
//
// Non-goals: DTD/XSD validation, external entity expansion, XInclude, XPath,
// serialisation, and encoding auto-detection. Binary decoding (bytes -> text)
// and event transport are left to the caller; Parser only ever sees text.
package sax
