package sax

// MaxBufferLength is the default ceiling on any single named buffer before
// the watchdog auto-flushes (text/cdata/script) or fails (everything else).
const MaxBufferLength = 65536

// minBufferLength is the floor MaxBufferLength is clamped to: a parser
// configured with an absurdly small buffer limit would otherwise livelock
// the watchdog against single-character accumulations.
const minBufferLength = 10

// XMLNamespaceURI and XMLNSNamespaceURI are the two namespace URIs every
// parser's root scope is seeded with, per the XML Namespaces recommendation.
const (
	XMLNamespaceURI   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespaceURI = "http://www.w3.org/2000/xmlns/"
)

// config holds the immutable-after-construction options for a Parser.
// Generalized from the teacher's functional-options config (xml.go §1):
// the same Option-function shape, applied to this spec's option set
// instead of MapXML's ForceArray/namespaces/valueHooks.
type config struct {
	trim            bool
	normalize       bool
	lowercase       bool
	xmlns           bool
	trackPosition   bool
	strictEntities  bool
	noscript        bool
	maxBufferLength int
}

func defaultConfig() config {
	return config{
		maxBufferLength: MaxBufferLength,
	}
}

// Option mutates a Parser's configuration at construction time.
type Option func(*config)

// Trim strips leading/trailing whitespace from text and comment payloads.
func Trim() Option { return func(c *config) { c.trim = true } }

// Normalize collapses runs of whitespace to a single space in text and
// comment payloads.
func Normalize() Option { return func(c *config) { c.normalize = true } }

// Lowercase normalizes tag and attribute names to lowercase in non-strict
// mode (the non-strict default is uppercase, matching historical SGML
// soup-parser behavior).
func Lowercase() Option { return func(c *config) { c.lowercase = true } }

// XMLNS enables namespace resolution: opennamespace/closenamespace events,
// and prefix/local/uri qualification on tags and attributes.
func XMLNS() Option { return func(c *config) { c.xmlns = true } }

// TrackPosition maintains line/column/offset and annotates errors with it.
func TrackPosition() Option { return func(c *config) { c.trackPosition = true } }

// StrictEntities restricts named entity resolution to the five
// XML-predefined entities (amp, apos, gt, lt, quot) instead of the full
// HTML4 named-entity set.
func StrictEntities() Option { return func(c *config) { c.strictEntities = true } }

// NoScript disables the <script> raw-content mode in non-strict parsing.
func NoScript() Option { return func(c *config) { c.noscript = true } }

// WithMaxBufferLength overrides the default 64 KiB buffer watchdog ceiling.
// Values below the 10-character floor are clamped up to it.
func WithMaxBufferLength(n int) Option {
	return func(c *config) {
		if n < minBufferLength {
			n = minBufferLength
		}
		c.maxBufferLength = n
	}
}
