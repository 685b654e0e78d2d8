// Command saxdump streams an XML document through sax.Parser and prints one
// line per event, in the spirit of the teacher's r2xml CLI commands
// (xml/cli.go's getInputReader + flag-driven subcommands) adapted to a
// single-purpose dumper for the sax package.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arturoeanton/go-xml/sax"
)

func main() {
	strict := flag.Bool("strict", false, "fail on the first XML violation instead of recovering leniently")
	trim := flag.Bool("trim", false, "trim whitespace from text and comment payloads")
	normalize := flag.Bool("normalize", false, "collapse internal whitespace in text and comment payloads")
	lowercase := flag.Bool("lowercase", false, "lowercase tag/attribute names in non-strict mode")
	xmlns := flag.Bool("xmlns", false, "resolve namespace prefixes and emit namespace events")
	position := flag.Bool("position", false, "annotate errors with line/column/offset")
	strictEntities := flag.Bool("strict-entities", false, "only resolve the five XML-predefined entities")
	noscript := flag.Bool("noscript", false, "disable <script> raw-content mode")
	chunkSize := flag.Int("chunk-size", 4096, "bytes read per Write call")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	r, err := getInputReader(flag.Args())
	if err != nil {
		logger.Error("saxdump: no input", "err", err)
		os.Exit(1)
	}

	opts := []sax.Option{}
	if *trim {
		opts = append(opts, sax.Trim())
	}
	if *normalize {
		opts = append(opts, sax.Normalize())
	}
	if *lowercase {
		opts = append(opts, sax.Lowercase())
	}
	if *xmlns {
		opts = append(opts, sax.XMLNS())
	}
	if *position {
		opts = append(opts, sax.TrackPosition())
	}
	if *strictEntities {
		opts = append(opts, sax.StrictEntities())
	}
	if *noscript {
		opts = append(opts, sax.NoScript())
	}

	w := &eventWriter{out: os.Stdout, log: logger}
	p := sax.New(*strict, w, opts...)

	if err := streamParse(p, r, *chunkSize); err != nil {
		logger.Error("saxdump: parse failed", "err", err)
		os.Exit(1)
	}
	if err := p.Close(); err != nil {
		logger.Error("saxdump: close failed", "err", err)
		os.Exit(1)
	}

	if w.sawError {
		os.Exit(1)
	}
}

// getInputReader mirrors the teacher's stdin-or-file selection (xml/cli.go
// getInputReader): a bare non-flag argument names a file, otherwise stdin is
// read if it's piped.
func getInputReader(args []string) (io.Reader, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return os.Stdin, nil
	}

	return nil, fmt.Errorf("no input provided (pipe or file)")
}

// streamParse feeds r to p in fixed-size chunks, decoding each chunk as
// UTF-8 text before handing it to Write (spec §1's "binary decoding assumed
// done upstream").
func streamParse(p *sax.Parser, r io.Reader, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	buf := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if err := p.Write(string(buf[:n])); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

// eventWriter is a sax.Sink that renders each event as one line of output,
// and tracks whether any error event was observed.
type eventWriter struct {
	out      io.Writer
	log      *slog.Logger
	sawError bool
}

func (w *eventWriter) Emit(ev sax.Event) {
	switch ev.Kind {
	case sax.EventError:
		w.sawError = true
		w.log.Error("parse error", "err", ev.Err)
		return
	case sax.EventText:
		fmt.Fprintf(w.out, "text: %q\n", ev.Text)
	case sax.EventDoctype:
		fmt.Fprintf(w.out, "doctype: %q\n", ev.Text)
	case sax.EventProcessingInstruction:
		fmt.Fprintf(w.out, "processinginstruction: name=%q body=%q\n", ev.ProcInst.Name, ev.ProcInst.Body)
	case sax.EventSGMLDeclaration:
		fmt.Fprintf(w.out, "sgmldeclaration: %q\n", ev.Text)
	case sax.EventOpenCDATA:
		fmt.Fprintln(w.out, "opencdata")
	case sax.EventCData:
		fmt.Fprintf(w.out, "cdata: %q\n", ev.Text)
	case sax.EventCloseCDATA:
		fmt.Fprintln(w.out, "closecdata")
	case sax.EventComment:
		fmt.Fprintf(w.out, "comment: %q\n", ev.Text)
	case sax.EventOpenTagStart:
		fmt.Fprintf(w.out, "opentagstart: %s\n", ev.Tag.Name)
	case sax.EventAttribute:
		fmt.Fprintf(w.out, "attribute: %s=%q\n", ev.Attribute.Name, ev.Attribute.Value)
	case sax.EventOpenNamespace:
		fmt.Fprintf(w.out, "opennamespace: %s=%q\n", ev.Namespace.Prefix, ev.Namespace.URI)
	case sax.EventCloseNamespace:
		fmt.Fprintf(w.out, "closenamespace: %s=%q\n", ev.Namespace.Prefix, ev.Namespace.URI)
	case sax.EventOpenTag:
		fmt.Fprintf(w.out, "opentag: %s\n", ev.Tag.Name)
	case sax.EventCloseTag:
		fmt.Fprintf(w.out, "closetag: %s\n", ev.CloseTagName)
	case sax.EventScript:
		fmt.Fprintf(w.out, "script: %d bytes\n", len(ev.Text))
	case sax.EventReady:
		fmt.Fprintln(w.out, "ready")
	case sax.EventEnd:
		fmt.Fprintln(w.out, "end")
	}
}
