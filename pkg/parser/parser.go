// Package parser builds the typed document tree of a Japanese statute from
// its XML representation.
//
// Parsing is strict: the first element that breaks the content model of
// its parent aborts the parse with a single *Error locating it. No partial
// tree is ever returned.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/schema"
	"go.uber.org/zap"
)

// Parser converts statute XML into a *law.Law. A Parser holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	schema *schema.Schema
	log    *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug tracing.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithSchema replaces the built-in schema.
func WithSchema(s *schema.Schema) Option {
	return func(p *Parser) {
		if s != nil {
			p.schema = s
		}
	}
}

// New creates a Parser. Without options it uses the built-in schema and
// logs nothing.
func New(opts ...Option) *Parser {
	p := &Parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.schema == nil {
		p.schema = schema.New()
	}
	return p
}

// Parse reads a whole document from r and builds its tree.
func (p *Parser) Parse(r io.Reader) (*law.Law, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &Error{Kind: MalformedInput, Message: "unable to read XML", Err: err}
	}
	return p.ParseDocument(doc)
}

// ParseBytes builds the tree of the document held in data.
func (p *Parser) ParseBytes(data []byte) (*law.Law, error) {
	return p.Parse(bytes.NewReader(data))
}

// ParseFile builds the tree of the document stored at path.
func (p *Parser) ParseFile(path string) (*law.Law, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p.log.Debug("Parsing file", zap.String("path", path))
	return p.Parse(f)
}

// ParseDocument builds the tree of an already tokenized document. The root
// element must be Law.
func (p *Parser) ParseDocument(doc *etree.Document) (*law.Law, error) {
	root := doc.Root()
	if root == nil {
		return nil, newError(MalformedInput, nil, "document has no root element")
	}
	if n := len(doc.ChildElements()); n != 1 {
		return nil, newError(MalformedInput, nil, "document has %d root elements", n)
	}
	c := child{el: root, path: Path{{Element: root.Tag}}}
	if root.Tag != "Law" {
		if !p.schema.Known(root.Tag) {
			return nil, &Error{Kind: SchemaViolation, Path: c.path, Element: root.Tag, Message: "unknown element " + root.Tag}
		}
		return nil, &Error{
			Kind:     SchemaViolation,
			Path:     c.path,
			Element:  root.Tag,
			Message:  "root element must be Law",
			Expected: "Law",
		}
	}

	b := newBuilder(p.schema, p.log)
	l, err := b.law(c)
	if err != nil {
		p.log.Debug("Parse failed", zap.Error(err))
		return nil, err
	}
	return l, nil
}

// BuildElement builds the node for a single element of any modeled kind,
// e.g. an Article cut out of a larger document. Paths in errors start at el.
func (p *Parser) BuildElement(el *etree.Element) (law.Node, error) {
	if el == nil {
		return nil, newError(MalformedInput, nil, "no element")
	}
	b := newBuilder(p.schema, p.log)
	return resolve(b, b.nodes, child{el: el, path: Path{{Element: el.Tag}}})
}

// Parse reads a document from r with a default Parser.
func Parse(r io.Reader) (*law.Law, error) {
	return New().Parse(r)
}

// ParseFile parses the document at path with a default Parser.
func ParseFile(path string) (*law.Law, error) {
	return New().ParseFile(path)
}
