// Package schema describes the closed element vocabulary of the statute
// markup: which child elements each element may hold, how many of them,
// which alternatives exclude each other and which attributes it carries.
//
// A Schema is built once with New and never modified, so it can be shared
// by any number of parsers.
package schema

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Occurs is the multiplicity of a child element.
type Occurs int

const (
	One Occurs = iota
	Optional
	Many
	OneOrMore
)

func (o Occurs) String() string {
	switch o {
	case One:
		return "exactly one"
	case Optional:
		return "zero or one"
	case Many:
		return "zero or more"
	case OneOrMore:
		return "one or more"
	}
	return "unknown"
}

// allows reports whether n occurrences satisfy o.
func (o Occurs) allows(n int) bool {
	switch o {
	case One:
		return n == 1
	case Optional:
		return n <= 1
	case OneOrMore:
		return n >= 1
	}
	return true
}

// limit returns the largest permitted count, or -1 when unbounded.
func (o Occurs) limit() int {
	if o == One || o == Optional {
		return 1
	}
	return -1
}

// Content is the kind of content an element holds.
type Content int

const (
	// ElementOnly elements hold child elements and white space only.
	ElementOnly Content = iota
	// Mixed elements interleave character data with inline elements.
	Mixed
	// TextOnly elements hold character data only.
	TextOnly
	// Empty elements hold nothing.
	Empty
)

func (c Content) String() string {
	switch c {
	case ElementOnly:
		return "element-only"
	case Mixed:
		return "mixed"
	case TextOnly:
		return "text-only"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Particle is one permitted child element.
type Particle struct {
	Element string
	Occurs  Occurs
}

// Choice is a group of mutually exclusive alternatives: children from at
// most one alternative may be present. A required choice must have one.
type Choice struct {
	Alternatives []Particle
	Required     bool
}

func (c Choice) names() []string {
	names := make([]string, len(c.Alternatives))
	for i, p := range c.Alternatives {
		names[i] = p.Element
	}
	return names
}

// AttrType is the value domain of an attribute.
type AttrType int

const (
	String AttrType = iota
	Bool
	PositiveInt
	NonNegativeInt
	Enum
)

func (t AttrType) String() string {
	switch t {
	case String:
		return "string"
	case Bool:
		return "boolean"
	case PositiveInt:
		return "positive integer"
	case NonNegativeInt:
		return "non-negative integer"
	case Enum:
		return "enumeration"
	}
	return "unknown"
}

// Attribute declares one attribute of an element.
type Attribute struct {
	Name     string
	Required bool
	Type     AttrType
	Values   []string // Enum only
}

func (a Attribute) check(v string) error {
	switch a.Type {
	case Bool:
		if v != "true" && v != "false" {
			return fmt.Errorf("expected true or false")
		}
	case PositiveInt, NonNegativeInt:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer")
		}
		if a.Type == PositiveInt && n < 1 {
			return fmt.Errorf("expected a positive integer")
		}
		if n < 0 {
			return fmt.Errorf("expected a non-negative integer")
		}
	case Enum:
		if !slices.Contains(a.Values, v) {
			return fmt.Errorf("expected one of %s", strings.Join(a.Values, ", "))
		}
	}
	return nil
}

// Model is the content model of one element.
type Model struct {
	Element    string
	Content    Content
	Particles  []Particle
	Choices    []Choice
	Attributes []Attribute
}

// Allows reports whether tag may appear as a child of the element.
func (m *Model) Allows(tag string) bool {
	_, ok := m.particle(tag)
	return ok
}

func (m *Model) particle(tag string) (Particle, bool) {
	for _, p := range m.Particles {
		if p.Element == tag {
			return p, true
		}
	}
	for _, c := range m.Choices {
		for _, p := range c.Alternatives {
			if p.Element == tag {
				return p, true
			}
		}
	}
	return Particle{}, false
}

// AllowedChildren returns the permitted child tags in declaration order.
func (m *Model) AllowedChildren() []string {
	var out []string
	for _, p := range m.Particles {
		out = append(out, p.Element)
	}
	for _, c := range m.Choices {
		out = append(out, c.names()...)
	}
	return out
}

// Check validates the child element tags of one element, given in document
// order, and whether the element holds non-white-space character data. It
// returns the first violation found, scanning children in order before
// checking counts, or nil.
func (m *Model) Check(tags []string, text bool) *Violation {
	if text && (m.Content == ElementOnly || m.Content == Empty) {
		return &Violation{
			Kind:     StrayText,
			Index:    -1,
			Message:  fmt.Sprintf("character data is not allowed in %s", m.Element),
			Expected: "elements only",
		}
	}

	counts := make(map[string]int, len(tags))
	for i, tag := range tags {
		p, ok := m.particle(tag)
		if !ok || m.Content == TextOnly || m.Content == Empty {
			return &Violation{
				Kind:     Unknown,
				Element:  tag,
				Index:    i,
				Message:  fmt.Sprintf("%s is not allowed in %s", tag, m.Element),
				Expected: m.expected(),
			}
		}
		counts[tag]++
		if limit := p.Occurs.limit(); limit >= 0 && counts[tag] > limit {
			return &Violation{
				Kind:     TooMany,
				Element:  tag,
				Index:    i,
				Message:  fmt.Sprintf("%s allows %s %s", m.Element, p.Occurs, tag),
				Expected: p.Occurs.String(),
			}
		}
	}

	for _, p := range m.Particles {
		if !p.Occurs.allows(counts[p.Element]) {
			return &Violation{
				Kind:     Missing,
				Element:  p.Element,
				Index:    -1,
				Message:  fmt.Sprintf("%s requires %s %s", m.Element, p.Occurs, p.Element),
				Expected: p.Occurs.String(),
			}
		}
	}

	for _, c := range m.Choices {
		if v := m.checkChoice(c, tags); v != nil {
			return v
		}
	}
	return nil
}

func (m *Model) checkChoice(c Choice, tags []string) *Violation {
	var present string
	for i, tag := range tags {
		if !slices.Contains(c.names(), tag) {
			continue
		}
		if present == "" {
			present = tag
			continue
		}
		if tag != present {
			return &Violation{
				Kind:     MixedAlternatives,
				Element:  tag,
				Index:    i,
				Message:  fmt.Sprintf("%s mixes %s and %s", m.Element, present, tag),
				Expected: "only one of " + strings.Join(c.names(), ", "),
			}
		}
	}
	if present == "" && c.Required {
		return &Violation{
			Kind:     Missing,
			Element:  strings.Join(c.names(), "|"),
			Index:    -1,
			Message:  fmt.Sprintf("%s requires one of %s", m.Element, strings.Join(c.names(), ", ")),
			Expected: "one of " + strings.Join(c.names(), ", "),
		}
	}
	return nil
}

// CheckAttributes validates declared attributes using lookup to read their
// values. Undeclared attributes are ignored.
func (m *Model) CheckAttributes(lookup func(name string) (string, bool)) *Violation {
	for _, a := range m.Attributes {
		v, ok := lookup(a.Name)
		if !ok {
			if a.Required {
				return &Violation{
					Kind:     MissingAttribute,
					Element:  a.Name,
					Index:    -1,
					Message:  fmt.Sprintf("%s requires attribute %s", m.Element, a.Name),
					Expected: "attribute " + a.Name,
				}
			}
			continue
		}
		if err := a.check(v); err != nil {
			return &Violation{
				Kind:     BadAttribute,
				Element:  a.Name,
				Index:    -1,
				Message:  fmt.Sprintf("attribute %s=%q of %s: %v", a.Name, v, m.Element, err),
				Expected: err.Error(),
			}
		}
	}
	return nil
}

func (m *Model) expected() string {
	switch m.Content {
	case TextOnly:
		return "character data only"
	case Empty:
		return "no content"
	}
	return "one of " + strings.Join(m.AllowedChildren(), ", ")
}

// ViolationKind classifies a content model violation.
type ViolationKind int

const (
	// Unknown is a child element the model does not permit.
	Unknown ViolationKind = iota + 1
	// StrayText is character data in element-only or empty content.
	StrayText
	// BadAttribute is an attribute value outside its domain.
	BadAttribute
	// Missing is a required child absent.
	Missing
	// TooMany is a child repeated beyond its multiplicity.
	TooMany
	// MixedAlternatives is children from two exclusive alternatives.
	MixedAlternatives
	// MissingAttribute is a required attribute absent.
	MissingAttribute
)

func (k ViolationKind) String() string {
	switch k {
	case Unknown:
		return "unknown element"
	case StrayText:
		return "stray text"
	case BadAttribute:
		return "bad attribute"
	case Missing:
		return "missing element"
	case TooMany:
		return "too many elements"
	case MixedAlternatives:
		return "mixed alternatives"
	case MissingAttribute:
		return "missing attribute"
	}
	return "unknown"
}

// Structural reports whether the violation concerns multiplicity or
// exclusion among legal children rather than the vocabulary itself.
func (k ViolationKind) Structural() bool {
	switch k {
	case Missing, TooMany, MixedAlternatives, MissingAttribute:
		return true
	}
	return false
}

// Violation describes why an element does not match its model.
type Violation struct {
	Kind ViolationKind
	// Element is the offending child tag or attribute name.
	Element string
	// Index is the position of the offending child among all children,
	// or -1 when the violation concerns the element itself.
	Index    int
	Message  string
	Expected string
}

func (v *Violation) Error() string {
	return v.Message
}

// Schema is an immutable set of content models keyed by element name.
type Schema struct {
	models map[string]*Model
}

// New returns the statute schema.
func New() *Schema {
	s := &Schema{models: make(map[string]*Model, 160)}
	for _, m := range models() {
		s.models[m.Element] = m
	}
	return s
}

// Model returns the content model for tag.
func (s *Schema) Model(tag string) (*Model, bool) {
	m, ok := s.models[tag]
	return m, ok
}

// Known reports whether tag is part of the vocabulary.
func (s *Schema) Known(tag string) bool {
	_, ok := s.models[tag]
	return ok
}

// Elements returns every element name in sorted order.
func (s *Schema) Elements() []string {
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
