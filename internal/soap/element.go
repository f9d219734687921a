package soap

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// dateTimeLayouts are tried in order when reading an xsd:dateTime. The service
// is .NET based and frequently omits the zone designator.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Element is a decoded XML element from a SOAP response. Field names are the
// local element names published by the remote schema; nothing is validated.
// All methods are safe to call on a nil *Element.
type Element struct {
	Name     string
	Text     string
	Nil      bool
	Children []*Element
}

// UnmarshalXML decodes any element into a generic tree.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Name = start.Name.Local
	for _, attr := range start.Attr {
		if attr.Name.Space == xsiNamespace && attr.Name.Local == "nil" {
			e.Nil = attr.Value == "true" || attr.Value == "1"
		}
	}

	var text strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Character data between child elements is indentation.
			if len(e.Children) == 0 {
				e.Text = text.String()
			}
			return nil
		}
	}
}

// Field returns the first child with the given name, or nil.
func (e *Element) Field(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Fields returns every child with the given name in document order.
func (e *Element) Fields(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the text of the named child, or "" when it is missing.
func (e *Element) Get(name string) string {
	return e.Field(name).String()
}

// String returns the element text.
func (e *Element) String() string {
	if e == nil {
		return ""
	}
	return e.Text
}

// IsEmpty reports whether the element carries neither children nor text.
// Whitespace-only text counts as no text.
func (e *Element) IsEmpty() bool {
	return e == nil || (len(e.Children) == 0 && strings.TrimSpace(e.Text) == "")
}

// Int reads the element text as an xsd:int.
func (e *Element) Int() (int, error) {
	if e == nil {
		return 0, fmt.Errorf("no value to read as int")
	}
	v, err := strconv.Atoi(strings.TrimSpace(e.Text))
	if err != nil {
		return 0, fmt.Errorf("element %s: %w", e.Name, err)
	}
	return v, nil
}

// Bool reads the element text as an xsd:boolean.
func (e *Element) Bool() (bool, error) {
	if e == nil {
		return false, fmt.Errorf("no value to read as bool")
	}
	v, err := strconv.ParseBool(strings.TrimSpace(e.Text))
	if err != nil {
		return false, fmt.Errorf("element %s: %w", e.Name, err)
	}
	return v, nil
}

// Time reads the element text as an xsd:dateTime. Values without a zone
// designator are returned in UTC.
func (e *Element) Time() (time.Time, error) {
	if e == nil {
		return time.Time{}, fmt.Errorf("no value to read as time")
	}
	text := strings.TrimSpace(e.Text)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("element %s: cannot parse %q as dateTime", e.Name, text)
}

// Value converts the element into plain Go values: leaves become strings (or
// nil when xsi:nil is set), other elements become maps keyed by child name.
// A name that repeats within one parent maps to a slice, and so does the item
// name of a list element, even when the list holds a single item.
func (e *Element) Value() any {
	if e == nil || e.Nil {
		return nil
	}
	if len(e.Children) == 0 {
		return e.Text
	}

	list := e.isList()
	counts := make(map[string]int, len(e.Children))
	for _, c := range e.Children {
		counts[c.Name]++
	}
	out := make(map[string]any, len(counts))
	for _, c := range e.Children {
		if counts[c.Name] == 1 && !list {
			out[c.Name] = c.Value()
			continue
		}
		items, _ := out[c.Name].([]any)
		out[c.Name] = append(items, c.Value())
	}
	return out
}

// isList reports whether e is an ArrayOfX element: every child is a record
// carrying the same name.
func (e *Element) isList() bool {
	for _, c := range e.Children {
		if c.Name != e.Children[0].Name || (len(c.Children) == 0 && !c.Nil) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the result of Value.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Value())
}

// EncodeMsgpack encodes the result of Value.
func (e *Element) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(e.Value())
}

var (
	_ json.Marshaler        = (*Element)(nil)
	_ msgpack.CustomEncoder = (*Element)(nil)
	_ xml.Unmarshaler       = (*Element)(nil)
)
