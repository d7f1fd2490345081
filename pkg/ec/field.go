package ec

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType declares how a field's raw text is coerced.
type ValueType int

const (
	TypeText ValueType = iota
	TypeInt
	TypeFloat
)

// FieldSpec is one entry of a document registry: where a value lives
// relative to its container element and how to interpret it. Registries
// are read-only lookup tables defined at init.
type FieldSpec struct {
	// Path is the slash-separated element path below the container.
	Path string

	// Attribute, when set, names an attribute to read instead of the
	// element's text. No measurement currently uses it, but the portal has
	// carried attribute-valued fields before and the registry keeps the
	// mechanism.
	Attribute string

	Type ValueType

	// Unit is the display unit for the field as documented by the portal
	// (e.g. "°C"). The unit reported per value comes from the source
	// element's units attribute, not from here.
	Unit string

	English string
	French  string
}

// Label returns the field's display label in the requested language.
func (f FieldSpec) Label(lang Language) string {
	if lang == French {
		return f.French
	}
	return f.English
}

// Coerce converts raw element text to the field's declared type. Floats
// accept either decimal separator: the French rendering of the portal
// emits comma decimals.
func (f FieldSpec) Coerce(text string) (any, error) {
	switch f.Type {
	case TypeInt:
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to int: %w", text, err)
		}
		return v, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to float: %w", text, err)
		}
		return v, nil
	default:
		return text, nil
	}
}

// Extract resolves f against the container element n. A missing element or
// one with empty text yields a nil value and no unit; that is routine for
// historical records (station outages, sensor gaps), not an error. The
// unit is populated only when the source element explicitly carries a
// units attribute.
func (f FieldSpec) Extract(n *Node) (value any, unit string, err error) {
	el := n.Find(f.Path)
	if el == nil {
		return nil, "", nil
	}
	text := el.TrimmedText()
	if text == "" {
		return nil, "", nil
	}

	if f.Attribute != "" {
		v, _ := el.Attr(f.Attribute)
		return v, "", nil
	}

	value, err = f.Coerce(text)
	if err != nil {
		return nil, "", err
	}
	unit, _ = el.Attr("units")
	return value, unit, nil
}
