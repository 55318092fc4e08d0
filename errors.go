package vellum

import "fmt"

// ErrorKind enumerates the parse-error kinds spec.md §4.2 names.
type ErrorKind uint8

const (
	UnknownKeyword ErrorKind = iota
	UnknownProperty
	BadSelector
	InvalidHexColor
	IntegerRequired
	OutOfRange
	UnknownFunction
	UnknownColor
	InvalidVariable
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownKeyword:
		return "UnknownKeyword"
	case UnknownProperty:
		return "UnknownProperty"
	case BadSelector:
		return "BadSelector"
	case InvalidHexColor:
		return "InvalidHexColor"
	case IntegerRequired:
		return "IntegerRequired"
	case OutOfRange:
		return "OutOfRange"
	case UnknownFunction:
		return "UnknownFunction"
	case UnknownColor:
		return "UnknownColor"
	case InvalidVariable:
		return "InvalidVariable"
	case UnexpectedToken:
		return "UnexpectedToken"
	}
	return "Unknown"
}

// Location is a (line, column) source position, 1-based.
type Location struct {
	Line, Column int
}

// ParseError is returned per rule or per declaration; the stylesheet
// parser isolates these so one bad rule never discards its neighbours
// (spec.md §4.2, §7).
type ParseError struct {
	Kind     ErrorKind
	Location Location
	Message  string
	Min, Max, Value int
}

func (e *ParseError) Error() string {
	if e.Kind == OutOfRange {
		return fmt.Sprintf("%s at %d:%d: value %d out of range [%d, %d]", e.Kind, e.Location.Line, e.Location.Column, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Location.Line, e.Location.Column, e.Message)
}

// ErrUnsupportedDisplay is the "unsupported feature" error for grid
// layout when LayoutOptions.StrictGrid is set; see the Open Questions
// resolution for grid in DESIGN.md.
var ErrUnsupportedDisplay = fmt.Errorf("vellum: grid layout is not implemented")
