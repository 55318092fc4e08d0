package vellum

// Rule is one parsed qualified rule: a selector list sharing a block of
// longhand declarations. Nested rules (spec.md's "&"-nesting support)
// are flattened into independent top-level Rules by the parser before
// a Stylesheet ever holds them, each with its ancestor selector
// substituted in for "&".
type Rule struct {
	Selectors    SelectorList
	Declarations []Declaration
	SourceOrder  int
}

// Stylesheet is an ordered, parsed set of rules plus the parse errors
// recovered from malformed rules along the way (spec.md §4.2, §7: one
// bad rule never discards its neighbours).
type Stylesheet struct {
	Rules  []Rule
	Errors []ParseError
}
