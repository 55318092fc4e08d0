package vellum

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// rawToken keeps a gorilla/css/scanner token's original text together
// with its line/column, so a ParseError can point back at real source
// position even though rule structure is reassembled from a flat
// token stream.
type rawToken struct {
	typ          scanner.TokenType
	value        string
	line, column int
}

// ParseStylesheet parses CSS source into a Stylesheet. Parsing is
// rule-at-a-time: a malformed rule is recorded as a ParseError and
// skipped, but never discards rules around it (spec.md §4.2, §7).
// Nested rules (a block inside a block, using "&" to refer back to
// the enclosing selector) are flattened into independent top-level
// Rules, each with the ancestor selector substituted in for "&".
func ParseStylesheet(source string) *Stylesheet {
	toks := tokenizeStylesheet(source)
	sheet := &Stylesheet{}
	order := 0
	parseRuleList(toks, nil, sheet, &order)
	return sheet
}

func tokenizeStylesheet(src string) []rawToken {
	sc := scanner.New(src)
	var out []rawToken
	for {
		t := sc.Next()
		if t.Type == scanner.TokenEOF || t.Type == scanner.TokenError {
			break
		}
		if t.Type == scanner.TokenComment {
			continue
		}
		out = append(out, rawToken{typ: t.Type, value: t.Value, line: t.Line, column: t.Column})
	}
	return out
}

// parseRuleList consumes a sequence of qualified rules (each
// "prelude { body }") from toks. ancestor, when non-nil, is the
// selector list nested "&" rules resolve against.
func parseRuleList(toks []rawToken, ancestor *Selector, sheet *Stylesheet, order *int) {
	i := 0
	for i < len(toks) {
		for i < len(toks) && isSpaceToken(toks[i]) {
			i++
		}
		if i >= len(toks) {
			break
		}
		preludeStart := i
		depth := 0
		for i < len(toks) {
			if isOpenBrace(toks[i]) && depth == 0 {
				break
			}
			if isOpenBrace(toks[i]) {
				depth++
			}
			if isCloseBrace(toks[i]) {
				depth--
			}
			i++
		}
		if i >= len(toks) {
			sheet.Errors = append(sheet.Errors, ParseError{Kind: UnexpectedToken, Message: "unterminated rule prelude"})
			return
		}
		preludeToks := toks[preludeStart:i]
		i++ // consume '{'
		bodyStart := i
		depth = 1
		for i < len(toks) && depth > 0 {
			if isOpenBrace(toks[i]) {
				depth++
			} else if isCloseBrace(toks[i]) {
				depth--
			}
			if depth > 0 {
				i++
			}
		}
		bodyToks := toks[bodyStart:i]
		if i < len(toks) {
			i++ // consume closing '}'
		}

		prelude := strings.TrimSpace(rawJoin(preludeToks))
		if prelude == "" {
			continue
		}
		selList, err := resolveSelectorList(prelude, ancestor)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				sheet.Errors = append(sheet.Errors, *pe)
			} else {
				sheet.Errors = append(sheet.Errors, ParseError{Kind: BadSelector, Message: err.Error()})
			}
			continue
		}
		for s := range selList {
			selList[s].SourceOrder = *order
		}
		*order++

		decls, nestedBlocks := splitDeclarationsAndNested(bodyToks)
		var ruleDecls []Declaration
		for _, d := range decls {
			parsed, err := parseOneDeclaration(d)
			if err != nil {
				if pe, ok := err.(*ParseError); ok {
					sheet.Errors = append(sheet.Errors, *pe)
				}
				continue
			}
			ruleDecls = append(ruleDecls, parsed...)
		}
		if len(ruleDecls) > 0 {
			sheet.Rules = append(sheet.Rules, Rule{Selectors: selList, Declarations: ruleDecls, SourceOrder: selList[0].SourceOrder})
		}

		if len(nestedBlocks) > 0 {
			// Nested rules resolve "&" against the first selector of this
			// rule's list; a selector list with multiple members and
			// nested rules is an edge case the parser resolves against
			// the first member only, matching the original's bulma
			// nesting behaviour of operating on a single resolved parent.
			parent := selList[0]
			parseRuleList(nestedBlocks, &parent, sheet, order)
		}
	}
}

func isSpaceToken(t rawToken) bool { return t.typ == scanner.TokenS }

func isOpenBrace(t rawToken) bool  { return t.typ == scanner.TokenChar && t.value == "{" }
func isCloseBrace(t rawToken) bool { return t.typ == scanner.TokenChar && t.value == "}" }

func rawJoin(toks []rawToken) string {
	var b strings.Builder
	for _, t := range toks {
		if t.typ == scanner.TokenS {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(t.value)
	}
	return b.String()
}

// splitDeclarationsAndNested separates a rule body's tokens into
// semicolon-terminated declarations and any nested "prelude { ... }"
// blocks (returned as one flat token stream parseRuleList can recurse
// into), in source order.
func splitDeclarationsAndNested(toks []rawToken) ([][]rawToken, []rawToken) {
	var decls [][]rawToken
	var nested []rawToken
	i := 0
	for i < len(toks) {
		for i < len(toks) && isSpaceToken(toks[i]) {
			i++
		}
		if i >= len(toks) {
			break
		}
		start := i
		depth := 0
		sawBrace := false
		for i < len(toks) {
			if isOpenBrace(toks[i]) {
				sawBrace = true
				break
			}
			if toks[i].typ == scanner.TokenChar && toks[i].value == ";" && depth == 0 {
				break
			}
			if toks[i].typ == scanner.TokenChar && toks[i].value == "(" {
				depth++
			}
			if toks[i].typ == scanner.TokenChar && toks[i].value == ")" {
				depth--
			}
			i++
		}
		if sawBrace {
			// Re-scan from start to the matching close brace and append
			// the whole nested rule (prelude + block) to nested.
			braceDepth := 0
			j := i
			for j < len(toks) {
				if isOpenBrace(toks[j]) {
					braceDepth++
				} else if isCloseBrace(toks[j]) {
					braceDepth--
					if braceDepth == 0 {
						j++
						break
					}
				}
				j++
			}
			nested = append(nested, toks[start:j]...)
			i = j
			continue
		}
		if i > start {
			decls = append(decls, toks[start:i])
		}
		if i < len(toks) {
			i++ // consume ';'
		}
	}
	return decls, nested
}

// parseOneDeclaration parses "property: value" (with optional
// "!important") into one or more longhand Declarations, expanding
// shorthands and routing custom-property ("--name") declarations to
// ValueUnresolved so the cascade's fixed-point resolver can finish
// them once every custom property on the element is known.
func parseOneDeclaration(toks []rawToken) ([]Declaration, error) {
	colon := -1
	for i, t := range toks {
		if t.typ == scanner.TokenChar && t.value == ":" {
			colon = i
			break
		}
	}
	if colon < 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "declaration missing ':'"}
	}
	name := strings.ToLower(strings.TrimSpace(rawJoin(toks[:colon])))
	if name == "" {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "empty property name"}
	}
	valueToks := toks[colon+1:]
	important := false
	bangIdx := findImportant(valueToks)
	if bangIdx >= 0 {
		important = true
		valueToks = valueToks[:bangIdx]
	}
	raw := strings.TrimSpace(rawJoin(valueToks))

	if strings.HasPrefix(name, "--") {
		return []Declaration{{Custom: Intern(name), Value: UnresolvedValue(raw), Important: important}}, nil
	}
	if shorthandProperties[name] {
		return ExpandShorthand(name, raw, important)
	}
	prop, ok := LookupProperty(name)
	if !ok {
		return nil, &ParseError{Kind: UnknownProperty, Message: "unknown property " + name}
	}
	if looksLikeVarReference(raw) {
		v, err := ParseDeclarationValue(prop, raw)
		if err != nil {
			return nil, err
		}
		return []Declaration{{Property: prop, Value: v, Important: important}}, nil
	}
	v, err := ParseDeclarationValue(prop, raw)
	if err != nil {
		return nil, err
	}
	return []Declaration{{Property: prop, Value: v, Important: important}}, nil
}

// parseInlineStyle parses a "style" attribute's value — a flat,
// selector-less list of semicolon-terminated declarations, the same
// grammar as a rule body — into longhand Declarations.
func parseInlineStyle(raw string) []Declaration {
	toks := tokenizeStylesheet(raw)
	decls, _ := splitDeclarationsAndNested(toks)
	var out []Declaration
	for _, d := range decls {
		parsed, err := parseOneDeclaration(d)
		if err != nil {
			continue
		}
		out = append(out, parsed...)
	}
	return out
}

func looksLikeVarReference(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "var(")
}

func findImportant(toks []rawToken) int {
	for i, t := range toks {
		if t.typ == scanner.TokenChar && t.value == "!" {
			rest := strings.ToLower(strings.TrimSpace(rawJoin(toks[i+1:])))
			if rest == "important" {
				return i
			}
		}
	}
	return -1
}

// resolveSelectorList parses prelude as a selector list and, if
// ancestor is non-nil, resolves every "&" nesting marker in each
// parsed selector against it (spec.md's CSS-nesting support).
func resolveSelectorList(prelude string, ancestor *Selector) (SelectorList, error) {
	list, err := ParseSelectorList(prelude)
	if err != nil {
		return nil, err
	}
	if ancestor == nil {
		return list, nil
	}
	for i := range list {
		list[i] = resolveNesting(list[i], *ancestor)
	}
	return list, nil
}

// resolveNesting substitutes "&" in sel for ancestor. A bare "&" key
// compound (e.g. "&:hover") is replaced by ancestor's full chain with
// the pseudo-classes/classes from the nested compound merged onto
// ancestor's key; any other nested compound is instead joined to
// ancestor via an implicit descendant combinator, matching plain CSS
// nesting's "relative selector" semantics.
func resolveNesting(sel Selector, ancestor Selector) Selector {
	if sel.Key.Nested {
		merged := ancestor.Key
		merged.Classes = append(append([]Symbol{}, merged.Classes...), sel.Key.Classes...)
		merged.Attributes = append(append([]AttrSelector{}, merged.Attributes...), sel.Key.Attributes...)
		merged.PseudoClasses = append(append([]PseudoClass{}, merged.PseudoClasses...), sel.Key.PseudoClasses...)
		if sel.Key.ID != zeroSymbol {
			merged.ID = sel.Key.ID
		}
		if sel.Key.Tag != zeroSymbol {
			merged.Tag = sel.Key.Tag
		}
		out := sel
		out.Key = merged
		out.Ancestors = append(append([]combinatorStep{}, ancestor.Ancestors...), sel.Ancestors...)
		idc, cc, tc := merged.specificity()
		for _, a := range out.Ancestors {
			i2, c2, t2 := a.compound.specificity()
			idc += i2
			cc += c2
			tc += t2
		}
		out.SpecIDs, out.SpecClasses, out.SpecTypes = idc, cc, tc
		return out
	}
	out := sel
	out.Ancestors = append(append([]combinatorStep{}, ancestor.Ancestors...),
		append([]combinatorStep{{combinator: CombinatorDescendant, compound: ancestor.Key}}, sel.Ancestors...)...)
	idc, cc, tc := sel.Key.specificity()
	ai, ac, at := ancestor.Specificity()
	out.SpecIDs = idc + ai
	out.SpecClasses = cc + ac
	out.SpecTypes = tc + at
	return out
}
