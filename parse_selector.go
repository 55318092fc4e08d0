package vellum

import (
	"fmt"
	"strconv"
	"strings"
)

// selectorScanner is a tiny hand-rolled scanner over selector text.
// Selector grammar (type/class/id/attribute/pseudo-class names,
// combinators, the nesting "&") is small and fixed enough that
// reusing the general CSS value tokenizer would cost more in
// token-shape translation than it would save; gorilla/css/scanner is
// used for the rule structure and declaration values instead
// (tokenizer.go, parse_stylesheet.go, parse_value.go), where its
// numeric/dimension/string/function token types earn their keep.
type selectorScanner struct {
	src []rune
	pos int
}

func newSelectorScanner(s string) *selectorScanner {
	return &selectorScanner{src: []rune(s)}
}

func (s *selectorScanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *selectorScanner) at(off int) rune {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *selectorScanner) advance() rune {
	r := s.peek()
	s.pos++
	return r
}

func (s *selectorScanner) skipSpace() bool {
	start := s.pos
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t' || s.src[s.pos] == '\n') {
		s.pos++
	}
	return s.pos > start
}

func isIdentChar(r rune) bool {
	return r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (s *selectorScanner) readIdent() string {
	var b strings.Builder
	for isIdentChar(s.peek()) {
		b.WriteRune(s.advance())
	}
	return b.String()
}

// ParseSelectorList parses a comma-separated group of complex
// selectors, as found in a stylesheet rule's prelude.
func ParseSelectorList(src string) (SelectorList, error) {
	var out SelectorList
	parts := splitTopLevelComma(src)
	for _, p := range parts {
		sel, err := parseOneSelector(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

func splitTopLevelComma(src string) []string {
	var parts []string
	depth := 0
	last := 0
	runes := []rune(src)
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, string(runes[last:i]))
				last = i + 1
			}
		}
	}
	parts = append(parts, string(runes[last:]))
	return parts
}

func parseOneSelector(src string) (Selector, error) {
	sc := newSelectorScanner(src)
	sc.skipSpace()

	var steps []combinatorStep
	compound, nested, err := parseCompound(sc)
	if err != nil {
		return Selector{}, err
	}
	for {
		hadSpace := sc.skipSpace()
		if sc.pos >= len(sc.src) {
			break
		}
		var comb Combinator
		explicit := false
		switch sc.peek() {
		case '>':
			comb = CombinatorChild
			sc.advance()
			explicit = true
		case '+':
			comb = CombinatorNextSibling
			sc.advance()
			explicit = true
		case '~':
			comb = CombinatorSubsequentSibling
			sc.advance()
			explicit = true
		default:
			if !hadSpace {
				return Selector{}, &ParseError{Kind: BadSelector, Message: fmt.Sprintf("unexpected token in selector %q", src)}
			}
			comb = CombinatorDescendant
		}
		if explicit {
			sc.skipSpace()
		}
		next, nextNested, err := parseCompound(sc)
		if err != nil {
			return Selector{}, err
		}
		steps = append(steps, combinatorStep{combinator: comb, compound: compound})
		compound = next
		nested = nested || nextNested
	}

	idCount, classCount, typeCount := compound.specificity()
	for _, st := range steps {
		i, c, t := st.compound.specificity()
		idCount += i
		classCount += c
		typeCount += t
	}

	return Selector{
		Key:         compound,
		Ancestors:   steps,
		SpecIDs:     idCount,
		SpecClasses: classCount,
		SpecTypes:   typeCount,
	}, nil
}

// parseCompound parses one compound selector (type, id, classes,
// attributes, pseudo-classes, and/or a leading "&" nesting marker) at
// the scanner's current position.
func parseCompound(sc *selectorScanner) (CompoundSelector, bool, error) {
	var c CompoundSelector
	nested := false
	sawAny := false

	if sc.peek() == '&' {
		sc.advance()
		nested = true
		c.Nested = true
		sawAny = true
	}

	if isIdentChar(sc.peek()) && !(sc.peek() >= '0' && sc.peek() <= '9') {
		name := sc.readIdent()
		c.Tag = Intern(name)
		sawAny = true
	} else if sc.peek() == '*' {
		sc.advance()
		sawAny = true
	}

loop:
	for {
		switch sc.peek() {
		case '.':
			sc.advance()
			name := sc.readIdent()
			if name == "" {
				return c, nested, &ParseError{Kind: BadSelector, Message: "expected class name after '.'"}
			}
			c.Classes = append(c.Classes, Intern(name))
			sawAny = true
		case '#':
			sc.advance()
			name := sc.readIdent()
			if name == "" {
				return c, nested, &ParseError{Kind: BadSelector, Message: "expected id after '#'"}
			}
			c.ID = Intern(name)
			sawAny = true
		case '[':
			sc.advance()
			attr, err := parseAttr(sc)
			if err != nil {
				return c, nested, err
			}
			c.Attributes = append(c.Attributes, attr)
			sawAny = true
		case ':':
			sc.advance()
			pc, err := parsePseudo(sc)
			if err != nil {
				return c, nested, err
			}
			c.PseudoClasses = append(c.PseudoClasses, pc)
			sawAny = true
		default:
			break loop
		}
	}

	if !sawAny {
		return c, nested, &ParseError{Kind: BadSelector, Message: "empty compound selector"}
	}
	return c, nested, nil
}

func parseAttr(sc *selectorScanner) (AttrSelector, error) {
	sc.skipSpace()
	name := sc.readIdent()
	if name == "" {
		return AttrSelector{}, &ParseError{Kind: BadSelector, Message: "expected attribute name"}
	}
	sc.skipSpace()
	attr := AttrSelector{Name: Intern(name)}
	if sc.peek() == '=' {
		sc.advance()
		sc.skipSpace()
		val, err := readAttrValue(sc)
		if err != nil {
			return AttrSelector{}, err
		}
		attr.HasValue = true
		attr.MatchValue = val
		sc.skipSpace()
	}
	if sc.peek() != ']' {
		return AttrSelector{}, &ParseError{Kind: BadSelector, Message: "expected ']'"}
	}
	sc.advance()
	return attr, nil
}

func readAttrValue(sc *selectorScanner) (string, error) {
	if sc.peek() == '"' || sc.peek() == '\'' {
		quote := sc.advance()
		var b strings.Builder
		for sc.peek() != quote {
			if sc.pos >= len(sc.src) {
				return "", &ParseError{Kind: BadSelector, Message: "unterminated attribute value"}
			}
			b.WriteRune(sc.advance())
		}
		sc.advance()
		return b.String(), nil
	}
	return sc.readIdent(), nil
}

func parsePseudo(sc *selectorScanner) (PseudoClass, error) {
	name := sc.readIdent()
	switch name {
	case "hover":
		return PseudoClass{Kind: PseudoHover}, nil
	case "focus":
		return PseudoClass{Kind: PseudoFocus}, nil
	case "active":
		return PseudoClass{Kind: PseudoActive}, nil
	case "disabled":
		return PseudoClass{Kind: PseudoDisabled}, nil
	case "checked":
		return PseudoClass{Kind: PseudoChecked}, nil
	case "first-child":
		return PseudoClass{Kind: PseudoFirstChild}, nil
	case "last-child":
		return PseudoClass{Kind: PseudoLastChild}, nil
	case "nth-child":
		if sc.peek() != '(' {
			return PseudoClass{}, &ParseError{Kind: BadSelector, Message: "expected '(' after nth-child"}
		}
		sc.advance()
		sc.skipSpace()
		a, b, err := parseNthFormula(sc)
		if err != nil {
			return PseudoClass{}, err
		}
		sc.skipSpace()
		if sc.peek() != ')' {
			return PseudoClass{}, &ParseError{Kind: BadSelector, Message: "expected ')' to close nth-child"}
		}
		sc.advance()
		return PseudoClass{Kind: PseudoNthChild, NthA: a, NthB: b}, nil
	default:
		return PseudoClass{}, &ParseError{Kind: BadSelector, Message: fmt.Sprintf("unknown pseudo-class %q", name)}
	}
}

// parseNthFormula parses the An+B argument of :nth-child(), supporting
// the "odd"/"even" keywords, a bare integer, and the general "An+B"
// and "An-B" forms.
func parseNthFormula(sc *selectorScanner) (int, int, error) {
	start := sc.pos
	for sc.pos < len(sc.src) && sc.src[sc.pos] != ')' {
		sc.pos++
	}
	raw := strings.TrimSpace(string(sc.src[start:sc.pos]))
	sc.pos = start

	switch raw {
	case "odd":
		sc.pos = start + len(raw)
		return 2, 1, nil
	case "even":
		sc.pos = start + len(raw)
		return 2, 0, nil
	}

	raw = strings.ReplaceAll(raw, " ", "")
	nIdx := strings.IndexAny(raw, "nN")
	if nIdx < 0 {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, &ParseError{Kind: BadSelector, Message: fmt.Sprintf("invalid nth-child argument %q", raw)}
		}
		sc.pos = start + len(raw)
		return 0, n, nil
	}
	aPart := raw[:nIdx]
	var a int
	switch aPart {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		v, err := strconv.Atoi(aPart)
		if err != nil {
			return 0, 0, &ParseError{Kind: BadSelector, Message: fmt.Sprintf("invalid nth-child coefficient %q", aPart)}
		}
		a = v
	}
	bPart := strings.TrimSpace(raw[nIdx+1:])
	b := 0
	if bPart != "" {
		v, err := strconv.Atoi(bPart)
		if err != nil {
			return 0, 0, &ParseError{Kind: BadSelector, Message: fmt.Sprintf("invalid nth-child offset %q", bPart)}
		}
		b = v
	}
	sc.pos = start + len(raw)
	return a, b, nil
}
