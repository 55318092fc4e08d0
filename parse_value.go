package vellum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// rawText reassembles a token slice's original text, used where a
// value form (colors' functional notation in particular) is easier to
// hand to an existing string-based parser than to re-derive from
// individual tokens.
func rawText(toks []valueToken) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.value)
	}
	return b.String()
}

// ParseDeclarationValue parses the token stream for one property's
// value, dispatching on prop's expected shape (spec.md §4.2: "value
// parsing is property-dispatched"). var() references are captured as
// ValueCustom regardless of the target property's shape; substitution
// happens later once the cascade knows every custom property's value.
func ParseDeclarationValue(prop Property, raw string) (Value, error) {
	toks := tokenizeValue(raw)
	if len(toks) == 0 {
		return Value{}, &ParseError{Kind: UnexpectedToken, Message: "empty declaration value"}
	}
	if v, ok, err := tryParseGlobalOrVar(toks); ok {
		return v, err
	}
	switch prop {
	case PropDisplay:
		return parseKeyword(toks, map[string]Keyword{
			"block": KeywordBlock, "flex": KeywordFlex, "inline": KeywordInline, "none": KeywordNone,
			"grid": KeywordGrid,
		})
	case PropFlexDirection:
		return parseKeyword(toks, map[string]Keyword{
			"row": KeywordRow, "row-reverse": KeywordRowReverse,
			"column": KeywordColumn, "column-reverse": KeywordColumnReverse,
		})
	case PropFlexWrap:
		return parseKeyword(toks, map[string]Keyword{
			"nowrap": KeywordNowrap, "wrap": KeywordWrap, "wrap-reverse": KeywordWrapReverse,
		})
	case PropJustifyContent:
		return parseKeyword(toks, map[string]Keyword{
			"flex-start": KeywordFlexStart, "flex-end": KeywordFlexEnd, "center": KeywordCenter,
			"space-between": KeywordSpaceBetween, "space-around": KeywordSpaceAround, "space-evenly": KeywordSpaceEvenly,
		})
	case PropAlignContent:
		return parseKeyword(toks, map[string]Keyword{
			"flex-start": KeywordFlexStart, "flex-end": KeywordFlexEnd, "center": KeywordCenter,
			"space-between": KeywordSpaceBetween, "space-around": KeywordSpaceAround, "stretch": KeywordStretch,
		})
	case PropAlignItems, PropAlignSelf:
		return parseKeyword(toks, map[string]Keyword{
			"flex-start": KeywordFlexStart, "flex-end": KeywordFlexEnd, "center": KeywordCenter,
			"stretch": KeywordStretch, "baseline": KeywordBaseline, "auto": KeywordAuto,
		})
	case PropFlexGrow, PropFlexShrink:
		return parseNumber(toks)
	case PropFlexBasis:
		return parseDimensionNoNone(toks)
	case PropRowGap, PropColumnGap:
		return parseLengthValue(toks)
	case PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight:
		return parseDimension(toks)
	case PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft:
		return parseDimensionNoNone(toks)
	case PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft:
		return parseLengthValue(toks)
	case PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle:
		return parseKeyword(toks, map[string]Keyword{
			"none": KeywordNone, "solid": KeywordSolid, "dashed": KeywordDashed,
			"double": KeywordDouble, "round": KeywordRound, "hidden": KeywordHidden,
		})
	case PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor, PropColor, PropBackgroundColor:
		return parseColorValue(toks)
	case PropFontWeight:
		return parseKeyword(toks, map[string]Keyword{"normal": KeywordNormal, "bold": KeywordBold})
	case PropFontStyle:
		return parseKeyword(toks, map[string]Keyword{"normal": KeywordNormal, "italic": KeywordItalic})
	case PropTextDecoration:
		return parseKeyword(toks, map[string]Keyword{
			"none": KeywordNone, "underline": KeywordUnderline, "line-through": KeywordLineThrough,
		})
	case PropTextAlign:
		return parseKeyword(toks, map[string]Keyword{
			"left": KeywordLeft, "center": KeywordCenter, "right": KeywordRight,
		})
	case PropVerticalAlign:
		return parseKeyword(toks, map[string]Keyword{
			"top": KeywordTop, "middle": KeywordMiddle, "bottom": KeywordBottom,
		})
	case PropWhiteSpace:
		return parseKeyword(toks, map[string]Keyword{
			"normal": KeywordNormal, "nowrap": KeywordNowrapText, "pre-wrap": KeywordPreWrap,
		})
	case PropOverflowWrap:
		return parseKeyword(toks, map[string]Keyword{
			"normal": KeywordNormal, "break-word": KeywordBreakWord, "anywhere": KeywordAnywhere,
		})
	case PropOverflowX, PropOverflowY:
		return parseKeyword(toks, map[string]Keyword{
			"visible": KeywordVisible, "hidden": KeywordHidden, "scroll": KeywordScroll, "auto": KeywordAuto,
		})
	case PropVisibility:
		return parseKeyword(toks, map[string]Keyword{"visible": KeywordVisible, "hidden": KeywordHidden})
	case PropZIndex:
		return parseNumber(toks)
	}
	return Value{}, &ParseError{Kind: UnknownProperty, Message: "no value grammar registered for property"}
}

func tryParseGlobalOrVar(toks []valueToken) (Value, bool, error) {
	if len(toks) == 1 {
		switch identValue(toks[0]) {
		case "inherit":
			return InheritValue(), true, nil
		case "initial":
			return InitialValue(), true, nil
		case "unset":
			return UnsetValue(), true, nil
		}
	}
	if toks[0].typ == scanner.TokenFunction && strings.EqualFold(strings.TrimSuffix(toks[0].value, "("), "var") {
		v, err := parseVarFunc(toks)
		return v, true, err
	}
	return Value{}, false, nil
}

// parseVarFunc parses `var(--name)` or `var(--name, fallback)`. The
// fallback, if present, is itself a Value literal (not re-dispatched
// against the property, since at this point the fallback's own
// grammar was already recursively parsed by the caller's tokenizer
// pass over the same property).
func parseVarFunc(toks []valueToken) (Value, error) {
	inner := toks[1 : len(toks)-1]
	groups := splitValueList(inner)
	if len(groups) == 0 || len(groups[0]) == 0 {
		return Value{}, &ParseError{Kind: InvalidVariable, Message: "var() requires a custom property name"}
	}
	name := identValue(groups[0][0])
	if !strings.HasPrefix(name, "--") {
		return Value{}, &ParseError{Kind: InvalidVariable, Message: "var() name must start with --"}
	}
	var fallback *Value
	if len(groups) > 1 {
		raw := rawText(groups[1])
		fv := UnresolvedValue(strings.TrimSpace(raw))
		fallback = &fv
	}
	return CustomRefValue(Intern(name), fallback), nil
}

func parseKeyword(toks []valueToken, table map[string]Keyword) (Value, error) {
	if len(toks) != 1 {
		return Value{}, &ParseError{Kind: UnknownKeyword, Message: "expected a single keyword"}
	}
	k, ok := table[identValue(toks[0])]
	if !ok {
		return Value{}, &ParseError{Kind: UnknownKeyword, Message: fmt.Sprintf("unknown keyword %q", toks[0].value)}
	}
	return KeywordValue(k), nil
}

func parseNumber(toks []valueToken) (Value, error) {
	if len(toks) != 1 {
		return Value{}, &ParseError{Kind: IntegerRequired, Message: "expected a single number"}
	}
	n, err := strconv.ParseFloat(toks[0].value, 64)
	if err != nil {
		return Value{}, &ParseError{Kind: IntegerRequired, Message: fmt.Sprintf("invalid number %q", toks[0].value)}
	}
	return NumberValue(n), nil
}

func parseColorValue(toks []valueToken) (Value, error) {
	c, err := ParseColor(rawText(toks))
	if err != nil {
		return Value{}, err
	}
	return ColorValue(c), nil
}

// parseLengthValue parses a single Length (cells/percent/calc) token
// group, used for properties that never accept auto/none.
func parseLengthValue(toks []valueToken) (Value, error) {
	l, _, err := parseLengthTokens(toks)
	if err != nil {
		return Value{}, err
	}
	return LengthValue(l), nil
}

// parseDimension parses auto | none | Length.
func parseDimension(toks []valueToken) (Value, error) {
	if len(toks) == 1 {
		switch identValue(toks[0]) {
		case "auto":
			return DimensionValue(AutoDimension), nil
		case "none":
			return DimensionValue(NoneDimension), nil
		}
	}
	l, _, err := parseLengthTokens(toks)
	if err != nil {
		return Value{}, err
	}
	return DimensionValue(LengthDimension(l)), nil
}

// parseDimensionNoNone parses auto | Length, for margin and flex-basis
// where "none" is not a valid keyword.
func parseDimensionNoNone(toks []valueToken) (Value, error) {
	if len(toks) == 1 && identValue(toks[0]) == "auto" {
		return DimensionValue(AutoDimension), nil
	}
	l, _, err := parseLengthTokens(toks)
	if err != nil {
		return Value{}, err
	}
	return DimensionValue(LengthDimension(l)), nil
}

// parseLengthTokens consumes tokens describing one Length value:
// a bare integer (cells), an integer immediately followed by the
// identifier "c", a percentage token, or a calc(...) expression.
// It returns the tokens it did not consume so callers splitting
// shorthands on whitespace can continue from there.
func parseLengthTokens(toks []valueToken) (Length, []valueToken, error) {
	if len(toks) == 0 {
		return Length{}, nil, &ParseError{Kind: UnexpectedToken, Message: "expected a length"}
	}
	t := toks[0]
	switch t.typ {
	case scanner.TokenPercentage:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.value, "%"), 64)
		if err != nil {
			return Length{}, nil, &ParseError{Kind: IntegerRequired, Message: t.value}
		}
		return Percent(n), toks[1:], nil
	case scanner.TokenNumber:
		n, err := strconv.Atoi(t.value)
		if err != nil {
			f, ferr := strconv.ParseFloat(t.value, 64)
			if ferr != nil {
				return Length{}, nil, &ParseError{Kind: IntegerRequired, Message: t.value}
			}
			n = int(f)
		}
		rest := toks[1:]
		if len(rest) > 0 && rest[0].typ == scanner.TokenIdent && strings.EqualFold(rest[0].value, "c") {
			rest = rest[1:]
		}
		return Cells(n), rest, nil
	case scanner.TokenDimension:
		n, unit, err := splitDimension(t.value)
		if err != nil {
			return Length{}, nil, err
		}
		if !strings.EqualFold(unit, "c") {
			return Length{}, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unknown length unit %q", unit)}
		}
		return Cells(n), toks[1:], nil
	case scanner.TokenFunction:
		if !strings.EqualFold(strings.TrimSuffix(t.value, "("), "calc") {
			return Length{}, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unexpected function %q", t.value)}
		}
		depth := 1
		i := 1
		for ; i < len(toks) && depth > 0; i++ {
			switch {
			case toks[i].typ == scanner.TokenFunction || (toks[i].typ == scanner.TokenChar && toks[i].value == "("):
				depth++
			case toks[i].typ == scanner.TokenChar && toks[i].value == ")":
				depth--
			}
		}
		inner := toks[1 : i-1]
		expr, err := parseCalcExpr(inner)
		if err != nil {
			return Length{}, nil, err
		}
		return CalcLength(expr), toks[i:], nil
	}
	return Length{}, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unexpected token %q in length", t.value)}
}

func splitDimension(s string) (int, string, error) {
	i := 0
	for i < len(s) && (s[i] == '-' || s[i] == '+' || (s[i] >= '0' && s[i] <= '9') || s[i] == '.') {
		i++
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", &ParseError{Kind: IntegerRequired, Message: s}
	}
	return int(n), s[i:], nil
}

// parseCalcExpr parses a sum of (optionally scaled) cell/percentage
// terms, left-associative, matching spec.md §3/§6's `calc()` grammar.
func parseCalcExpr(toks []valueToken) (*CalcExpr, error) {
	terms, ops, err := splitCalcTerms(toks)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "empty calc() expression"}
	}
	expr, err := parseCalcTerm(terms[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(terms); i++ {
		rhs, err := parseCalcTerm(terms[i])
		if err != nil {
			return nil, err
		}
		if ops[i-1] == "+" {
			expr = CalcAdd(expr, rhs)
		} else {
			expr = CalcSub(expr, rhs)
		}
	}
	return expr, nil
}

// splitCalcTerms splits top-level +/- separated terms (each of which
// may itself be a chain of * and / against a plain-number factor).
func splitCalcTerms(toks []valueToken) ([][]valueToken, []string, error) {
	var terms [][]valueToken
	var ops []string
	depth := 0
	var cur []valueToken
	for _, t := range toks {
		switch {
		case t.typ == scanner.TokenFunction || (t.typ == scanner.TokenChar && t.value == "("):
			depth++
			cur = append(cur, t)
		case t.typ == scanner.TokenChar && t.value == ")":
			depth--
			cur = append(cur, t)
		case depth == 0 && t.typ == scanner.TokenChar && (t.value == "+" || t.value == "-"):
			terms = append(terms, cur)
			ops = append(ops, t.value)
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	terms = append(terms, cur)
	return terms, ops, nil
}

// parseCalcTerm parses a single term: a cells/percent/nested-calc
// primary optionally chained with `* factor` or `/ factor`.
func parseCalcTerm(toks []valueToken) (*CalcExpr, error) {
	if len(toks) == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "empty calc() term"}
	}
	primary, rest, err := parseCalcPrimary(toks)
	if err != nil {
		return nil, err
	}
	for len(rest) > 0 {
		op := rest[0]
		if op.typ != scanner.TokenChar || (op.value != "*" && op.value != "/") {
			return nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unexpected token %q in calc() term", op.value)}
		}
		if len(rest) < 2 {
			return nil, &ParseError{Kind: UnexpectedToken, Message: "calc() factor missing operand"}
		}
		factorTok := rest[1]
		factor, ferr := strconv.ParseFloat(factorTok.value, 64)
		if ferr != nil {
			return nil, &ParseError{Kind: IntegerRequired, Message: "calc() factor must be a plain number"}
		}
		if op.value == "*" {
			primary = CalcMul(primary, factor)
		} else {
			primary = CalcDiv(primary, factor)
		}
		rest = rest[2:]
	}
	return primary, nil
}

func parseCalcPrimary(toks []valueToken) (*CalcExpr, []valueToken, error) {
	t := toks[0]
	switch t.typ {
	case scanner.TokenNumber:
		n, err := strconv.Atoi(t.value)
		if err != nil {
			return nil, nil, &ParseError{Kind: IntegerRequired, Message: t.value}
		}
		return CalcCells(n), toks[1:], nil
	case scanner.TokenPercentage:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.value, "%"), 64)
		if err != nil {
			return nil, nil, &ParseError{Kind: IntegerRequired, Message: t.value}
		}
		return CalcPercent(n), toks[1:], nil
	case scanner.TokenDimension:
		n, unit, err := splitDimension(t.value)
		if err != nil {
			return nil, nil, err
		}
		if !strings.EqualFold(unit, "c") {
			return nil, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unknown length unit %q", unit)}
		}
		return CalcCells(n), toks[1:], nil
	case scanner.TokenFunction:
		if !strings.EqualFold(strings.TrimSuffix(t.value, "("), "calc") {
			return nil, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unexpected function %q", t.value)}
		}
		depth := 1
		i := 1
		for ; i < len(toks) && depth > 0; i++ {
			switch {
			case toks[i].typ == scanner.TokenFunction || (toks[i].typ == scanner.TokenChar && toks[i].value == "("):
				depth++
			case toks[i].typ == scanner.TokenChar && toks[i].value == ")":
				depth--
			}
		}
		expr, err := parseCalcExpr(toks[1 : i-1])
		if err != nil {
			return nil, nil, err
		}
		return expr, toks[i:], nil
	}
	return nil, nil, &ParseError{Kind: UnexpectedToken, Message: fmt.Sprintf("unexpected token %q in calc()", t.value)}
}
