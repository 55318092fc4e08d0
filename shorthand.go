package vellum

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// ExpandShorthand turns one shorthand declaration into its equivalent
// longhands (spec.md §4.2). Plain (non-shorthand) properties are left
// for ParseDeclarationValue to handle directly; this is only called
// once the parser has recognised name as a member of
// shorthandProperties.
func ExpandShorthand(name, raw string, important bool) ([]Declaration, error) {
	toks := tokenizeValue(raw)
	switch name {
	case "margin":
		return expandBox(toks, important, PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft, true)
	case "padding":
		return expandBox(toks, important, PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft, false)
	case "gap":
		return expandGap(toks, important)
	case "flex":
		return expandFlex(toks, important)
	case "border":
		return expandBorderAll(toks, important)
	case "border-style":
		return expandBorderSide(toks, important, sideStyleProps)
	case "border-color":
		return expandBorderSide(toks, important, sideColorProps)
	case "border-top":
		return expandBorderOneSide(toks, important, PropBorderTopStyle, PropBorderTopColor)
	case "border-right":
		return expandBorderOneSide(toks, important, PropBorderRightStyle, PropBorderRightColor)
	case "border-bottom":
		return expandBorderOneSide(toks, important, PropBorderBottomStyle, PropBorderBottomColor)
	case "border-left":
		return expandBorderOneSide(toks, important, PropBorderLeftStyle, PropBorderLeftColor)
	case "overflow":
		return expandOverflow(toks, important)
	case "background":
		return expandBackground(toks, important)
	}
	return nil, &ParseError{Kind: UnknownProperty, Message: "unknown shorthand " + name}
}

// expandBox implements the CSS 1/2/3/4-value shorthand expansion for
// margin/padding: 1 value -> all sides, 2 -> vertical/horizontal,
// 3 -> top/horizontal/bottom, 4 -> top/right/bottom/left.
func expandBox(toks []valueToken, important bool, top, right, bottom, left Property, allowAuto bool) ([]Declaration, error) {
	var lengths [4]Dimension
	n := 0
	rest := toks
	for len(rest) > 0 && n < 4 {
		var d Dimension
		if allowAuto && len(rest) > 0 && rest[0].typ == scanner.TokenIdent && identValue(rest[0]) == "auto" {
			d = AutoDimension
			rest = rest[1:]
		} else {
			l, next, err := parseLengthTokens(rest)
			if err != nil {
				return nil, err
			}
			d = LengthDimension(l)
			rest = next
		}
		lengths[n] = d
		n++
	}
	if n == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "empty box shorthand"}
	}
	var t, r, b, l Dimension
	switch n {
	case 1:
		t, r, b, l = lengths[0], lengths[0], lengths[0], lengths[0]
	case 2:
		t, b = lengths[0], lengths[0]
		r, l = lengths[1], lengths[1]
	case 3:
		t = lengths[0]
		r, l = lengths[1], lengths[1]
		b = lengths[2]
	case 4:
		t, r, b, l = lengths[0], lengths[1], lengths[2], lengths[3]
	}
	wrap := DimensionValue
	if !allowAuto {
		// padding never accepts auto; match the longhand grammar
		// (parseLengthValue) by unwrapping to a bare Length so a
		// padding-top set via the shorthand and one set directly carry
		// the same ValueKind.
		wrap = func(d Dimension) Value { return LengthValue(d.Length) }
	}
	return []Declaration{
		{Property: top, Value: wrap(t), Important: important},
		{Property: right, Value: wrap(r), Important: important},
		{Property: bottom, Value: wrap(b), Important: important},
		{Property: left, Value: wrap(l), Important: important},
	}, nil
}

func expandGap(toks []valueToken, important bool) ([]Declaration, error) {
	row, rest, err := parseLengthTokens(toks)
	if err != nil {
		return nil, err
	}
	col := row
	if len(rest) > 0 {
		col, _, err = parseLengthTokens(rest)
		if err != nil {
			return nil, err
		}
	}
	return []Declaration{
		{Property: PropRowGap, Value: LengthValue(row), Important: important},
		{Property: PropColumnGap, Value: LengthValue(col), Important: important},
	}, nil
}

// expandFlex implements the `flex: <grow> <shrink> <basis>` shorthand,
// including the `none` (0 0 auto) and `auto` (1 1 auto) keyword forms.
func expandFlex(toks []valueToken, important bool) ([]Declaration, error) {
	if len(toks) == 1 {
		switch identValue(toks[0]) {
		case "none":
			return flexDecls(0, 0, AutoDimension, important), nil
		case "auto":
			return flexDecls(1, 1, AutoDimension, important), nil
		}
	}
	grow, shrink, basis := 1.0, 1.0, AutoDimension
	rest := toks
	if len(rest) > 0 && rest[0].typ == scanner.TokenNumber {
		n, _, err := parseCalcPrimary(rest[:1])
		if err != nil {
			return nil, err
		}
		grow = float64(n.Eval(0))
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0].typ == scanner.TokenNumber {
		n, _, err := parseCalcPrimary(rest[:1])
		if err != nil {
			return nil, err
		}
		shrink = float64(n.Eval(0))
		rest = rest[1:]
	}
	if len(rest) > 0 {
		if identValue(rest[0]) == "auto" {
			basis = AutoDimension
		} else {
			l, _, err := parseLengthTokens(rest)
			if err != nil {
				return nil, err
			}
			basis = LengthDimension(l)
		}
	}
	return flexDecls(grow, shrink, basis, important), nil
}

func flexDecls(grow, shrink float64, basis Dimension, important bool) []Declaration {
	return []Declaration{
		{Property: PropFlexGrow, Value: NumberValue(grow), Important: important},
		{Property: PropFlexShrink, Value: NumberValue(shrink), Important: important},
		{Property: PropFlexBasis, Value: DimensionValue(basis), Important: important},
	}
}

var sideStyleProps = [4]Property{PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle}
var sideColorProps = [4]Property{PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor}

func expandBorderSide(toks []valueToken, important bool, props [4]Property) ([]Declaration, error) {
	raw := rawText(toks)
	var decls []Declaration
	for _, p := range props {
		v, err := ParseDeclarationValue(p, raw)
		if err != nil {
			return nil, err
		}
		decls = append(decls, Declaration{Property: p, Value: v, Important: important})
	}
	return decls, nil
}

// expandBorderAll parses `border: <style> <color>` onto all four
// sides; terminal borders never carry a meaningful width token
// (box-drawing glyphs are always a single cell), so unlike CSS proper
// there is no border-width longhand to expand into.
func expandBorderAll(toks []valueToken, important bool) ([]Declaration, error) {
	var styleToks, colorToks []valueToken
	for _, t := range toks {
		if t.typ == scanner.TokenIdent {
			if _, ok := borderStyleKeywords[identValue(t)]; ok {
				styleToks = append(styleToks, t)
				continue
			}
		}
		colorToks = append(colorToks, t)
	}
	var decls []Declaration
	if len(styleToks) > 0 {
		d, err := expandBorderSide(styleToks, important, sideStyleProps)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d...)
	}
	if len(colorToks) > 0 {
		d, err := expandBorderSide(colorToks, important, sideColorProps)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d...)
	}
	return decls, nil
}

var borderStyleKeywords = map[string]bool{
	"none": true, "solid": true, "dashed": true, "double": true, "round": true, "hidden": true,
}

func expandBorderOneSide(toks []valueToken, important bool, styleProp, colorProp Property) ([]Declaration, error) {
	var styleToks, colorToks []valueToken
	for _, t := range toks {
		if t.typ == scanner.TokenIdent {
			if _, ok := borderStyleKeywords[identValue(t)]; ok {
				styleToks = append(styleToks, t)
				continue
			}
		}
		colorToks = append(colorToks, t)
	}
	var decls []Declaration
	if len(styleToks) > 0 {
		v, err := ParseDeclarationValue(styleProp, rawText(styleToks))
		if err != nil {
			return nil, err
		}
		decls = append(decls, Declaration{Property: styleProp, Value: v, Important: important})
	}
	if len(colorToks) > 0 {
		v, err := ParseDeclarationValue(colorProp, rawText(colorToks))
		if err != nil {
			return nil, err
		}
		decls = append(decls, Declaration{Property: colorProp, Value: v, Important: important})
	}
	return decls, nil
}

func expandOverflow(toks []valueToken, important bool) ([]Declaration, error) {
	if len(toks) == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Message: "empty overflow shorthand"}
	}
	x, err := ParseDeclarationValue(PropOverflowX, identValue(toks[0]))
	if err != nil {
		return nil, err
	}
	y := x
	if len(toks) > 1 {
		y, err = ParseDeclarationValue(PropOverflowY, identValue(toks[1]))
		if err != nil {
			return nil, err
		}
	}
	return []Declaration{
		{Property: PropOverflowX, Value: x, Important: important},
		{Property: PropOverflowY, Value: y, Important: important},
	}, nil
}

// expandBackground implements the practical subset spec.md §4.2
// allows: a single solid color maps straight to background-color.
func expandBackground(toks []valueToken, important bool) ([]Declaration, error) {
	raw := strings.TrimSpace(rawText(toks))
	v, err := ParseDeclarationValue(PropBackgroundColor, raw)
	if err != nil {
		return nil, err
	}
	return []Declaration{{Property: PropBackgroundColor, Value: v, Important: important}}, nil
}
