package vellum

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind distinguishes the closed set of color forms spec.md §6
// allows: the eight basic ANSI names (plus their bright- variants and
// "reset"), a raw ANSI 256-color index, and true RGB.
type ColorKind uint8

const (
	ColorNamed ColorKind = iota
	ColorReset
	ColorAnsi256
	ColorRGB
)

// Color is a resolved color value. Named/Ansi256 retain their original
// index so a terminal backend with a limited palette can render them
// natively instead of downsampling from RGB.
type Color struct {
	Kind   ColorKind
	Index  int // ColorAnsi256: 0-255. ColorNamed: index into basicNames.
	Bright bool
	R, G, B uint8
}

var basicNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var basicRGB = [8][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
}

// ParseColor parses one of spec.md §6's color syntaxes:
//
//	basic name | bright-<name> | reset | ansi(0..255) | rgb(r,g,b) | #rgb | #rrggbb
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "reset":
		return Color{Kind: ColorReset}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "ansi(") && strings.HasSuffix(s, ")"):
		return parseAnsiFunc(s)
	case strings.HasPrefix(s, "bright-"):
		return parseNamed(strings.TrimPrefix(s, "bright-"), true)
	default:
		return parseNamed(s, false)
	}
}

func parseNamed(name string, bright bool) (Color, error) {
	for i, n := range basicNames {
		if n == name {
			rgb := basicRGB[i]
			if bright {
				rgb = brighten(rgb)
			}
			return Color{Kind: ColorNamed, Index: i, Bright: bright, R: rgb[0], G: rgb[1], B: rgb[2]}, nil
		}
	}
	return Color{}, &ParseError{Kind: UnknownColor, Message: fmt.Sprintf("unknown color name %q", name)}
}

func brighten(rgb [3]uint8) [3]uint8 {
	c := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	h, s, l := c.Hsl()
	l = min(l*1.35+0.1, 1.0)
	out := colorful.Hsl(h, s, l)
	r, g, b := out.Clamped().RGB255()
	return [3]uint8{r, g, b}
}

func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		r, err1 := strconv.ParseUint(hex[0:1], 16, 8)
		g, err2 := strconv.ParseUint(hex[1:2], 16, 8)
		b, err3 := strconv.ParseUint(hex[2:3], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, &ParseError{Kind: InvalidHexColor, Message: s}
		}
		return Color{Kind: ColorRGB, R: uint8(r * 17), G: uint8(g * 17), B: uint8(b * 17)}, nil
	case 6:
		r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
		g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
		b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, &ParseError{Kind: InvalidHexColor, Message: s}
		}
		return Color{Kind: ColorRGB, R: uint8(r), G: uint8(g), B: uint8(b)}, nil
	default:
		return Color{}, &ParseError{Kind: InvalidHexColor, Message: s}
	}
}

func parseRGBFunc(s string) (Color, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return Color{}, &ParseError{Kind: UnexpectedToken, Message: s}
	}
	vals := make([]uint8, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, &ParseError{Kind: OutOfRange, Min: 0, Max: 255, Value: n}
		}
		vals[i] = uint8(n)
	}
	return Color{Kind: ColorRGB, R: vals[0], G: vals[1], B: vals[2]}, nil
}

func parseAnsiFunc(s string) (Color, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "ansi("), ")")
	n, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return Color{}, &ParseError{Kind: IntegerRequired, Message: s}
	}
	if n < 0 || n > 255 {
		return Color{}, &ParseError{Kind: OutOfRange, Min: 0, Max: 255, Value: n}
	}
	return Color{Kind: ColorAnsi256, Index: n}, nil
}
