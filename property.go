package vellum

// Property enumerates the closed property set from spec.md §6. Shorthands
// (margin, padding, border, border-style, border-color, border-<side>,
// flex, gap, overflow, background) are expanded at parse time into these
// longhands and never appear on a Declaration themselves.
type Property uint8

const (
	PropDisplay Property = iota
	PropFlexDirection
	PropFlexWrap
	PropJustifyContent
	PropAlignItems
	PropAlignContent
	PropAlignSelf
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropRowGap
	PropColumnGap
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropColor
	PropBackgroundColor
	PropFontWeight
	PropFontStyle
	PropTextDecoration
	PropTextAlign
	PropVerticalAlign
	PropWhiteSpace
	PropOverflowWrap
	PropOverflowX
	PropOverflowY
	PropVisibility
	PropZIndex

	propertyCount
)

// Inherited reports whether a property is one of the explicitly
// inherited properties listed in spec.md §4.5 step 2: color,
// font-weight, font-style, text-decoration, text-align, white-space,
// overflow-wrap, visibility.
func (p Property) Inherited() bool {
	switch p {
	case PropColor, PropFontWeight, PropFontStyle, PropTextDecoration,
		PropTextAlign, PropWhiteSpace, PropOverflowWrap, PropVisibility:
		return true
	}
	return false
}

var propertyNames = map[string]Property{
	"display":             PropDisplay,
	"flex-direction":      PropFlexDirection,
	"flex-wrap":           PropFlexWrap,
	"justify-content":     PropJustifyContent,
	"align-items":         PropAlignItems,
	"align-content":       PropAlignContent,
	"align-self":          PropAlignSelf,
	"flex-grow":           PropFlexGrow,
	"flex-shrink":         PropFlexShrink,
	"flex-basis":          PropFlexBasis,
	"row-gap":             PropRowGap,
	"column-gap":          PropColumnGap,
	"width":               PropWidth,
	"height":              PropHeight,
	"min-width":           PropMinWidth,
	"min-height":          PropMinHeight,
	"max-width":           PropMaxWidth,
	"max-height":          PropMaxHeight,
	"margin-top":          PropMarginTop,
	"margin-right":        PropMarginRight,
	"margin-bottom":       PropMarginBottom,
	"margin-left":         PropMarginLeft,
	"padding-top":         PropPaddingTop,
	"padding-right":       PropPaddingRight,
	"padding-bottom":      PropPaddingBottom,
	"padding-left":        PropPaddingLeft,
	"border-top-style":    PropBorderTopStyle,
	"border-right-style":  PropBorderRightStyle,
	"border-bottom-style": PropBorderBottomStyle,
	"border-left-style":   PropBorderLeftStyle,
	"border-top-color":    PropBorderTopColor,
	"border-right-color":  PropBorderRightColor,
	"border-bottom-color": PropBorderBottomColor,
	"border-left-color":   PropBorderLeftColor,
	"color":               PropColor,
	"background-color":    PropBackgroundColor,
	"font-weight":         PropFontWeight,
	"font-style":          PropFontStyle,
	"text-decoration":     PropTextDecoration,
	"text-align":          PropTextAlign,
	"vertical-align":      PropVerticalAlign,
	"white-space":         PropWhiteSpace,
	"overflow-wrap":       PropOverflowWrap,
	"overflow-x":          PropOverflowX,
	"overflow-y":          PropOverflowY,
	"visibility":          PropVisibility,
	"z-index":             PropZIndex,
}

// shorthandProperties lists the shorthand names spec.md §4.2 expands at
// parse time; they never become a Property constant themselves.
var shorthandProperties = map[string]bool{
	"margin": true, "padding": true, "gap": true, "flex": true,
	"border": true, "border-style": true, "border-color": true,
	"border-top": true, "border-right": true, "border-bottom": true, "border-left": true,
	"overflow": true, "background": true,
}

// LookupProperty resolves a CSS property name to a Property constant.
// Custom properties (leading "--") and shorthands are handled by the
// caller before this is reached.
func LookupProperty(name string) (Property, bool) {
	p, ok := propertyNames[name]
	return p, ok
}
