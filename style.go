package vellum

// ComputedStyle is the fully resolved style of one element: every
// property holds a concrete value, cascade and inheritance already
// applied. Layout and paint only ever consult a ComputedStyle, never a
// Declaration or the cascade directly (spec.md §3, §4.5).
type ComputedStyle struct {
	Display Keyword // KeywordBlock | KeywordFlex | KeywordInline | KeywordNone

	FlexDirection  Keyword
	FlexWrap       Keyword
	JustifyContent Keyword
	AlignItems     Keyword
	AlignContent   Keyword

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension
	AlignSelf  Keyword

	RowGap    Length
	ColumnGap Length

	Width, Height        Dimension
	MinWidth, MaxWidth   Dimension
	MinHeight, MaxHeight Dimension

	Margin  EdgesOf[Dimension]
	Padding EdgesOf[Length]

	BorderStyle EdgesOf[Keyword]
	BorderColor EdgesOf[Color]

	Color           Color
	BackgroundColor Color

	FontWeight     Keyword
	FontStyle      Keyword
	TextDecoration Keyword
	TextAlign      Keyword
	VerticalAlign  Keyword
	WhiteSpace     Keyword
	OverflowWrap   Keyword

	OverflowX, OverflowY Keyword

	Visibility Keyword
	ZIndex     int
}

// EdgesOf is a generic four-side box for style properties whose
// per-side value isn't a plain cell count — Edges (insets.go) remains
// the resolved, already-in-cells layout box.
type EdgesOf[T any] struct {
	Top, Right, Bottom, Left T
}

// DefaultComputedStyle returns the initial value of every property,
// the zero-cascade baseline a document root starts from before any
// rule or inheritance is applied.
func DefaultComputedStyle() ComputedStyle {
	reset := Color{Kind: ColorReset}
	return ComputedStyle{
		Display: KeywordBlock,

		FlexDirection:  KeywordRow,
		FlexWrap:       KeywordNowrap,
		JustifyContent: KeywordFlexStart,
		AlignItems:     KeywordStretch,
		AlignContent:   KeywordStretch,

		FlexGrow:   0,
		FlexShrink: 1,
		FlexBasis:  AutoDimension,
		AlignSelf:  KeywordAuto,

		RowGap:    Cells(0),
		ColumnGap: Cells(0),

		Width: AutoDimension, Height: AutoDimension,
		MinWidth: AutoDimension, MaxWidth: NoneDimension,
		MinHeight: AutoDimension, MaxHeight: NoneDimension,

		BorderStyle: EdgesOf[Keyword]{KeywordNone, KeywordNone, KeywordNone, KeywordNone},
		BorderColor: EdgesOf[Color]{reset, reset, reset, reset},

		Color:           reset,
		BackgroundColor: reset,

		FontWeight:     KeywordNormal,
		FontStyle:      KeywordNormal,
		TextDecoration: KeywordNone,
		TextAlign:      KeywordLeft,
		VerticalAlign:  KeywordTop,
		WhiteSpace:     KeywordNormal,
		OverflowWrap:   KeywordNormal,

		OverflowX: KeywordVisible, OverflowY: KeywordVisible,

		Visibility: KeywordVisible,
		ZIndex:     0,
	}
}

// InheritComputedStyle starts a child's style from the UA defaults
// with only the explicitly-inherited properties (color, font-weight,
// font-style, text-decoration, text-align, white-space,
// overflow-wrap, visibility) copied down from the parent; every other
// property starts at its initial value and is then overwritten by the
// cascade if matched.
func InheritComputedStyle(parent ComputedStyle) ComputedStyle {
	s := DefaultComputedStyle()
	s.Color = parent.Color
	s.FontWeight = parent.FontWeight
	s.FontStyle = parent.FontStyle
	s.TextDecoration = parent.TextDecoration
	s.TextAlign = parent.TextAlign
	s.WhiteSpace = parent.WhiteSpace
	s.OverflowWrap = parent.OverflowWrap
	s.Visibility = parent.Visibility
	return s
}

func (s ComputedStyle) IsFlexContainer() bool   { return s.Display == KeywordFlex }
func (s ComputedStyle) IsInlineContainer() bool { return s.Display == KeywordInline }
func (s ComputedStyle) IsNone() bool            { return s.Display == KeywordNone }

// Stylist ties cascade matching, invalidation tracking and custom
// property resolution together into the single entry point the
// document rebuild/restyle pipeline calls per element.
type Stylist struct {
	cascade      *CascadeData
	invalidation *InvalidationMap
	sourceOrder  int

	// Log, when set, records one entry per ComputeStyle call — a
	// bounded diagnostic trail a host application can surface (e.g. a
	// devtools panel) without needing the sqlite-backed frame tracer.
	Log *Log
}

// NewStylist returns an empty Stylist ready for AddStylesheet calls.
func NewStylist() *Stylist {
	return &Stylist{cascade: NewCascadeData(), invalidation: NewInvalidationMap()}
}

// AddStylesheet registers every rule of sheet, in order, against both
// the cascade index and the invalidation map.
func (st *Stylist) AddStylesheet(sheet *Stylesheet) {
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		for s := range rule.Selectors {
			rule.Selectors[s].SourceOrder = st.sourceOrder
			st.invalidation.RegisterSelector(rule.Selectors[s])
			st.sourceOrder++
		}
		st.cascade.Insert(rule)
	}
}

// Clear empties the cascade and invalidation tables, for a full
// hot-reload re-parse.
func (st *Stylist) Clear() {
	st.cascade.Clear()
	st.invalidation.Clear()
	st.sourceOrder = 0
}

func (st *Stylist) RestyleHintForStateChange(old, new StateFlags) RestyleHint {
	return st.invalidation.RestyleHintForStateChange(old, new)
}
func (st *Stylist) RestyleHintForAttributeChange(attr Symbol) RestyleHint {
	return st.invalidation.RestyleHintForAttributeChange(attr)
}
func (st *Stylist) RestyleHintForClassChange(class Symbol) RestyleHint {
	return st.invalidation.RestyleHintForClassChange(class)
}
func (st *Stylist) RestyleHintForIDChange(id Symbol) RestyleHint {
	return st.invalidation.RestyleHintForIDChange(id)
}

// ComputeStyle runs the full per-element style pipeline: match rules,
// sort by cascade order, resolve custom properties in four passes
// (matched-normal, inline-normal, matched-important, inline-important),
// then apply standard-property declarations in the same four-pass
// order so normal declarations always lose to important ones and
// matched-rule declarations always lose to inline ones at equal
// importance. Returns the computed style plus the element's resolved
// custom-property map, which the caller stores (via Document.setComputedStyle)
// for its children to inherit from.
func (st *Stylist) ComputeStyle(doc *Document, id NodeID, parentStyle *ComputedStyle, parentCustom map[Symbol]Value) (ComputedStyle, map[Symbol]Value) {
	matched := CascadeSort(st.cascade.MatchingDeclarations(doc, id))
	inline := doc.inlineDeclarations(id)

	var style ComputedStyle
	if parentStyle != nil {
		style = InheritComputedStyle(*parentStyle)
	} else {
		style = DefaultComputedStyle()
	}

	resolver := NewCustomPropertiesResolver(customPropertiesAsStrings(parentCustom))
	for _, m := range matched {
		if m.decl.IsCustomProperty() && !m.decl.Important {
			resolver.Add(m.decl.Custom, m.decl.Value)
		}
	}
	for _, d := range inline {
		if d.IsCustomProperty() && !d.Important {
			resolver.Add(d.Custom, d.Value)
		}
	}
	for _, m := range matched {
		if m.decl.IsCustomProperty() && m.decl.Important {
			resolver.Add(m.decl.Custom, m.decl.Value)
		}
	}
	for _, d := range inline {
		if d.IsCustomProperty() && d.Important {
			resolver.Add(d.Custom, d.Value)
		}
	}
	customStrings := resolver.Build()

	for _, m := range matched {
		if !m.decl.IsCustomProperty() && !m.decl.Important {
			applyDeclaration(&style, m.decl, parentStyle, customStrings)
		}
	}
	for _, d := range inline {
		if !d.IsCustomProperty() && !d.Important {
			applyDeclaration(&style, d, parentStyle, customStrings)
		}
	}
	for _, m := range matched {
		if !m.decl.IsCustomProperty() && m.decl.Important {
			applyDeclaration(&style, m.decl, parentStyle, customStrings)
		}
	}
	for _, d := range inline {
		if !d.IsCustomProperty() && d.Important {
			applyDeclaration(&style, d, parentStyle, customStrings)
		}
	}

	if st.Log != nil {
		tag := doc.Tag(id)
		st.Log.Add("stylist", "debug", "computed style for <%s> (%d matched, %d inline)", tag, len(matched), len(inline))
	}

	return style, customPropertiesFromStrings(customStrings)
}

// applyDeclaration routes one non-custom-property declaration to its
// field based on the cascade keyword it carries (inherit/initial/
// unset), a pending substitution (Unresolved/Custom), or a plain
// literal value.
func applyDeclaration(style *ComputedStyle, decl Declaration, parent *ComputedStyle, custom map[Symbol]string) {
	switch decl.Value.Kind {
	case ValueInherit:
		if parent != nil {
			applyFieldCopy(style, decl.Property, parent)
		}
		return
	case ValueInitial:
		d := DefaultComputedStyle()
		applyFieldCopy(style, decl.Property, &d)
		return
	case ValueUnset:
		if decl.Property.Inherited() {
			if parent != nil {
				applyFieldCopy(style, decl.Property, parent)
			}
			return
		}
		d := DefaultComputedStyle()
		applyFieldCopy(style, decl.Property, &d)
		return
	case ValueUnresolved:
		substituted, err := substituteVars(decl.Value.RawTokens, func(ref Symbol) (string, bool) {
			v, ok := custom[ref]
			return v, ok
		})
		if err != nil {
			return
		}
		v, err := ParseDeclarationValue(decl.Property, substituted)
		if err != nil {
			return
		}
		applyValue(style, decl.Property, v)
		return
	case ValueCustom:
		raw, ok := custom[decl.Value.CustomName]
		if !ok {
			if decl.Value.Fallback == nil {
				return
			}
			raw = decl.Value.Fallback.RawTokens
		}
		v, err := ParseDeclarationValue(decl.Property, raw)
		if err != nil {
			return
		}
		applyValue(style, decl.Property, v)
		return
	}
	applyValue(style, decl.Property, decl.Value)
}

// applyFieldCopy copies property's field from src into style; used by
// both "initial" (src is the default style) and "inherit" (src is the
// parent's style), since both just copy one field across wholesale.
func applyFieldCopy(style *ComputedStyle, property Property, src *ComputedStyle) {
	switch property {
	case PropDisplay:
		style.Display = src.Display
	case PropFlexDirection:
		style.FlexDirection = src.FlexDirection
	case PropFlexWrap:
		style.FlexWrap = src.FlexWrap
	case PropJustifyContent:
		style.JustifyContent = src.JustifyContent
	case PropAlignItems:
		style.AlignItems = src.AlignItems
	case PropAlignContent:
		style.AlignContent = src.AlignContent
	case PropFlexGrow:
		style.FlexGrow = src.FlexGrow
	case PropFlexShrink:
		style.FlexShrink = src.FlexShrink
	case PropFlexBasis:
		style.FlexBasis = src.FlexBasis
	case PropAlignSelf:
		style.AlignSelf = src.AlignSelf
	case PropRowGap:
		style.RowGap = src.RowGap
	case PropColumnGap:
		style.ColumnGap = src.ColumnGap
	case PropWidth:
		style.Width = src.Width
	case PropHeight:
		style.Height = src.Height
	case PropMinWidth:
		style.MinWidth = src.MinWidth
	case PropMaxWidth:
		style.MaxWidth = src.MaxWidth
	case PropMinHeight:
		style.MinHeight = src.MinHeight
	case PropMaxHeight:
		style.MaxHeight = src.MaxHeight
	case PropMarginTop:
		style.Margin.Top = src.Margin.Top
	case PropMarginRight:
		style.Margin.Right = src.Margin.Right
	case PropMarginBottom:
		style.Margin.Bottom = src.Margin.Bottom
	case PropMarginLeft:
		style.Margin.Left = src.Margin.Left
	case PropPaddingTop:
		style.Padding.Top = src.Padding.Top
	case PropPaddingRight:
		style.Padding.Right = src.Padding.Right
	case PropPaddingBottom:
		style.Padding.Bottom = src.Padding.Bottom
	case PropPaddingLeft:
		style.Padding.Left = src.Padding.Left
	case PropBorderTopStyle:
		style.BorderStyle.Top = src.BorderStyle.Top
	case PropBorderRightStyle:
		style.BorderStyle.Right = src.BorderStyle.Right
	case PropBorderBottomStyle:
		style.BorderStyle.Bottom = src.BorderStyle.Bottom
	case PropBorderLeftStyle:
		style.BorderStyle.Left = src.BorderStyle.Left
	case PropBorderTopColor:
		style.BorderColor.Top = src.BorderColor.Top
	case PropBorderRightColor:
		style.BorderColor.Right = src.BorderColor.Right
	case PropBorderBottomColor:
		style.BorderColor.Bottom = src.BorderColor.Bottom
	case PropBorderLeftColor:
		style.BorderColor.Left = src.BorderColor.Left
	case PropColor:
		style.Color = src.Color
	case PropBackgroundColor:
		style.BackgroundColor = src.BackgroundColor
	case PropFontWeight:
		style.FontWeight = src.FontWeight
	case PropFontStyle:
		style.FontStyle = src.FontStyle
	case PropTextDecoration:
		style.TextDecoration = src.TextDecoration
	case PropTextAlign:
		style.TextAlign = src.TextAlign
	case PropVerticalAlign:
		style.VerticalAlign = src.VerticalAlign
	case PropWhiteSpace:
		style.WhiteSpace = src.WhiteSpace
	case PropOverflowWrap:
		style.OverflowWrap = src.OverflowWrap
	case PropOverflowX:
		style.OverflowX = src.OverflowX
	case PropOverflowY:
		style.OverflowY = src.OverflowY
	case PropVisibility:
		style.Visibility = src.Visibility
	case PropZIndex:
		style.ZIndex = src.ZIndex
	}
}

// applyValue writes a concrete, already-typed Value into style's
// matching field.
func applyValue(style *ComputedStyle, property Property, v Value) {
	switch property {
	case PropDisplay:
		style.Display = v.Keyword
	case PropFlexDirection:
		style.FlexDirection = v.Keyword
	case PropFlexWrap:
		style.FlexWrap = v.Keyword
	case PropJustifyContent:
		style.JustifyContent = v.Keyword
	case PropAlignItems:
		style.AlignItems = v.Keyword
	case PropAlignContent:
		style.AlignContent = v.Keyword
	case PropFlexGrow:
		style.FlexGrow = v.Number
	case PropFlexShrink:
		style.FlexShrink = v.Number
	case PropFlexBasis:
		style.FlexBasis = v.Dimension
	case PropAlignSelf:
		style.AlignSelf = v.Keyword
	case PropRowGap:
		style.RowGap = v.Length
	case PropColumnGap:
		style.ColumnGap = v.Length
	case PropWidth:
		style.Width = v.Dimension
	case PropHeight:
		style.Height = v.Dimension
	case PropMinWidth:
		style.MinWidth = v.Dimension
	case PropMaxWidth:
		style.MaxWidth = v.Dimension
	case PropMinHeight:
		style.MinHeight = v.Dimension
	case PropMaxHeight:
		style.MaxHeight = v.Dimension
	case PropMarginTop:
		style.Margin.Top = v.Dimension
	case PropMarginRight:
		style.Margin.Right = v.Dimension
	case PropMarginBottom:
		style.Margin.Bottom = v.Dimension
	case PropMarginLeft:
		style.Margin.Left = v.Dimension
	case PropPaddingTop:
		style.Padding.Top = v.Length
	case PropPaddingRight:
		style.Padding.Right = v.Length
	case PropPaddingBottom:
		style.Padding.Bottom = v.Length
	case PropPaddingLeft:
		style.Padding.Left = v.Length
	case PropBorderTopStyle:
		style.BorderStyle.Top = v.Keyword
	case PropBorderRightStyle:
		style.BorderStyle.Right = v.Keyword
	case PropBorderBottomStyle:
		style.BorderStyle.Bottom = v.Keyword
	case PropBorderLeftStyle:
		style.BorderStyle.Left = v.Keyword
	case PropBorderTopColor:
		style.BorderColor.Top = v.Color
	case PropBorderRightColor:
		style.BorderColor.Right = v.Color
	case PropBorderBottomColor:
		style.BorderColor.Bottom = v.Color
	case PropBorderLeftColor:
		style.BorderColor.Left = v.Color
	case PropColor:
		style.Color = v.Color
	case PropBackgroundColor:
		style.BackgroundColor = v.Color
	case PropFontWeight:
		style.FontWeight = v.Keyword
	case PropFontStyle:
		style.FontStyle = v.Keyword
	case PropTextDecoration:
		style.TextDecoration = v.Keyword
	case PropTextAlign:
		style.TextAlign = v.Keyword
	case PropVerticalAlign:
		style.VerticalAlign = v.Keyword
	case PropWhiteSpace:
		style.WhiteSpace = v.Keyword
	case PropOverflowWrap:
		style.OverflowWrap = v.Keyword
	case PropOverflowX:
		style.OverflowX = v.Keyword
	case PropOverflowY:
		style.OverflowY = v.Keyword
	case PropVisibility:
		style.Visibility = v.Keyword
	case PropZIndex:
		style.ZIndex = int(v.Number)
	}
}
