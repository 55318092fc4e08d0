package vellum

// ValueKind distinguishes the shapes a computed or specified property
// value can take, per spec.md §3's `Value` union plus the cascade-wide
// keywords `inherit`/`initial` and the parse-time placeholders
// `Unresolved`/`Custom` used before custom-property substitution runs.
type ValueKind uint8

const (
	ValueKeyword ValueKind = iota
	ValueLength
	ValueDimension
	ValueColor
	ValueNumber
	ValueInherit
	ValueInitial
	ValueUnset
	ValueUnresolved
	ValueCustom
)

// Keyword is the closed set of non-length, non-color keyword values
// used across display/flex-direction/justify-content/etc.
type Keyword uint8

const (
	KeywordNone Keyword = iota
	KeywordBlock
	KeywordFlex
	KeywordInline
	KeywordGrid
	KeywordRow
	KeywordRowReverse
	KeywordColumn
	KeywordColumnReverse
	KeywordNowrap
	KeywordWrap
	KeywordWrapReverse
	KeywordFlexStart
	KeywordFlexEnd
	KeywordCenter
	KeywordSpaceBetween
	KeywordSpaceAround
	KeywordSpaceEvenly
	KeywordStretch
	KeywordBaseline
	KeywordNormal
	KeywordSolid
	KeywordDashed
	KeywordDouble
	KeywordRound
	KeywordHidden
	KeywordScroll
	KeywordVisible
	KeywordAuto
	KeywordBold
	KeywordItalic
	KeywordUnderline
	KeywordLineThrough
	KeywordLeft
	KeywordRight
	KeywordTop
	KeywordBottom
	KeywordMiddle
	KeywordNowrapText
	KeywordPreWrap
	KeywordBreakWord
	KeywordAnywhere
)

// Value is a tagged union holding one specified or computed CSS value.
// Exactly one of the typed fields is meaningful, selected by Kind; this
// mirrors the teacher's preference for a flat struct over an interface
// hierarchy so ComputedStyle can store Values inline without boxing.
type Value struct {
	Kind       ValueKind
	Keyword    Keyword
	Length     Length
	Dimension  Dimension
	Color      Color
	Number     float64
	CustomName Symbol // ValueCustom: var(--name) reference, pre-substitution
	Fallback   *Value // ValueCustom: optional var() fallback
	RawTokens  string // ValueUnresolved: original token text awaiting substitution
}

func KeywordValue(k Keyword) Value         { return Value{Kind: ValueKeyword, Keyword: k} }
func LengthValue(l Length) Value           { return Value{Kind: ValueLength, Length: l} }
func DimensionValue(d Dimension) Value     { return Value{Kind: ValueDimension, Dimension: d} }
func ColorValue(c Color) Value             { return Value{Kind: ValueColor, Color: c} }
func NumberValue(n float64) Value          { return Value{Kind: ValueNumber, Number: n} }
func InheritValue() Value                  { return Value{Kind: ValueInherit} }
func InitialValue() Value                  { return Value{Kind: ValueInitial} }
func UnsetValue() Value                    { return Value{Kind: ValueUnset} }
func UnresolvedValue(raw string) Value     { return Value{Kind: ValueUnresolved, RawTokens: raw} }
func CustomRefValue(name Symbol, fallback *Value) Value {
	return Value{Kind: ValueCustom, CustomName: name, Fallback: fallback}
}

// IsCascadeKeyword reports whether v is the inherit/initial meta-value
// handled uniformly by the cascade before property-specific resolution.
func (v Value) IsCascadeKeyword() bool {
	return v.Kind == ValueInherit || v.Kind == ValueInitial
}

// Declaration pairs a Property (or a custom-property Symbol) with its
// specified Value and !important flag. Longhand-only: shorthand
// expansion has already happened by the time a Declaration exists.
type Declaration struct {
	Property   Property
	Custom     Symbol // non-zero for a "--name" custom property; Property is ignored then
	Value      Value
	Important  bool
}

// IsCustomProperty reports whether this declaration sets a custom
// property rather than a standard one.
func (d Declaration) IsCustomProperty() bool { return d.Custom != zeroSymbol }
