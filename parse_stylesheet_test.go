package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStylesheetBasicRule(t *testing.T) {
	sheet := ParseStylesheet(`div.box { width: 10c; color: red; }`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	require.Len(t, rule.Selectors, 1)
	require.Equal(t, Intern("div"), rule.Selectors[0].Key.Tag)
	require.Contains(t, rule.Selectors[0].Key.Classes, Intern("box"))
	require.Len(t, rule.Declarations, 2)
}

func TestParseStylesheetMarginShorthand(t *testing.T) {
	sheet := ParseStylesheet(`* { margin: 1c 2c; }`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules[0].Declarations, 4)
	byProp := map[Property]Declaration{}
	for _, d := range sheet.Rules[0].Declarations {
		byProp[d.Property] = d
	}
	require.Equal(t, 1, byProp[PropMarginTop].Value.Dimension.Length.Resolve(0))
	require.Equal(t, 2, byProp[PropMarginRight].Value.Dimension.Length.Resolve(0))
	require.Equal(t, 1, byProp[PropMarginBottom].Value.Dimension.Length.Resolve(0))
	require.Equal(t, 2, byProp[PropMarginLeft].Value.Dimension.Length.Resolve(0))
}

func TestParseStylesheetImportant(t *testing.T) {
	sheet := ParseStylesheet(`#x { color: red !important; }`)
	require.Empty(t, sheet.Errors)
	require.True(t, sheet.Rules[0].Declarations[0].Important)
}

func TestParseStylesheetCustomPropertyAndVarRef(t *testing.T) {
	sheet := ParseStylesheet(`* { --accent: red; } .btn { color: var(--accent); }`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 2)
	require.True(t, sheet.Rules[0].Declarations[0].IsCustomProperty())
	require.Equal(t, ValueCustom, sheet.Rules[1].Declarations[0].Value.Kind)
}

func TestParseStylesheetNestedAmpersand(t *testing.T) {
	sheet := ParseStylesheet(`.btn { color: red; &:hover { color: blue; } }`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 2)
	nested := sheet.Rules[1]
	require.Contains(t, nested.Selectors[0].Key.Classes, Intern("btn"))
	require.Len(t, nested.Selectors[0].Key.PseudoClasses, 1)
	require.Equal(t, PseudoHover, nested.Selectors[0].Key.PseudoClasses[0].Kind)
}

func TestParseStylesheetBadRuleIsolated(t *testing.T) {
	sheet := ParseStylesheet(`.ok { color: red; } .bad { color: not-a-color; } .ok2 { color: blue; }`)
	require.NotEmpty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 2)
}

func TestParseStylesheetFlexShorthand(t *testing.T) {
	sheet := ParseStylesheet(`.item { flex: 1 0 auto; }`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules[0].Declarations, 3)
}

func TestParseSelectorListSpecificity(t *testing.T) {
	list, err := ParseSelectorList("#id, .class, tag")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.True(t, list[0].SpecIDs > list[1].SpecIDs)
	require.True(t, list[1].SpecClasses > list[2].SpecClasses)
}
