package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sel(t *testing.T, s string) Selector {
	t.Helper()
	list, err := ParseSelectorList(s)
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0]
}

func TestInvalidationEmptyMap(t *testing.T) {
	m := NewInvalidationMap()
	require.False(t, m.HasStateDependency(StateHover))
	require.False(t, m.HasClassDependency(Intern("foo")))
	require.False(t, m.HasIDDependency(Intern("bar")))
	require.False(t, m.HasAttributeDependency(Intern("disabled")))
}

func TestInvalidationRegisterHoverSelector(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".btn:hover"))
	require.True(t, m.HasStateDependency(StateHover))
	require.True(t, m.HasClassDependency(Intern("btn")))
}

func TestInvalidationStateChangeRestyleHintSubject(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".btn:hover"))
	hint := m.RestyleHintForStateChange(0, StateHover)
	require.True(t, hint.Contains(RestyleSelf))
}

func TestInvalidationStateChangeNoHintWhenUnrelated(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".btn:hover"))
	hint := m.RestyleHintForStateChange(0, StateFocus)
	require.True(t, hint.IsEmpty())
}

func TestInvalidationDescendantCombinatorGivesDescendantsHint(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".parent:hover .child"))
	hint := m.RestyleHintForStateChange(0, StateHover)
	require.True(t, hint.Contains(RestyleDescendants))
}

func TestInvalidationChildCombinatorGivesDescendantsHint(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".parent:hover > .child"))
	hint := m.RestyleHintForStateChange(0, StateHover)
	require.True(t, hint.Contains(RestyleDescendants))
}

func TestInvalidationSiblingCombinatorGivesSiblingsHint(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".prev:hover + .next"))
	hint := m.RestyleHintForStateChange(0, StateHover)
	require.True(t, hint.Contains(RestyleLaterSiblings))
}

func TestInvalidationLaterSiblingCombinatorGivesSiblingsHint(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".prev:hover ~ .next"))
	hint := m.RestyleHintForStateChange(0, StateHover)
	require.True(t, hint.Contains(RestyleLaterSiblings))
}

func TestInvalidationStructuralPseudoNoStateDependency(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ":first-child"))
	require.False(t, m.HasStateDependency(StateHover))
	require.False(t, m.HasStateDependency(StateFocus))
}

func TestInvalidationClearRemovesAllDependencies(t *testing.T) {
	m := NewInvalidationMap()
	m.RegisterSelector(sel(t, ".btn:hover"))
	m.RegisterSelector(sel(t, "#main"))
	m.RegisterSelector(sel(t, "[disabled]"))
	m.Clear()
	require.False(t, m.HasStateDependency(StateHover))
	require.False(t, m.HasClassDependency(Intern("btn")))
	require.False(t, m.HasIDDependency(Intern("main")))
	require.False(t, m.HasAttributeDependency(Intern("disabled")))
}
