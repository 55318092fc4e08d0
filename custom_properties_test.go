package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomPropertiesEmptyBuilder(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	require.Empty(t, r.Build())
}

func TestCustomPropertiesSimpleResolved(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--color"), UnresolvedValue("red"))
	m := r.Build()
	require.Equal(t, "red", m[Intern("--color")])
}

func TestCustomPropertiesCascadeOrder(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--color"), UnresolvedValue("red"))
	r.Add(Intern("--color"), UnresolvedValue("blue"))
	m := r.Build()
	require.Equal(t, "blue", m[Intern("--color")])
}

func TestCustomPropertiesInheritance(t *testing.T) {
	parent := NewCustomPropertiesResolver(nil)
	parent.Add(Intern("--color"), UnresolvedValue("red"))
	parentMap := parent.Build()

	child := NewCustomPropertiesResolver(parentMap)
	childMap := child.Build()
	require.Equal(t, "red", childMap[Intern("--color")])
}

func TestCustomPropertiesOverrideInherited(t *testing.T) {
	parent := NewCustomPropertiesResolver(nil)
	parent.Add(Intern("--color"), UnresolvedValue("red"))
	parentMap := parent.Build()

	child := NewCustomPropertiesResolver(parentMap)
	child.Add(Intern("--color"), UnresolvedValue("blue"))
	childMap := child.Build()
	require.Equal(t, "blue", childMap[Intern("--color")])
}

func TestCustomPropertiesInitialResets(t *testing.T) {
	parent := NewCustomPropertiesResolver(nil)
	parent.Add(Intern("--color"), UnresolvedValue("red"))
	parentMap := parent.Build()

	child := NewCustomPropertiesResolver(parentMap)
	child.Add(Intern("--color"), InitialValue())
	childMap := child.Build()
	_, ok := childMap[Intern("--color")]
	require.False(t, ok)
}

func TestCustomPropertiesVarSubstitution(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--primary"), UnresolvedValue("blue"))
	r.Add(Intern("--color"), UnresolvedValue("var(--primary)"))
	m := r.Build()
	require.Equal(t, "blue", m[Intern("--color")])
}

func TestCustomPropertiesVarChain(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--a"), UnresolvedValue("red"))
	r.Add(Intern("--b"), UnresolvedValue("var(--a)"))
	r.Add(Intern("--c"), UnresolvedValue("var(--b)"))
	m := r.Build()
	require.Equal(t, "red", m[Intern("--c")])
}

func TestCustomPropertiesCycleDetection(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--a"), UnresolvedValue("var(--b)"))
	r.Add(Intern("--b"), UnresolvedValue("var(--a)"))
	m := r.Build()
	_, aOK := m[Intern("--a")]
	_, bOK := m[Intern("--b")]
	require.False(t, aOK)
	require.False(t, bOK)
}

func TestCustomPropertiesUndefinedWithFallback(t *testing.T) {
	r := NewCustomPropertiesResolver(nil)
	r.Add(Intern("--color"), UnresolvedValue("var(--missing, red)"))
	m := r.Build()
	require.Equal(t, "red", m[Intern("--color")])
}

func TestCustomPropertiesUndefinedNoFallbackInherits(t *testing.T) {
	parent := NewCustomPropertiesResolver(nil)
	parent.Add(Intern("--color"), UnresolvedValue("inherited-red"))
	parentMap := parent.Build()

	child := NewCustomPropertiesResolver(parentMap)
	child.Add(Intern("--color"), UnresolvedValue("var(--missing)"))
	childMap := child.Build()
	require.Equal(t, "inherited-red", childMap[Intern("--color")])
}
