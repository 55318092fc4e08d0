package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buttonNamed(name, label string) Element {
	return Element{
		Tag:        SymButton,
		Attributes: map[Symbol]string{Intern("name"): name},
		Child:      Text(label),
	}
}

func namesOf(doc *Document, ids []NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		v, _ := doc.Attribute(id, Intern("name"))
		out = append(out, v)
	}
	return out
}

func TestFormControlsAreFocusable(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		Element{Tag: SymInput},
		Element{Tag: SymButton, Child: Text("Click")},
		Element{Tag: SymDiv, Child: Text("Not focusable")},
	}, root, NoNode)

	children := doc.Children(root)
	require.True(t, doc.IsFocusable(children[0]))
	require.True(t, doc.IsFocusable(children[1]))
	require.False(t, doc.IsFocusable(children[2]))
}

func TestLinkWithHrefIsFocusable(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		Element{Tag: SymAnchor, Attributes: map[Symbol]string{SymHref: "/home"}, Child: Text("a")},
		Element{Tag: SymAnchor, Child: Text("b")},
	}, root, NoNode)

	children := doc.Children(root)
	require.True(t, doc.IsFocusable(children[0]))
	require.False(t, doc.IsFocusable(children[1]))
}

func TestTabindexMakesElementFocusable(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		Element{Tag: SymDiv, Attributes: map[Symbol]string{SymTabIndex: "0"}, Child: Text("0")},
		Element{Tag: SymDiv, Attributes: map[Symbol]string{SymTabIndex: "-1"}, Child: Text("-1")},
		Element{Tag: SymDiv, Attributes: map[Symbol]string{SymTabIndex: "5"}, Child: Text("5")},
		Element{Tag: SymDiv, Child: Text("none")},
	}, root, NoNode)

	children := doc.Children(root)
	require.True(t, doc.IsFocusable(children[0]))
	require.True(t, doc.IsFocusable(children[1])) // focusable but not tabbable
	require.True(t, doc.IsFocusable(children[2]))
	require.False(t, doc.IsFocusable(children[3]))
}

func TestTabbableExcludesNegativeTabindex(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		Element{Tag: SymDiv, Attributes: map[Symbol]string{SymTabIndex: "0"}},
		Element{Tag: SymDiv, Attributes: map[Symbol]string{SymTabIndex: "-1"}},
	}, root, NoNode)

	children := doc.Children(root)
	require.True(t, doc.IsTabbable(children[0]))
	require.False(t, doc.IsTabbable(children[1]))
}

func TestDisabledElementsNotFocusable(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		buttonNamed("enabled", "Enabled"),
		buttonNamed("disabled", "Disabled"),
	}, root, NoNode)

	children := doc.Children(root)
	doc.SetState(children[1], doc.State(children[1])|StateDisabled)

	require.True(t, doc.IsFocusable(children[0]))
	require.False(t, doc.IsFocusable(children[1]))
}

func TestTabOrderInDocumentOrder(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		buttonNamed("first", "First"),
		buttonNamed("second", "Second"),
		buttonNamed("third", "Third"),
	}, root, NoNode)

	require.Equal(t, []string{"first", "second", "third"}, namesOf(doc, doc.TabOrder()))
}

func TestPositiveTabindexComesFirst(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	withTabindex := func(name, label, tabindex string) Element {
		e := buttonNamed(name, label)
		e.Attributes[SymTabIndex] = tabindex
		return e
	}

	r.Mount(Fragment{
		buttonNamed("default", "Default"),
		withTabindex("tab2", "Tab 2", "2"),
		withTabindex("tab1", "Tab 1", "1"),
	}, root, NoNode)

	require.Equal(t, []string{"tab1", "tab2", "default"}, namesOf(doc, doc.TabOrder()))
}

func TestNegativeTabindexExcludedFromTabOrder(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	hidden := buttonNamed("hidden", "Hidden")
	hidden.Attributes[SymTabIndex] = "-1"

	r.Mount(Fragment{
		buttonNamed("first", "First"),
		hidden,
		buttonNamed("second", "Second"),
	}, root, NoNode)

	require.Equal(t, []string{"first", "second"}, namesOf(doc, doc.TabOrder()))
}

func TestNestedElementsInDocumentOrder(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Element{Tag: SymDiv, Child: Fragment{
		buttonNamed("outer1", "Outer 1"),
		Element{Tag: SymDiv, Child: Fragment{
			buttonNamed("inner1", "Inner 1"),
			buttonNamed("inner2", "Inner 2"),
		}},
		buttonNamed("outer2", "Outer 2"),
	}}, root, NoNode)

	require.Equal(t, []string{"outer1", "inner1", "inner2", "outer2"}, namesOf(doc, doc.TabOrder()))
}

func TestFocusNextCyclesThroughElements(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		buttonNamed("a", "A"),
		buttonNamed("b", "B"),
		buttonNamed("c", "C"),
	}, root, NoNode)

	require.Equal(t, NoNode, doc.Focused())

	doc.FocusNext()
	name, _ := doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)

	doc.FocusNext()
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "b", name)

	doc.FocusNext()
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "c", name)

	doc.FocusNext() // wraps
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)
}

func TestFocusPrevCyclesBackwards(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{
		buttonNamed("a", "A"),
		buttonNamed("b", "B"),
		buttonNamed("c", "C"),
	}, root, NoNode)

	doc.FocusPrev() // starts from last
	name, _ := doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "c", name)

	doc.FocusPrev()
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "b", name)

	doc.FocusPrev()
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)

	doc.FocusPrev() // wraps
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "c", name)
}

func TestNoTabOrderReturnsNoNode(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Element{Tag: SymDiv, Child: Element{Tag: SymSpan, Child: Text("No focusable elements")}}, root, NoNode)

	require.Equal(t, NoNode, doc.FocusNext())
	require.Equal(t, NoNode, doc.FocusPrev())
	require.Equal(t, NoNode, doc.Focused())
}

func TestTabKeyMovesFocusForward(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{buttonNamed("a", "A"), buttonNamed("b", "B")}, root, NoNode)

	doc.ProcessKeyDown(KeyEventData{Key: KeyTab})
	name, _ := doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)

	doc.ProcessKeyDown(KeyEventData{Key: KeyTab})
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "b", name)
}

func TestShiftTabMovesFocusBackward(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{buttonNamed("a", "A"), buttonNamed("b", "B")}, root, NoNode)

	doc.Focus(doc.Children(root)[1])
	doc.ProcessKeyDown(KeyEventData{Key: KeyTab, Modifiers: ModShift})
	name, _ := doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)
}

func TestPreventDefaultStopsTabNavigation(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{buttonNamed("a", "A"), buttonNamed("b", "B")}, root, NoNode)

	a := doc.Children(root)[0]
	doc.Focus(a)
	doc.AddHandler(a, SymKeyDown, func(ev *Event) bool {
		ev.PreventDefault()
		return false
	})

	doc.ProcessKeyDown(KeyEventData{Key: KeyTab})
	require.Equal(t, a, doc.Focused())
}

func TestFocusPreservedAfterRebuild(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Element{Tag: SymButton, Child: Text("one")}, root, NoNode)
	btn := doc.Children(root)[0]
	doc.Focus(btn)

	r.Update(Element{Tag: SymButton, Child: Text("two")})

	require.Equal(t, btn, doc.Focused())
	require.Equal(t, "two", doc.Text(doc.FirstChild(btn)))
}

func buttonItems(labels ...string) ForEach[string, string] {
	return ForEach[string, string]{
		Items: labels,
		Key:   func(s string) string { return s },
		Render: func(s string) View {
			return Element{Tag: SymButton, Attributes: map[Symbol]string{Intern("name"): s}, Child: Text(s)}
		},
	}
}

func TestFocusUpdatesWithDynamicList(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(buttonItems("a", "b", "c"), root, NoNode)
	require.Len(t, doc.TabOrder(), 3)

	doc.FocusNext()
	name, _ := doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "a", name)

	r.Update(buttonItems("a", "c"))
	require.Len(t, doc.TabOrder(), 2)

	doc.FocusNext()
	name, _ = doc.Attribute(doc.Focused(), Intern("name"))
	require.Equal(t, "c", name)
}

func TestFocusPseudoClassMatchesFocusedElement(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(buttonNamed("a", "A"), root, NoNode)
	btn := doc.Children(root)[0]

	require.False(t, doc.State(btn).Has(StateFocus))
	doc.Focus(btn)
	require.True(t, doc.State(btn).Has(StateFocus))
	require.Equal(t, btn, doc.Focused())
}
