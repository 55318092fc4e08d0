package vellum

// DependencyLocation records where, relative to the element whose
// state/attribute/class changed, a registered selector needs that
// value: on the element itself, on an ancestor reached through a
// descendant/child combinator, or on a preceding sibling reached
// through a sibling combinator.
type DependencyLocation uint8

const (
	LocationSubject DependencyLocation = iota
	LocationAncestor
	LocationPreviousSibling
)

// restyleHint is the widest-propagation hint a dependency at this
// location requires: a subject-local dependency only needs the
// element itself restyled, but an ancestor or sibling dependency means
// a change can ripple forward into descendants or later siblings that
// never changed themselves.
func (l DependencyLocation) restyleHint() RestyleHint {
	switch l {
	case LocationSubject:
		return RestyleSelf
	case LocationAncestor:
		return RestyleDescendants
	case LocationPreviousSibling:
		return RestyleLaterSiblings
	}
	return RestyleNone
}

type dependency struct {
	location DependencyLocation
}

// InvalidationMap indexes which selector components a stylesheet
// depends on (by state bit, attribute name, class name, id) together
// with where in the selector that dependency sits, so a single
// element mutation can be turned into a minimal RestyleHint instead of
// forcing a full-document restyle.
type InvalidationMap struct {
	state     map[StateFlags][]dependency
	attribute map[Symbol][]dependency
	class     map[Symbol][]dependency
	id        map[Symbol][]dependency
}

// NewInvalidationMap returns an empty InvalidationMap.
func NewInvalidationMap() *InvalidationMap {
	return &InvalidationMap{
		state:     make(map[StateFlags][]dependency),
		attribute: make(map[Symbol][]dependency),
		class:     make(map[Symbol][]dependency),
		id:        make(map[Symbol][]dependency),
	}
}

// Clear empties all dependency tables, for use before a full
// re-registration on stylesheet hot-reload.
func (m *InvalidationMap) Clear() {
	m.state = make(map[StateFlags][]dependency)
	m.attribute = make(map[Symbol][]dependency)
	m.class = make(map[Symbol][]dependency)
	m.id = make(map[Symbol][]dependency)
}

// RegisterSelector walks sel's compound selectors right to left,
// tracking the DependencyLocation each compound sits at (Subject for
// the key compound, then Ancestor or PreviousSibling once a
// descendant/child or sibling combinator has been crossed), and
// records one dependency per simple selector component it contains.
func (m *InvalidationMap) RegisterSelector(sel Selector) {
	m.registerCompound(sel.Key, LocationSubject)
	location := LocationSubject
	for i := len(sel.Ancestors) - 1; i >= 0; i-- {
		step := sel.Ancestors[i]
		switch step.combinator {
		case CombinatorChild, CombinatorDescendant:
			location = LocationAncestor
		case CombinatorNextSibling, CombinatorSubsequentSibling:
			location = LocationPreviousSibling
		}
		m.registerCompound(step.compound, location)
	}
}

func (m *InvalidationMap) registerCompound(c CompoundSelector, loc DependencyLocation) {
	dep := dependency{location: loc}
	if c.ID != zeroSymbol {
		m.id[c.ID] = append(m.id[c.ID], dep)
	}
	for _, cl := range c.Classes {
		m.class[cl] = append(m.class[cl], dep)
	}
	for _, a := range c.Attributes {
		m.attribute[a.Name] = append(m.attribute[a.Name], dep)
	}
	for _, p := range c.PseudoClasses {
		if state := pseudoClassToState(p.Kind); state != 0 {
			m.state[state] = append(m.state[state], dep)
		}
	}
}

func pseudoClassToState(k PseudoClassKind) StateFlags {
	switch k {
	case PseudoHover:
		return StateHover
	case PseudoFocus:
		return StateFocus
	case PseudoActive:
		return StateActive
	case PseudoDisabled:
		return StateDisabled
	case PseudoChecked:
		return StateChecked
	}
	return 0
}

// RestyleHintForStateChange computes the hint a hover/focus/active/
// disabled/checked transition from old to new requires, by checking
// which changed bits any registered selector actually depends on.
func (m *InvalidationMap) RestyleHintForStateChange(old, new StateFlags) RestyleHint {
	changed := old ^ new
	hint := RestyleNone
	for state, deps := range m.state {
		if changed&state == 0 {
			continue
		}
		for _, d := range deps {
			hint |= d.location.restyleHint()
		}
	}
	return hint
}

func (m *InvalidationMap) RestyleHintForAttributeChange(attr Symbol) RestyleHint {
	return hintFor(m.attribute[attr])
}

func (m *InvalidationMap) RestyleHintForClassChange(class Symbol) RestyleHint {
	return hintFor(m.class[class])
}

func (m *InvalidationMap) RestyleHintForIDChange(id Symbol) RestyleHint {
	return hintFor(m.id[id])
}

func hintFor(deps []dependency) RestyleHint {
	hint := RestyleNone
	for _, d := range deps {
		hint |= d.location.restyleHint()
	}
	return hint
}

func (m *InvalidationMap) HasStateDependency(state StateFlags) bool {
	for s := range m.state {
		if s&state != 0 {
			return true
		}
	}
	return false
}

func (m *InvalidationMap) HasAttributeDependency(attr Symbol) bool {
	_, ok := m.attribute[attr]
	return ok
}

func (m *InvalidationMap) HasClassDependency(class Symbol) bool {
	_, ok := m.class[class]
	return ok
}

func (m *InvalidationMap) HasIDDependency(id Symbol) bool {
	_, ok := m.id[id]
	return ok
}
