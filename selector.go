package vellum

// Combinator joins two compound selectors in a complex selector.
type Combinator uint8

const (
	CombinatorDescendant      Combinator = iota // "a b"
	CombinatorChild                             // "a > b"
	CombinatorNextSibling                       // "a + b"
	CombinatorSubsequentSibling                  // "a ~ b"
)

// PseudoClassKind is the closed set of pseudo-classes spec.md §4.1 and
// the invalidation tables support.
type PseudoClassKind uint8

const (
	PseudoHover PseudoClassKind = iota
	PseudoFocus
	PseudoActive
	PseudoDisabled
	PseudoChecked
	PseudoFirstChild
	PseudoLastChild
	PseudoNthChild
)

// PseudoClass is one pseudo-class test within a compound selector.
// NthA/NthB hold the An+B coefficients for :nth-child(An+B); both are
// zero (matching only the literal child at index 0, i.e. never, unless
// explicitly set) for the non-parametrised pseudo-classes.
type PseudoClass struct {
	Kind   PseudoClassKind
	NthA   int
	NthB   int
}

// AttrSelector is an `[name]` or `[name=value]` attribute test.
// MatchValue is ignored (HasValue is false) for the bare-presence form.
type AttrSelector struct {
	Name       Symbol
	HasValue   bool
	MatchValue string
}

// CompoundSelector is a sequence of simple selectors that all apply to
// a single element: an optional type, id, any number of classes,
// attribute tests, and pseudo-classes. Tag zero means "any tag"
// (the universal selector, or its absence entirely).
type CompoundSelector struct {
	Tag         Symbol
	ID          Symbol
	Classes     []Symbol
	Attributes  []AttrSelector
	PseudoClasses []PseudoClass
	Nested      bool // true if this compound selector is the bare "&" or starts with one
}

// specificity returns the (id, class-like, type) specificity triple
// per CSS §, used for cascade sorting. class-like counts classes,
// attributes, and pseudo-classes together.
func (c CompoundSelector) specificity() (idCount, classCount, typeCount int) {
	if c.ID != zeroSymbol {
		idCount = 1
	}
	classCount = len(c.Classes) + len(c.Attributes) + len(c.PseudoClasses)
	if c.Tag != zeroSymbol {
		typeCount = 1
	}
	return
}

// bucketPriority classifies a compound selector into the cascade's
// four buckets (spec.md §4.3): id-selectors first, then class
// selectors, then type selectors, then the universal selector as a
// catch-all. A compound selector with more than one kind of simple
// selector is bucketed by its highest-priority component, since that
// is the component CascadeData indexes on for candidate lookup.
// Attributes and pseudo-classes do not pick a bucket: a compound made
// only of them (plus at most a tag) lands in the tag or universal one.
type selectorBucket uint8

const (
	bucketID selectorBucket = iota
	bucketClass
	bucketTag
	bucketUniversal
)

func (c CompoundSelector) bucket() selectorBucket {
	switch {
	case c.ID != zeroSymbol:
		return bucketID
	case len(c.Classes) > 0:
		return bucketClass
	case c.Tag != zeroSymbol:
		return bucketTag
	default:
		return bucketUniversal
	}
}

// combinatorStep is one (combinator, compound) pair in a complex
// selector, read right-to-left the way spec.md §4.1 / §4.3 matching
// walks it: the rightmost compound is matched against the subject
// element, then each step moves to an ancestor or sibling.
type combinatorStep struct {
	combinator Combinator
	compound   CompoundSelector
}

// Selector is one complex selector: a rightmost ("key") compound plus
// zero or more combinator steps reaching further left (ancestors or
// siblings). Specificity is precomputed at parse time for cascade sort
// stability.
type Selector struct {
	Key         CompoundSelector
	Ancestors   []combinatorStep // ordered left-to-right as written, i.e. Ancestors[len-1] is nearest to Key
	SpecIDs     int
	SpecClasses int
	SpecTypes   int
	SourceOrder int
}

// Specificity returns the selector's (id, class, type) triple for
// cascade-sort comparisons.
func (s Selector) Specificity() (int, int, int) { return s.SpecIDs, s.SpecClasses, s.SpecTypes }

// Less orders selectors by specificity then source order, the sort key
// CascadeData uses per spec.md §4.3.
func (s Selector) Less(o Selector) bool {
	if s.SpecIDs != o.SpecIDs {
		return s.SpecIDs < o.SpecIDs
	}
	if s.SpecClasses != o.SpecClasses {
		return s.SpecClasses < o.SpecClasses
	}
	if s.SpecTypes != o.SpecTypes {
		return s.SpecTypes < o.SpecTypes
	}
	return s.SourceOrder < o.SourceOrder
}

// SelectorList is a comma-separated group of selectors sharing one
// declaration block; matching succeeds if any member matches.
type SelectorList []Selector

// Matches reports whether sel matches id within doc, walking ancestor
// and sibling combinators per standard CSS matching semantics.
func (sel Selector) Matches(doc *Document, id NodeID) bool {
	if !matchesCompound(doc, id, sel.Key) {
		return false
	}
	cursor := id
	for i := len(sel.Ancestors) - 1; i >= 0; i-- {
		step := sel.Ancestors[i]
		switch step.combinator {
		case CombinatorDescendant:
			found := NoNode
			for anc := doc.Parent(cursor); anc != NoNode; anc = doc.Parent(anc) {
				if matchesCompound(doc, anc, step.compound) {
					found = anc
					break
				}
			}
			if found == NoNode {
				return false
			}
			cursor = found
		case CombinatorChild:
			parent := doc.Parent(cursor)
			if parent == NoNode || !matchesCompound(doc, parent, step.compound) {
				return false
			}
			cursor = parent
		case CombinatorNextSibling:
			prev := prevElementSibling(doc, cursor)
			if prev == NoNode || !matchesCompound(doc, prev, step.compound) {
				return false
			}
			cursor = prev
		case CombinatorSubsequentSibling:
			found := NoNode
			for s := prevElementSibling(doc, cursor); s != NoNode; s = prevElementSibling(doc, s) {
				if matchesCompound(doc, s, step.compound) {
					found = s
					break
				}
			}
			if found == NoNode {
				return false
			}
			cursor = found
		}
	}
	return true
}

func prevElementSibling(doc *Document, id NodeID) NodeID {
	for s := doc.get(id).prevSibling; s != NoNode; s = doc.get(s).prevSibling {
		if doc.Kind(s) == KindElement {
			return s
		}
	}
	return NoNode
}

func matchesCompound(doc *Document, id NodeID, c CompoundSelector) bool {
	if doc.Kind(id) != KindElement {
		return false
	}
	n := doc.get(id)
	if c.Tag != zeroSymbol && n.tag != c.Tag {
		return false
	}
	if c.ID != zeroSymbol && n.id != c.ID {
		return false
	}
	for _, cl := range c.Classes {
		if _, ok := n.classes[cl]; !ok {
			return false
		}
	}
	for _, a := range c.Attributes {
		v, ok := n.attributes[a.Name]
		if !ok {
			return false
		}
		if a.HasValue && v != a.MatchValue {
			return false
		}
	}
	for _, p := range c.PseudoClasses {
		if !matchesPseudo(doc, id, p) {
			return false
		}
	}
	return true
}

func matchesPseudo(doc *Document, id NodeID, p PseudoClass) bool {
	n := doc.get(id)
	switch p.Kind {
	case PseudoHover:
		return n.state.Has(StateHover)
	case PseudoFocus:
		return n.state.Has(StateFocus)
	case PseudoActive:
		return n.state.Has(StateActive)
	case PseudoDisabled:
		return n.state.Has(StateDisabled)
	case PseudoChecked:
		return n.state.Has(StateChecked)
	case PseudoFirstChild:
		idx, _ := doc.SiblingIndex(id)
		return idx == 0
	case PseudoLastChild:
		idx, count := doc.SiblingIndex(id)
		return idx == count-1
	case PseudoNthChild:
		idx, _ := doc.SiblingIndex(id)
		return matchesNth(idx+1, p.NthA, p.NthB)
	}
	return false
}

// matchesNth reports whether the 1-based child position pos satisfies
// the An+B formula: pos == A*n + B for some non-negative integer n.
func matchesNth(pos, a, b int) bool {
	if a == 0 {
		return pos == b
	}
	k := pos - b
	if k%a != 0 {
		return false
	}
	return k/a >= 0
}
