package vellum

// CascadeData is the indexed form of a Stylesheet: rules are bucketed
// by the single highest-priority simple selector of their rightmost
// compound (id > class > tag > universal), so matching an element only
// has to probe the handful of buckets its own id/classes/tag touch
// instead of testing every rule in the sheet.
type CascadeData struct {
	byID       map[Symbol][]*Rule
	byClass    map[Symbol][]*Rule
	byTag      map[Symbol][]*Rule
	universal  []*Rule

	NumSelectors    int
	NumDeclarations int
}

// NewCascadeData returns an empty CascadeData ready for Insert calls.
func NewCascadeData() *CascadeData {
	return &CascadeData{
		byID:    make(map[Symbol][]*Rule),
		byClass: make(map[Symbol][]*Rule),
		byTag:   make(map[Symbol][]*Rule),
	}
}

// Insert buckets every selector in rule.Selectors. A rule with more
// than one selector (comma-separated group) is indexed once per
// selector, each carrying a pointer back to the same declarations.
func (c *CascadeData) Insert(rule *Rule) {
	c.NumSelectors += len(rule.Selectors)
	c.NumDeclarations += len(rule.Declarations)
	for i := range rule.Selectors {
		key := bucketKey(rule.Selectors[i].Key)
		switch key.bucket {
		case bucketID:
			c.byID[key.symbol] = append(c.byID[key.symbol], rule)
		case bucketClass:
			c.byClass[key.symbol] = append(c.byClass[key.symbol], rule)
		case bucketTag:
			c.byTag[key.symbol] = append(c.byTag[key.symbol], rule)
		default:
			c.universal = append(c.universal, rule)
		}
	}
}

// Clear empties all buckets, for use before a full re-insert on
// stylesheet hot-reload.
func (c *CascadeData) Clear() {
	c.byID = make(map[Symbol][]*Rule)
	c.byClass = make(map[Symbol][]*Rule)
	c.byTag = make(map[Symbol][]*Rule)
	c.universal = nil
	c.NumSelectors = 0
	c.NumDeclarations = 0
}

type bucketKeyResult struct {
	bucket selectorBucket
	symbol Symbol
}

// bucketKey mirrors extract_bucket_key from the Rust cascade: the
// first id found wins outright, else the first class, else the first
// tag, else universal. Only the rightmost (key) compound is consulted
// since CascadeData only ever buckets by the subject element.
func bucketKey(c CompoundSelector) bucketKeyResult {
	if c.ID != zeroSymbol {
		return bucketKeyResult{bucketID, c.ID}
	}
	if len(c.Classes) > 0 {
		return bucketKeyResult{bucketClass, c.Classes[0]}
	}
	if c.Tag != zeroSymbol {
		return bucketKeyResult{bucketTag, c.Tag}
	}
	return bucketKeyResult{bucketUniversal, zeroSymbol}
}

// candidateRules collects every rule whose bucket could plausibly
// match id: its id bucket, each of its class buckets, its tag bucket,
// and the universal bucket. Matches still has to be called per
// selector to confirm; this just prunes the search.
func (c *CascadeData) candidateRules(doc *Document, id NodeID) []*Rule {
	n := doc.get(id)
	var out []*Rule
	if n.id != zeroSymbol {
		out = append(out, c.byID[n.id]...)
	}
	for cl := range n.classes {
		out = append(out, c.byClass[cl]...)
	}
	if n.tag != zeroSymbol {
		out = append(out, c.byTag[n.tag]...)
	}
	out = append(out, c.universal...)
	return out
}

// matchedDeclaration is one declaration plus the specificity/order of
// the selector that matched it, the sort key for cascade resolution.
type matchedDeclaration struct {
	decl    Declaration
	sel     Selector
}

// MatchingDeclarations returns every declaration from every rule whose
// selector matches id, each still tagged with its selector's
// specificity so the caller can sort by the cascade order
// (spec.md §4.3: specificity, then source order, with !important
// taking an entire separate higher-priority pass).
func (c *CascadeData) MatchingDeclarations(doc *Document, id NodeID) []matchedDeclaration {
	var out []matchedDeclaration
	seen := make(map[*Rule]bool)
	for _, rule := range c.candidateRules(doc, id) {
		if seen[rule] {
			continue
		}
		seen[rule] = true
		for i := range rule.Selectors {
			sel := rule.Selectors[i]
			if sel.Matches(doc, id) {
				for _, d := range rule.Declarations {
					out = append(out, matchedDeclaration{decl: d, sel: sel})
				}
				break // a rule only contributes its declarations once even if multiple selectors in its list match
			}
		}
	}
	return out
}

// CascadeSort orders matched declarations for application: normal
// declarations first in (specificity, source-order) ascending order,
// then !important declarations in the same ascending order, so a
// later Apply simply overwrites earlier winners (spec.md §4.3's
// two-pass normal/important cascade).
func CascadeSort(in []matchedDeclaration) []matchedDeclaration {
	normal := make([]matchedDeclaration, 0, len(in))
	important := make([]matchedDeclaration, 0)
	for _, m := range in {
		if m.decl.Important {
			important = append(important, m)
		} else {
			normal = append(normal, m)
		}
	}
	sortMatched(normal)
	sortMatched(important)
	return append(normal, important...)
}

func sortMatched(m []matchedDeclaration) {
	// insertion sort: cascade rule counts per element are small (single
	// digits to low tens), and this keeps the sort stable without
	// pulling in sort.Slice's reflection overhead on a hot path.
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && m[j].sel.Less(m[j-1].sel); j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}
