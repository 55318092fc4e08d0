package vellum

import "strings"

// customValueKind distinguishes a pending custom-property declaration's
// shape before resolution, mirroring the original's
// Resolved | Unresolved | Inherit | Initial split.
type customValueKind uint8

const (
	customResolved customValueKind = iota
	customUnresolved
	customInherit
	customInitial
)

type customDecl struct {
	name  Symbol
	kind  customValueKind
	text  string // customResolved: literal value. customUnresolved: raw text containing var() refs.
}

// CustomPropertiesResolver builds one element's resolved custom
// property map from its matched declarations plus its parent's
// already-resolved map, substituting var() references to a
// fixed point and detecting reference cycles (spec.md §4.4).
type CustomPropertiesResolver struct {
	inherited    map[Symbol]string
	declarations []customDecl
}

// NewCustomPropertiesResolver starts a resolver seeded with the
// parent element's resolved custom properties; inherited may be nil
// for the root or an element whose parent set none.
func NewCustomPropertiesResolver(inherited map[Symbol]string) *CustomPropertiesResolver {
	return &CustomPropertiesResolver{inherited: inherited}
}

// Add records one custom-property declaration in cascade order; later
// calls for the same name win, matching ordinary cascade semantics.
func (r *CustomPropertiesResolver) Add(name Symbol, value Value) {
	switch value.Kind {
	case ValueInherit, ValueUnset:
		// Custom properties are always inherited, so unset behaves as
		// inherit for them regardless of Property.Inherited() (that
		// table only governs the standard properties).
		r.declarations = append(r.declarations, customDecl{name: name, kind: customInherit})
	case ValueInitial:
		r.declarations = append(r.declarations, customDecl{name: name, kind: customInitial})
	case ValueUnresolved:
		if strings.Contains(value.RawTokens, "var(") {
			r.declarations = append(r.declarations, customDecl{name: name, kind: customUnresolved, text: value.RawTokens})
		} else {
			r.declarations = append(r.declarations, customDecl{name: name, kind: customResolved, text: value.RawTokens})
		}
	}
}

// Build resolves every pending declaration to a fixed point and
// returns the element's final custom-property map (seeded from
// inherited, then overwritten by resolved declarations).
func (r *CustomPropertiesResolver) Build() map[Symbol]string {
	if len(r.declarations) == 0 {
		return r.inherited
	}
	values := make(map[Symbol]string, len(r.inherited)+len(r.declarations))
	for k, v := range r.inherited {
		values[k] = v
	}
	pending := make(map[Symbol]customDecl, len(r.declarations))
	for _, d := range r.declarations {
		pending[d.name] = d
	}
	resolving := make(map[Symbol]bool)
	for name, decl := range pending {
		resolveCustomProperty(name, decl, pending, values, resolving, r.inherited)
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func resolveCustomProperty(name Symbol, decl customDecl, pending map[Symbol]customDecl, resolved map[Symbol]string, resolving map[Symbol]bool, inherited map[Symbol]string) error {
	switch decl.kind {
	case customInitial:
		delete(resolved, name)
		return nil
	case customInherit:
		return nil
	}

	if resolving[name] {
		delete(resolved, name)
		return &ParseError{Kind: InvalidVariable, Message: "cycle detected in custom property " + Resolve(name)}
	}
	resolving[name] = true
	defer delete(resolving, name)

	switch decl.kind {
	case customResolved:
		resolved[name] = decl.text
		return nil
	case customUnresolved:
		substituted, err := substituteVars(decl.text, func(ref Symbol) (string, bool) {
			if _, ok := resolved[ref]; !ok {
				if dep, ok := pending[ref]; ok {
					_ = resolveCustomProperty(ref, dep, pending, resolved, resolving, inherited)
				}
			}
			v, ok := resolved[ref]
			return v, ok
		})
		if err != nil {
			if _, ok := inherited[name]; !ok {
				delete(resolved, name)
			}
			return err
		}
		resolved[name] = substituted
		return nil
	}
	return nil
}

// substituteVars replaces every var(--name) or var(--name, fallback)
// occurrence in raw with lookup's result (recursively substituting
// inside fallback text too), failing only if a reference has neither
// a resolved value nor a fallback.
func substituteVars(raw string, lookup func(Symbol) (string, bool)) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(raw) {
		idx := strings.Index(raw[i:], "var(")
		if idx < 0 {
			out.WriteString(raw[i:])
			break
		}
		out.WriteString(raw[i : i+idx])
		start := i + idx + len("var(")
		depth := 1
		j := start
		for j < len(raw) && depth > 0 {
			switch raw[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth > 0 {
				j++
			}
		}
		inner := raw[start:j]
		name, fallback, hasFallback := splitVarArgs(inner)
		sym := Intern(strings.TrimSpace(name))
		if v, ok := lookup(sym); ok {
			out.WriteString(v)
		} else if hasFallback {
			substitutedFallback, err := substituteVars(fallback, lookup)
			if err != nil {
				return "", err
			}
			out.WriteString(substitutedFallback)
		} else {
			return "", &ParseError{Kind: InvalidVariable, Message: "undefined variable without fallback " + name}
		}
		i = j + 1
	}
	return out.String(), nil
}

func splitVarArgs(inner string) (name, fallback string, hasFallback bool) {
	depth := 0
	for i, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return inner[:i], strings.TrimSpace(inner[i+1:]), true
			}
		}
	}
	return inner, "", false
}
