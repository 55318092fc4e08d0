package vellum

// Builder provides a fluent interface for constructing View trees. It
// maintains a stack of open elements, the same Add/End idiom the
// teacher's widget Builder uses, but closing over declarative View
// values rather than live widgets: nothing is attached to a Document
// until the finished tree is handed to a Reconciler.
type Builder struct {
	stack []*frame
	root  View
}

type frame struct {
	tag      Symbol
	id       Symbol
	classes  []Symbol
	attrs    map[Symbol]string
	children []View
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		panic("vellum: builder method called with no open element")
	}
	return b.stack[len(b.stack)-1]
}

// Element opens a new element with the given tag; it stays open for
// subsequent ID/Class/Attr/Text/Add calls until End closes it.
func (b *Builder) Element(tag Symbol) *Builder {
	b.stack = append(b.stack, &frame{tag: tag})
	return b
}

// Div and Span are shorthand for the two tags most view trees nest
// plain layout/flow boxes in.
func (b *Builder) Div() *Builder  { return b.Element(SymDiv) }
func (b *Builder) Span() *Builder { return b.Element(SymSpan) }

// ID sets the open element's "id" attribute.
func (b *Builder) ID(id string) *Builder {
	b.top().id = Intern(id)
	return b
}

// Class adds one or more classes to the open element.
func (b *Builder) Class(names ...string) *Builder {
	f := b.top()
	for _, n := range names {
		f.classes = append(f.classes, Intern(n))
	}
	return b
}

// Attr sets an attribute on the open element.
func (b *Builder) Attr(name, value string) *Builder {
	f := b.top()
	if f.attrs == nil {
		f.attrs = make(map[Symbol]string)
	}
	f.attrs[Intern(name)] = value
	return b
}

// Text appends a text node as a child of the open element.
func (b *Builder) Text(s string) *Builder {
	return b.Add(Text(s))
}

// Add appends an arbitrary View — a ForEach, an Either, a ShowIf, or a
// subtree assembled by another Builder — as a child of the open
// element.
func (b *Builder) Add(v View) *Builder {
	f := b.top()
	f.children = append(f.children, v)
	return b
}

// End closes the innermost open element: its accumulated children
// become its Child view (nil for none, the child itself for exactly
// one, a Fragment for more than one), and the finished Element is
// appended to its parent frame — or, once the stack empties, becomes
// the builder's root.
func (b *Builder) End() *Builder {
	f := b.top()
	b.stack = b.stack[:len(b.stack)-1]

	el := Element{
		Tag:        f.tag,
		ID:         f.id,
		Classes:    f.classes,
		Attributes: f.attrs,
		Child:      childOf(f.children),
	}

	if len(b.stack) == 0 {
		b.root = el
		return b
	}
	parent := b.stack[len(b.stack)-1]
	parent.children = append(parent.children, el)
	return b
}

func childOf(children []View) View {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return Fragment(children)
	}
}

// With applies fn to this builder, for moving reusable pieces of a view
// tree into their own function without breaking the fluent chain.
func (b *Builder) With(fn func(*Builder)) *Builder {
	fn(b)
	return b
}

// Build returns the completed root View. It panics if any element
// opened with Element/Div/Span was never closed with End.
func (b *Builder) Build() View {
	if len(b.stack) != 0 {
		panic("vellum: Builder.Build called with unclosed element(s)")
	}
	return b.root
}
