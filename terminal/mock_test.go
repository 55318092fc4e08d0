package terminal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tekugo/vellum"
	"github.com/tekugo/vellum/terminal"
)

// TestSurfacePaintsThroughMockScreen exercises Surface against a real
// tcell.Screen backed by an in-memory virtual terminal (NewMockScreen)
// instead of RecordingSurface's bypass of tcell entirely — the one
// place this module drives the actual tcell cell grid end to end.
func TestSurfacePaintsThroughMockScreen(t *testing.T) {
	screen, err := terminal.NewMockScreen()
	require.NoError(t, err)
	defer screen.Fini()

	doc := vellum.NewDocument()
	root := doc.Root()
	rec := vellum.NewReconciler(doc)
	rec.Mount(vellum.Element{Tag: vellum.SymDiv, Child: vellum.Text("hi")}, root, vellum.NoNode)

	st := vellum.NewStylist()
	st.AddStylesheet(vellum.ParseStylesheet(`div { color: red; background-color: blue; }`))

	width, height := screen.Size()
	vellum.RunFrame(doc, st, root, vellum.Size{Width: width, Height: height}, vellum.LayoutOptions{})

	surface := terminal.NewSurface(screen)
	terminal.Paint(doc, surface)

	ch, _, _ := screen.Get(0, 0)
	require.Equal(t, "h", ch)
	ch, _, _ = screen.Get(1, 0)
	require.Equal(t, "i", ch)
}
