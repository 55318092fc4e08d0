package devtools_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tekugo/vellum"
	"github.com/tekugo/vellum/devtools"
)

func TestTracerRecordsRestyleObservations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	tracer, err := devtools.Open(path)
	require.NoError(t, err)
	defer tracer.Close()

	doc := vellum.NewDocument()
	r := vellum.NewReconciler(doc)
	root := doc.Root()
	r.Mount(vellum.Element{Tag: vellum.SymDiv, Child: vellum.Element{Tag: vellum.SymSpan}}, root, vellum.NoNode)

	st := vellum.NewStylist()
	st.AddStylesheet(vellum.ParseStylesheet(`div { width: 10c; } span { color: red; }`))

	tracer.NextFrame()
	vellum.RunFrameObserved(doc, st, root, vellum.Size{Width: 80, Height: 24}, vellum.LayoutOptions{}, tracer)
	require.NoError(t, tracer.Err())

	rows, err := tracer.Frames(1)
	require.NoError(t, err)
	require.Len(t, rows, 3, "one row per restyled element: the document root, the div and the span")
	for _, row := range rows {
		require.Empty(t, row.OldStyle, "first frame has no prior style for either node")
		require.NotEmpty(t, row.NewStyle)
	}
}

func TestTracerRecordsPriorStyleOnSecondFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	tracer, err := devtools.Open(path)
	require.NoError(t, err)
	defer tracer.Close()

	doc := vellum.NewDocument()
	r := vellum.NewReconciler(doc)
	root := doc.Root()
	r.Mount(vellum.Element{Tag: vellum.SymDiv}, root, vellum.NoNode)

	st := vellum.NewStylist()
	st.AddStylesheet(vellum.ParseStylesheet(`div { width: 10c; }`))

	tracer.NextFrame()
	vellum.RunFrameObserved(doc, st, root, vellum.Size{Width: 80, Height: 24}, vellum.LayoutOptions{}, tracer)

	tracer.NextFrame()
	vellum.RunFrameObserved(doc, st, root, vellum.Size{Width: 80, Height: 24}, vellum.LayoutOptions{}, tracer)
	require.NoError(t, tracer.Err())

	rows, err := tracer.Frames(2)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the document root and the div")
	require.NotEmpty(t, rows[0].OldStyle, "second frame's restyle had a prior ComputedStyle to compare against")
}
