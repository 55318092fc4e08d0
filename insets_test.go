package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEdgesShorthand(t *testing.T) {
	require.Equal(t, Edges{}, NewEdges())
	require.Equal(t, Edges{5, 5, 5, 5}, NewEdges(5))
	require.Equal(t, Edges{10, 20, 10, 20}, NewEdges(10, 20))
	require.Equal(t, Edges{1, 2, 3, 2}, NewEdges(1, 2, 3))
	require.Equal(t, Edges{1, 2, 3, 4}, NewEdges(1, 2, 3, 4))
}

func TestEdgesHorizontalVertical(t *testing.T) {
	e := NewEdges(1, 2, 3, 4)
	require.Equal(t, 6, e.Horizontal())
	require.Equal(t, 4, e.Vertical())
}

func TestEdgesClamped(t *testing.T) {
	e := Edges{Top: -5, Right: 3, Bottom: -1, Left: 0}
	require.Equal(t, Edges{0, 3, 0, 0}, e.Clamped())
}

func TestBoxArithmetic(t *testing.T) {
	b := ResolvedBox{
		Content: Size{Width: 10, Height: 5},
		Border:  NewEdges(1),
		Padding: NewEdges(2),
		Margin:  NewEdges(3),
	}
	require.Equal(t, Size{Width: 16, Height: 11}, b.BorderBoxSize())
	require.Equal(t, Size{Width: 22, Height: 17}, b.MarginBoxSize())
}
