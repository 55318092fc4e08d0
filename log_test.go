package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogWrapsAtCapacity(t *testing.T) {
	l := NewLog(3)
	l.Add("a", "info", "one")
	l.Add("a", "info", "two")
	l.Add("a", "info", "three")
	l.Add("a", "info", "four")

	require.Equal(t, 3, l.Length())
	require.Equal(t, "four", l.Entry(0).Message)
	require.Equal(t, "two", l.Entry(2).Message)
}

func TestLogRecentNewestFirst(t *testing.T) {
	l := NewLog(5)
	l.Add("a", "info", "one")
	l.Add("a", "info", "two")

	recent := l.Recent(10)
	require.Len(t, recent, 2)
	require.Equal(t, "two", recent[0].Message)
	require.Equal(t, "one", recent[1].Message)
}

func TestStylistLogsComputeStyle(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	st := NewStylist()
	st.Log = NewLog(8)
	_, _ = st.ComputeStyle(doc, root, nil, nil)

	require.Equal(t, 1, st.Log.Length())
	require.Equal(t, "stylist", st.Log.Entry(0).Source)
}
