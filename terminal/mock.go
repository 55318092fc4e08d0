package terminal

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/vt"
)

// NewMockScreen builds a tcell.Screen backed by an in-memory virtual
// terminal instead of a real tty, for integration tests that want a
// genuine tcell.Screen (cursor handling, resize events) without a
// terminal attached. Grounded on the teacher's next/mock.go.
func NewMockScreen(opts ...vt.MockOpt) (tcell.Screen, error) {
	mt := vt.NewMockTerm(opts...)
	scr, err := tcell.NewTerminfoScreenFromTty(mt)
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	return scr, nil
}
