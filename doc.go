// Package vellum implements the retained-mode core of a terminal UI
// framework: a CSS-like stylesheet cascade, a flex/block layout engine,
// and a keyed reconciler that diffs a lazy view tree against a retained
// document tree.
//
// The package deliberately stops short of terminal I/O, input decoding
// and a view-construction DSL — those are external collaborators (see
// package terminal for the tcell-backed cell surface this core paints
// onto). Everything in vellum can be driven headlessly, which is what
// the test suite does throughout.
//
// A frame runs the pipeline in one direction: apply pending view
// mutations (Rebuild), recompute styles (Document.RestyleTree, which
// restyles every element of the tree on each frame; RestyleHints do not
// narrow this pass), recompute layout for dirty subtrees
// (ComputeLayout), paint (terminal.Paint), then drain input events for
// the next frame (Document.Dispatch). The reactive layer may re-enter at the top for the next
// frame, but never mid-phase.
package vellum
