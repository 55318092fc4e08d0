package vellum

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// StylesheetWatcher re-parses and re-cascades one or more stylesheet
// files into a Stylist whenever they change on disk, the live-reload
// workflow spec.md's authoring story assumes (edit a .css file, see
// the running app restyle without a rebuild).
type StylesheetWatcher struct {
	stylist *Stylist
	watcher *fsnotify.Watcher
	sources map[string]bool // watched file paths from WatchFile
	globs   []string

	// OnReload is called after a successful re-parse and re-cascade,
	// letting the caller mark its document dirty for a full restyle.
	OnReload func()
	// OnError is called when a watched file fails to read, or with an
	// empty path when the filesystem watcher reports an error; after a
	// read failure the previous successfully-loaded stylesheet stays in
	// effect. Parse problems do not reach OnError: ParseStylesheet skips
	// bad rules and records them in Stylesheet.Errors.
	OnError func(path string, err error)
}

// NewStylesheetWatcher wraps st with filesystem-change detection. The
// caller owns st's lifecycle; Close stops watching without touching
// the Stylist's already-loaded rules.
func NewStylesheetWatcher(st *Stylist) (*StylesheetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &StylesheetWatcher{stylist: st, watcher: w, sources: make(map[string]bool)}, nil
}

// WatchFile loads path immediately and re-loads it on every write.
func (w *StylesheetWatcher) WatchFile(path string) error {
	w.sources[path] = true
	if err := w.reloadAll(); err != nil {
		return err
	}
	return w.watcher.Add(path)
}

// WatchGlob loads every file currently matching pattern (e.g.
// "themes/**/*.css") and re-scans the pattern whenever anything under
// its root directory changes, so files added after the initial call
// are picked up too.
func (w *StylesheetWatcher) WatchGlob(pattern string) error {
	w.globs = append(w.globs, pattern)
	root, _ := doublestar.SplitPattern(pattern)
	if root == "" {
		root = "."
	}
	if err := w.watcher.Add(root); err != nil {
		return err
	}
	return w.reloadAll()
}

// Run drains filesystem events until stop is closed, re-parsing and
// re-cascading on every relevant write/create/rename.
func (w *StylesheetWatcher) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.reloadAll(); err != nil && w.OnError != nil {
				w.OnError(ev.Name, err)
				continue
			}
			if w.OnReload != nil {
				w.OnReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.OnError != nil {
				w.OnError("", err)
			}
		}
	}
}

// reloadAll re-reads every watched file and glob match, clears the
// Stylist, and re-registers every stylesheet from scratch. A single
// bad file aborts the reload (the caller's OnError can choose to keep
// running on the previous cascade) rather than leaving the Stylist
// half-populated.
func (w *StylesheetWatcher) reloadAll() error {
	paths := make([]string, 0, len(w.sources))
	for p := range w.sources {
		paths = append(paths, p)
	}
	for _, pattern := range w.globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return err
		}
		paths = append(paths, matches...)
	}

	sheets := make([]*Stylesheet, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		sheets = append(sheets, ParseStylesheet(string(src)))
	}

	w.stylist.Clear()
	for _, sheet := range sheets {
		w.stylist.AddStylesheet(sheet)
	}
	return nil
}

// Close stops watching; already-loaded rules remain on the Stylist.
func (w *StylesheetWatcher) Close() error {
	return w.watcher.Close()
}
