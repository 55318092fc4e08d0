// Command demo drives vellum's reconciler, cascade and layout engine
// against a real terminal, the host application spec.md's "external
// collaborators" section assumes wraps the core: a keyboard-driven
// nav list, a clipboard-backed text field, a live diagnostics log and
// a figlet banner, repainted through the terminal package once per
// frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v3"
	"github.com/mbndr/figlet4go"

	"github.com/tekugo/vellum"
	"github.com/tekugo/vellum/devtools"
	"github.com/tekugo/vellum/terminal"
)

type section struct {
	key, title, body string
}

var sections = []section{
	{"overview", "Overview", "vellum is a retained-mode terminal UI core: a stylesheet cascade, a flex/block layout engine and a keyed view-tree reconciler, with no bundled widget set of its own."},
	{"layout", "Layout", "Flex and block formatting contexts resolve against the viewport on every frame. Resize the terminal to watch it reflow."},
	{"input", "Text Input", "Type into the field below. Ctrl-Y copies its contents to the system clipboard, Ctrl-P pastes from it."},
	{"log", "Diagnostics", "Recent engine diagnostics, newest first."},
}

const demoStylesheet = `
.app { display: flex; flex-direction: column; width: 100%; height: 100%; }
.header { display: flex; flex-direction: column; padding: 0 2; }
.banner-line { white-space: nowrap; }
.clock { text-align: right; }
.body { display: flex; flex-direction: row; flex-grow: 1; }
.nav { display: flex; flex-direction: column; width: 22c; border-style: solid; padding: 0 1; }
.nav-item { padding: 0 1; }
.nav-item.selected { color: white; background-color: #335577; }
.panel { display: flex; flex-direction: column; flex-grow: 1; padding: 1 2; }
.panel-title { font-weight: bold; padding: 0 0 1 0; }
.input-box { border-style: round; padding: 0 1; }
.input-box:focus { border-style: double; }
.log-line { white-space: nowrap; }
.footer { display: flex; flex-direction: row; padding: 0 1; }
.footer-key { color: white; }
`

type app struct {
	doc     *vellum.Document
	rec     *vellum.Reconciler
	stylist *vellum.Stylist
	surface terminal.CellSurface
	tracer  *devtools.Tracer
	log     *vellum.Log
	banner  []string

	watcher *vellum.StylesheetWatcher
	stop    chan struct{}

	selected   int
	inputFocus bool
	inputValue string
	frame      int
}

func main() {
	tracePath := flag.String("trace", "", "record per-frame restyle activity to this sqlite file")
	themeName := flag.String("theme", "default", "built-in theme name ("+strings.Join(vellum.ThemeNames(), ", ")+")")
	cssPath := flag.String("stylesheet", "", "optional CSS file layered over the theme, hot-reloaded on change")
	flag.Parse()

	a, err := newApp(*themeName, *cssPath, *tracePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vellum demo:", err)
		os.Exit(1)
	}
	defer a.close()

	if err := a.run(); err != nil {
		fmt.Fprintln(os.Stderr, "vellum demo:", err)
		os.Exit(1)
	}
}

func newApp(themeName, cssPath, tracePath string) (*app, error) {
	a := &app{
		doc: vellum.NewDocument(),
		log: vellum.NewLog(200),
	}
	a.rec = vellum.NewReconciler(a.doc)
	a.stylist = vellum.NewStylist()

	sheet, ok := vellum.LoadTheme(themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(vellum.ThemeNames(), ", "))
	}
	a.stylist.AddStylesheet(sheet)
	a.stylist.AddStylesheet(vellum.ParseStylesheet(demoStylesheet))

	if cssPath != "" {
		watcher, err := vellum.NewStylesheetWatcher(a.stylist)
		if err != nil {
			return nil, fmt.Errorf("stylesheet watcher: %w", err)
		}
		if err := watcher.WatchFile(cssPath); err != nil {
			return nil, fmt.Errorf("watching %s: %w", cssPath, err)
		}
		watcher.OnReload = func() { a.log.Add("stylesheet", "info", "reloaded %s", cssPath) }
		watcher.OnError = func(path string, err error) { a.log.Add("stylesheet", "error", "%s: %v", path, err) }
		a.watcher = watcher
		a.stop = make(chan struct{})
		go watcher.Run(a.stop)
	}

	ascii := figlet4go.NewAsciiRender()
	art, err := ascii.Render("vellum")
	if err != nil {
		return nil, fmt.Errorf("rendering banner: %w", err)
	}
	a.banner = strings.Split(strings.TrimRight(art, "\n"), "\n")

	if tracePath != "" {
		tr, err := devtools.Open(tracePath)
		if err != nil {
			return nil, fmt.Errorf("opening trace db: %w", err)
		}
		a.tracer = tr
	}

	a.rec.Mount(a.view(), a.doc.Root(), vellum.NoNode)
	a.log.Add("demo", "info", "started")
	return a, nil
}

func (a *app) close() {
	if a.watcher != nil {
		close(a.stop)
		a.watcher.Close()
	}
	if a.tracer != nil {
		a.tracer.Close()
	}
}

// view builds the whole document from the app's current state: the
// figlet banner and clock, a keyed nav list, the selected section's
// panel (growing the text field and log panel inline), and a footer
// of keybindings. Rebuilt every frame and diffed by the reconciler
// against the previously mounted tree.
func (a *app) view() vellum.View {
	b := vellum.NewBuilder()
	b.Div().Class("app").
		Add(a.header()).
		Add(a.body()).
		Add(a.footer()).
		End()
	return b.Build()
}

func (a *app) header() vellum.View {
	lines := make([]vellum.View, len(a.banner))
	for i, line := range a.banner {
		lines[i] = vellum.Element{Tag: vellum.SymDiv, Classes: []vellum.Symbol{vellum.Intern("banner-line")}, Child: vellum.Text(line)}
	}
	return vellum.Element{
		Tag:     vellum.SymDiv,
		Classes: []vellum.Symbol{vellum.Intern("header")},
		Child: vellum.Fragment(append(lines, vellum.Element{
			Tag:     vellum.SymDiv,
			Classes: []vellum.Symbol{vellum.Intern("clock")},
			Child:   vellum.Text(time.Now().Format("15:04:05")),
		})),
	}
}

func (a *app) body() vellum.View {
	return vellum.Element{
		Tag:     vellum.SymDiv,
		Classes: []vellum.Symbol{vellum.Intern("body")},
		Child: vellum.Fragment{
			a.nav(),
			a.panel(),
		},
	}
}

func (a *app) nav() vellum.View {
	return vellum.Element{
		Tag:     vellum.SymDiv,
		Classes: []vellum.Symbol{vellum.Intern("nav")},
		Child: vellum.ForEach[section, string]{
			Items: sections,
			Key:   func(s section) string { return s.key },
			Render: func(s section) vellum.View {
				classes := []vellum.Symbol{vellum.Intern("nav-item")}
				if s.key == sections[a.selected].key {
					classes = append(classes, vellum.Intern("selected"))
				}
				return vellum.Element{Tag: vellum.SymDiv, Classes: classes, Child: vellum.Text(s.title)}
			},
		},
	}
}

func (a *app) panel() vellum.View {
	cur := sections[a.selected]
	title := vellum.Element{Tag: vellum.SymDiv, Classes: []vellum.Symbol{vellum.Intern("panel-title")}, Child: vellum.Text(cur.title)}
	body := vellum.Element{Tag: vellum.SymDiv, Child: vellum.Text(cur.body)}

	children := vellum.Fragment{title, body}
	switch cur.key {
	case "input":
		children = append(children, a.inputField())
	case "log":
		children = append(children, a.logPanel())
	}

	return vellum.Element{
		Tag:     vellum.SymDiv,
		Classes: []vellum.Symbol{vellum.Intern("panel")},
		Child:   children,
	}
}

func (a *app) inputField() vellum.View {
	classes := []vellum.Symbol{vellum.Intern("input-box")}
	return vellum.Element{
		Tag:     vellum.SymInput,
		Classes: classes,
		Child:   vellum.Text(a.inputValue),
	}
}

func (a *app) logPanel() vellum.View {
	entries := a.log.Recent(15)
	lines := make([]vellum.View, len(entries))
	for i, e := range entries {
		lines[i] = vellum.Element{Tag: vellum.SymDiv, Classes: []vellum.Symbol{vellum.Intern("log-line")}, Child: vellum.Text(e.String())}
	}
	return vellum.Element{Tag: vellum.SymDiv, Child: vellum.Fragment(lines)}
}

func (a *app) footer() vellum.View {
	b := vellum.NewBuilder()
	b.Div().Class("footer").
		Text("↑/↓ Select  ").
		Text("Tab Focus Input  ").
		Text("Ctrl-Y Copy  ").
		Text("Ctrl-P Paste  ").
		Text("Ctrl-Q Quit").
		End()
	return b.Build()
}

// run initializes the terminal, paints the first frame, then loops
// handling keyboard/resize events until a quit is requested.
func (a *app) run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	a.surface = terminal.NewSurface(screen)

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.render()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			a.render()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev) {
					close(quit)
					continue
				}
				a.render()
			case *tcell.EventResize:
				screen.Sync()
				a.render()
			}
		}
	}
}

// handleKey applies one key event to the app's state, returning true
// if it requests application shutdown.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		a.inputFocus = !a.inputFocus
		a.doc.Focus(a.doc.Root())
		return false
	case tcell.KeyCtrlY:
		if err := clipboard.WriteAll(a.inputValue); err != nil {
			a.log.Add("clipboard", "error", "copy failed: %v", err)
		} else {
			a.log.Add("clipboard", "info", "copied %q", a.inputValue)
		}
		return false
	case tcell.KeyCtrlP:
		text, err := clipboard.ReadAll()
		if err != nil {
			a.log.Add("clipboard", "error", "paste failed: %v", err)
		} else {
			a.inputValue += text
			a.log.Add("clipboard", "info", "pasted %q", text)
		}
		return false
	}

	if a.inputFocus {
		switch ev.Key() {
		case tcell.KeyRune:
			a.inputValue += string(ev.Rune())
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if n := len(a.inputValue); n > 0 {
				a.inputValue = a.inputValue[:n-1]
			}
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		a.selected = (a.selected - 1 + len(sections)) % len(sections)
	case tcell.KeyDown:
		a.selected = (a.selected + 1) % len(sections)
	}
	return false
}

// render rebuilds the view against the app's current state, restyles
// and lays out the document, then paints the result onto the surface.
func (a *app) render() {
	a.rec.Update(a.view())

	width, height := a.surface.Size()
	viewport := vellum.Size{Width: width, Height: height}

	if a.tracer != nil {
		a.tracer.NextFrame()
		vellum.RunFrameObserved(a.doc, a.stylist, a.doc.Root(), viewport, vellum.LayoutOptions{}, a.tracer)
		if err := a.tracer.Err(); err != nil {
			a.log.Add("trace", "error", "%v", err)
		}
	} else {
		vellum.RunFrame(a.doc, a.stylist, a.doc.Root(), viewport, vellum.LayoutOptions{})
	}

	terminal.Paint(a.doc, a.surface)
	a.frame++
}
