package vellum

// Built-in color palettes, ported from the teacher's handful of
// Go-constructed Theme values (theme-default.go, theme-nord.go,
// theme-gruvbox.go, theme-tokyo-night.go, theme-midnight-neon.go) into
// plain CSS text parsed by the stylesheet engine itself rather than a
// second, bespoke styling API: each palette becomes a set of custom
// properties on a universal `*` rule plus a handful of rules using them
// through var(), the same mechanism an application's own stylesheet
// uses.
var builtinThemes = map[string]string{
	"default": `
* {
	--fg: white; --bg: black;
	--accent: #774433; --accent2: #334477;
}
div, span { color: var(--fg); background-color: var(--bg); }
input { color: white; background-color: black; }
button { color: white; background-color: green; border-style: solid; padding: 0 2; }
button:focus { color: red; background-color: white; border-style: solid; padding: 0 2; }
button:hover { color: white; background-color: #8b0000; border-style: solid; padding: 0 2; }
.header { color: white; background-color: var(--accent); }
.footer { color: white; background-color: var(--accent2); }
`,

	"nord": `
* {
	--bg0: #2e3440; --bg1: #3b4252; --bg2: #434c5e; --bg3: #4c566a;
	--fg0: #eceff4; --fg1: #e5e9f0; --fg2: #d8dee9;
	--frost1: #8fbcbb; --frost2: #88c0d0; --frost3: #81a1c1; --frost4: #5e81ac;
	--red: #bf616a; --orange: #d08770; --yellow: #ebcb8b; --green: #a3be8c; --purple: #b48ead;
}
div, span { color: var(--fg0); background-color: var(--bg0); }
input { color: var(--fg0); background-color: var(--bg2); }
input:focus { color: var(--bg0); background-color: var(--frost3); }
button { color: var(--bg0); background-color: var(--frost2); border-style: solid; padding: 0 2; }
button:focus { color: var(--fg0); background-color: var(--frost4); }
button:hover { color: var(--red); background-color: var(--frost2); }
a { color: var(--frost3); }
a:focus { color: var(--frost1); }
.header { color: var(--fg0); background-color: var(--bg1); }
.footer { color: var(--fg0); background-color: var(--bg1); }
`,

	"gruvbox-dark": `
* {
	--bg0: #282828; --bg1: #3c3836; --bg2: #504945; --bg3: #665c54; --bg4: #7c6f64;
	--fg0: #fbf1c7; --fg1: #ebdbb2; --fg2: #d5c4a1; --fg3: #bdae93; --fg4: #a89984;
	--gray: #928374; --red: #fb4934; --green: #b8bb26; --yellow: #fabd2f;
	--blue: #83a598; --purple: #d3869b; --aqua: #8ec07c; --orange: #fe8019;
}
div, span { color: var(--fg1); background-color: var(--bg0); }
input { color: var(--fg0); background-color: var(--bg1); }
input:focus { color: var(--fg0); background-color: var(--bg0); border-style: double; }
button { color: var(--bg0); background-color: var(--aqua); border-style: solid; padding: 0 2; }
button:focus { color: var(--fg0); background-color: var(--bg2); border-style: double; }
button:hover { color: var(--bg0); background-color: var(--yellow); }
.header { color: var(--fg0); background-color: var(--bg1); }
.footer { color: var(--fg0); background-color: var(--bg1); }
.popup { color: var(--fg1); background-color: var(--bg1); border-style: double; }
`,

	"tokyo-night": `
* {
	--bg0: #1a1b26; --bg1: #1e1e2e; --bg2: #1b263b; --bg3: #414868;
	--fg0: #c0caf5; --fg1: #565f89;
	--blue: #7aa2f7; --cyan: #2ac3de; --aqua: #89ddff; --magenta: #bb9af7;
	--red: #f7768e; --orange: #ff9e64; --yellow: #e0af68; --green: #9ece6a;
}
div, span { color: var(--fg0); background-color: var(--bg0); margin: 0; padding: 0; }
button { color: var(--bg0); background-color: var(--blue); border-style: solid; padding: 0 2; }
button:focus { color: var(--fg0); background-color: var(--blue); }
button:hover { color: var(--red); background-color: var(--blue); }
input { color: var(--fg0); background-color: var(--bg2); }
input:focus { color: var(--bg0); background-color: var(--blue); }
a { color: var(--cyan); }
.header { color: var(--fg0); background-color: var(--fg1); }
.footer { color: var(--fg0); background-color: var(--fg1); }
`,

	"midnight-neon": `
* {
	--bg0: #0f1117; --bg1: #1a1c23; --bg2: #242730; --bg3: #2f323d;
	--fg0: #5ee9f0; --fg1: #c7ccd9; --fg2: #a0a4b3; --fg3: #6c7384;
	--blue: #5aaaff; --cyan: #40e000; --green: #4cd964;
	--yellow: #ffd866; --orange: #ff9f43; --magenta: #c792ea;
}
div, span { color: var(--fg1); background-color: var(--bg0); }
button { color: var(--bg0); background-color: var(--fg0); border-style: solid; padding: 0 2; }
button:focus { color: var(--fg0); background-color: var(--bg2); border-style: solid; }
button:hover { color: var(--bg0); background-color: var(--magenta); }
input { color: var(--fg1); background-color: var(--bg1); }
input:focus { color: var(--fg0); background-color: var(--bg2); }
`,
}

// ThemeNames lists the built-in palettes LoadTheme accepts.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	return names
}

// LoadTheme parses one of the built-in palettes into a Stylesheet,
// ready to hand to a Stylist alongside (and cascaded under, since it is
// parsed first) an application's own rules. The bool reports whether
// name is a known palette.
func LoadTheme(name string) (*Stylesheet, bool) {
	src, ok := builtinThemes[name]
	if !ok {
		return nil, false
	}
	return ParseStylesheet(src), true
}
