package vellum

// staticManifest lists every compile-time-known string: tag names,
// pseudo-class names used by the selector matcher, attribute names, and
// event names. Index 0 is reserved for the empty string so a zero-valued
// Symbol resolves sensibly.
//
// Static symbols are materialised once during package initialisation
// and never grow;
// looking one up never touches a lock.
var staticManifest = []string{
	"", // zeroSymbol

	// Tags
	"div", "span", "text", "marker",
	"input", "button", "select", "textarea", "a",

	// Pseudo-classes / structural selectors
	"hover", "focus", "active", "disabled", "checked",
	"first-child", "last-child", "nth-child",

	// Attribute names referenced by the focus/hit-test machinery
	"tabindex", "href", "disabled", "style", "id", "class",

	// Event names
	"mousemove", "mousedown", "mouseup", "click", "dblclick",
	"contextmenu", "wheel", "keydown", "keyup",
}

var staticTable, staticIndex = buildStaticTables()

// buildStaticTables runs as a package-level initializer rather than in
// init() so the tables exist before the Sym* variables below call Intern.
func buildStaticTables() ([]string, map[string]Symbol) {
	table := make([]string, len(staticManifest))
	index := make(map[string]Symbol, len(staticManifest))
	for i, s := range staticManifest {
		table[i] = s
		index[s] = Symbol(i)
	}
	return table, index
}

// Well-known static symbols, resolved once at init time for hot paths
// that would otherwise call Intern on every match.
var (
	SymEmpty  = Intern("")
	SymDiv    = Intern("div")
	SymSpan   = Intern("span")
	SymText   = Intern("text")
	SymMarker = Intern("marker")

	SymInput    = Intern("input")
	SymButton   = Intern("button")
	SymSelect   = Intern("select")
	SymTextarea = Intern("textarea")
	SymAnchor   = Intern("a")

	SymHover      = Intern("hover")
	SymFocus      = Intern("focus")
	SymActive     = Intern("active")
	SymDisabled   = Intern("disabled")
	SymChecked    = Intern("checked")
	SymFirstChild = Intern("first-child")
	SymLastChild  = Intern("last-child")
	SymNthChild   = Intern("nth-child")

	SymTabIndex   = Intern("tabindex")
	SymHref       = Intern("href")
	SymDisabledAt = Intern("disabled")
	SymStyleAttr  = Intern("style")
	SymIDAttr     = Intern("id")
	SymClassAttr  = Intern("class")

	SymMouseMove   = Intern("mousemove")
	SymMouseDown   = Intern("mousedown")
	SymMouseUp     = Intern("mouseup")
	SymClick       = Intern("click")
	SymDblClick    = Intern("dblclick")
	SymContextMenu = Intern("contextmenu")
	SymWheel       = Intern("wheel")
	SymKeyDown     = Intern("keydown")
	SymKeyUp       = Intern("keyup")
)
