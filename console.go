package easel

import (
	"log"
	"net/url"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// Console text metrics.
const (
	consoleTextSize   = 14.0
	consoleLineHeight = 20.0
)

type entryKind uint8

const (
	entryOutput entryKind = iota // a growing output region
	entryRead                    // an echoed prompt + committed input line
)

type consoleEntry struct {
	kind entryKind
	text string
}

// console is the sequential text IO panel. Reads render a prompt and wait for
// either pre-seeded input (query parameter "i", consumed line by line) or
// live typing committed with Enter. Writes grow the current output region; a
// read after a write seals the region and the next write starts a new one.
//
// When an expected transcript ("o") is present, the actual output is compared
// as a literal string and rendered as matching prefix + diverging suffix.
// The "test" parameter shows the captured session as a shareable query
// string instead.
type console struct {
	app *App

	seeded      []string
	expected    string
	hasExpected bool
	authoring   bool

	entries    []consoleEntry
	transcript string
	inputs     []string // committed and seeded lines, for the share link
	wroteLast  bool

	reading bool
	prompt  string
	buffer  []rune
	result  chan string
}

func newConsole(a *App, query string) *console {
	c := &console{app: a}
	if query == "" {
		return c
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		log.Printf("easel: malformed query %q: %v", query, err)
		return c
	}
	if in := values.Get("i"); in != "" {
		c.seeded = splitSeedLines(in)
	}
	if out, ok := values["o"]; ok && len(out) > 0 {
		c.expected = out[0]
		c.hasExpected = true
	}
	if _, ok := values["test"]; ok {
		c.authoring = true
	}
	return c
}

// splitSeedLines splits newline-separated seed input, dropping a trailing
// empty line so "5\n" seeds exactly one read.
func splitSeedLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// activate switches the window to panel mode on first console use.
// Caller holds app.mu.
func (c *console) activate() {
	c.app.usePanels()
}

// writeLocked appends s to the current output region. Caller holds app.mu.
func (c *console) writeLocked(s string) {
	c.activate()
	if !c.wroteLast || len(c.entries) == 0 {
		c.entries = append(c.entries, consoleEntry{kind: entryOutput})
	}
	c.entries[len(c.entries)-1].text += s
	c.transcript += s
	c.wroteLast = true
}

// commitLocked records a completed read. Caller holds app.mu.
func (c *console) commitLocked(prompt, line string) {
	c.entries = append(c.entries, consoleEntry{kind: entryRead, text: prompt + line})
	c.inputs = append(c.inputs, line)
	c.wroteLast = false
}

// feedChar consumes one typed character while a live read is pending.
// Returns false if the console isn't reading. Caller holds app.mu.
func (c *console) feedChar(r rune) bool {
	if !c.reading {
		return false
	}
	if unicode.IsPrint(r) {
		c.buffer = append(c.buffer, r)
	}
	return true
}

// tick services a pending live read: backspace editing and Enter commit.
// Caller holds app.mu.
func (c *console) tick(a *App) {
	if !c.reading {
		return
	}
	if a.keys.take(ebiten.KeyBackspace) && len(c.buffer) > 0 {
		c.buffer = c.buffer[:len(c.buffer)-1]
	}
	if a.keys.take(ebiten.KeyEnter) || a.keys.take(ebiten.KeyNumpadEnter) {
		line := string(c.buffer)
		c.commitLocked(c.prompt, line)
		c.reading = false
		c.buffer = c.buffer[:0]
		c.result <- line
	}
}

// draw renders the console into the column (x, y, w), returning the next
// free y. Caller holds app.mu.
func (c *console) draw(screen *ebiten.Image, x, y, w float64) float64 {
	_ = w // entries render unwrapped; long lines simply clip
	for _, e := range c.entries {
		clr := "gainsboro"
		if e.kind == entryRead {
			clr = "khaki"
		}
		for _, line := range strings.Split(e.text, "\n") {
			textOn(screen, line, x, y, consoleTextSize, ParseColor(clr))
			y += consoleLineHeight
		}
	}
	if c.reading {
		textOn(screen, c.prompt+string(c.buffer)+"_", x, y, consoleTextSize, ParseColor("khaki"))
		y += consoleLineHeight
	}
	if c.hasExpected {
		y = c.drawDiff(screen, x, y)
	}
	if c.authoring && (len(c.inputs) > 0 || c.transcript != "") {
		y += consoleLineHeight / 2
		textOn(screen, "share: ?"+c.shareQuery(), x, y, consoleTextSize, ParseColor("lightskyblue"))
		y += consoleLineHeight
	}
	return y + consoleLineHeight/2
}

// drawDiff renders the literal comparison of actual vs expected output:
// matching prefix in green, diverging suffix in red, expected value below.
func (c *console) drawDiff(screen *ebiten.Image, x, y float64) float64 {
	prefix, match := diffSplit(c.transcript, c.expected)
	y += consoleLineHeight / 2
	if match {
		textOn(screen, "output matches expected", x, y, consoleTextSize, ParseColor("palegreen"))
		return y + consoleLineHeight
	}
	ok := c.transcript[:prefix]
	bad := c.transcript[prefix:]
	okW, _ := measureText(ok, consoleTextSize)
	textOn(screen, ok, x, y, consoleTextSize, ParseColor("palegreen"))
	textOn(screen, bad, x+okW, y, consoleTextSize, ParseColor("salmon"))
	y += consoleLineHeight
	textOn(screen, "expected: "+c.expected, x, y, consoleTextSize, ParseColor("darkgray"))
	return y + consoleLineHeight
}

// diffSplit returns the length of the common prefix of actual and expected,
// and whether the two are identical. A literal string diff — no structure.
func diffSplit(actual, expected string) (prefixLen int, match bool) {
	n := len(actual)
	if len(expected) < n {
		n = len(expected)
	}
	i := 0
	for i < n && actual[i] == expected[i] {
		i++
	}
	return i, actual == expected
}

// shareQuery encodes the captured session as a query string. Caller holds
// app.mu (or the session is quiescent).
func (c *console) shareQuery() string {
	v := url.Values{}
	if len(c.inputs) > 0 {
		v.Set("i", strings.Join(c.inputs, "\n")+"\n")
	}
	if c.transcript != "" {
		v.Set("o", c.transcript)
	}
	return v.Encode()
}

// --- App-facing API ---

// ReadLine renders prompt in the console panel and returns the next input
// line: the next pre-seeded line when the session was seeded, otherwise it
// blocks until the user commits a line with Enter. A pending read cannot be
// aborted.
func (a *App) ReadLine(prompt string) string {
	a.mu.Lock()
	c := a.console
	c.activate()
	if len(c.seeded) > 0 {
		line := c.seeded[0]
		c.seeded = c.seeded[1:]
		c.commitLocked(prompt, line)
		a.mu.Unlock()
		return line
	}
	c.reading = true
	c.prompt = prompt
	c.buffer = c.buffer[:0]
	ch := make(chan string, 1)
	c.result = ch
	a.mu.Unlock()
	return <-ch
}

// Write appends s to the console's current output region.
func (a *App) Write(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.console.writeLocked(s)
}

// Writeln appends s and a newline to the console output.
func (a *App) Writeln(s string) {
	a.Write(s + "\n")
}

// Output returns the full output transcript (the concatenation of all
// writes), which is what replay mode compares against the expected value.
func (a *App) Output() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.console.transcript
}

// OutputDiff compares the transcript against the expected output supplied in
// the query string. prefixLen is the length of the matching prefix; match is
// true on an exact match. With no expected output configured, OutputDiff
// reports a match against the transcript itself.
func (a *App) OutputDiff() (prefixLen int, match bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := a.console
	if !c.hasExpected {
		return len(c.transcript), true
	}
	return diffSplit(c.transcript, c.expected)
}

// ShareQuery returns the captured session (inputs and output) encoded as a
// query string, ready to paste after "?" in a link.
func (a *App) ShareQuery() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.console.shareQuery()
}
