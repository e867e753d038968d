// internal/tui/keyboard.go
//
// On-screen QWERTY keyboard. Tracks a display state per letter and owns
// the upgrade rule: a key's state only ever increases (absent < present
// < correct), so a letter once shown green never fades back to yellow.
// Keys are clickable; draw returns the hit regions for mouse lookup.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quintile/wordle/internal/game"
)

// Control markers inside the layout strings, as in the original
// desktop layout: '\n' is ENTER, '\b' is backspace.
var qwertyLayout = []string{
	"qwertyuiop",
	"asdfghjkl",
	"\nzxcvbnm\b",
}

const (
	letterKeyWidth = 3 // " q "
	wideKeyWidth   = 5 // " ↵ " / " ⌫ " with extra padding
	keyGap         = 1
)

// keyRegion is a clickable rectangle on the rendered keyboard.
type keyRegion struct {
	x, y, w int
	key     rune // letter, '\n' or '\b'
}

// contains reports whether the screen cell (x, y) falls on the key.
func (r keyRegion) contains(x, y int) bool {
	return y == r.y && x >= r.x && x < r.x+r.w
}

// keyboard holds the per-letter display state.
type keyboard struct {
	states map[rune]tileState
}

func newKeyboard() *keyboard {
	k := &keyboard{states: make(map[rune]tileState, 26)}
	for r := 'a'; r <= 'z'; r++ {
		k.states[r] = tileEmpty
	}
	return k
}

// state returns the current display state for a letter.
func (k *keyboard) state(r rune) tileState {
	return k.states[r]
}

// upgrade raises a letter's state, never lowering it.
func (k *keyboard) upgrade(r rune, s tileState) {
	if s > k.states[r] {
		k.states[r] = s
	}
}

// absorb applies a scored guess to the keyboard.
func (k *keyboard) absorb(g game.Guess) {
	for i, m := range g.Marks {
		k.upgrade(rune(g.Word[i]), markState(m))
	}
}

// width returns the rendered width of the widest keyboard row.
func (k *keyboard) width() int {
	w := 0
	for _, row := range qwertyLayout {
		rw := 0
		for _, r := range row {
			rw += keyWidth(r) + keyGap
		}
		rw -= keyGap
		if rw > w {
			w = rw
		}
	}
	return w
}

// draw renders the keyboard with its top-left at (x, y) and returns the
// clickable regions, one per key.
func (k *keyboard) draw(s tcell.Screen, x, y int) []keyRegion {
	regions := make([]keyRegion, 0, 28)
	width := k.width()
	for row, keys := range qwertyLayout {
		rw := 0
		for _, r := range keys {
			rw += keyWidth(r) + keyGap
		}
		rw -= keyGap
		cx := x + (width-rw)/2 // center shorter rows
		cy := y + row
		for _, r := range keys {
			w := keyWidth(r)
			drawCells(s, cx, cy, w, keyLabel(r), keyStyle(k, r))
			regions = append(regions, keyRegion{x: cx, y: cy, w: w, key: r})
			cx += w + keyGap
		}
	}
	return regions
}

func keyWidth(r rune) int {
	if r == '\n' || r == '\b' {
		return wideKeyWidth
	}
	return letterKeyWidth
}

func keyLabel(r rune) rune {
	switch r {
	case '\n':
		return '↵'
	case '\b':
		return '⌫'
	default:
		return toUpper(r)
	}
}

// keyStyle: control keys stay in the neutral treatment; letters follow
// their tracked state.
func keyStyle(k *keyboard, r rune) tcell.Style {
	if r == '\n' || r == '\b' {
		return tileEmpty.style()
	}
	return k.state(r).style()
}

// drawCells paints a w-wide one-cell-high key with label centered.
func drawCells(s tcell.Screen, x, y, w int, label rune, st tcell.Style) {
	for i := 0; i < w; i++ {
		c := ' '
		if i == w/2 {
			c = label
		}
		s.SetContent(x+i, y, c, nil, st)
	}
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
