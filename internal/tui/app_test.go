package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintile/wordle/internal/game"
	"github.com/quintile/wordle/internal/store"
)

type testDict map[string]bool

func (d testDict) IsAllowed(w string) bool { return d[w] }

// newTestApp builds an App on a simulation screen.
func newTestApp(t *testing.T, answer string, dict testDict, hist store.Store) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return newApp(screen, Options{
		Dict:    dict,
		Answer:  func() string { return answer },
		History: hist,
		Log:     zerolog.Nop(),
	})
}

// typeWord presses each letter of w followed by Enter.
func typeWord(a *App, w string) {
	for _, r := range w {
		a.press(r)
	}
	a.press('\n')
}

func TestTypingFillsAndEditsBuffer(t *testing.T) {
	a := newTestApp(t, "crane", testDict{"crane": true}, nil)

	a.press('s')
	a.press('l')
	assert.Equal(t, "sl", string(a.buffer))

	a.press('\b')
	assert.Equal(t, "s", string(a.buffer))

	// The row never grows past five letters.
	for _, r := range "latex" {
		a.press(r)
	}
	assert.Equal(t, "slate", string(a.buffer))
}

func TestSubmitShortRow(t *testing.T) {
	a := newTestApp(t, "crane", testDict{"crane": true}, nil)
	a.press('c')
	a.press('\n')
	assert.Equal(t, "Not enough letters", a.message)
	assert.Empty(t, a.game.Guesses)
}

func TestSubmitUnknownWordKeepsBuffer(t *testing.T) {
	a := newTestApp(t, "crane", testDict{"crane": true}, nil)
	typeWord(a, "zzzzz")
	assert.Equal(t, "Not in word list", a.message)
	assert.Equal(t, "zzzzz", string(a.buffer))
	assert.Empty(t, a.game.Guesses)
}

func TestWinRecordsHistory(t *testing.T) {
	hist := store.NewMemoryStore()
	dict := testDict{"crane": true, "slate": true}
	a := newTestApp(t, "crane", dict, hist)

	typeWord(a, "slate")
	assert.Equal(t, game.StatePlaying, a.game.State())
	assert.Empty(t, a.buffer)

	typeWord(a, "crane")
	assert.Equal(t, game.StateWon, a.game.State())

	records := hist.List()
	require.Len(t, records, 1)
	assert.Equal(t, game.StateWon, records[0].State)
	assert.Len(t, records[0].Marks, 2)

	// Further typing is ignored in a terminal state.
	a.press('s')
	assert.Empty(t, a.buffer)
}

func TestLossRevealsAnswer(t *testing.T) {
	hist := store.NewMemoryStore()
	dict := testDict{"crane": true, "slate": true}
	a := newTestApp(t, "crane", dict, hist)

	for i := 0; i < game.MaxGuesses; i++ {
		typeWord(a, "slate")
	}
	assert.Equal(t, game.StateLost, a.game.State())
	assert.Contains(t, a.message, "CRANE")
	require.Len(t, hist.List(), 1)
}

func TestKeyboardAbsorbsGuesses(t *testing.T) {
	dict := testDict{"crane": true, "slate": true}
	a := newTestApp(t, "crane", dict, nil)

	typeWord(a, "slate")
	assert.Equal(t, tileAbsent, a.kb.state('s'))
	assert.Equal(t, tileAbsent, a.kb.state('l'))
	assert.Equal(t, tileCorrect, a.kb.state('a'))
	assert.Equal(t, tileAbsent, a.kb.state('t'))
	assert.Equal(t, tileCorrect, a.kb.state('e'))
}

func TestNewSessionResets(t *testing.T) {
	dict := testDict{"crane": true}
	a := newTestApp(t, "crane", dict, store.NewMemoryStore())

	typeWord(a, "crane")
	require.True(t, a.game.State().Finished())

	ev := tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)
	quit := a.handleKey(ev)
	assert.False(t, quit)
	assert.Equal(t, game.StatePlaying, a.game.State())
	assert.Empty(t, a.game.Guesses)
	assert.Equal(t, tileEmpty, a.kb.state('c'))
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t, "crane", testDict{"crane": true}, nil)

	assert.True(t, a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, a.handleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))

	// 'q' only quits once the session is over; mid-game it is a letter.
	assert.False(t, a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, "q", string(a.buffer))

	a.press('\b') // drop the leftover 'q'
	typeWord(a, "crane")
	require.True(t, a.game.State().Finished())
	assert.True(t, a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestMouseClicksKeyboard(t *testing.T) {
	a := newTestApp(t, "crane", testDict{"crane": true}, nil)
	a.draw() // populates key regions

	var reg keyRegion
	for _, r := range a.regions {
		if r.key == 'c' {
			reg = r
			break
		}
	}
	require.NotZero(t, reg.w)

	ev := tcell.NewEventMouse(reg.x, reg.y, tcell.Button1, tcell.ModNone)
	a.handleMouse(ev)
	assert.Equal(t, "c", string(a.buffer))
}

func TestDrawDoesNotPanicOnSmallScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 5)

	a := newApp(screen, Options{
		Dict:   testDict{"crane": true},
		Answer: func() string { return "crane" },
		Log:    zerolog.Nop(),
	})
	a.draw()
}
