// internal/tui/app.go
//
// The full-screen game application. Owns the tcell screen, the event
// loop and the session lifecycle:
//   - letters fill the active row, Backspace deletes, Enter submits
//   - the on-screen keyboard mirrors physical keys and takes clicks
//   - rejected guesses surface a transient message and consume nothing
//   - once a session is won or lost, N starts a new one
//
// The engine stays UI-free: this package only calls game.ApplyGuess and
// renders what comes back.

package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/quintile/wordle/internal/game"
	"github.com/quintile/wordle/internal/store"
)

// Options wires the application to its collaborators.
type Options struct {
	Dict    game.Dictionary // valid-guess membership test
	Answer  func() string   // yields the secret for each new session
	History store.Store     // finished sessions, for the exit recap
	Log     zerolog.Logger
}

// App is the running game UI.
type App struct {
	screen  tcell.Screen
	opts    Options
	game    *game.Game
	kb      *keyboard
	buffer  []rune // letters typed into the active row
	message string // transient status line, cleared on next input
	regions []keyRegion
}

// New initializes the terminal screen and the first session.
func New(opts Options) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApp(screen, opts), nil
}

// newApp wires an App around an initialized screen. Tests pass a
// tcell.SimulationScreen here.
func newApp(screen tcell.Screen, opts Options) *App {
	screen.EnableMouse()
	a := &App{
		screen: screen,
		opts:   opts,
	}
	a.newSession()
	return a
}

// newSession starts a fresh game and resets the row buffer and the
// keyboard colors.
func (a *App) newSession() {
	a.game = game.New(a.opts.Answer(), a.opts.Dict)
	a.kb = newKeyboard()
	a.buffer = a.buffer[:0]
	a.message = ""
	a.opts.Log.Info().Str("game_id", a.game.ID).Msg("session started")
}

// Run drives the event loop until the player quits. The screen is
// released before returning so the caller can print to the terminal.
func (a *App) Run() error {
	defer a.screen.Fini()

	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// handleKey maps a physical key event onto the game. Returns true when
// the player asked to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.press('\n')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.press('\b')
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		if a.game.State().Finished() {
			switch r {
			case 'n':
				a.newSession()
			case 'q':
				return true
			}
			return false
		}
		if r >= 'a' && r <= 'z' {
			a.press(r)
		}
	}
	return false
}

// handleMouse routes primary-button clicks on the drawn keyboard.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	for _, reg := range a.regions {
		if reg.contains(x, y) {
			a.press(reg.key)
			return
		}
	}
}

// press applies one logical keystroke: a letter, '\b' or '\n'.
func (a *App) press(r rune) {
	if a.game.State().Finished() {
		return
	}
	a.message = ""
	switch {
	case r == '\b' && len(a.buffer) > 0:
		a.buffer = a.buffer[:len(a.buffer)-1]
	case r == '\n':
		a.submit()
	case r >= 'a' && r <= 'z' && len(a.buffer) < game.WordLength:
		a.buffer = append(a.buffer, r)
	}
}

// submit plays the buffered row against the engine.
func (a *App) submit() {
	if len(a.buffer) < game.WordLength {
		a.message = "Not enough letters"
		return
	}
	word := string(a.buffer)
	_, state, err := a.game.ApplyGuess(word)
	switch err {
	case nil:
	case game.ErrNotInWordList:
		// Buffer stays put so the player can edit it, as in the
		// desktop original.
		a.message = "Not in word list"
		return
	default:
		a.message = "Invalid input"
		return
	}

	a.kb.absorb(a.game.Guesses[len(a.game.Guesses)-1])
	a.buffer = a.buffer[:0]
	a.opts.Log.Debug().
		Str("game_id", a.game.ID).
		Str("guess", word).
		Stringer("state", state).
		Msg("guess scored")

	if state.Finished() {
		a.finish(state)
	}
}

// finish records the session and sets the end-of-game message.
func (a *App) finish(state game.State) {
	if a.opts.History != nil {
		a.opts.History.Add(store.NewRecord(a.game))
	}
	if state == game.StateWon {
		a.message = "Splendid! N: new game, Q: quit"
	} else {
		a.message = "The word was " + upper(a.game.Answer) + ". N: new game, Q: quit"
	}
	a.opts.Log.Info().
		Str("game_id", a.game.ID).
		Stringer("state", state).
		Int("guesses", len(a.game.Guesses)).
		Msg("session finished")
}

// draw repaints the whole screen: title, board, message, keyboard and
// the attempt counter.
func (a *App) draw() {
	a.screen.Clear()
	sw, sh := a.screen.Size()

	bw := boardWidth()
	kw := a.kb.width()
	totalH := 2 + boardHeight() + 2 + len(qwertyLayout) + 2
	top := (sh - totalH) / 2
	if top < 0 {
		top = 0
	}

	drawText(a.screen, (sw-6)/2, top, "WORDLE", tcell.StyleDefault.Bold(true))

	boardTop := top + 2
	drawBoard(a.screen, (sw-bw)/2, boardTop, a.game, a.buffer)

	msgRow := boardTop + boardHeight() + 1
	drawText(a.screen, (sw-textWidth(a.message))/2, msgRow, a.message, tcell.StyleDefault)

	a.regions = a.kb.draw(a.screen, (sw-kw)/2, msgRow+2)

	status := "guess " + strconv.Itoa(len(a.game.Guesses)) + "/" + strconv.Itoa(game.MaxGuesses) + " · Esc quits"
	drawText(a.screen, (sw-textWidth(status))/2, msgRow+2+len(qwertyLayout)+1, status, tcell.StyleDefault.Dim(true))

	a.screen.Show()
}

// drawText writes a plain string at (x, y), one cell per rune.
func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	if x < 0 {
		x = 0
	}
	i := 0
	for _, r := range text {
		s.SetContent(x+i, y, r, nil, st)
		i++
	}
}

// textWidth is the rendered width of a string in cells.
func textWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] = b[i] - 'a' + 'A'
		}
	}
	return string(b)
}
