// Package tui implements the terminal front end: a menu, a cursor-driven
// game screen and the Bubble Tea program that runs them. Host code can
// embed the game by constructing an [App] and calling [App.Run].
package tui

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/mines"
)

var Log = logrus.New()

type Options struct {
	// Params skips the menu and starts a game directly when set.
	Params *mines.GameParams
	// Difficulty preselects a menu entry by name, e.g. "expert".
	Difficulty string
	// NoColor strips all styling except the cursor highlight.
	NoColor bool
	// Rand is the mine placement source. Defaults to a time-seeded PCG.
	Rand *rand.Rand
}

type App struct {
	opts Options
}

func New(opts Options) *App {
	return &App{opts: opts}
}

func (a *App) Run() error {
	if a.opts.Params != nil {
		if err := a.opts.Params.Validate(); err != nil {
			return err
		}
	}
	p := tea.NewProgram(newModel(a.opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type screen int

const (
	screenMenu screen = iota
	screenCustom
	screenGame
)

type model struct {
	opts   Options
	styles styles
	rand   *rand.Rand
	screen screen

	// menu
	idx     int
	menuErr string

	// custom difficulty entry
	customInput string

	// game
	board      *mines.Board
	params     mines.GameParams
	curX, curY int
}

func newModel(opts Options) model {
	r := opts.Rand
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(now, now>>32))
	}
	s := defaultStyles()
	if opts.NoColor {
		s = plainStyles()
	}
	m := model{
		opts:   opts,
		styles: s,
		rand:   r,
		screen: screenMenu,
		idx:    menuIndex(opts.Difficulty),
	}
	if opts.Params != nil {
		m.startGame(*opts.Params)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenCustom:
		return m.updateCustom(key)
	case screenGame:
		return m.updateGame(key)
	}
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenCustom:
		return m.viewCustom()
	case screenGame:
		return m.viewGame()
	}
	return ""
}

// startGame replaces any current board with a fresh one. Params are
// assumed valid; the menu and the CLI both validate before calling.
func (m *model) startGame(params mines.GameParams) {
	board, err := mines.NewBoard(params, m.rand)
	if err != nil {
		Log.WithError(err).Error("could not start game")
		m.screen = screenMenu
		m.menuErr = err.Error()
		return
	}
	m.board = board
	m.params = params
	m.curX, m.curY = 0, 0
	m.screen = screenGame
	Log.WithField("params", params.Seed()).Info("new game")
}

// leaveGame returns to the menu, forfeiting a game still in progress.
func (m *model) leaveGame() {
	if m.board != nil && m.board.Status() == mines.InProgress {
		m.board.Forfeit()
		Log.WithField("params", m.params.Seed()).Info("game forfeited")
	}
	m.board = nil
	m.screen = screenMenu
	m.menuErr = ""
}
