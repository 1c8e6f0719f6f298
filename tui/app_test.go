package tui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/mines"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, s := range keys {
		next, _ := m.Update(key(s))
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

func testModel(params *mines.GameParams) model {
	return newModel(Options{
		Params: params,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
}

func TestMenuNavigation(t *testing.T) {
	t.Parallel()

	m := testModel(nil)
	assert.Equal(t, screenMenu, m.screen)

	m = press(t, m, "up")
	assert.Equal(t, 0, m.idx, "menu cursor clamps at the top")

	m = press(t, m, "down", "enter")
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, mines.Intermediate, m.params)
}

func TestMenuPreselectsDifficulty(t *testing.T) {
	t.Parallel()

	m := newModel(Options{Difficulty: "Expert"})
	assert.Equal(t, 2, m.idx)

	m = newModel(Options{Difficulty: "nonsense"})
	assert.Equal(t, 0, m.idx)
}

func TestMenuQuit(t *testing.T) {
	t.Parallel()

	m := testModel(nil)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	t.Parallel()

	m := testModel(&mines.Beginner)
	_, cmd := m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCustomGameEntry(t *testing.T) {
	t.Parallel()

	m := testModel(nil)
	m = press(t, m, "down", "down", "down", "enter") // Custom...
	require.Equal(t, screenCustom, m.screen)

	m = press(t, m, "9", "x", "9", ":", "9", "9", "enter")
	assert.Equal(t, screenCustom, m.screen, "invalid config stays on entry")
	assert.NotEmpty(t, m.menuErr)

	m = press(t, m, "backspace", "enter") // 9x9:9
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, mines.GameParams{Width: 9, Height: 9, MineCount: 9}, m.params)
}

func TestCursorClampsAtBoundary(t *testing.T) {
	t.Parallel()

	m := testModel(&mines.Beginner)
	require.Equal(t, screenGame, m.screen)
	require.Equal(t, 0, m.curY)

	m = press(t, m, "up")
	assert.Equal(t, 0, m.curY, "move up at row 0 leaves cursor unchanged")
	m = press(t, m, "left")
	assert.Equal(t, 0, m.curX)

	for range 20 {
		m = press(t, m, "right")
	}
	assert.Equal(t, mines.Beginner.Width-1, m.curX)

	m = press(t, m, "s", "j", "down")
	assert.Equal(t, 3, m.curY)
}

func TestRevealAndFlagKeys(t *testing.T) {
	t.Parallel()

	m := testModel(&mines.Beginner)
	assert.False(t, m.board.MinesPlaced())

	m = press(t, m, "enter")
	assert.True(t, m.board.MinesPlaced())
	assert.True(t, m.board.CellAt(0, 0).Open())

	m = press(t, m, "right", "right", "right", "right")
	if !m.board.CellAt(4, 0).Open() {
		m = press(t, m, " ")
		assert.Equal(t, mines.Flagged, m.board.CellAt(4, 0))
		assert.Equal(t, 1, m.board.FlagCount())
	}
}

func TestEscForfeitsAndReturnsToMenu(t *testing.T) {
	t.Parallel()

	m := testModel(&mines.Beginner)
	m = press(t, m, "enter", "esc")
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.board)
}

func TestRestartKeepsParams(t *testing.T) {
	t.Parallel()

	m := testModel(&mines.Expert)
	m = press(t, m, "enter", "r")
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, mines.Expert, m.params)
	assert.False(t, m.board.MinesPlaced(), "restart gives a fresh board")
}

func TestViewRenders(t *testing.T) {
	t.Parallel()

	m := testModel(nil)
	assert.Contains(t, m.View(), "MINESWEEPER")

	m = press(t, m, "enter") // Beginner
	view := m.View()
	assert.Contains(t, view, "mines left: 10")
	assert.Contains(t, view, "-")
}
