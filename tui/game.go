package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/mines"
)

func (m model) updateGame(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board.Status() != mines.InProgress {
		switch key.String() {
		case "r":
			m.startGame(m.params)
		case "enter", "esc", "backspace", "q":
			m.leaveGame()
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k", "w":
		m.moveCursor(0, -1)
	case "down", "j", "s":
		m.moveCursor(0, 1)
	case "left", "h", "a":
		m.moveCursor(-1, 0)
	case "right", "l", "d":
		m.moveCursor(1, 0)
	case "enter", "x":
		m.revealOrChord()
	case " ", "f":
		if err := m.board.ToggleFlag(m.curX, m.curY); err != nil {
			Log.WithError(err).Error("flag failed")
		}
	case "r":
		m.startGame(m.params)
	case "esc", "backspace":
		m.leaveGame()
	}
	return m, nil
}

// moveCursor clamps to the board, no wraparound.
func (m *model) moveCursor(dx, dy int) {
	if m.params.PointInBounds(m.curX+dx, m.curY+dy) {
		m.curX += dx
		m.curY += dy
	}
}

// revealOrChord opens the cell under the cursor; on an already open
// cell the same key chords instead, matching how the original game
// treated repeat reveals.
func (m *model) revealOrChord() {
	var err error
	if m.board.CellAt(m.curX, m.curY).Open() {
		err = m.board.Chord(m.curX, m.curY)
	} else {
		err = m.board.Reveal(m.curX, m.curY)
	}
	if err != nil {
		Log.WithError(err).Error("reveal failed")
		return
	}
	if status := m.board.Status(); status != mines.InProgress {
		Log.WithFields(logrus.Fields{
			"params": m.params.Seed(),
			"status": status.String(),
		}).Info("game over")
	}
}

func (m model) viewGame() string {
	var b strings.Builder

	fmt.Fprintf(
		&b, "\n  %s  %s\n",
		m.styles.title.Render("MINESWEEPER"),
		m.styles.header.Render(m.params.Seed()),
	)
	fmt.Fprintf(
		&b, "  %s\n\n",
		m.styles.header.Render(fmt.Sprintf("mines left: %d", m.board.MinesRemaining())),
	)

	b.WriteString(m.styles.board.Render(m.renderGrid()))
	b.WriteString("\n\n")

	switch m.board.Status() {
	case mines.Won:
		fmt.Fprintf(
			&b, "  %s\n  %s\n",
			m.styles.wonText.Render("Congratulations, you won! :)"),
			m.styles.help.Render("r new game · enter menu"),
		)
	case mines.Lost:
		fmt.Fprintf(
			&b, "  %s\n  %s\n",
			m.styles.lostText.Render("You lost! Game over :("),
			m.styles.help.Render("r new game · enter menu"),
		)
	default:
		fmt.Fprintf(
			&b, "  %s\n",
			m.styles.help.Render("move: ←↓↑→/wasd · reveal: enter · mark: space · menu: esc"),
		)
	}
	return b.String()
}

func (m model) renderGrid() string {
	var b strings.Builder
	inProgress := m.board.Status() == mines.InProgress
	for y := range m.params.Height {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := range m.params.Width {
			if x > 0 {
				b.WriteString(" ")
			}
			state := m.board.CellAt(x, y)
			glyph := state.String()
			if inProgress && x == m.curX && y == m.curY {
				b.WriteString(m.styles.cursor.Render(glyph))
			} else {
				b.WriteString(m.styles.cell(state).Render(glyph))
			}
		}
	}
	return b.String()
}
