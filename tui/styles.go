package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-tui/mines"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	help     lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	errText  lipgloss.Style
	wonText  lipgloss.Style
	lostText lipgloss.Style
	board    lipgloss.Style

	covered  lipgloss.Style
	flag     lipgloss.Style
	question lipgloss.Style
	mine     lipgloss.Style
	exploded lipgloss.Style
	numbers  [9]lipgloss.Style
}

// classic per-number colors, approximated with the standard ANSI palette
var numberColors = [9]string{
	"8",  // 0 (never shown as a digit)
	"4",  // 1 blue
	"2",  // 2 green
	"1",  // 3 red
	"12", // 4 bright blue
	"5",  // 5 magenta
	"6",  // 6 cyan
	"7",  // 7 white
	"8",  // 8 gray
}

func defaultStyles() styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		cursor:   lipgloss.NewStyle().Reverse(true),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		wonText:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		lostText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		board:    lipgloss.NewStyle().Padding(0, 1),
		covered:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		flag:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		question: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		mine:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		exploded: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("1")),
	}
	for i, c := range numberColors {
		s.numbers[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return s
}

// plainStyles renders everything unstyled, for terminals where color is
// unwanted. The cursor still has to be visible somehow, so it keeps its
// reverse video.
func plainStyles() styles {
	var s styles
	s.cursor = lipgloss.NewStyle().Reverse(true)
	s.board = lipgloss.NewStyle().Padding(0, 1)
	return s
}

func (s styles) cell(state mines.CellState) lipgloss.Style {
	switch {
	case state == mines.Hidden:
		return s.covered
	case state == mines.Flagged || state == mines.CorrectFlag:
		return s.flag
	case state == mines.Question:
		return s.question
	case state == mines.WrongFlag || state == mines.RevealedMine:
		return s.mine
	case state == mines.ExplodedMine:
		return s.exploded
	case state.Open():
		return s.numbers[state]
	default:
		return s.covered
	}
}
