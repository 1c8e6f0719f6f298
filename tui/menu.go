package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper-tui/mines"
)

type menuItem struct {
	label  string
	params *mines.GameParams // nil for custom and quit
}

var menuItems = []menuItem{
	{label: "Beginner", params: &mines.Beginner},
	{label: "Intermediate", params: &mines.Intermediate},
	{label: "Expert", params: &mines.Expert},
	{label: "Custom..."},
	{label: "Quit"},
}

const (
	itemCustom = 3
	itemQuit   = 4
)

// menuIndex resolves a configured difficulty name to a menu entry,
// falling back to the first one.
func menuIndex(difficulty string) int {
	for i, item := range menuItems[:itemCustom] {
		if strings.EqualFold(item.label, difficulty) {
			return i
		}
	}
	return 0
}

func (m model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k", "w":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j", "s":
		if m.idx < len(menuItems)-1 {
			m.idx++
		}
	case "enter", " ":
		switch m.idx {
		case itemQuit:
			return m, tea.Quit
		case itemCustom:
			m.screen = screenCustom
			m.customInput = ""
			m.menuErr = ""
		default:
			m.menuErr = ""
			m.startGame(*menuItems[m.idx].params)
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) viewMenu() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", m.styles.title.Render("MINESWEEPER"))
	for i, item := range menuItems {
		label := item.label
		if item.params != nil {
			label = fmt.Sprintf("%-14s%s", item.label, item.params.Seed())
		}
		if i == m.idx {
			fmt.Fprintf(&b, "  %s\n", m.styles.selected.Render("> "+label))
		} else {
			fmt.Fprintf(&b, "    %s\n", label)
		}
	}
	if m.menuErr != "" {
		fmt.Fprintf(&b, "\n  %s\n", m.styles.errText.Render(m.menuErr))
	}
	fmt.Fprintf(
		&b, "\n  %s\n",
		m.styles.help.Render("↑/↓ move · enter select · q quit"),
	)
	return b.String()
}

func (m model) updateCustom(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenMenu
		m.menuErr = ""
	case "enter":
		params, err := mines.ParseParams(m.customInput)
		if err != nil {
			m.menuErr = err.Error()
			return m, nil
		}
		m.menuErr = ""
		m.startGame(*params)
	case "backspace":
		if len(m.customInput) > 0 {
			m.customInput = m.customInput[:len(m.customInput)-1]
		}
	default:
		if key.Type == tea.KeyRunes {
			for _, r := range key.Runes {
				if (r >= '0' && r <= '9') || r == 'x' || r == ':' {
					m.customInput += string(r)
				}
			}
		}
	}
	return m, nil
}

func (m model) viewCustom() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", m.styles.title.Render("CUSTOM GAME"))
	fmt.Fprintf(&b, "  Board (width x height : mines), e.g. %s\n\n", mines.Beginner.Seed())
	fmt.Fprintf(&b, "  %s\n", m.styles.selected.Render("> "+m.customInput+"_"))
	if m.menuErr != "" {
		fmt.Fprintf(&b, "\n  %s\n", m.styles.errText.Render(m.menuErr))
	}
	fmt.Fprintf(
		&b, "\n  %s\n",
		m.styles.help.Render("enter start · esc back"),
	)
	return b.String()
}
