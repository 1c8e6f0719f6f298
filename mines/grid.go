package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Question     CellState = -3
	Hidden       CellState = -2
	Flagged      CellState = -1
	CorrectFlag  CellState = 64
	ExplodedMine CellState = 65
	WrongFlag    CellState = 66
	RevealedMine CellState = 67
	/*
	 * Each item in the player grid is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and has a surrounding mine
	 * 	  count.
	 *
	 *  - -1 means the cell is flagged as a mine.
	 *
	 *  - -2 means the cell is covered and unmarked.
	 *
	 * 	- -3 means the cell is marked with a question mark.
	 *
	 * 	- 64 means the cell held a correctly flagged mine, shown
	 * 	  when the game ends.
	 *
	 * 	- 65 means the cell held the mine the player stepped on.
	 *
	 * 	- 66 means the cell has a crossed-out flag because the
	 * 	  player had incorrectly marked it.
	 *
	 * 	- 67 means the cell held a mine the player never marked,
	 * 	  shown when the game ends.
	 */
)

// Covered reports whether the cell has not been opened: unmarked,
// flagged or question-marked.
func (s CellState) Covered() bool {
	return s == Hidden || s == Flagged || s == Question
}

// Open reports whether the cell shows a surrounding mine count.
func (s CellState) Open() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Hidden:
		return "-"
	case s == Flagged:
		return "⚑"
	case s == CorrectFlag:
		return "⚑"
	case s == WrongFlag:
		return "X"
	case s == ExplodedMine || s == RevealedMine:
		return "*"
	case s == 0:
		return " "
	case s.Open():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
