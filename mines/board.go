package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int8

const (
	InProgress GameStatus = iota
	Lost
	Won
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Board tracks a single game. Mines are not placed until the first
// reveal, so the first opened cell (and its neighbors) can be kept safe.
type Board struct {
	GameParams

	status GameStatus

	mines  []bool /* real mine points, nil until the first reveal */
	counts []int8 /* surrounding-mine counts, computed with mines */
	player Grid   /* player knowledge */

	hiddenSafe int /* covered safe cells left, valid once mines exist */
	flags      int

	rand *rand.Rand
}

func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	player := make(Grid, params.Cells())
	for i := range player {
		player[i] = Hidden
	}
	return &Board{
		GameParams: params,
		player:     player,
		rand:       r,
	}, nil
}

func (b *Board) Status() GameStatus { return b.status }

// MinesPlaced reports whether the first reveal has happened yet.
func (b *Board) MinesPlaced() bool { return b.mines != nil }

func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining is the usual counter readout: total mines minus flags
// placed. It may go negative when the player overdoes the flagging.
func (b *Board) MinesRemaining() int { return b.MineCount - b.flags }

// CellAt returns the player-visible state of a cell. Coordinates must be
// in bounds.
func (b *Board) CellAt(x, y int) CellState {
	return b.player[y*b.Width+x]
}

// Render returns a plain-text dump of the player grid.
func (b *Board) Render() string {
	return b.player.ToString(b.Width)
}

// Reveal opens a cell. On the first reveal of a game it also places the
// mines, keeping the target cell and its neighbors mine-free, and
// computes every cell's neighbor count. Revealing a flagged or already
// open cell is a no-op, as is any reveal once the game is over.
func (b *Board) Reveal(x, y int) error {
	if !b.PointInBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.status != InProgress {
		return nil
	}

	if !b.MinesPlaced() {
		b.mines = b.placeMines(x, y, b.rand)
		b.counts = b.neighborCounts(b.mines)
		b.hiddenSafe = b.Cells() - b.MineCount
		Log.WithFields(logrus.Fields{
			"params": b.Seed(),
			"start":  fmt.Sprintf("%d:%d", x, y),
		}).Debug("placed mines")
	}

	b.reveal(x, y)
	return nil
}

func (b *Board) reveal(x, y int) {
	i := y*b.Width + x
	if b.player[i] == Flagged || b.player[i].Open() {
		return
	}

	if b.mines[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the mine
		 * that killed them along with the rest of the layout.
		 */
		b.player[i] = ExplodedMine
		b.status = Lost
		b.revealMines()
		return
	}

	b.floodReveal(x, y)

	if b.hiddenSafe == 0 {
		b.status = Won
		b.flagRemainingMines()
	}
}

/*
 * floodReveal opens a safe cell and, when it has no neighboring mines,
 * keeps opening outwards through an explicit worklist: every covered
 * unflagged neighbor of a zero-count cell is opened, and the zero-count
 * ones among them are queued for the same treatment. A cell is opened
 * at the moment it is queued, so nothing enters the worklist twice.
 */
func (b *Board) floodReveal(x, y int) {
	start := y*b.Width + x
	b.open(start)
	if b.counts[start] != 0 {
		return
	}

	worklist := []int{start}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]
		cx, cy := i%b.Width, i/b.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := cx+dx, cy+dy
				if !b.PointInBounds(xx, yy) {
					continue
				}
				j := yy*b.Width + xx
				if b.player[j] != Hidden && b.player[j] != Question {
					continue /* flags stop the flood */
				}
				b.open(j)
				if b.counts[j] == 0 {
					worklist = append(worklist, j)
				}
			}
		}
	}
}

func (b *Board) open(i int) {
	b.player[i] = CellState(b.counts[i])
	b.hiddenSafe--
}

// ToggleFlag cycles a covered cell through unmarked, flagged and
// question-marked. Open cells are left alone.
func (b *Board) ToggleFlag(x, y int) error {
	if !b.PointInBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.status != InProgress {
		return nil
	}
	switch i := y*b.Width + x; b.player[i] {
	case Hidden:
		b.player[i] = Flagged
		b.flags++
	case Flagged:
		b.player[i] = Question
		b.flags--
	case Question:
		b.player[i] = Hidden
	}
	return nil
}

// Chord opens every covered unflagged neighbor of an open cell whose
// neighbor count is matched exactly by the flags around it. Anything
// else is a no-op.
func (b *Board) Chord(x, y int) error {
	if !b.PointInBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.status != InProgress {
		return nil
	}

	i := y*b.Width + x
	if !b.player[i].Open() {
		return nil
	}

	c := int(b.player[i])
	js := make([]int, 0, 8-c)
	m := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && b.PointInBounds(x+dx, y+dy) {
				j := (y+dy)*b.Width + (x + dx)
				if b.player[j] == Flagged {
					m++
				} else if b.player[j] == Hidden || b.player[j] == Question {
					js = append(js, j)
				}
			}
		}
	}
	if c != m {
		return nil
	}
	for _, j := range js {
		b.reveal(j%b.Width, j/b.Width)
		if b.status != InProgress {
			break
		}
	}
	return nil
}

// Forfeit abandons a game in progress, losing it and exposing the mine
// layout. Finished games are left as they are.
func (b *Board) Forfeit() {
	if b.status != InProgress {
		return
	}
	b.status = Lost
	b.revealMines()
}

/*
 * revealMines exposes the mine layout after a loss: unmarked mines are
 * shown, wrong flags get crossed out, correct flags are kept. Covered
 * safe cells stay covered. Called before any mines exist (a forfeit on
 * an untouched board) there is nothing to show.
 */
func (b *Board) revealMines() {
	if !b.MinesPlaced() {
		return
	}
	for i := range b.player {
		switch b.player[i] {
		case Flagged:
			if b.mines[i] {
				b.player[i] = CorrectFlag
			} else {
				b.player[i] = WrongFlag
			}
		case Hidden, Question:
			if b.mines[i] {
				b.player[i] = RevealedMine
			}
		}
	}
}

// flagRemainingMines marks every still-covered mine on a won board, so
// the final display shows the full layout flagged.
func (b *Board) flagRemainingMines() {
	for i := range b.player {
		if b.mines[i] && b.player[i].Covered() {
			b.player[i] = CorrectFlag
		}
	}
}
