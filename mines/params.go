package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

// Standard difficulty presets.
var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

// Seed returns a compact textual form of the params, e.g. "9x9:10".
// [ParseParams] accepts this format back.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%dx%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseParams(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.NewReplacer("x", " ", ":", " ").Replace(seed)
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that a board with these params can be constructed and
// still leave the first clicked cell mine-free.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return InvalidConfigurationError{p, "dimensions must be positive"}
	}
	if p.MineCount < 0 {
		return InvalidConfigurationError{p, "mine count must not be negative"}
	}
	if p.MineCount >= p.Cells() {
		return InvalidConfigurationError{p, "mine count must be less than the cell count"}
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
