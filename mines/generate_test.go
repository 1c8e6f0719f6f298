package mines

import (
	"math/rand/v2"
	"testing"
)

func TestPlaceMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{
			name:   "9x9(10)",
			params: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:   "9x9(35)",
			params: GameParams{Width: 9, Height: 9, MineCount: 35},
		},
		{
			name:   "16x16(40)",
			params: GameParams{Width: 16, Height: 16, MineCount: 40},
		},
		{
			name:   "30x16(99)",
			params: GameParams{Width: 30, Height: 16, MineCount: 99},
		},
		{
			name:   "30x16(170)",
			params: GameParams{Width: 30, Height: 16, MineCount: 170},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			params := test.params
			r := rand.New(rand.NewPCG(1, 2))
			for sx := range params.Width {
				for sy := range params.Height {
					grid := params.placeMines(sx, sy, r)

					placed := 0
					for _, mine := range grid {
						if mine {
							placed++
						}
					}
					if placed != params.MineCount {
						t.Errorf(
							"%s @ %d:%d placed %d mines, want %d",
							test.name, sx, sy, placed, params.MineCount,
						)
					}

					for y := range params.Height {
						for x := range params.Width {
							if absDiff(sx, x) <= 1 && absDiff(sy, y) <= 1 &&
								grid[y*params.Width+x] {
								t.Errorf(
									"%s @ %d:%d mine in safe zone at %d:%d",
									test.name, sx, sy, x, y,
								)
							}
						}
					}
				}
			}
		})
	}
}

func TestPlaceMinesDenseBoard(t *testing.T) {
	t.Parallel()

	// a 3x3 with 8 mines cannot spare the neighbors, only the clicked
	// cell itself
	params := GameParams{Width: 3, Height: 3, MineCount: 8}
	r := rand.New(rand.NewPCG(1, 2))
	grid := params.placeMines(1, 1, r)

	if grid[1*params.Width+1] {
		t.Error("mine placed in the clicked cell")
	}
	placed := 0
	for _, mine := range grid {
		if mine {
			placed++
		}
	}
	if placed != params.MineCount {
		t.Errorf("placed %d mines, want %d", placed, params.MineCount)
	}
}

func TestNeighborCounts(t *testing.T) {
	t.Parallel()

	// * 2 *
	// 2 4 2
	// * 2 *
	params := GameParams{Width: 3, Height: 3, MineCount: 4}
	grid := make([]bool, 9)
	for _, i := range []int{0, 2, 6, 8} {
		grid[i] = true
	}

	counts := params.neighborCounts(grid)
	want := []int8{-1, 2, -1, 2, 4, 2, -1, 2, -1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, counts[i], want[i])
		}
	}
}
