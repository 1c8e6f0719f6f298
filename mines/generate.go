package mines

import "math/rand/v2"

// placeMines scatters p.MineCount mines across the board, none of which
// is at startX,startY or, room permitting, within one cell of it. On
// boards too dense for the full exclusion zone only the clicked cell
// itself is kept safe.
func (p GameParams) placeMines(startX, startY int, r *rand.Rand) []bool {
	width, height, mineCount := p.Unpack()

	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, width*height)
	for y := range height {
		for x := range width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, y*width+x)
			}
		}
	}
	if len(candidates) < mineCount {
		candidates = candidates[:0]
		for i := range grid {
			if i != startY*width+startX {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}

// neighborCounts computes, for every cell, the number of mines among its
// up-to-8 neighbors. Mine cells themselves get -1.
func (p GameParams) neighborCounts(grid []bool) []int8 {
	counts := make([]int8, len(grid))
	for y := range p.Height {
		for x := range p.Width {
			i := y*p.Width + x
			if grid[i] {
				counts[i] = -1
				continue
			}
			var n int8
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := x+dx, y+dy
					if (dx != 0 || dy != 0) &&
						p.PointInBounds(xx, yy) &&
						grid[yy*p.Width+xx] {
						n++
					}
				}
			}
			counts[i] = n
		}
	}
	return counts
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
