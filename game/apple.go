package game

import (
	"TermSnake/geo"
	"math/rand/v2"
)

// PlaceApple picks a random free cell on the board. It returns false once the
// snake covers every cell, which means the game is won.
func PlaceApple(maxX, maxY int, occupied []geo.Cord, rng *rand.Rand) (geo.Cord, bool) {
	taken := make(map[geo.Cord]struct{}, len(occupied))
	for _, cord := range occupied {
		taken[cord.Squash(maxX, maxY)] = struct{}{}
	}

	free := []geo.Cord{}
	for x := 0; x < maxX; x++ {
		for y := 0; y < maxY; y++ {
			if _, ok := taken[geo.Cord{X: x, Y: y}]; !ok {
				free = append(free, geo.Cord{X: x, Y: y})
			}
		}
	}

	if len(free) == 0 {
		return geo.Cord{}, false
	}
	return free[rng.IntN(len(free))], true
}
