package game

import (
	"TermSnake/geo"
	"TermSnake/keys"
	"strings"
)

type Snake struct {
	Cords []geo.Cord
	Dir   geo.Direction
}

var (
	moveBinds = map[string]geo.Direction{
		"w": geo.Up, keys.KeyUp: geo.Up,
		"a": geo.Left, keys.KeyLeft: geo.Left,
		"s": geo.Down, keys.KeyDown: geo.Down,
		"d": geo.Right, keys.KeyRight: geo.Right,
	}
	quitBinds = []string{"q", keys.CtrlC, keys.CtrlD}
)

func NewSnake(start geo.Cord, dir geo.Direction) *Snake {
	return &Snake{Cords: []geo.Cord{start}, Dir: dir}
}

func (s *Snake) Head() geo.Cord {
	return s.Cords[0]
}

func (s *Snake) Len() int {
	return len(s.Cords)
}

// HandleKey applies a key press and reports whether the game should go on.
// A turn straight back onto the body is ignored.
func (s *Snake) HandleKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))

	if dir, ok := moveBinds[key]; ok {
		if dir.Vector() != s.Dir.Vector().Neg() {
			s.Dir = dir
		}
		return true
	}

	for _, quit := range quitBinds {
		if key == quit {
			return false
		}
	}
	return true
}

func (s *Snake) Grow() {
	s.Cords = append([]geo.Cord{s.Head().Add(s.Dir.Vector())}, s.Cords...)
}

// Update moves the snake one cell, wrapping around the board edges.
func (s *Snake) Update(maxX, maxY int) {
	for i, cord := range s.Cords {
		s.Cords[i] = cord.Squash(maxX, maxY)
	}
	s.Grow()
	s.Cords = s.Cords[:len(s.Cords)-1]
	s.Cords[0] = s.Cords[0].Squash(maxX, maxY)
}

func (s *Snake) IsDead() bool {
	for _, cord := range s.Cords[1:] {
		if cord == s.Head() {
			return true
		}
	}
	return false
}
