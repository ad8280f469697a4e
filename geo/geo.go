package geo

type (
	// Cord is a point on the board. It is comparable, so it can be used as a map key.
	Cord struct{ X, Y int }

	Direction uint8
)

const (
	Up Direction = iota
	Down
	Right
	Left
)

var (
	vectors = map[Direction]Cord{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Right: {X: 1, Y: 0},
		Left:  {X: -1, Y: 0},
	}

	names = map[Direction]string{
		Up:    "up",
		Down:  "down",
		Right: "right",
		Left:  "left",
	}
)

func (c Cord) Add(o Cord) Cord {
	return Cord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Cord) Neg() Cord {
	return Cord{X: -c.X, Y: -c.Y}
}

// Squash wraps c into [0, maxX) x [0, maxY).
func (c Cord) Squash(maxX, maxY int) Cord {
	return Cord{X: wrap(c.X, maxX), Y: wrap(c.Y, maxY)}
}

func wrap(v, bound int) int {
	v %= bound
	if v < 0 {
		v += bound
	}
	return v
}

// Vector returns the unit vector of d.
func (d Direction) Vector() Cord {
	return vectors[d]
}

func (d Direction) String() string {
	name, ok := names[d]
	if !ok {
		return "unknown"
	}
	return name
}
