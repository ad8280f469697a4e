package screen

import (
	"TermSnake/geo"
	"bytes"
	"errors"
	"slices"

	"golang.org/x/term"
)

type (
	row []int8

	Screen struct {
		Rows       []row
		MaxX, MaxY int
		CharMap    map[int8][]byte
		Border     []byte
		Terminal   *term.Terminal
	}

	errScreens struct{ XOutOfBounds, YOutOfBounds, InvalidSize, NoTerminal error }
)

const (
	StateEmpty int8 = iota
	StateApple
	StateSnake
)

var ErrScreens = errScreens{
	XOutOfBounds: errors.New("x is out of bounds"),
	YOutOfBounds: errors.New("y is out of bounds"),
	InvalidSize:  errors.New("screen size should be positive"),
	NoTerminal:   errors.New("screen needs a terminal to draw on"),
}

// NewScreen creates a maxX by maxY grid. charMap holds the glyph of every cell
// state and border is the color the frame is drawn in.
func NewScreen(maxX, maxY int, charMap map[int8][]byte, border []byte, terminal *term.Terminal) (*Screen, error) {
	if maxX <= 0 || maxY <= 0 {
		return &Screen{}, ErrScreens.InvalidSize
	}
	if terminal == nil {
		return &Screen{}, ErrScreens.NoTerminal
	}

	rows := []row{}
	for i := 0; i < maxY; i++ {
		rows = append(rows, make(row, maxX))
	}

	return &Screen{
		Rows: rows,
		MaxX: maxX, MaxY: maxY,
		CharMap:  charMap,
		Border:   border,
		Terminal: terminal,
	}, nil
}

func (f *Screen) SetColRow(x, y int, state int8) error {
	if y > len(f.Rows)-1 || y < 0 {
		return ErrScreens.YOutOfBounds
	}
	if x > len(f.Rows[y])-1 || x < 0 {
		return ErrScreens.XOutOfBounds
	}

	f.Rows[y][x] = state

	return nil
}

func (f *Screen) GetColRow(x, y int) (int8, error) {
	if y > len(f.Rows)-1 || y < 0 {
		return -1, ErrScreens.YOutOfBounds
	}
	if x > len(f.Rows[y])-1 || x < 0 {
		return -1, ErrScreens.XOutOfBounds
	}

	return f.Rows[y][x], nil
}

func (f *Screen) Clear() {
	for i := range f.Rows {
		f.Rows[i] = make(row, f.MaxX)
	}
}

// Render marks the apple, then the snake on top of it, and returns the framed grid.
// Cords outside the grid are skipped.
func (f *Screen) Render(snake []geo.Cord, apple geo.Cord) []string {
	f.Clear()

	_ = f.SetColRow(apple.X, apple.Y, StateApple)
	for _, cord := range snake {
		_ = f.SetColRow(cord.X, cord.Y, StateSnake)
	}

	return f.Lines()
}

// Lines returns the grid wrapped in a border, cells separated by a single space.
func (f *Screen) Lines() []string {
	reset := f.Terminal.Escape.Reset

	horizontal := append(slices.Clone(f.Border), '+')
	horizontal = append(horizontal, bytes.Repeat([]byte("-"), f.MaxX*2)...)
	horizontal = append(horizontal, '+')
	horizontal = append(horizontal, reset...)

	vertical := append(slices.Clone(f.Border), '|')
	vertical = append(vertical, reset...)

	lines := []string{string(horizontal)}
	for _, r := range f.Rows {
		cells := [][]byte{}
		for _, col := range r {
			char, ok := f.CharMap[col]
			if !ok {
				char = []byte("?")
			}
			cells = append(cells, char)
		}

		line := slices.Clone(vertical)
		line = append(line, bytes.Join(cells, []byte(" "))...)
		line = append(line, ' ')
		line = append(line, vertical...)
		lines = append(lines, string(line))
	}
	lines = append(lines, string(horizontal))

	return lines
}

// Draw clears the display and writes lines from the top left corner.
func (f *Screen) Draw(lines []string) error {
	frame := []byte("\033[2J\033[H")
	for _, line := range lines {
		frame = append(frame, line...)
		frame = append(frame, '\n')
	}

	if _, err := f.Terminal.Write(frame); err != nil {
		return err
	}

	return nil
}

func (f *Screen) Bell() error {
	_, err := f.Terminal.Write([]byte("\a"))
	return err
}

// Fits reports whether the terminal behind fd is large enough for a frame.
func (f *Screen) Fits(fd int) (bool, error) {
	x, y, err := term.GetSize(fd)
	if err != nil {
		return false, err
	}

	return x >= f.MaxX*2+2 && y >= f.MaxY+3, nil
}
