package game

import (
	"TermSnake/geo"
	"TermSnake/screen"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/HandyGold75/GOLib/logger"
	"golang.org/x/term"
)

type (
	// KeySource is polled once per tick for the latest key press.
	KeySource interface {
		PollKey() (string, bool, error)
	}

	Outcome uint8

	Config struct {
		MaxX, MaxY int
		Delay      time.Duration
		StartDir   geo.Direction
		Bell       bool
	}

	gameState struct {
		Snake *Snake
		Apple geo.Cord
		Score int
	}

	Game struct {
		Config Config
		State  gameState
		Screen *screen.Screen
		Keys   KeySource
		Lgr    *logger.Logger

		rng *rand.Rand
	}
)

const (
	Running Outcome = iota
	Dead
	Quit
	Won
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Dead:
		return "dead"
	case Quit:
		return "quit"
	case Won:
		return "won"
	case Interrupted:
		return "interrupted"
	}
	return "unknown"
}

func DefaultConfig() Config {
	return Config{
		MaxX:     30,
		MaxY:     20,
		Delay:    time.Millisecond * 500,
		StartDir: geo.Down,
		Bell:     true,
	}
}

// NewGame sets up a board drawn on trm with the snake in its center. lgr may be nil.
func NewGame(cfg Config, keySource KeySource, trm *term.Terminal, lgr *logger.Logger) (*Game, error) {
	if keySource == nil {
		return &Game{}, errors.New("key source should not be nil")
	}

	scr, err := screen.NewScreen(cfg.MaxX, cfg.MaxY, map[int8][]byte{
		screen.StateEmpty: []byte(" "),
		screen.StateApple: append(append([]byte{}, trm.Escape.Red...), append([]byte("A"), trm.Escape.Reset...)...),
		screen.StateSnake: append(append([]byte{}, trm.Escape.Green...), append([]byte("S"), trm.Escape.Reset...)...),
	}, trm.Escape.Blue, trm)
	if err != nil {
		return &Game{}, err
	}

	return &Game{
		Config: cfg,
		State: gameState{
			Snake: NewSnake(geo.Cord{X: cfg.MaxX / 2, Y: cfg.MaxY / 2}, cfg.StartDir),
		},
		Screen: scr,
		Keys:   keySource,
		Lgr:    lgr,
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}, nil
}

func (game *Game) log(verbosity, title string, msg any) {
	if game.Lgr == nil {
		return
	}
	game.Lgr.Log(verbosity, title, msg)
}

// Tick runs a single step of the game: draw, check for death, eat, read a key
// and move. It returns Running as long as the game should go on.
func (game *Game) Tick() (Outcome, error) {
	snake := game.State.Snake

	if err := game.Screen.Draw(game.Screen.Render(snake.Cords, game.State.Apple)); err != nil {
		return Running, fmt.Errorf("draw: %w", err)
	}

	if snake.IsDead() {
		return Dead, nil
	}

	if snake.Head() == game.State.Apple {
		game.State.Score++
		if game.Config.Bell {
			if err := game.Screen.Bell(); err != nil {
				return Running, fmt.Errorf("bell: %w", err)
			}
		}
		snake.Grow()

		apple, ok := PlaceApple(game.Config.MaxX, game.Config.MaxY, snake.Cords, game.rng)
		if !ok {
			return Won, nil
		}
		game.State.Apple = apple
		game.log("low", "Eaten", fmt.Sprintf("score %d, length %d", game.State.Score, snake.Len()))
	}

	running := true
	key, ok, err := game.Keys.PollKey()
	if err != nil {
		return Running, fmt.Errorf("poll key: %w", err)
	}
	if ok {
		running = snake.HandleKey(key)
	}

	snake.Update(game.Config.MaxX, game.Config.MaxY)

	if !running {
		return Quit, nil
	}
	return Running, nil
}

// Start places the first apple and ticks until the game ends or ctx is done.
func (game *Game) Start(ctx context.Context) (Outcome, error) {
	apple, ok := PlaceApple(game.Config.MaxX, game.Config.MaxY, game.State.Snake.Cords, game.rng)
	if !ok {
		return Won, nil
	}
	game.State.Apple = apple

	for {
		t := time.Now()

		out, err := game.Tick()
		if err != nil || out != Running {
			return out, err
		}

		select {
		case <-ctx.Done():
			return Interrupted, nil
		case <-time.After(game.Config.Delay - time.Since(t)):
		}
	}
}
