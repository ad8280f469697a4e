package main

import (
	"TermSnake/game"
	"TermSnake/keys"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"
)

func run() int {
	lgr := game.NewLogger(filepath.Join(os.TempDir(), "TermSnake.log"))
	cfg := game.DefaultConfig()
	lgr.Log("medium", "Starting", fmt.Sprintf("%dx%d board, %v per tick", cfg.MaxX, cfg.MaxY, cfg.Delay))

	listener, err := keys.Acquire(os.Stdin)
	if err != nil {
		lgr.Log("high", "Error", err)
		os.Stderr.WriteString("TermSnake: " + err.Error() + "\n")
		return 1
	}
	defer listener.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	trm := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")

	gm, err := game.NewGame(cfg, listener, trm, lgr)
	if err != nil {
		lgr.Log("high", "Error", err)
		os.Stderr.WriteString("TermSnake: " + err.Error() + "\n")
		return 1
	}

	if fits, err := gm.Screen.Fits(int(os.Stdout.Fd())); err != nil {
		lgr.Log("medium", "Warning", err)
	} else if !fits {
		lgr.Log("medium", "Warning", "terminal is smaller than the board")
	}

	outcome, err := gm.Start(ctx)
	if rerr := listener.Release(); rerr != nil {
		lgr.Log("high", "Error", rerr)
	}
	if err != nil {
		lgr.Log("high", "Error", err)
		os.Stderr.WriteString("TermSnake: " + err.Error() + "\n")
		return 1
	}
	lgr.Log("medium", "Finished", fmt.Sprintf("%v with score %d", outcome, gm.State.Score))

	switch outcome {
	case game.Won:
		fmt.Println("You won! No more space left.")
	case game.Dead, game.Quit:
		fmt.Printf("%sGAME OVER%s — SCORE: %d\n", trm.Escape.Red, trm.Escape.Reset, gm.State.Score)
	}

	return 0
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		os.Stdout.WriteString("Snake in the terminal.\r\nMove with w/a/s/d or the arrow keys, quit with q.\r\n")
		return
	}

	os.Exit(run())
}
