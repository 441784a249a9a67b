// Package console plays a game on a line-oriented terminal using the box rendering.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"termothello/board"
	"termothello/engine"
	"termothello/game"
	"termothello/rules"
	"termothello/types"
)

// Console reads moves in algebraic notation and prints the board after each one.
type Console struct {
	eng engine.GameEngine
	cfg engine.GameConfig
	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading from in and writing to out.
func New(eng engine.GameEngine, cfg engine.GameConfig, in io.Reader, out io.Writer) *Console {
	return &Console{
		eng: eng,
		cfg: cfg,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run plays until the game ends, the input is exhausted, or the user quits.
func (c *Console) Run() error {
	if err := c.eng.Connect(); err != nil {
		return err
	}
	defer c.eng.Close()

	c.eng.OnMove(func(res rules.MoveResult, view types.GameView) {
		fmt.Fprintf(c.out, "%s played %s, flipping %d.\n", c.cfg.PlayerName(res.Color), res.Pos, len(res.Flips))
	})

	for {
		view := c.eng.View()
		c.printView(view)
		if view.Finished() {
			fmt.Fprintf(c.out, "%s\n", view.Outcome())
			return nil
		}

		fmt.Fprintf(c.out, "%s> ", c.cfg.PlayerName(view.Turn))
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return nil
		case "?", "help":
			fmt.Fprintln(c.out, "Enter a square such as d3, or q to quit.")
			continue
		}

		p, err := board.ParsePos(line)
		if err != nil {
			fmt.Fprintf(c.out, "Not a square: %q\n", line)
			continue
		}
		if err := c.eng.PlayMove(p); err != nil {
			logrus.WithError(err).Debug("console move rejected")
			if errors.Is(err, game.ErrInvalidSessionState) {
				return err
			}
			fmt.Fprintf(c.out, "Illegal move: %s\n", p)
		}
	}
}

func (c *Console) printView(v types.GameView) {
	if v.Status == game.PassForced {
		fmt.Fprintf(c.out, "%s has no legal move and passes.\n", c.cfg.PlayerName(v.Skipped))
	}
	fmt.Fprint(c.out, game.StatusLine(v.MoveNumber, v.Status, v.Turn))
	fmt.Fprint(c.out, v.Board.String())
	fmt.Fprintf(c.out, "%s %d  %s %d\n", c.cfg.DarkName, v.Score.Dark, c.cfg.LightName, v.Score.Light)
	if !v.Finished() {
		fmt.Fprintf(c.out, "Legal: %s\n", FormatMoves(v.Legal))
	}
}

// FormatMoves joins squares in algebraic notation.
func FormatMoves(moves []board.Pos) string {
	labels := make([]string, len(moves))
	for i, p := range moves {
		labels[i] = p.String()
	}
	return strings.Join(labels, " ")
}
