// Package engine defines the interface between presentation code and a running game.
package engine

import (
	"errors"

	"termothello/board"
	"termothello/rules"
	"termothello/types"
)

// ErrNotConnected is returned when the engine is used before Connect or after Close.
var ErrNotConnected = errors.New("engine not connected")

// GameEngine defines the interface for playing a game of Othello.
type GameEngine interface {
	// Connect starts a new game.
	Connect() error

	// View returns a snapshot of the current game.
	View() types.GameView

	// PlayMove plays the colour to move at p.
	// Returns an error if the move is illegal or the game is over.
	PlayMove(p board.Pos) error

	// OnMove registers a callback for every accepted move.
	// The view is passed directly to avoid re-entering the engine.
	OnMove(func(res rules.MoveResult, view types.GameView))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(view types.GameView))

	// Close ends the game.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	DarkName  string      // Display name of the dark (black) player
	LightName string      // Display name of the light (white) player
	ShowHints bool        // Highlight legal moves on the board
	Position  board.Board // Starting position
	Turn      board.Cell  // Colour to move in Position
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		DarkName:  "Black",
		LightName: "White",
		ShowHints: true,
		Position:  board.Starting(),
		Turn:      board.Dark,
	}
}

// PlayerName returns the configured name for colour c.
func (c GameConfig) PlayerName(color board.Cell) string {
	if color == board.Light {
		return c.LightName
	}
	return c.DarkName
}
