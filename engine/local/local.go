// Package local provides a hot-seat engine: both colours are played from the same terminal.
package local

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"termothello/board"
	"termothello/engine"
	"termothello/game"
	"termothello/rules"
	"termothello/types"
)

// Engine implements engine.GameEngine over a single game.Session.
// All session access is serialised by mu, so callbacks may come from any goroutine.
type Engine struct {
	config  engine.GameConfig
	session *game.Session
	id      string
	log     *logrus.Entry

	moveCallback func(res rules.MoveResult, view types.GameView)
	endCallback  func(view types.GameView)

	mu sync.Mutex
}

// NewEngine creates a new local engine with the given configuration.
func NewEngine(cfg engine.GameConfig) *Engine {
	return &Engine{config: cfg}
}

// Connect starts a fresh session from the configured position.
func (e *Engine) Connect() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, turn := e.config.Position, e.config.Turn
	if turn == board.Empty {
		turn = board.Dark
	}
	s, err := game.NewSessionFrom(pos, turn)
	if err != nil {
		return err
	}

	e.session = s
	e.id = uuid.NewString()
	e.log = logrus.WithField("session", e.id)
	e.log.WithFields(logrus.Fields{
		"dark":     e.config.DarkName,
		"light":    e.config.LightName,
		"position": pos.Compact(),
		"turn":     s.Turn(),
		"status":   s.Status(),
	}).Info("game started")
	return nil
}

// View returns a snapshot of the current game.
func (e *Engine) View() types.GameView {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return types.GameView{Status: game.Finished}
	}
	return types.ViewOf(e.id, e.session)
}

// PlayMove plays the colour to move at p.
func (e *Engine) PlayMove(p board.Pos) error {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return engine.ErrNotConnected
	}
	mover := e.session.Turn()
	res, err := e.session.ApplyMove(p)
	if err != nil {
		e.log.WithFields(logrus.Fields{"color": mover, "pos": p}).WithError(err).Warn("move rejected")
		e.mu.Unlock()
		return err
	}
	view := types.ViewOf(e.id, e.session)
	moveCb, endCb := e.moveCallback, e.endCallback
	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{
		"color": res.Color,
		"pos":   res.Pos,
		"flips": len(res.Flips),
		"move":  view.MoveNumber,
	}).Debug("move played")

	switch view.Status {
	case game.PassForced:
		e.log.WithField("color", view.Skipped).Info("forced pass")
	case game.Finished:
		e.log.WithFields(logrus.Fields{
			"dark":  view.Score.Dark,
			"light": view.Score.Light,
		}).Info("game over")
	}

	// Callbacks run without the lock so they may call back into the engine.
	if moveCb != nil {
		moveCb(res, view)
	}
	if view.Finished() && endCb != nil {
		endCb(view)
	}
	return nil
}

// OnMove registers a callback for every accepted move.
func (e *Engine) OnMove(cb func(res rules.MoveResult, view types.GameView)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = cb
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(cb func(view types.GameView)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = cb
}

// Close discards the session.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return
	}
	e.log.WithField("moves", e.session.MoveCount()).Debug("session closed")
	e.session = nil
}
