package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GameScreen is the play screen: board, info panel and status hint.
type GameScreen struct {
	board  *OthelloBoardUI
	hint   *tview.TextView
	frame  *tview.Flex
	onQuit func()
}

// NewGameScreen lays out ob and hint. onQuit is called when the player leaves the game.
func NewGameScreen(ob *OthelloBoardUI, hint *tview.TextView, onQuit func()) *GameScreen {
	gs := &GameScreen{
		board:  ob,
		hint:   hint,
		frame:  CreateGameLayout(ob, hint),
		onQuit: onQuit,
	}
	ob.Box.SetInputCapture(gs.handleKey)
	return gs
}

func (gs *GameScreen) Mode() Mode {
	return ModePlay
}

func (gs *GameScreen) Primitive() tview.Primitive {
	return gs.frame
}

func (gs *GameScreen) HandleClick(x, y int) bool {
	if !gs.board.Box.InRect(x, y) {
		return false
	}
	return gs.board.HandleClick(x, y)
}

func (gs *GameScreen) Draw(screen tcell.Screen) {
	gs.frame.Draw(screen)
}

// SetFocusMode switches between the full layout and the board alone.
func (gs *GameScreen) SetFocusMode(enabled bool) {
	gs.board.SetFocusMode(enabled)
	gs.applyLayout()
}

func (gs *GameScreen) applyLayout() {
	if gs.board.focusMode {
		BuildFocusLayout(gs.frame, gs.board)
	} else {
		RebuildNormalLayout(gs.frame, gs.board, gs.hint)
	}
}

func (gs *GameScreen) handleKey(event *tcell.EventKey) *tcell.EventKey {
	b := gs.board
	if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		if b.SelectedTile() != nil {
			b.ResetSelection()
		} else {
			b.Close()
			if gs.onQuit != nil {
				gs.onQuit()
			}
		}
		return nil
	}
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(0, -1)
	case tcell.KeyDown:
		b.MoveSelection(0, 1)
	case tcell.KeyLeft:
		b.MoveSelection(-1, 0)
	case tcell.KeyRight:
		b.MoveSelection(1, 0)
	case tcell.KeyEnter:
		if sel := b.SelectedTile(); sel != nil {
			b.PlayMove(*sel)
		}
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			b.MoveSelection(-1, 0)
		case 'j':
			b.MoveSelection(0, 1)
		case 'k':
			b.MoveSelection(0, -1)
		case 'l':
			b.MoveSelection(1, 0)
		case 'f':
			b.ToggleFocusMode()
			gs.applyLayout()
		}
	}
	return event
}
