package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/engine"
	"termothello/types"
)

// EndScreenUI is the screen shown once a game is over.
type EndScreenUI struct {
	card *ResultCard
	root *tview.Flex
}

// NewEndScreen creates the end screen with New Game and Quit buttons.
func NewEndScreen(onNewGame, onQuit func()) *EndScreenUI {
	card := NewResultCard(onNewGame, onQuit)
	row := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(card, 48, 0, true).
		AddItem(nil, 0, 1, false)
	return &EndScreenUI{
		card: card,
		root: tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(row, 14, 0, true).
			AddItem(nil, 0, 1, false),
	}
}

// SetResult shows view, a finished game played with cfg.
func (e *EndScreenUI) SetResult(view types.GameView, cfg engine.GameConfig) {
	e.card.SetResult(view, cfg)
}

// Card returns the focusable result card.
func (e *EndScreenUI) Card() *ResultCard {
	return e.card
}

func (e *EndScreenUI) Mode() Mode {
	return ModeEnd
}

func (e *EndScreenUI) Primitive() tview.Primitive {
	return e.root
}

func (e *EndScreenUI) HandleClick(x, y int) bool {
	return e.card.Click(x, y)
}

func (e *EndScreenUI) Draw(screen tcell.Screen) {
	e.root.Draw(screen)
}
