package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"termothello/config"
	"termothello/engine"
	"termothello/engine/local"
	"termothello/types"
	"termothello/ui"
)

// runTUI starts the full-screen application. With quickStart the menu is
// skipped and a game with gameCfg begins immediately.
func runTUI(cfg *config.Config, gameCfg engine.GameConfig, quickStart, focus bool) error {
	app := tview.NewApplication()

	gameHint := tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard := ui.NewOthelloBoard(app, cfg, gameHint)

	var gui *ui.GameGUI
	var lastGame engine.GameConfig

	// startGame starts a game with the given configuration.
	startGame := func(c engine.GameConfig) {
		lastGame = c
		if err := gameBoard.ConnectEngine(local.NewEngine(c), c); err != nil {
			logrus.WithError(err).Error("could not start game")
			modal := tview.NewModal().
				SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
				AddButtons([]string{"OK"}).
				SetDoneFunc(func(buttonIndex int, buttonLabel string) {
					gui.Pages().RemovePage("error")
				})
			gui.Pages().AddPage("error", modal, true, true)
			return
		}
		gui.SetMode(ui.ModePlay)
		app.SetFocus(gameBoard.Box)
	}

	setupUI := ui.NewGameSetup(gameCfg,
		func(c engine.GameConfig) {
			// The menu only edits names and hints; the position comes from the flags.
			c.Position, c.Turn = gameCfg.Position, gameCfg.Turn
			startGame(c)
		},
		func() {
			app.Stop()
		},
		func() {
			gui.SetMode(ui.ModeColors)
		},
	)

	gameScreen := ui.NewGameScreen(gameBoard, gameHint, func() {
		gui.SetMode(ui.ModeMenu)
	})

	endScreen := ui.NewEndScreen(
		func() {
			gui.SetMode(ui.ModeMenu)
		},
		func() {
			app.Stop()
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		gui.SetMode(ui.ModeMenu)
	})

	gameBoard.SetGameEndFunc(func(view types.GameView) {
		endScreen.SetResult(view, lastGame)
		gameBoard.Close()
		gui.SetMode(ui.ModeEnd)
		app.SetFocus(endScreen.Card())
	})

	gui = ui.NewGameGUI(setupUI, gameScreen, endScreen, colorConfig)
	gui.Pages().SetBorder(true).SetTitle(" ● termothello ")

	if quickStart {
		startGame(gameCfg)
		if focus {
			gameScreen.SetFocusMode(true)
		}
	}

	app.EnableMouse(true)
	app.SetMouseCapture(gui.MouseCapture)
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			gameBoard.Close()
		}
		return event
	})

	return app.SetRoot(gui.Pages(), true).Run()
}
