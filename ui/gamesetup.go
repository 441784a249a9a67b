package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/engine"
)

// GameSetupUI provides the menu form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	root     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	config engine.GameConfig
}

// NewGameSetup creates a new game setup form prefilled from base.
// onColors may be nil, in which case the colour button is left out.
func NewGameSetup(base engine.GameConfig, onStart func(engine.GameConfig), onCancel, onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		config:   base,
	}

	form := tview.NewForm()

	form.AddInputField("Black (moves first)", base.DarkName, 20, nil, func(text string) {
		setup.config.DarkName = strings.TrimSpace(text)
	})

	form.AddInputField("White", base.LightName, 20, nil, func(text string) {
		setup.config.LightName = strings.TrimSpace(text)
	})

	form.AddCheckbox("Show legal moves", base.ShowHints, func(checked bool) {
		setup.config.ShowHints = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	if onColors != nil {
		form.AddButton("Board Colors", func() {
			onColors()
		})
	}

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	form.SetButtonTextColor(tcell.ColorWhite)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Space: toggle  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.root = CreateCenteredForm(flex, 72)
	return setup
}

// Config returns the game configuration as currently entered.
func (s *GameSetupUI) Config() engine.GameConfig {
	cfg := s.config
	if cfg.DarkName == "" {
		cfg.DarkName = "Black"
	}
	if cfg.LightName == "" {
		cfg.LightName = "White"
	}
	return cfg
}

func (s *GameSetupUI) Mode() Mode {
	return ModeMenu
}

func (s *GameSetupUI) Primitive() tview.Primitive {
	return s.root
}

// HandleClick leaves clicks to the form's own mouse handling.
func (s *GameSetupUI) HandleClick(x, y int) bool {
	return false
}

func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.root.Draw(screen)
}
