package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Mode selects which screen is shown.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlay
	ModeEnd
	ModeColors
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeEnd:
		return "end"
	case ModeColors:
		return "colors"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Screen is one full-window layout of the application.
type Screen interface {
	// Mode identifies the screen.
	Mode() Mode

	// Primitive returns the tview root of the screen.
	Primitive() tview.Primitive

	// HandleClick reacts to a left click at screen coordinates (x, y).
	// Returns true if the click was consumed.
	HandleClick(x, y int) bool

	// Draw renders the screen.
	Draw(screen tcell.Screen)
}

// GameGUI holds one screen per mode and forwards clicks and drawing to the active one.
type GameGUI struct {
	pages   *tview.Pages
	screens map[Mode]Screen
	active  Mode
}

// NewGameGUI registers screens; the first one becomes active.
func NewGameGUI(screens ...Screen) *GameGUI {
	g := &GameGUI{
		pages:   tview.NewPages(),
		screens: make(map[Mode]Screen, len(screens)),
	}
	for i, s := range screens {
		g.screens[s.Mode()] = s
		g.pages.AddPage(s.Mode().String(), s.Primitive(), true, i == 0)
		if i == 0 {
			g.active = s.Mode()
		}
	}
	return g
}

// Pages returns the root primitive to hand to the application.
func (g *GameGUI) Pages() *tview.Pages {
	return g.pages
}

// SetMode switches to the screen registered for m. Returns false if there is none.
func (g *GameGUI) SetMode(m Mode) bool {
	if _, ok := g.screens[m]; !ok {
		return false
	}
	g.active = m
	g.pages.SwitchToPage(m.String())
	return true
}

// Mode returns the active mode.
func (g *GameGUI) Mode() Mode {
	return g.active
}

// Active returns the active screen.
func (g *GameGUI) Active() Screen {
	return g.screens[g.active]
}

// HandleClick forwards a click to the active screen.
func (g *GameGUI) HandleClick(x, y int) bool {
	s := g.Active()
	if s == nil {
		return false
	}
	return s.HandleClick(x, y)
}

// Draw renders the active screen.
func (g *GameGUI) Draw(screen tcell.Screen) {
	if s := g.Active(); s != nil {
		s.Draw(screen)
	}
}

// MouseCapture is an application mouse capture routing left clicks through HandleClick.
func (g *GameGUI) MouseCapture(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if action != tview.MouseLeftClick {
		return event, action
	}
	x, y := event.Position()
	if g.HandleClick(x, y) {
		return nil, action
	}
	return event, action
}
