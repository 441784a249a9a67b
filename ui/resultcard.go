package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/board"
	"termothello/engine"
	"termothello/types"
)

// cardColors is the palette of the result card.
var cardColors = struct {
	Border   tcell.Color
	BG       tcell.Color
	Title    tcell.Color
	Accent   tcell.Color
	Detail   tcell.Color
	Dark     tcell.Color
	Light    tcell.Color
	ButtonFG tcell.Color
	ButtonBG tcell.Color
}{
	Border:   tcell.PaletteColor(65),
	BG:       tcell.PaletteColor(236),
	Title:    tcell.PaletteColor(255),
	Accent:   tcell.PaletteColor(28),
	Detail:   tcell.PaletteColor(245),
	Dark:     tcell.PaletteColor(232),
	Light:    tcell.PaletteColor(255),
	ButtonFG: tcell.PaletteColor(255),
	ButtonBG: tcell.PaletteColor(28),
}

// cardButton is one entry of the card's button row. x and y hold the
// position it was last drawn at, or -1 before the first draw.
type cardButton struct {
	label    string
	onSelect func()
	x, y     int
}

func (b *cardButton) width() int {
	return len([]rune(b.label)) + 2
}

func (b *cardButton) contains(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+b.width()
}

// ResultCard shows the outcome of a finished game: who won, the disc count as
// a bar, and a row of buttons.
type ResultCard struct {
	*tview.Box
	headline string
	detail   string
	score    [2]int // dark, light
	buttons  []*cardButton
	focus    int
}

// NewResultCard creates an empty card with New Game and Quit buttons.
func NewResultCard(onNewGame, onQuit func()) *ResultCard {
	return &ResultCard{
		Box: tview.NewBox(),
		buttons: []*cardButton{
			{label: "New Game", onSelect: onNewGame, x: -1, y: -1},
			{label: "Quit", onSelect: onQuit, x: -1, y: -1},
		},
	}
}

// SetResult fills the card from a finished game and focuses New Game.
func (c *ResultCard) SetResult(view types.GameView, cfg engine.GameConfig) {
	switch w := view.Score.Winner(); w {
	case board.Empty:
		c.headline = "Draw"
	default:
		c.headline = fmt.Sprintf("%s wins", cfg.PlayerName(w))
	}
	c.detail = fmt.Sprintf("%s %d  ·  %s %d  ·  %d moves",
		cfg.DarkName, view.Score.Dark, cfg.LightName, view.Score.Light, view.MoveNumber)
	c.score = [2]int{view.Score.Dark, view.Score.Light}
	c.focus = 0
}

// Result returns the headline and detail lines.
func (c *ResultCard) Result() (string, string) {
	return c.headline, c.detail
}

// Draw renders the card. Nothing but the background is drawn when the area is too small.
func (c *ResultCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 24 || height < 12 {
		return
	}

	bg := tcell.StyleDefault.Background(cardColors.BG)
	border := bg.Foreground(cardColors.Border)
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, '─', nil, border)
		screen.SetContent(col, y+2, '─', nil, border)
		screen.SetContent(col, bottom, '─', nil, border)
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, '│', nil, border)
		screen.SetContent(right, row, '│', nil, border)
	}
	screen.SetContent(x, y, '╭', nil, border)
	screen.SetContent(right, y, '╮', nil, border)
	screen.SetContent(x, y+2, '├', nil, border)
	screen.SetContent(right, y+2, '┤', nil, border)
	screen.SetContent(x, bottom, '╰', nil, border)
	screen.SetContent(right, bottom, '╯', nil, border)

	drawCentered(screen, "●  GAME OVER  ○", x, y+1, width, bg.Foreground(cardColors.Accent).Bold(true))
	drawCentered(screen, c.headline, x, y+4, width, bg.Foreground(cardColors.Title).Bold(true))
	drawCentered(screen, c.detail, x, y+6, width, bg.Foreground(cardColors.Detail))
	c.drawScoreBar(screen, x+3, y+8, width-6)
	c.drawButtons(screen, x, bottom-2, width)
}

// drawScoreBar splits width cells between the colours in proportion to their discs.
func (c *ResultCard) drawScoreBar(screen tcell.Screen, x, y, width int) {
	total := c.score[0] + c.score[1]
	if total == 0 || width <= 0 {
		return
	}
	dark := width * c.score[0] / total
	// on the board felt so black discs stay visible
	darkStyle := tcell.StyleDefault.Background(cardColors.Accent).Foreground(cardColors.Dark)
	lightStyle := tcell.StyleDefault.Background(cardColors.Accent).Foreground(cardColors.Light)
	for i := 0; i < width; i++ {
		if i < dark {
			screen.SetContent(x+i, y, '●', nil, darkStyle)
		} else {
			screen.SetContent(x+i, y, '○', nil, lightStyle)
		}
	}
}

func (c *ResultCard) drawButtons(screen tcell.Screen, x, y, width int) {
	total := 0
	for _, b := range c.buttons {
		total += b.width() + 2
	}
	col := x + (width-total)/2
	for i, b := range c.buttons {
		b.x, b.y = col, y
		style := tcell.StyleDefault.Background(cardColors.BG).Foreground(cardColors.Detail)
		label := "[" + b.label + "]"
		if i == c.focus {
			style = tcell.StyleDefault.Background(cardColors.ButtonBG).Foreground(cardColors.ButtonFG).Bold(true)
			label = " " + b.label + " "
		}
		for j, ch := range label {
			screen.SetContent(col+j, y, ch, nil, style)
		}
		col += b.width() + 2
	}
}

// InputHandler moves between buttons and activates the focused one.
func (c *ResultCard) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return c.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyBacktab:
			c.focus = (c.focus + len(c.buttons) - 1) % len(c.buttons)
		case tcell.KeyRight, tcell.KeyTab:
			c.focus = (c.focus + 1) % len(c.buttons)
		case tcell.KeyEnter:
			c.selectButton(c.focus)
		}
	})
}

// Click activates the button drawn under (x, y).
func (c *ResultCard) Click(x, y int) bool {
	for i, b := range c.buttons {
		if b.contains(x, y) {
			c.selectButton(i)
			return true
		}
	}
	return false
}

func (c *ResultCard) selectButton(i int) {
	c.focus = i
	if f := c.buttons[i].onSelect; f != nil {
		f()
	}
}

func drawCentered(screen tcell.Screen, text string, x, y, width int, style tcell.Style) {
	runes := []rune(text)
	col := x + (width-len(runes))/2
	if col < x {
		col = x
	}
	for i, ch := range runes {
		if col+i >= x+width {
			break
		}
		screen.SetContent(col+i, y, ch, nil, style)
	}
}
