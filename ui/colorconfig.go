package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"termothello/board"
	"termothello/config"
)

// ColorConfigUI lets the player pick the board felt and grid colours with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing line color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Felt colours for the board
var boardColors = []paletteEntry{
	{28, "Green"},
	{22, "Dark Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{64, "Olive"},
	{65, "Moss"},
	{23, "Teal"},
	{24, "Deep Teal"},
	{94, "Walnut"},
	{130, "Rust"},
	{240, "Slate"},
	{17, "Navy"},
}

// Colours for the empty-square dots and coordinates
var lineColors = []paletteEntry{
	{22, "Dark Green"},
	{58, "Dark Olive"},
	{23, "Teal"},
	{52, "Dark Maroon"},
	{232, "Black"},
	{236, "Dark Gray"},
	{244, "Medium Gray"},
	{150, "Pale Green"},
}

// NewColorConfig creates the colour screen. onDone is called when the player leaves it.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
		cc.Apply()
	})
	cc.colorList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			cc.ToggleMode()
			return nil
		case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyRune && event.Rune() == 'q':
			cc.done()
			return nil
		}
		return event
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

func (cc *ColorConfigUI) preselect(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	if cc.editingLine {
		cc.selectedLineColor = entries[index].code
	} else {
		cc.selectedBoardColor = entries[index].code
	}
}

// Apply stores the selected colour in the config and saves it. Picking the
// board colour moves on to the line colour; picking the line colour finishes.
func (cc *ColorConfigUI) Apply() {
	if cc.editingLine {
		cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
	} else {
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
	}
	if err := cc.cfg.Save(); err != nil {
		logrus.WithError(err).Warn("could not save theme")
	}
	if cc.editingLine {
		cc.editingLine = false
		cc.populateColorList()
		cc.done()
		return
	}
	cc.ToggleMode()
}

func (cc *ColorConfigUI) done() {
	if cc.onDone != nil {
		cc.onDone()
	}
}

// Selected returns the board and line colours currently highlighted.
func (cc *ColorConfigUI) Selected() (boardColor, lineColor int) {
	return cc.selectedBoardColor, cc.selectedLineColor
}

// populateColorList fills the list for the colour being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingLine {
		cc.colorList.SetTitle(" Dot Color (Tab: board) ")
	} else {
		cc.colorList.SetTitle(" Board Color (Tab: dots) ")
	}
	current := cc.selectedBoardColor
	if cc.editingLine {
		current = cc.selectedLineColor
	}
	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < size*cellWidth+4 || height < size+4 {
		return x, y, width, height
	}

	theme := cc.cfg.Theme
	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	lineStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	darkStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(theme.Colors.DarkColor))
	lightStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(theme.Colors.LightColor))

	// The middle of the starting position, one square of margin around it.
	sample := board.Starting()
	startX, startY := x+2, y+1
	for r := 0; r < size; r++ {
		for f := 0; f < size; f++ {
			style, ch := lineStyle, theme.Symbols.Empty
			if ch == ' ' {
				ch = '·'
			}
			switch sample.At(board.Pos{Rank: r + 1, File: f + 1}) {
			case board.Dark:
				style, ch = darkStyle, theme.Symbols.DarkDisc
			case board.Light:
				style, ch = lightStyle, theme.Symbols.LightDisc
			}
			drawDiscCell(screen, style, ch, f, r, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Dots: %d", cc.selectedBoardColor, cc.selectedLineColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}

func (cc *ColorConfigUI) Mode() Mode {
	return ModeColors
}

func (cc *ColorConfigUI) Primitive() tview.Primitive {
	return cc.flex
}

func (cc *ColorConfigUI) HandleClick(x, y int) bool {
	return false
}

func (cc *ColorConfigUI) Draw(screen tcell.Screen) {
	cc.flex.Draw(screen)
}
