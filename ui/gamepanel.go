package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termothello/board"
	"termothello/rules"
	"termothello/types"
)

// GameInfoPanel displays score and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	view        *types.GameView
	darkName    string
	lightName   string
	moveHistory *[]rules.MoveResult
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:       tview.NewTextView(),
		darkName:  "Black",
		lightName: "White",
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetView updates the panel with the current game.
func (p *GameInfoPanel) SetView(view types.GameView) {
	p.view = &view
	p.refresh()
}

// SetPlayers sets the names shown next to the scores.
func (p *GameInfoPanel) SetPlayers(dark, light string) {
	p.darkName = dark
	p.lightName = light
	p.refresh()
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]rules.MoveResult) {
	p.moveHistory = history
}

// Text returns the panel contents including color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(false)
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.view == nil {
		p.box.SetText("")
		return
	}
	v := p.view

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	darkMark, lightMark := " ", " "
	if !v.Finished() {
		if v.Turn == board.Dark {
			darkMark = "[yellow]>[-]"
		} else {
			lightMark = "[yellow]>[-]"
		}
	}
	text += fmt.Sprintf("%s[white]● %-12s[-:-:-] %2d\n", darkMark, tview.Escape(p.darkName), v.Score.Dark)
	text += fmt.Sprintf("%s[white]○ %-12s[-:-:-] %2d\n", lightMark, tview.Escape(p.lightName), v.Score.Light)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", v.MoveNumber+1)
	text += fmt.Sprintf("[white]Status:[-:-:-] %s\n", v.Status)

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]
			colorStr := "[white]B[-]"
			if m.Color == board.Light {
				colorStr = "[dimgray]W[-]"
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s [dimgray]+%d[-]\n", marker, i+1, colorStr, m.Pos, len(m.Flips))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	if len(v.SessionID) >= 8 {
		text += fmt.Sprintf("\n[dimgray]game %s[-]\n", v.SessionID[:8])
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(ob *OthelloBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, ob, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, ob *OthelloBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in the board widget for updates
	ob.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&ob.moveHistory)
	infoPanel.SetPlayers(ob.gameConfig.DarkName, ob.gameConfig.LightName)
	infoPanel.SetView(ob.View)

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(ob.Box, 0, 1, true)            // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, ob *OthelloBoardUI) {
	gameFrame.Clear()

	boardWidth := board.Size*cellWidth + boardOffsetX
	boardHeight := board.Size + 1 // + file letters

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)            // left spacer
	centerRow.AddItem(ob.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)            // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
