// Package ui specifies custom controls for tview to play Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/board"
	"termothello/config"
	"termothello/engine"
	"termothello/game"
	"termothello/rules"
	"termothello/types"
)

const (
	// boardOffsetX leaves room for the rank labels left of the board.
	boardOffsetX = 3
	// cellWidth is 2 characters per cell for square appearance.
	cellWidth = 2
)

// Indices into OthelloBoardUI.styles.
const (
	colorBoard = iota
	colorBoardAlt
	colorDark
	colorLight
	colorHint
	colorLine
	colorCursorFG
	colorCursorBG
	colorLastPlayed
)

type OthelloBoardUI struct {
	Box         *tview.Box
	View        types.GameView
	hint        *tview.TextView
	cfg         *config.Config
	gameConfig  engine.GameConfig
	selX        int
	selY        int
	lastError   string
	app         *tview.Application
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	moveHistory []rules.MoveResult
	focusMode   bool
	onGameEnd   func(view types.GameView)
}

// NewOthelloBoard creates the board widget. app may be nil when no redraws are needed.
func NewOthelloBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *OthelloBoardUI {
	ob := &OthelloBoardUI{
		Box:  tview.NewBox(),
		View: types.GameView{Board: board.Blank(), Status: game.Finished},
		hint: hint,
		app:  app,
		selX: -1,
		selY: -1,
	}
	ob.SetConfig(c)
	ob.Box.SetDrawFunc(ob.draw)
	return ob
}

func (g *OthelloBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	theme := g.cfg.Theme
	for r := 0; r < board.Size; r++ {
		for f := 0; f < board.Size; f++ {
			p := board.Pos{Rank: r, File: f}
			cell := g.View.Board.At(p)

			bg := g.styles[colorBoard]
			if theme.Checkered && (r+f)%2 == 1 {
				bg = g.styles[colorBoardAlt]
			}
			fg := g.styles[colorLine]
			drawRune := theme.Symbols.Empty

			switch cell {
			case board.Dark:
				drawRune = theme.Symbols.DarkDisc
				fg = g.styles[colorDark]
			case board.Light:
				drawRune = theme.Symbols.LightDisc
				fg = g.styles[colorLight]
			default:
				if g.gameConfig.ShowHints && g.View.IsLegal(p) {
					drawRune = theme.Symbols.Hint
					fg = g.styles[colorHint]
				}
			}

			if f == g.selX && r == g.selY {
				if theme.DrawCursorBackground {
					bg = g.styles[colorCursorBG]
				} else if cell == board.Empty {
					drawRune = '+'
					fg = g.styles[colorCursorFG]
				}
			} else if g.View.IsLastMove(p) && theme.DrawLastPlayedBackground {
				bg = g.styles[colorLastPlayed]
			}

			drawDiscCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, f, r, x+boardOffsetX, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	return x, y, board.Size*cellWidth + boardOffsetX, board.Size + 1
}

// CellAt translates a screen position into a board square, given the
// top-left corner the board was drawn at.
func CellAt(originX, originY, x, y int) (board.Pos, bool) {
	col := x - originX - boardOffsetX
	row := y - originY
	if col < 0 || row < 0 {
		return board.Pos{}, false
	}
	p := board.Pos{Rank: row, File: col / cellWidth}
	return p, p.InBounds()
}

// HandleClick plays the square under (x, y). Returns true if the click hit the board.
func (g *OthelloBoardUI) HandleClick(x, y int) bool {
	bx, by, _, _ := g.Box.GetRect()
	p, ok := CellAt(bx, by, x, y)
	if !ok {
		return false
	}
	g.selX, g.selY = p.File, p.Rank
	g.PlayMove(p)
	return true
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *OthelloBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *OthelloBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *OthelloBoardUI) SelectedTile() *board.Pos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &board.Pos{Rank: g.selY, File: g.selX}
}

func (g *OthelloBoardUI) MoveSelection(h, v int) {
	if g.View.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		switch {
		case g.View.LastMove != nil:
			g.selX, g.selY = g.View.LastMove.File, g.View.LastMove.Rank
		case len(g.View.Legal) > 0:
			g.selX, g.selY = g.View.Legal[0].File, g.View.Legal[0].Rank
		default:
			g.selX, g.selY = board.Size/2, board.Size/2
		}
		return
	}
	next := board.Pos{Rank: g.selY + v, File: g.selX + h}
	if !next.InBounds() {
		return
	}
	g.selX, g.selY = next.File, next.Rank
}

func (g *OthelloBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// ConnectEngine connects the board to a game engine.
func (g *OthelloBoardUI) ConnectEngine(e engine.GameEngine, gameCfg engine.GameConfig) error {
	if g.eng != nil {
		g.eng.Close()
	}
	g.eng = e
	g.gameConfig = gameCfg
	g.moveHistory = nil
	g.lastError = ""
	g.ResetSelection()

	if err := e.Connect(); err != nil {
		g.eng = nil
		return err
	}

	e.OnMove(func(res rules.MoveResult, view types.GameView) {
		g.moveHistory = append(g.moveHistory, res)
		g.View = view
		g.refreshHint()
		g.redraw()
	})

	e.OnGameEnd(func(view types.GameView) {
		g.View = view
		g.ResetSelection()
		g.refreshHint()
		if g.onGameEnd != nil {
			g.onGameEnd(view)
		}
		g.redraw()
	})

	g.View = e.View()
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(gameCfg.DarkName, gameCfg.LightName)
	}
	g.refreshHint()
	return nil
}

// SetGameEndFunc registers a function called once the connected game ends.
func (g *OthelloBoardUI) SetGameEndFunc(f func(view types.GameView)) {
	g.onGameEnd = f
}

func (g *OthelloBoardUI) redraw() {
	if g.app == nil {
		return
	}
	// Spawn goroutine to avoid deadlock when called from the event loop
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// PlayMove plays the colour to move at p.
func (g *OthelloBoardUI) PlayMove(p board.Pos) {
	if g.eng == nil || g.View.Finished() {
		return
	}
	g.lastError = ""
	if err := g.eng.PlayMove(p); err != nil {
		g.lastError = fmt.Sprintf("%s is not a legal move", p)
		g.refreshHint()
	}
}

// Close disconnects the engine.
func (g *OthelloBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *OthelloBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // colorBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // colorBoardAlt
		tcell.PaletteColor(c.Theme.Colors.DarkColor),         // colorDark
		tcell.PaletteColor(c.Theme.Colors.LightColor),        // colorLight
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // colorHint
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // colorLine
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // colorCursorFG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // colorCursorBG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // colorLastPlayed
	}
	g.cfg = c
}

func (g *OthelloBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetView(g.View)
	}
	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.View.Finished() {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.View.Outcome())
		controlsLine = "\n  q · return to menu"
	} else {
		if g.lastError != "" {
			statusLine = fmt.Sprintf("  ✗ %s\n", g.lastError)
		} else if g.View.Status == game.PassForced {
			statusLine = fmt.Sprintf("  ○ %s has no move and passes\n", g.gameConfig.PlayerName(g.View.Skipped))
		}

		stone := g.cfg.Theme.Symbols.DarkDisc
		if g.View.Turn == board.Light {
			stone = g.cfg.Theme.Symbols.LightDisc
		}
		turnLine = fmt.Sprintf("  %c %s to move (%s)\n", stone, g.gameConfig.PlayerName(g.View.Turn), game.ColorName(g.View.Turn))

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawDiscCell draws a single cell (2 characters wide)
func drawDiscCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*cellWidth, t+y, r, nil, c)
	s.SetContent(l+x*cellWidth+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *OthelloBoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[colorCursorBG])

	for f := 0; f < board.Size; f++ {
		_style := style
		if f == ui.selX {
			_style = highlight
		}
		s.SetContent(x+boardOffsetX+f*cellWidth, y+board.Size, rune('a'+f), nil, _style)
		s.SetContent(x+boardOffsetX+f*cellWidth+1, y+board.Size, ' ', nil, _style)
	}

	for r := 0; r < board.Size; r++ {
		_style := style
		if r == ui.selY {
			_style = highlight
		}
		s.SetContent(x+1, y+r, rune('0'+board.Size-r), nil, _style)
	}
}
