package ui

import (
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/board"
	"termothello/config"
	"termothello/engine"
	"termothello/engine/local"
	"termothello/game"
	"termothello/types"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

// newBoard returns a board widget drawn at the origin and connected to a fresh local game.
func newBoard(t *testing.T) (*OthelloBoardUI, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig
	ob := NewOthelloBoard(nil, &cfg, tview.NewTextView())
	ob.Box.SetRect(0, 0, 40, 12)
	if err := ob.ConnectEngine(local.NewEngine(engine.DefaultConfig()), engine.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ob.Close)
	return ob, &cfg
}

// screenX is the column of the disc glyph on file f when drawn at the origin.
func screenX(f int) int {
	return boardOffsetX + f*cellWidth
}

func TestBoardDrawsStartingPosition(t *testing.T) {
	s := newScreen(t)
	ob, cfg := newBoard(t)
	ob.Box.Draw(s)

	sym := cfg.Theme.Symbols
	cases := []struct {
		pos  board.Pos
		want rune
	}{
		{board.Pos{Rank: 3, File: 3}, sym.LightDisc},
		{board.Pos{Rank: 3, File: 4}, sym.DarkDisc},
		{board.Pos{Rank: 4, File: 3}, sym.DarkDisc},
		{board.Pos{Rank: 4, File: 4}, sym.LightDisc},
		{board.Pos{Rank: 2, File: 3}, sym.Hint}, // d6 is legal for black
		{board.Pos{Rank: 0, File: 0}, sym.Empty},
	}
	for _, c := range cases {
		if got := runeAt(s, screenX(c.pos.File), c.pos.Rank); got != c.want {
			t.Errorf("%s: got %q, want %q", c.pos, got, c.want)
		}
	}

	// coordinates
	if got := runeAt(s, screenX(0), board.Size); got != 'a' {
		t.Errorf("file label: got %q, want 'a'", got)
	}
	if got := runeAt(s, 1, 0); got != '8' {
		t.Errorf("rank label: got %q, want '8'", got)
	}
}

func TestBoardWithoutHints(t *testing.T) {
	s := newScreen(t)
	cfg := config.DefaultConfig
	ob := NewOthelloBoard(nil, &cfg, nil)
	ob.Box.SetRect(0, 0, 40, 12)
	gc := engine.DefaultConfig()
	gc.ShowHints = false
	if err := ob.ConnectEngine(local.NewEngine(gc), gc); err != nil {
		t.Fatal(err)
	}
	defer ob.Close()
	ob.Box.Draw(s)

	if got := runeAt(s, screenX(3), 2); got != cfg.Theme.Symbols.Empty {
		t.Errorf("hint drawn with hints off: %q", got)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y int
		want board.Pos
		ok   bool
	}{
		{screenX(0), 0, board.Pos{Rank: 0, File: 0}, true},
		{screenX(0) + 1, 0, board.Pos{Rank: 0, File: 0}, true},
		{screenX(3), 2, board.Pos{Rank: 2, File: 3}, true},
		{screenX(7) + 1, 7, board.Pos{Rank: 7, File: 7}, true},
		{boardOffsetX - 1, 0, board.Pos{}, false},
		{screenX(8), 0, board.Pos{}, false},
		{screenX(0), 8, board.Pos{}, false},
	}
	for _, c := range cases {
		got, ok := CellAt(10, 5, c.x+10, c.y+5)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("CellAt(%d, %d) = %v, %v; want %v, %v", c.x, c.y, got, ok, c.want, c.ok)
		}
	}
}

func TestClickPlaysMove(t *testing.T) {
	ob, _ := newBoard(t)

	if !ob.HandleClick(screenX(3), 2) {
		t.Fatal("click on d6 not handled")
	}
	if got := ob.View.Board.At(board.Pos{Rank: 2, File: 3}); got != board.Dark {
		t.Errorf("d6 = %v, want dark", got)
	}
	if ob.View.Turn != board.Light || ob.View.MoveNumber != 1 {
		t.Errorf("after d6: turn %v move %d", ob.View.Turn, ob.View.MoveNumber)
	}
	if len(ob.moveHistory) != 1 || len(ob.moveHistory[0].Flips) != 1 {
		t.Errorf("move history = %+v", ob.moveHistory)
	}

	// a1 is empty and illegal
	if !ob.HandleClick(screenX(0), 7) {
		t.Fatal("click on a1 not handled")
	}
	if ob.lastError == "" {
		t.Error("illegal click did not set an error")
	}
	if ob.View.MoveNumber != 1 {
		t.Errorf("illegal click changed the game: move %d", ob.View.MoveNumber)
	}

	if ob.HandleClick(0, 0) {
		t.Error("click on rank labels was handled")
	}
}

func TestGameScreenKeys(t *testing.T) {
	ob, _ := newBoard(t)
	quit := false
	gs := NewGameScreen(ob, tview.NewTextView(), func() { quit = true })

	// First arrow selects the first legal move, Enter plays it.
	gs.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if sel := ob.SelectedTile(); sel == nil || *sel != (board.Pos{Rank: 2, File: 3}) {
		t.Fatalf("selection = %v, want d6", sel)
	}
	gs.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if ob.View.MoveNumber != 1 {
		t.Fatalf("enter did not play: move %d", ob.View.MoveNumber)
	}

	gs.handleKey(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	if !ob.focusMode {
		t.Error("f did not enable focus mode")
	}
	gs.handleKey(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	if ob.focusMode {
		t.Error("f did not disable focus mode")
	}

	// q first clears the selection, then leaves.
	gs.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if quit || ob.SelectedTile() != nil {
		t.Fatal("first q should only clear the selection")
	}
	gs.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !quit {
		t.Error("second q did not quit")
	}
	if ob.eng != nil {
		t.Error("engine still connected after quitting")
	}
}

func TestInfoPanel(t *testing.T) {
	ob, _ := newBoard(t)
	NewGameScreen(ob, tview.NewTextView(), nil)

	ob.PlayMove(board.Pos{Rank: 2, File: 3})
	text := ob.infoPanel.Text()
	for _, want := range []string{"Black", "White", "d6", "+1", "Status:[-:-:-] in progress"} {
		if !strings.Contains(text, want) {
			t.Errorf("info panel missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, ob.View.SessionID[:8]) {
		t.Error("info panel does not show the session")
	}
}

func TestGameEndCallback(t *testing.T) {
	cfg := config.DefaultConfig
	ob := NewOthelloBoard(nil, &cfg, tview.NewTextView())
	pos, err := board.ParseCompact(strings.Repeat("-", 8) + "*O------" + strings.Repeat("-", 48))
	if err != nil {
		t.Fatal(err)
	}
	gc := engine.DefaultConfig()
	gc.Position = pos
	if err := ob.ConnectEngine(local.NewEngine(gc), gc); err != nil {
		t.Fatal(err)
	}
	defer ob.Close()

	var ended *types.GameView
	ob.SetGameEndFunc(func(v types.GameView) { ended = &v })
	ob.PlayMove(board.Pos{Rank: 1, File: 2})
	if ended == nil {
		t.Fatal("game end not reported")
	}
	if got := ended.Outcome(); got != "Black wins 3-0" {
		t.Errorf("outcome = %q", got)
	}
}

type fakeScreen struct {
	mode   Mode
	clicks int
	box    *tview.Box
}

func (f *fakeScreen) Mode() Mode                 { return f.mode }
func (f *fakeScreen) Primitive() tview.Primitive { return f.box }
func (f *fakeScreen) Draw(screen tcell.Screen)   {}
func (f *fakeScreen) HandleClick(x, y int) bool {
	f.clicks++
	return x < 10
}

func TestGameGUIDispatch(t *testing.T) {
	menu := &fakeScreen{mode: ModeMenu, box: tview.NewBox()}
	play := &fakeScreen{mode: ModePlay, box: tview.NewBox()}
	gui := NewGameGUI(menu, play)

	if gui.Mode() != ModeMenu {
		t.Fatalf("initial mode = %v", gui.Mode())
	}
	gui.HandleClick(1, 1)
	if menu.clicks != 1 || play.clicks != 0 {
		t.Errorf("click went to the wrong screen: menu %d play %d", menu.clicks, play.clicks)
	}

	if gui.SetMode(ModeEnd) {
		t.Error("switched to a mode with no screen")
	}
	if gui.Mode() != ModeMenu {
		t.Errorf("mode changed to %v", gui.Mode())
	}
	if !gui.SetMode(ModePlay) {
		t.Fatal("could not switch to play")
	}
	if name, _ := gui.Pages().GetFrontPage(); name != "play" {
		t.Errorf("front page = %q", name)
	}

	ev, _ := gui.MouseCapture(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), tview.MouseLeftClick)
	if ev != nil || play.clicks != 1 {
		t.Errorf("consumed click: event %v clicks %d", ev, play.clicks)
	}
	ev, _ = gui.MouseCapture(tcell.NewEventMouse(20, 1, tcell.Button1, tcell.ModNone), tview.MouseLeftClick)
	if ev == nil {
		t.Error("unhandled click was swallowed")
	}
	gui.MouseCapture(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), tview.MouseMove)
	if play.clicks != 2 {
		t.Errorf("mouse move dispatched as a click: clicks %d", play.clicks)
	}
}

func TestEndScreen(t *testing.T) {
	s := newScreen(t)
	var newGame, quit bool
	end := NewEndScreen(func() { newGame = true }, func() { quit = true })
	card := end.Card()

	view := types.GameView{
		Board:      board.Starting(),
		Status:     game.Finished,
		Score:      game.Score{Dark: 40, Light: 24},
		MoveNumber: 60,
	}
	end.SetResult(view, engine.GameConfig{DarkName: "Ann", LightName: "Bo"})
	if result, detail := card.Result(); result != "Ann wins" || detail != "Ann 40  ·  Bo 24  ·  60 moves" {
		t.Errorf("result = %q / %q", result, detail)
	}

	if end.HandleClick(0, 0) {
		t.Error("click handled before the card was drawn")
	}

	end.Primitive().SetRect(0, 0, 80, 24)
	end.Draw(s)

	cx, cy, _, _ := card.GetInnerRect()
	if !strings.Contains(rowText(s, cy+4), "Ann wins") {
		t.Errorf("headline row = %q", rowText(s, cy+4))
	}
	// 40 of 64 discs over a 42 cell bar
	if got := runeAt(s, cx+3, cy+8); got != '●' {
		t.Errorf("bar start = %q", got)
	}
	if got := runeAt(s, cx+3+26, cy+8); got != '○' {
		t.Errorf("bar after dark share = %q", got)
	}

	newGameBtn, quitBtn := card.buttons[0], card.buttons[1]
	if newGameBtn.y != quitBtn.y || quitBtn.x <= newGameBtn.x {
		t.Fatalf("buttons at (%d,%d) and (%d,%d)", newGameBtn.x, newGameBtn.y, quitBtn.x, quitBtn.y)
	}
	if end.HandleClick(newGameBtn.x, newGameBtn.y-1) {
		t.Error("click above the buttons was handled")
	}
	if !end.HandleClick(quitBtn.x+1, quitBtn.y) || !quit || newGame {
		t.Errorf("quit click: quit=%v newGame=%v", quit, newGame)
	}
	if !end.HandleClick(newGameBtn.x, newGameBtn.y) || !newGame {
		t.Error("new game click not handled")
	}

	end.SetResult(types.GameView{Status: game.Finished, Score: game.Score{Dark: 32, Light: 32}}, engine.DefaultConfig())
	if result, _ := card.Result(); result != "Draw" {
		t.Errorf("draw result = %q", result)
	}
}

func TestEndScreenKeys(t *testing.T) {
	var newGame, quit bool
	end := NewEndScreen(func() { newGame = true }, func() { quit = true })
	handler := end.Card().InputHandler()
	noFocus := func(tview.Primitive) {}

	handler(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), noFocus)
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), noFocus)
	if !quit || newGame {
		t.Fatalf("right+enter: quit=%v newGame=%v", quit, newGame)
	}
	handler(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), noFocus)
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), noFocus)
	if !newGame {
		t.Error("left+enter did not start a new game")
	}
}

func TestGameGUIDraw(t *testing.T) {
	ob, cfg := newBoard(t)
	setup := NewGameSetup(engine.DefaultConfig(), func(engine.GameConfig) {}, func() {}, func() {})
	play := NewGameScreen(ob, tview.NewTextView(), nil)
	colors := NewColorConfig(cfg, nil)
	gui := NewGameGUI(setup, play, colors)
	for _, sc := range []Screen{setup, play, colors} {
		sc.Primitive().SetRect(0, 0, 80, 24)
	}

	s := newScreen(t)
	gui.Draw(s)
	if !strings.Contains(rowText(s, 0), "New Game") {
		t.Errorf("menu title row = %q", rowText(s, 0))
	}

	gui.SetMode(ModePlay)
	s.Clear()
	gui.Draw(s)
	if got := runeAt(s, screenX(4), 3); got != cfg.Theme.Symbols.DarkDisc {
		t.Errorf("e5 = %q, want dark disc", got)
	}
	if strings.Contains(rowText(s, 0), "New Game") {
		t.Error("menu still drawn in play mode")
	}

	gui.SetMode(ModeColors)
	s.Clear()
	gui.Draw(s)
	if !strings.Contains(rowText(s, 0), "Board Preview") {
		t.Errorf("colour screen title row = %q", rowText(s, 0))
	}
}

func TestPassShownInHint(t *testing.T) {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	ob := NewOthelloBoard(nil, &cfg, hint)
	gc := engine.DefaultConfig()
	gc.Position = twoCorners(t)
	gc.Turn = board.Light
	if err := ob.ConnectEngine(local.NewEngine(gc), gc); err != nil {
		t.Fatal(err)
	}
	defer ob.Close()

	if ob.View.Status != game.PassForced {
		t.Fatalf("status = %v, want pass forced", ob.View.Status)
	}
	text := hint.GetText(true)
	if !strings.Contains(text, "White has no move and passes") {
		t.Errorf("hint missing pass notice:\n%s", text)
	}
	if !strings.Contains(text, "Black to move") {
		t.Errorf("hint should show black to move:\n%s", text)
	}
}

// twoCorners has a dark-light pair on ranks 8 and 1; only black can move.
func twoCorners(t *testing.T) board.Board {
	t.Helper()
	b, err := board.ParseCompact("*O------" + strings.Repeat("-", 48) + "*O------")
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(runeAt(s, x, y))
	}
	return sb.String()
}

func TestGameSetupConfig(t *testing.T) {
	var started *engine.GameConfig
	base := engine.DefaultConfig()
	setup := NewGameSetup(base, func(c engine.GameConfig) { started = &c }, func() {}, nil)

	if setup.Mode() != ModeMenu {
		t.Errorf("mode = %v", setup.Mode())
	}
	setup.config.DarkName = ""
	setup.config.ShowHints = false
	got := setup.Config()
	if got.DarkName != "Black" || got.LightName != "White" || got.ShowHints {
		t.Errorf("config = %+v", got)
	}

	// Start Game is the first button.
	setup.form.GetButton(0).InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
	if started == nil || started.ShowHints {
		t.Errorf("started with %+v", started)
	}
	if setup.form.GetButtonCount() != 2 {
		t.Errorf("buttons = %d, want 2 without a colour screen", setup.form.GetButtonCount())
	}
}

func TestColorConfigApply(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	cfg := config.DefaultConfig
	done := false
	cc := NewColorConfig(&cfg, func() { done = true })
	if cc.Mode() != ModeColors {
		t.Errorf("mode = %v", cc.Mode())
	}

	cc.preselect(3)
	cc.Apply()
	if cfg.Theme.Colors.BoardColor != boardColors[3].code || cfg.Theme.Colors.BoardColorAlt != boardColors[3].code {
		t.Errorf("board colour = %d", cfg.Theme.Colors.BoardColor)
	}
	if done || !cc.editingLine {
		t.Fatal("board colour should move on to the dot colour")
	}

	cc.preselect(1)
	cc.Apply()
	if cfg.Theme.Colors.LineColor != lineColors[1].code {
		t.Errorf("line colour = %d", cfg.Theme.Colors.LineColor)
	}
	if !done {
		t.Error("done not called")
	}

	saved, err := config.InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Theme.Colors.BoardColor != boardColors[3].code {
		t.Errorf("saved board colour = %d", saved.Theme.Colors.BoardColor)
	}

	s := newScreen(t)
	cc.Flex().SetRect(0, 0, 80, 20)
	cc.Draw(s)
}
