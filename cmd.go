package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termothello/board"
	"termothello/config"
	"termothello/console"
	"termothello/engine"
	"termothello/engine/local"
	"termothello/game"
	"termothello/rules"
)

// Version is set at build time via ldflags
var Version = "dev"

// Root builds the termothello command tree.
func Root() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "termothello",
		Short: "Play Othello in the terminal",
		Long: heredoc.Doc(`termothello is a two-player Othello board for the terminal.
			Both players share the keyboard (or the mouse) and take turns.

			Without a subcommand the full-screen board is started. Use
			--play to skip the menu and start a game straight away.

			Positions are written as 64 characters, rank 8 first, with
			'-' for an empty square, '*' for black and 'O' for white.
			Whitespace is ignored.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.InitConfig(); err != nil {
				return err
			}
			level, _ := cfg.LogLevel()
			logrus.SetLevel(level)
			openLog()
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg, err := gameConfigFromFlags(cmd, cfg)
			if err != nil {
				return err
			}
			focus, _ := cmd.Flags().GetBool("focus")
			play, _ := cmd.Flags().GetBool("play")
			return runTUI(cfg, gameCfg, play || focus || positionGiven(cmd), focus)
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("hints", false, "Highlight legal moves")
	root.PersistentFlags().Bool("no-hints", false, "Do not highlight legal moves")
	root.PersistentFlags().String("dark", "", "Name of the black player")
	root.PersistentFlags().String("light", "", "Name of the white player")
	root.PersistentFlags().String("position", "", "Starting position (64 squares of - * O)")
	root.PersistentFlags().String("turn", "black", "Side to move in the starting position (black or white)")
	root.MarkFlagsMutuallyExclusive("hints", "no-hints")

	root.Flags().Bool("play", false, "Start a game immediately")
	root.Flags().Bool("focus", false, "Start in focus mode (board only)")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	root.AddCommand(Text(&cfg))
	root.AddCommand(Show())

	return root
}

// termothello text
func Text(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "text",
		Short: "Play on a plain text terminal",
		Long: heredoc.Doc(`text plays a game on standard input and output. The board
			is printed after every move and moves are entered in
			algebraic notation, e.g. d3.

			Enter ? for help and q to quit.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg, err := gameConfigFromFlags(cmd, *cfg)
			if err != nil {
				return err
			}
			return console.New(local.NewEngine(gameCfg), gameCfg, os.Stdin, os.Stdout).Run()
		},
	}
}

// termothello show
func Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print a position and its legal moves",
		Long: heredoc.Doc(`show prints the starting position, or the one given with
			--position, followed by the legal moves of the side to move.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, turn, err := positionFromFlags(cmd)
			if err != nil {
				return err
			}
			rendered, err := pos.Render()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			fmt.Fprintf(cmd.OutOrStdout(), "%s to move: %s\n",
				game.ColorName(turn), console.FormatMoves(rules.LegalMoves(pos, turn)))
			return nil
		},
	}
}

// logOut is the open log file, if any.
var logOut *os.File

// openLog sends log output to the state directory so it does not draw over the board.
func openLog() {
	path, err := config.LogFile()
	if err != nil {
		logrus.WithError(err).Warn("logging to stderr")
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logrus.WithError(err).Warn("logging to stderr")
		return
	}
	closeLog()
	logOut = f
	logrus.SetOutput(f)
}

// closeLog closes the log file and sends log output back to stderr.
func closeLog() error {
	logrus.SetOutput(os.Stderr)
	if logOut == nil {
		return nil
	}
	err := logOut.Close()
	logOut = nil
	return err
}

func positionGiven(cmd *cobra.Command) bool {
	return cmd.Flag("position").Changed
}

// positionFromFlags reads --position and --turn.
func positionFromFlags(cmd *cobra.Command) (board.Board, board.Cell, error) {
	pos := board.Starting()
	if s, _ := cmd.Flags().GetString("position"); s != "" {
		var err error
		if pos, err = board.ParseCompact(s); err != nil {
			return board.Board{}, board.Empty, fmt.Errorf("--position: %w", err)
		}
	}

	turnFlag, _ := cmd.Flags().GetString("turn")
	var turn board.Cell
	switch strings.ToLower(turnFlag) {
	case "black", "b", "dark":
		turn = board.Dark
	case "white", "w", "light":
		turn = board.Light
	default:
		return board.Board{}, board.Empty, fmt.Errorf("--turn: %q is not black or white", turnFlag)
	}
	return pos, turn, nil
}

// gameConfigFromFlags creates a GameConfig from the config file, overridden by flags.
func gameConfigFromFlags(cmd *cobra.Command, cfg *config.Config) (engine.GameConfig, error) {
	gameCfg := engine.DefaultConfig()
	if cfg != nil {
		gameCfg.ShowHints = cfg.Game.ShowHints
		if cfg.Game.DarkName != "" {
			gameCfg.DarkName = cfg.Game.DarkName
		}
		if cfg.Game.LightName != "" {
			gameCfg.LightName = cfg.Game.LightName
		}
	}

	if on, _ := cmd.Flags().GetBool("hints"); on {
		gameCfg.ShowHints = true
	}
	if off, _ := cmd.Flags().GetBool("no-hints"); off {
		gameCfg.ShowHints = false
	}
	if name, _ := cmd.Flags().GetString("dark"); name != "" {
		gameCfg.DarkName = name
	}
	if name, _ := cmd.Flags().GetString("light"); name != "" {
		gameCfg.LightName = name
	}

	pos, turn, err := positionFromFlags(cmd)
	if err != nil {
		return engine.GameConfig{}, err
	}
	gameCfg.Position = pos
	gameCfg.Turn = turn
	return gameCfg, nil
}
