package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

var (
	cfgFile = "termothello/config.json"
	logFile = "termothello/termothello.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	DarkColor         int `json:"dark"`
	LightColor        int `json:"light"`
	HintColor         int `json:"hint"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	DarkDisc  rune `json:"dark"`
	LightDisc rune `json:"light"`
	Empty     rune `json:"empty"`
	Hint      rune `json:"hint"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	Checkered                bool          `json:"checkered"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameSettings holds defaults for new games.
type GameSettings struct {
	ShowHints bool   `json:"show_hints"`
	DarkName  string `json:"dark_name"`
	LightName string `json:"light_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `json:"level"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.DarkDisc, s.LightDisc, s.Empty, s.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if s.DarkDisc == s.LightDisc {
		return &InvalidConfig{"dark and light symbols must differ"}
	}
	if _, err := c.LogLevel(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.Log.Level)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogFile returns the path of the log file, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
