package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Checkered:                false,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			DarkColor:         232,
			LightColor:        255,
			HintColor:         150,
			LineColor:         22,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 136,
		},
		Symbols: ConfigSymbols{
			DarkDisc:  '●',
			LightDisc: '○',
			Empty:     ' ',
			Hint:      '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			ShowHints: true,
			DarkName:  "Black",
			LightName: "White",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
