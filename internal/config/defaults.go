package config

const (
	defaultDataDir           = "~/.local/share/subvocab"
	defaultLogDir            = "~/.local/share/subvocab/logs"
	defaultYouTubeBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultTimedTextURL      = "https://www.youtube.com/api/timedtext"
	defaultYouTubeTimeout    = 30
	defaultGeminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel       = "gemini-pro"
	defaultTargetLanguage    = "Chinese"
	defaultGeminiTemperature = 0.3
	defaultGeminiTopK        = 30
	defaultGeminiTopP        = 0.7
	defaultGeminiTimeout     = 120
	defaultDifficulty        = 2
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		YouTube: YouTube{
			BaseURL:        defaultYouTubeBaseURL,
			TimedTextURL:   defaultTimedTextURL,
			TimeoutSeconds: defaultYouTubeTimeout,
		},
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			TargetLanguage: defaultTargetLanguage,
			Temperature:    defaultGeminiTemperature,
			TopK:           defaultGeminiTopK,
			TopP:           defaultGeminiTopP,
			TimeoutSeconds: defaultGeminiTimeout,
		},
		Vocabulary: Vocabulary{
			DefaultDifficulty: defaultDifficulty,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
