package config

const (
	defaultDataDir        = "~/.local/share/prepdrill"
	defaultLogDir         = "~/.local/share/prepdrill/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultProvider       = "openai"
	defaultOpenAIBaseURL  = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel    = "gpt-3.5-turbo"
	defaultGeminiBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel    = "gemini-1.5-flash"
	defaultTimeoutSeconds = 15
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Scoring: Scoring{
			Provider: defaultProvider,
		},
		OpenAI: OpenAI{
			BaseURL:        defaultOpenAIBaseURL,
			Model:          defaultOpenAIModel,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
