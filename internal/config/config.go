// apps/go-term/internal/config/config.go
//
// Environment-backed configuration for the terminal client.
// Values are read once at startup (after godotenv has populated the
// environment from .env) and never change during a session.
//
// Environment variables:
//   WORDLE_WORD_LENGTH      letters per word                (default 5)
//   WORDLE_MAX_ATTEMPTS     guesses per game                (default 6)
//   WORDLE_WORDS_FILE       word list, one word per line    (default words.txt)
//   WORDLE_EMBEDDED_WORDS   fall back to the built-in list  (default true)
//   WORDLE_DAILY            pick the target from the date   (default false)
//   DAILY_SALT              salt for the daily index        (default local_dev_salt)
//   WORDLE_TYPE_DELAY       typewriter delay per character  (default 50ms)
//   WORDLE_BLINK_INTERVAL   blink half-period               (default 500ms)
//   WORDLE_NOTICE_DELAY     transient message duration      (default 750ms)
//   WORDLE_END_HOLD         end-of-game display duration    (default 15s)
//   WORDLE_INTRO_PAUSE      pause after intro paragraphs    (default 500ms)
//   WORDLE_LEGEND_PAUSE     pause after colour legend lines (default 250ms)
//   LOG_LEVEL               zerolog level                   (default info)
//   LOG_FILE                JSON log destination            (default none)
//   NO_COLOR                disable styling when set

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Game    GameConfig
	Words   WordsConfig
	Pacing  PacingConfig
	Logging LoggingConfig
	NoColor bool
}

// GameConfig holds board dimensions and target selection.
type GameConfig struct {
	WordLength  int
	MaxAttempts int
	Daily       bool
	DailySalt   string
}

// WordsConfig locates the word list.
type WordsConfig struct {
	File     string
	Embedded bool
}

// PacingConfig holds the fixed delays of decorative effects and transient messages.
type PacingConfig struct {
	TypeDelay     time.Duration
	BlinkInterval time.Duration
	NoticeDelay   time.Duration
	EndHold       time.Duration
	IntroPause    time.Duration
	LegendPause   time.Duration
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// ConfigError reports a configuration value that prevents the game from starting.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

var errNotPositive = errors.New("must be greater than zero")

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	l := loader{}
	cfg := &Config{
		Game: GameConfig{
			WordLength:  l.positiveInt("WORDLE_WORD_LENGTH", 5),
			MaxAttempts: l.positiveInt("WORDLE_MAX_ATTEMPTS", 6),
			Daily:       l.boolean("WORDLE_DAILY", false),
			DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
		},
		Words: WordsConfig{
			File:     getEnv("WORDLE_WORDS_FILE", "words.txt"),
			Embedded: l.boolean("WORDLE_EMBEDDED_WORDS", true),
		},
		Pacing: PacingConfig{
			TypeDelay:     l.duration("WORDLE_TYPE_DELAY", 50*time.Millisecond),
			BlinkInterval: l.duration("WORDLE_BLINK_INTERVAL", 500*time.Millisecond),
			NoticeDelay:   l.duration("WORDLE_NOTICE_DELAY", 750*time.Millisecond),
			EndHold:       l.duration("WORDLE_END_HOLD", 15*time.Second),
			IntroPause:    l.duration("WORDLE_INTRO_PAUSE", 500*time.Millisecond),
			LegendPause:   l.duration("WORDLE_LEGEND_PAUSE", 250*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
	_, cfg.NoColor = os.LookupEnv("NO_COLOR")
	if l.err != nil {
		return nil, l.err
	}
	return cfg, nil
}

// loader keeps the first error seen so Load can read every key in one pass.
type loader struct {
	err error
}

func (l *loader) fail(key string, err error) {
	if l.err == nil {
		l.err = &ConfigError{Key: key, Err: err}
	}
}

func (l *loader) positiveInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		l.fail(key, err)
		return def
	}
	if n <= 0 {
		l.fail(key, errNotPositive)
		return def
	}
	return n
}

func (l *loader) boolean(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		l.fail(key, err)
		return def
	}
	return b
}

func (l *loader) duration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		l.fail(key, err)
		return def
	}
	if d < 0 {
		l.fail(key, errors.New("must not be negative"))
		return def
	}
	return d
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
