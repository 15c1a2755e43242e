package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/app"
	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()
	// until the game owns the terminal, problems go to stderr in human form
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	set, err := words.Open(cfg.Words.File, cfg.Game.WordLength, cfg.Words.Embedded)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	logger, closeLog, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()
	logger.Info().Str("source", set.Source()).Int("words", set.Len()).Int("length", set.Length()).Msg("word list loaded")

	answer := set.Pick()
	if cfg.Game.Daily {
		p := daily.Today(time.Now(), cfg.Game.DailySalt, set.Len())
		answer = set.At(p.Index)
		logger.Info().Stringer("puzzle", p).Int("index", p.Index).Msg("daily word selected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	tty, err := terminal.Open(cfg.NoColor)
	if err != nil {
		logger.Error().Err(err).Msg("terminal setup failed")
		log.Error().Err(err).Msg("terminal setup failed")
		return 1
	}
	defer tty.CloseOnPanic()

	sess := app.NewSession(set, answer, tty.Screen, tty.Keys, app.Options{
		MaxAttempts: cfg.Game.MaxAttempts,
		Pacing: render.Pacing{
			TypeDelay:     cfg.Pacing.TypeDelay,
			BlinkInterval: cfg.Pacing.BlinkInterval,
		},
		NoticeDelay: cfg.Pacing.NoticeDelay,
		EndHold:     cfg.Pacing.EndHold,
		IntroPause:  cfg.Pacing.IntroPause,
		LegendPause: cfg.Pacing.LegendPause,
	}, logger)
	res, err := sess.Run(ctx)
	if cerr := tty.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("terminal restore failed")
	}

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info().Msg("terminated by signal")
	case err != nil:
		logger.Error().Err(err).Msg("session failed")
		log.Error().Err(err).Msg("session failed")
		return 1
	default:
		logger.Info().Bool("won", res.Won).Bool("cancelled", res.Cancelled).Int("attempts", res.Attempts).Msg("bye")
	}
	return 0
}

// newLogger picks where structured logs go while the screen belongs to the game:
// LOG_FILE when set, stderr when it is redirected, nowhere otherwise.
func newLogger(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), func() {}, err
		}
		return zerolog.New(f).With().Timestamp().Logger(), func() { _ = f.Close() }, nil
	case !terminal.IsTerminal(os.Stderr):
		return zerolog.New(os.Stderr).With().Timestamp().Logger(), func() {}, nil
	default:
		return zerolog.Nop(), func() {}, nil
	}
}
