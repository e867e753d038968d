// internal/cli/root.go
//
// Command surface for the terminal game.
// Responsibilities:
//   - Flag parsing (cobra) with env-variable fallbacks (.env supported
//     via godotenv).
//   - Logger setup: zerolog JSON to a file, or discarded — the TUI owns
//     the terminal while the game runs.
//   - Secret selection: fixed override, daily (date-indexed), or
//     seedable random.
//   - Runs the TUI and prints the share-grid recap afterwards.

package cli

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quintile/wordle/internal/daily"
	"github.com/quintile/wordle/internal/store"
	"github.com/quintile/wordle/internal/tui"
	"github.com/quintile/wordle/internal/words"
)

// options collects everything the root command resolves from flags and
// environment before the game starts.
type options struct {
	Daily       bool
	Seed        int64
	Answer      string // dev override, hidden flag
	AnswersFile string
	AllowedFile string
	Salt        string
	LogLevel    string
	LogFile     string
}

// Execute runs the root command. Exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Wordle in the terminal",
		Long: "A local, single-player Wordle: six tries to find a five-letter\n" +
			"word. Type on your keyboard or click the on-screen one.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Daily, "daily", false, "play today's word instead of a random one")
	f.Int64Var(&opts.Seed, "seed", 0, "random seed for secret selection (0 = time-based)")
	f.StringVar(&opts.Answer, "answer", "", "fixed answer, for development")
	f.StringVar(&opts.AnswersFile, "answers-file", "", "path to an answers list (one word per line)")
	f.StringVar(&opts.AllowedFile, "allowed-file", "", "path to an allowed-guess list")
	f.StringVar(&opts.LogLevel, "log-level", "", "zerolog level (debug, info, warn, error)")
	f.StringVar(&opts.LogFile, "log-file", "", "write JSON logs to this file")
	_ = f.MarkHidden("answer")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	_ = godotenv.Load()
	applyEnv(&opts)

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	list, err := words.Load(words.Config{
		AnswersFile: opts.AnswersFile,
		AllowedFile: opts.AllowedFile,
	})
	if err != nil {
		return err
	}
	na, nn := list.Counts()
	logger.Info().Int("answers", na).Int("allowed", nn).Msg("word lists loaded")

	answer, err := answerFunc(opts, list, logger)
	if err != nil {
		return err
	}

	history := store.NewMemoryStore()
	app, err := tui.New(tui.Options{
		Dict:    list,
		Answer:  answer,
		History: history,
		Log:     logger,
	})
	if err != nil {
		return err
	}
	if err := app.Run(); err != nil {
		return err
	}

	// The screen is released at this point; the recap goes to the
	// regular terminal.
	printRecap(cmd.OutOrStdout(), history.List())
	return nil
}

// applyEnv fills unset options from the environment. Flags win.
func applyEnv(opts *options) {
	if opts.AnswersFile == "" {
		opts.AnswersFile = os.Getenv("WORDS_ANSWERS_FILE")
	}
	if opts.AllowedFile == "" {
		opts.AllowedFile = os.Getenv("WORDS_ALLOWED_FILE")
	}
	if opts.LogLevel == "" {
		opts.LogLevel = getEnv("LOG_LEVEL", "info")
	}
	if opts.LogFile == "" {
		opts.LogFile = os.Getenv("LOG_FILE")
	}
	opts.Salt = getEnv("DAILY_SALT", daily.DefaultSalt)
}

// answerFunc builds the per-session secret source.
func answerFunc(opts options, list *words.List, logger zerolog.Logger) (func() string, error) {
	switch {
	case opts.Answer != "":
		if !list.IsAllowed(opts.Answer) {
			return nil, errors.New("cli: --answer is not a valid word")
		}
		return func() string { return opts.Answer }, nil

	case opts.Daily:
		answers, _ := list.Counts()
		return func() string {
			i := daily.WordIndex(time.Now(), opts.Salt, answers)
			logger.Debug().Int("index", i).Str("date", daily.DateKey(time.Now())).Msg("daily word selected")
			return list.ByIndex(i)
		}, nil

	default:
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		return func() string { return list.Random(rng) }, nil
	}
}

// newLogger builds the zerolog logger. Without a log file everything is
// discarded; stderr would corrupt the tcell screen.
func newLogger(opts options) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	if opts.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
