package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/diary/internal/config"
	"github.com/chris-regnier/diary/internal/diary"
	"github.com/chris-regnier/diary/internal/store"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile     string
	eventsFile  string
	jsonOutput  bool
	plainOutput bool
	appConfig   *config.Config
	eventStore  *store.Store
	logger      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "diary [days]",
	Short: "A personal command-line event diary",
	Long: `diary keeps your events in a local JSON document and lists the ones coming up.

With no argument it shows the coming week. A number N shows the rest of today
and the next N days; a negative number looks back N days instead.`,
	Example: `  diary
  diary 0
  diary 30
  diary -3
  diary --json 7`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override events document from flag
		if eventsFile != "" {
			appConfig.EventsFile = eventsFile
		}

		logger = newLogger(appConfig.LogLevel, cmd.ErrOrStderr())
		slog.SetDefault(logger)

		eventStore, err = store.New(appConfig.EventsPath(), logger)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		days := appConfig.DefaultDays
		if len(args) == 1 {
			n, err := parseDays(args[0])
			if err != nil {
				return err
			}
			days = n
		}

		eng := newEngine(cmd)
		if jsonOutput {
			listing, err := eng.Upcoming(days)
			if err != nil {
				return err
			}
			return ui.FormatJSON(cmd.OutOrStdout(), ui.ToSummaries(listing.Events))
		}
		return eng.Present(days)
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	err := rootCmd.Execute()
	if errors.Is(err, diary.ErrAborted) {
		fmt.Fprintln(rootCmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&eventsFile, "file", "", "events document (overrides events_file)")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "plain line prompts and no styling")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// parseDays parses a signed day count argument.
func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number of days %q: expected a whole number such as 7 or -1", s)
	}
	return n, nil
}

// normalizeArgs moves the first bare negative integer behind a "--" at the
// end so that "diary -3", "diary -3 --json" and "diary delete -1" are not
// read as flags. Arguments already containing "--" are left alone.
func normalizeArgs(args []string) []string {
	for _, a := range args {
		if a == "--" {
			return args
		}
	}
	for i, a := range args {
		if len(a) > 1 && a[0] == '-' {
			if _, err := strconv.Atoi(a); err == nil {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, args[i+1:]...)
				return append(out, "--", a)
			}
		}
	}
	return args
}

// newLogger builds the diagnostic logger. Unknown levels fall back to warn.
func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// interactive reports whether prompts and styling may use the terminal.
func interactive(cmd *cobra.Command) bool {
	return !plainOutput &&
		cmd.InOrStdin() == os.Stdin && cmd.OutOrStdout() == os.Stdout &&
		isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// newEngine wires a diary engine for one invocation of cmd.
func newEngine(cmd *cobra.Command) *diary.Engine {
	now := time.Now()
	theme := ui.ResolveTheme(appConfig.Theme)
	tty := interactive(cmd)

	var prompter diary.Prompter
	if tty {
		prompter = ui.TUIPrompter{Theme: theme, QuitWord: appConfig.QuitWord}
	} else {
		lp := ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		lp.QuitWord = appConfig.QuitWord
		prompter = lp
	}

	format := ui.NewFormatter(theme, tty, now)
	return diary.New(diary.Config{
		Store:       eventStore,
		Prompter:    prompter,
		Out:         cmd.OutOrStdout(),
		Formatter:   &format,
		Logger:      logger,
		Now:         now,
		DateFormats: appConfig.DateFormats,
		TimeFormats: appConfig.TimeFormats,
		QuitWord:    appConfig.QuitWord,
	})
}
