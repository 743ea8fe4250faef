// lmpedit inspects and edits Doom and Heretic LMP demo recordings.
//
// Usage:
//
//	lmpedit info <file(s)>                 - Show the header of recordings
//	lmpedit convert <in> <out> [version]   - Upgrade a 1.0-1.2 recording to 1.4-1.9
//	lmpedit cut <start> <end> <in> <out>   - Remove a range of tics
//	lmpedit chop <tics> <in> <out>         - Remove tics at the end
//	lmpedit wait <tics> <in> <out>         - Append idle tics
//	lmpedit rp <in> <out>                  - Remove pauses
//	lmpedit retarget <file(s)>             - Change version or viewpoint in place
//	lmpedit history                        - Show the edit journal
//	lmpedit variants                       - List supported games
//
// Global flags:
//
//	--variant <id>     - Game variant (default from config: doom)
//	--sec              - Read tic arguments as seconds
//	--config <path>    - Configuration file
//	--db <path>        - Journal database (default: ~/.lmpedit/journal.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--no-journal       - Do not record edits
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/config"
	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/registry"
	"github.com/vovakirdan/lmpedit/internal/storage"

	// Import variants to register them
	_ "github.com/vovakirdan/lmpedit/internal/games/doom"
	_ "github.com/vovakirdan/lmpedit/internal/games/heretic"
)

var (
	// Global flags
	flagVariant   string
	flagSeconds   bool
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagNoJournal bool
)

// env is the state shared by all commands, built before each one runs.
type env struct {
	cfg    config.Config
	units  config.Units
	logger *log.Logger
	store  *storage.Store // nil when the journal is off or unavailable
	editor *editor.Editor
}

var app env

func main() {
	err := rootCmd.Execute()
	if app.store != nil {
		app.store.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "lmpedit",
	Short: "lmpedit - inspect and edit Doom/Heretic LMP recordings",
	Long: `lmpedit reads the header of LMP demo recordings and writes edited
copies of them. The source file is never modified by an edit; in-place
header changes are done by the retarget command only.

35 game tics make one second. With --sec, tic arguments of cut, chop
and wait are read as seconds.

Examples:
  lmpedit info demo1
  lmpedit convert old.lmp new.lmp 1.9
  lmpedit cut 350 700 in.lmp out.lmp
  lmpedit --sec chop 10 in.lmp out.lmp
  lmpedit rp in.lmp out.lmp
  lmpedit retarget "*.lmp" --viewer next`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Game variant (doom, heretic)")
	rootCmd.PersistentFlags().BoolVar(&flagSeconds, "sec", false, "Read tic arguments as seconds")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record edits in the journal")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(cutCmd)
	rootCmd.AddCommand(chopCmd)
	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(rpCmd)
	rootCmd.AddCommand(retargetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(variantsCmd)
}

// setup loads the configuration and builds the shared environment.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return usageError{err}
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return usageError{fmt.Errorf("invalid log level %q", level)}
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  lvl,
		Prefix: "lmpedit",
	})

	variantID := cfg.Variant
	if flagVariant != "" {
		variantID = flagVariant
	}
	variant, err := registry.Lookup(variantID)
	if err != nil {
		return usageError{err}
	}

	units := cfg.Units
	if flagSeconds {
		units = config.UnitsSeconds
	}

	app = env{
		cfg:    cfg,
		units:  units,
		logger: logger,
	}

	if cfg.Journal.Enabled && !flagNoJournal {
		path := cfg.JournalPath()
		if flagDBPath != "" {
			path = flagDBPath
		}
		store, err := storage.Open(path)
		if err != nil {
			// Continue without the journal
			logger.Warn("could not open journal", "path", path, "error", err)
		} else {
			app.store = store
		}
	}

	ecfg := editor.Config{
		Variant: variant,
		Logger:  logger.WithPrefix("editor"),
	}
	if app.store != nil {
		ecfg.Recorder = app.store
	}
	app.editor = editor.New(ecfg)

	logger.Debug("ready", "command", cmd.Name(), "variant", variant.ID(), "units", string(units))
	return nil
}

// usageError marks errors in the command line itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCode maps an error to the process exit status:
// 1 for usage errors, 2 for unreadable or invalid headers, 3 otherwise.
func exitCode(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, editor.ErrSameFile),
		errors.Is(err, editor.ErrNoMatch):
		return 1
	case isHeaderError(err):
		return 2
	default:
		return 3
	}
}
