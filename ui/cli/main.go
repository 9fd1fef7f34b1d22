// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its flags and the shared startup path
// (config, logging, i18n, store) every subcommand goes through.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/senachat/sena/internal/config"
	"github.com/senachat/sena/internal/db"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var debugFlag bool

var appConfig config.Config

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in the file fall back to the defaults.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("ignoring log level %q: %v", appConfig.Log.Level, err)
	}
	if debugFlag {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// openStore opens the configured database. Callers close it.
func openStore(ctx context.Context) (db.Store, error) {
	store, err := db.New(ctx, appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s database: %w", appConfig.Database.Type, err)
	}
	return store, nil
}

// defaultPreferences are used until the user changes anything.
func defaultPreferences() model.Preferences {
	return model.Preferences{
		DarkMode: appConfig.DarkMode,
		Language: appConfig.Language,
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("sena needs an interactive terminal; see 'sena --help' for other commands")
	}

	// keep log output off the screen while the TUI owns it
	closeLog, err := logging.ToFile(appConfig.Log.File)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer func() { _ = closeLog() }()

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return tui.Run(cmd.Context(), store, defaultPreferences())
}

// NewRootCmd creates and configures a new root cobra command. Each call
// returns an independent tree so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sena",
		Short: "Sena is an accessible terminal chat companion.",
		Long: `Sena is a chat companion for the terminal with a settings menu for
voice, theme and accessibility options.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runTUI,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	defaults := config.Defaults()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug logging (including database statements)")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `UI language ("en", "pt-BR", "de")`)
	cmd.PersistentFlags().Bool("dark-mode", false, "Start in dark mode until changed in the menu")
	cmd.PersistentFlags().String("database.type", defaults["database.type"].(string), "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", defaults["database.dsn"].(string), "Database connection string (DSN)")
	cmd.PersistentFlags().String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", defaults["log.file"].(string), "Log file used while the TUI runs")

	cmd.AddCommand(
		newHistoryCmd(),
		newPrefsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// no config or store needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// some build paths only record our module as a dependency
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/senachat/sena" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
