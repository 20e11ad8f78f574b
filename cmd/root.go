package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"countdown_tui/internal"
	"countdown_tui/internal/config"
	"countdown_tui/internal/history"
	"countdown_tui/internal/timer"
)

var (
	configPath string
	duration   time.Duration
	dbPath     string
	logFile    string
	noAutoStop bool
	noBell     bool
	writeCfg   bool
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "A terminal countdown timer",
	Long: `Countdown is a single-screen countdown timer for the terminal.

Pick a duration, start it, pause and resume it, or stop it. Finished and
stopped sessions are kept in a local history.

Examples:
  countdown                        # Start with the configured default duration
  countdown --duration 25m         # Preset the picker to 25 minutes
  countdown --no-auto-stop         # Hold at zero instead of ending the session
  countdown -d 25m --write-config  # Save 25 minutes as the default`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default $HOME/.countdown_tui/config.yaml)")
	rootCmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Initial picker duration, e.g. 90s or 1h15m")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "History database path")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&noAutoStop, "no-auto-stop", false, "Keep the session at zero instead of ending it")
	rootCmd.Flags().BoolVar(&noBell, "no-bell", false, "Do not ring the terminal bell when a session finishes")
	rootCmd.Flags().BoolVar(&writeCfg, "write-config", false, "Write the effective configuration to the config file and exit")
	rootCmd.SilenceErrors = true
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.DefaultDuration = duration
	}
	if flags.Changed("db") {
		cfg.History.Path = dbPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if noAutoStop {
		cfg.AutoStop = false
	}
	if noBell {
		cfg.Bell = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if writeCfg {
		return saveConfig(cmd, cfg)
	}

	logger, logCloser, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	repo, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = repo.Close() }()

	var p *tea.Program
	ticker := timer.New(internal.Dispatcher(func(msg tea.Msg) { p.Send(msg) }))

	opts := internal.Options{
		Ticker:          ticker,
		Store:           repo,
		Logger:          logger,
		DefaultDuration: cfg.DefaultDuration,
		AutoStop:        cfg.AutoStop,
		HistoryLimit:    cfg.History.Limit,
	}
	if cfg.Bell {
		opts.Bell = os.Stderr
	}

	m, err := internal.NewModel(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p = tea.NewProgram(m, tea.WithAltScreen())

	logger.Info("starting", "history", cfg.History.Path, "auto_stop", cfg.AutoStop)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func saveConfig(cmd *cobra.Command, cfg *config.Config) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
