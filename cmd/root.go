package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avikram/pathwise/internal/app"
	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/config"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/logging"
	"github.com/avikram/pathwise/internal/notify"
	"github.com/avikram/pathwise/internal/remote"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Timed mock interviews in your terminal",
	Long:  "Pathwise — terminal mock-interview practice with timed questions, scoring, readiness reports and a spaced practice plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB)")
	rootCmd.PersistentFlags().String("api-url", "", "Progress API base URL (overrides PATHWISE_API_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the progress API (overrides PATHWISE_TOKEN)")
	rootCmd.PersistentFlags().String("log", "", "Path to the log file (overrides PATHWISE_LOG)")
	rootCmd.PersistentFlags().Bool("coach", false, "Enable AI coach review after sessions")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// startFunc builds the screen pushed on top of home at launch.
type startFunc func(*gateway.Gateway, *coach.Service) screen.Screen

// runApp wires every service and hands control to the TUI. The store
// and the coach are optional: the app degrades rather than refusing to
// start when the database or a provider key is unavailable.
func runApp(cmd *cobra.Command, start startFunc) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	log, err := logging.Open(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Local history unavailable:", err)
		log.Warn("store unavailable", zap.Error(err))
		st = nil
	} else {
		defer func() { _ = st.Close() }()
	}

	bus := notify.NewBus()
	rc := remote.NewClient(cfg.APIBaseURL, cfg.Token)
	gw := gateway.New(rc, st, bus, log)

	deps := app.Deps{
		Store:   st,
		Gateway: gw,
		Bus:     bus,
		Log:     log,
	}
	if cfg.Coach {
		deps.Coach = buildCoach(cmd, log)
	}
	if start != nil {
		deps.Start = start(gw, deps.Coach)
	}

	return app.Run(deps)
}

// openStore resolves the database path and opens the local store.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}

// buildCoach discovers a provider from the environment. Returns nil
// when no key is configured; the results screen hides the coach
// section then.
func buildCoach(cmd *cobra.Command, log *zap.Logger) *coach.Service {
	coachCfg, ok := coach.DiscoverConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "Coach enabled but no provider key found.")
		fmt.Fprintln(os.Stderr, "Set PATHWISE_ANTHROPIC_API_KEY (or the OpenAI/Gemini/OpenRouter equivalent).")
		return nil
	}

	provider, err := coach.NewProvider(cmd.Context(), coachCfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach unavailable:", err)
		log.Warn("coach provider init failed", zap.Error(err))
		return nil
	}
	return coach.NewService(provider, coach.DefaultReviewConfig())
}
