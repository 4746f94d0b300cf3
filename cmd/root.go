package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upskill-labs/upskill/internal/app"
	"github.com/upskill-labs/upskill/internal/assessment"
	"github.com/upskill-labs/upskill/internal/config"
	"github.com/upskill-labs/upskill/internal/scoring"
	"github.com/upskill-labs/upskill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "upskill",
	Short: "Timed skill assessments in your terminal",
	Long:  "UpSkill runs timed skill assessments and recommends learning paths from the results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UPSKILL_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UPSKILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// buildGateway picks the scoring backend: the remote client when an API
// endpoint is configured, the embedded scorer otherwise.
func buildGateway(cfg config.Config, catalog *assessment.Catalog) (scoring.Gateway, error) {
	if cfg.UseLocalScorer() {
		return scoring.NewLocalScorer(catalog), nil
	}
	return scoring.NewClient(scoring.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.HTTPTimeout,
	})
}

// runApp opens the store, builds the gateway, and starts the TUI. When
// assessmentID is non-empty the app jumps straight into that exam.
func runApp(cmd *cobra.Command, assessmentID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalog, err := assessment.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gateway, err := buildGateway(cfg, catalog)
	if err != nil {
		return fmt.Errorf("build scoring gateway: %w", err)
	}

	opts := app.Options{
		Catalog:  catalog,
		Gateway:  gateway,
		Attempts: st.AttemptRepo(),
		Results:  st.ResultRepo(),
		Offline:  cfg.UseLocalScorer(),
	}

	if assessmentID != "" {
		def := catalog.Get(assessmentID)
		if def == nil {
			return fmt.Errorf("unknown assessment %q", assessmentID)
		}
		opts.StartDef = def
	}

	return app.Run(opts)
}
