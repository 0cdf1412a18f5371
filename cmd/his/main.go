package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Killercavin/HealthInfoSystem/internal/his/app"
)

// CLI flags; zero values leave the environment configuration untouched.
var (
	port      int
	dbPath    string
	staticDir string
	logLevel  string
	envFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "his",
		Short: "Health Information System API server",
		Long: `his serves a REST API for health programs, clients and program enrollments,
backed by a single SQLite file, together with a small browser front end.`,
		SilenceUsage: true,
		RunE:         serve,
	}

	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "HTTP server port (or set PORT env var)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (or set HIS_DATABASE_FILE env var)")
	rootCmd.PersistentFlags().StringVar(&staticDir, "static-dir", "", "Serve the front end from this directory (or set HIS_STATIC_DIR env var)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (or set LOG_LEVEL env var)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  serve,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			version, err := app.Migrate(cfg, app.NewLogger(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "his %s\n", app.BuildVersion)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	application, err := app.New(loadConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run()
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig() app.Config {
	var cfg app.Config
	if envFile != "" {
		cfg = app.LoadConfig(envFile)
	} else {
		cfg = app.LoadConfig()
	}

	if port != 0 {
		cfg.Port = port
	}
	if dbPath != "" {
		cfg.DatabaseFile = dbPath
	}
	if staticDir != "" {
		cfg.StaticDir = staticDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg
}
