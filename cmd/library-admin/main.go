package main

import (
	stdLog "log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-admin/admin/app"
	"github.com/Astemirdum/library-admin/admin/config"
)

var (
	debug       bool
	noScheduler bool
)

var rootCmd = &cobra.Command{
	Use:   "library-admin",
	Short: "University library administration backend",
	PersistentPreRun: func(*cobra.Command, []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			stdLog.Fatal("load envs from .env ", err)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, websocket hub and daily scheduler",
	Run: func(cmd *cobra.Command, _ []string) {
		app.Run(loadConfig())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Migrate(cmd.Context(), loadConfig())
	},
}

var penaltiesCmd = &cobra.Command{
	Use:   "penalties",
	Short: "Penalty maintenance passes",
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Create or update penalties for every overdue loan",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.SweepPenalties(cmd.Context(), loadConfig(), false, cmd.OutOrStdout())
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Drop on-time and duplicate unpaid penalties",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.SweepPenalties(cmd.Context(), loadConfig(), true, cmd.OutOrStdout())
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send due-date reminders and overdue notices now",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Remind(cmd.Context(), loadConfig(), cmd.OutOrStdout())
	},
}

func loadConfig() *config.Config {
	var opts []config.Option
	if debug {
		opts = append(opts, config.WithLogLevel(zapcore.DebugLevel))
	}
	if noScheduler {
		opts = append(opts, config.WithoutScheduler())
	}
	return config.NewConfig(opts...)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug log level")
	serveCmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "do not run the daily reminder pass")

	penaltiesCmd.AddCommand(sweepCmd, cleanupCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, penaltiesCmd, remindCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
