package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskboard.com/taskboard/internal/configs"
	"taskboard.com/taskboard/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "taskboard",
	Short:         "Task board web UI",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads .env, the optional config file and the environment, and
// sets up the default logger from the result.
func loadConfig() config.Config {
	envErr := godotenv.Load()

	cfg := config.Load(configPath)
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
}
