package cmd

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	config "taskboard.com/taskboard/internal/configs"
	repository "taskboard.com/taskboard/internal/repositories"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored browser sessions",
}

var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired sessions from the sqlite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.SessionStore != config.SessionStoreSQLite {
			return errors.New("sessions prune only applies to the sqlite store; redis expires keys itself")
		}

		db, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		removed, err := repository.NewSessionRepository(db).PurgeExpired(cmd.Context())
		if err != nil {
			return err
		}

		log.Info("expired sessions removed", "count", removed)
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsPruneCmd)
	rootCmd.AddCommand(sessionsCmd)
}
