package main

import (
	"jobmatch/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := app.NewContainer(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Migrate(cmd.Context()); err != nil {
			return err
		}
		log.Info("migrations up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
