package main

import (
	"jobmatch/internal/app"
	"jobmatch/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starter skill catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := app.NewContainer(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer c.Close()

		return seeder.Runner{
			Seeders: seeder.Defaults(),
			Log:     log.With(zap.String("component", "seeder")),
		}.Run(cmd.Context(), c.DB)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
