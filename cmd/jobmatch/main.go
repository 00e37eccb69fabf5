package main

import (
	"fmt"
	"os"

	"jobmatch/internal/config"
	"jobmatch/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "jobmatch",
	Short:         "Job recommendation service",
	Long:          "jobmatch scores open job postings against a candidate profile and serves ranked, paginated recommendations.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err = logger.New(cfg.Log.Level, cfg.Log.JSON)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Optional config file (yaml, json or toml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
