package main

import (
	"encoding/json"
	"fmt"

	"jobmatch/internal/app"
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	recommendCandidate string
	recommendPage      int
	recommendLimit     int
	recommendSkipCache bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print one page of recommendations for a candidate as JSON",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendCandidate, "candidate", "", "Candidate profile id (required)")
	recommendCmd.Flags().IntVar(&recommendPage, "page", 1, "Page number, starting at 1")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 20, "Page size, clamped to [1, 100]")
	recommendCmd.Flags().BoolVar(&recommendSkipCache, "skip-cache", false, "Bypass the page cache")

	if err := recommendCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	candidateID, err := uuid.Parse(recommendCandidate)
	if err != nil {
		return fmt.Errorf("invalid --candidate: %w", err)
	}

	c, err := app.NewContainer(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	page, err := c.Recommendations.GetRecommendations(cmd.Context(), candidateID, usecase.RecommendationQuery{
		Page:      recommendPage,
		Limit:     recommendLimit,
		SkipCache: recommendSkipCache,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewJobRecommendationPage(page))
}
