package handler

import (
	"errors"
	"strconv"
	"strings"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
}

// GetRecommendations serves GET /jobs/recommendations?page=&limit=&skipCache=.
func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, ok := middleware.CandidateID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationQuery{
		Page:      parseQueryInt(c, "page", 1),
		Limit:     parseQueryInt(c, "limit", matching.DefaultLimit),
		SkipCache: parseQueryBool(c, "skipCache", false),
	})
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobRecommendationPage(page))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryBool(c fiber.Ctx, key string, defaultVal bool) bool {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapJobRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
