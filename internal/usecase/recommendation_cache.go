package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RecommendationCacheKey addresses one normalized page of one candidate.
func RecommendationCacheKey(candidateID uuid.UUID, page, limit int) string {
	return fmt.Sprintf("recommendations:%s:%d:%d", candidateID, page, limit)
}

type MetricsRecorder interface {
	RecordRecommendation(ctx context.Context, status string, d time.Duration)
}
