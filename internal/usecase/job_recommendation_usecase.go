package usecase

import (
	"context"
	"errors"
	"time"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/observability"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RecommendationQuery struct {
	Page      int
	Limit     int
	SkipCache bool
}

type RecommendationItem struct {
	Job       job.Posting        `json:"job"`
	Score     float64            `json:"score"`
	Breakdown matching.Breakdown `json:"breakdown"`
}

type RecommendationPage struct {
	Items []RecommendationItem `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, q RecommendationQuery) (RecommendationPage, error)
}

type JobRecommendation struct {
	profiles repository.CandidateProfileRepository
	jobs     repository.JobPostingRepository

	cache    RecommendationCache
	cacheTTL time.Duration
	metrics  MetricsRecorder
	log      *zap.Logger
	workers  int
	now      func() time.Time
}

type Option func(*JobRecommendation)

// WithCache turns on the page cache. A non-positive ttl leaves it off.
func WithCache(c RecommendationCache, ttl time.Duration) Option {
	return func(u *JobRecommendation) {
		if c == nil || ttl <= 0 {
			return
		}
		u.cache = c
		u.cacheTTL = ttl
	}
}

func WithMetrics(m MetricsRecorder) Option {
	return func(u *JobRecommendation) { u.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(u *JobRecommendation) {
		if l != nil {
			u.log = l
		}
	}
}

// WithWorkers bounds the scoring goroutines. Zero means one per CPU.
func WithWorkers(n int) Option {
	return func(u *JobRecommendation) { u.workers = n }
}

func WithClock(now func() time.Time) Option {
	return func(u *JobRecommendation) {
		if now != nil {
			u.now = now
		}
	}
}

func NewJobRecommendationUsecase(profiles repository.CandidateProfileRepository, jobs repository.JobPostingRepository, opts ...Option) *JobRecommendation {
	u := &JobRecommendation{
		profiles: profiles,
		jobs:     jobs,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.log = u.log.With(zap.String("component", "recommendation"))
	return u
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, q RecommendationQuery) (out RecommendationPage, err error) {
	if candidateID == uuid.Nil {
		return RecommendationPage{}, ErrUnauthorized
	}

	started := u.now()
	status := observability.StatusOK
	defer func() {
		switch {
		case errors.Is(err, ErrCandidateNotFound):
			status = observability.StatusNotFound
		case err != nil:
			status = observability.StatusError
		}
		if u.metrics != nil {
			u.metrics.RecordRecommendation(ctx, status, u.now().Sub(started))
		}
	}()

	page, limit := matching.NormalizePaging(q.Page, q.Limit)
	key := RecommendationCacheKey(candidateID, page, limit)

	if !q.SkipCache && u.cache != nil {
		var cached RecommendationPage
		hit, cerr := u.cache.GetJSON(ctx, key, &cached)
		if cerr != nil {
			u.log.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(cerr))
		}
		if hit {
			valid, verr := u.cachedPageValid(ctx, candidateID, cached)
			if verr != nil {
				u.log.Warn("recommendation cache check failed", zap.String("key", key), zap.Error(verr))
			}
			if valid {
				status = observability.StatusCached
				return cached, nil
			}
		}
	}

	profile, jobs, err := u.load(ctx, candidateID)
	if err != nil {
		return RecommendationPage{}, err
	}

	res, err := matching.Recommend(ctx, matching.NewCandidate(profile), jobs, page, limit, u.workers)
	if err != nil {
		return RecommendationPage{}, err
	}

	out = RecommendationPage{
		Items: make([]RecommendationItem, 0, len(res.Items)),
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, RecommendationItem{Job: it.Job, Score: it.Score, Breakdown: it.Breakdown})
	}

	u.log.Debug("recommendations computed",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("pool", len(jobs)),
		zap.Int("total", out.Total),
		zap.Int("page", out.Page),
		zap.Int("limit", out.Limit),
	)

	if u.cache != nil {
		if cerr := u.cache.SetJSON(ctx, key, out, u.cacheTTL); cerr != nil {
			u.log.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(cerr))
		}
	}
	return out, nil
}

// load fetches the profile and the eligible pool concurrently. The first
// failure cancels the other load.
func (u *JobRecommendation) load(ctx context.Context, candidateID uuid.UUID) (profileOut candidate.Profile, jobsOut []job.Posting, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := u.profiles.FindCandidateProfile(gctx, candidateID)
		if err != nil {
			if errors.Is(err, repository.ErrCandidateProfileNotFound) {
				return ErrCandidateNotFound
			}
			return err
		}
		profileOut = p
		return nil
	})

	g.Go(func() error {
		jobs, err := u.jobs.FindEligibleJobs(gctx, u.eligibleFilter(candidateID))
		if err != nil {
			return err
		}
		jobsOut = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		return candidate.Profile{}, nil, err
	}
	return profileOut, jobsOut, nil
}

// cachedPageValid reports whether every job on a cached page is still open
// to the candidate. A page holding a job that closed or that the candidate
// applied to since it was cached must be recomputed.
func (u *JobRecommendation) cachedPageValid(ctx context.Context, candidateID uuid.UUID, p RecommendationPage) (bool, error) {
	now := u.now()
	ids := make([]uuid.UUID, 0, len(p.Items))
	for _, it := range p.Items {
		if !it.Job.AcceptsApplicationsAt(now) {
			return false, nil
		}
		ids = append(ids, it.Job.ID)
	}
	if len(ids) == 0 {
		return true, nil
	}

	open, err := u.jobs.FilterEligibleJobIDs(ctx, u.eligibleFilter(candidateID), ids)
	if err != nil {
		return false, err
	}
	return len(open) == len(ids), nil
}

func (u *JobRecommendation) eligibleFilter(candidateID uuid.UUID) repository.EligibleJobFilter {
	return repository.EligibleJobFilter{
		Status:             job.StatusPublished,
		Now:                u.now(),
		ExcludeApplicantID: candidateID,
	}
}
