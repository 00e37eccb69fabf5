package matching

import (
	"context"
	"runtime"
	"sort"

	"jobmatch/internal/domain/job"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// parallelThreshold is the pool size below which fanning out costs more
	// than it saves.
	parallelThreshold = 256
)

type Page struct {
	Items []ScoredJob
	Total int
	Page  int
	Limit int
}

// NormalizePaging applies the paging defaults: page < 1 becomes 1, a zero
// limit becomes DefaultLimit, and the limit is clamped into [1, MaxLimit].
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return page, clampInt(limit, 1, MaxLimit)
}

// ScoreAll scores every posting. With workers > 1 and a large enough pool
// the work is split across goroutines; each result is written to its own
// index so the output order always equals the input order.
func ScoreAll(ctx context.Context, c Candidate, jobs []job.Posting, workers int) ([]ScoredJob, error) {
	out := make([]ScoredJob, len(jobs))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || len(jobs) < parallelThreshold {
		for i := range jobs {
			out[i] = Score(c, jobs[i])
		}
		return out, nil
	}

	chunk := (len(jobs) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(jobs); start += chunk {
		start := start
		end := start + chunk
		if end > len(jobs) {
			end = len(jobs)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = Score(c, jobs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Rank orders by score descending, keeping the incoming order for equal
// scores, and drops every zero score.
func Rank(scored []ScoredJob) []ScoredJob {
	ranked := make([]ScoredJob, 0, len(scored))
	for _, s := range scored {
		if s.Score <= 0 {
			continue
		}
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Paginate slices a ranked list. Out-of-range pages yield no items but still
// report the full total. page and limit go through NormalizePaging first.
func Paginate(ranked []ScoredJob, page, limit int) Page {
	page, limit = NormalizePaging(page, limit)
	total := len(ranked)
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]ScoredJob, end-start)
	copy(items, ranked[start:end])
	return Page{Items: items, Total: total, Page: page, Limit: limit}
}

// Recommend runs score, rank and paginate for one candidate.
func Recommend(ctx context.Context, c Candidate, jobs []job.Posting, page, limit, workers int) (Page, error) {
	scored, err := ScoreAll(ctx, c, jobs, workers)
	if err != nil {
		return Page{}, err
	}
	return Paginate(Rank(scored), page, limit), nil
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
