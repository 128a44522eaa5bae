package ranking

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/careza/matchengine/internal/parsing"
	"github.com/careza/matchengine/internal/types"
)

// MaxMatches caps the ranked result list.
const MaxMatches = 50

// maxWorkers bounds the scoring pool; scoring is CPU-bound and short, so a
// small fixed pool is enough.
const maxWorkers = 8

// FindMatches filters postings by the caller's preferences, scores each
// surviving posting concurrently, and returns the ranked list. Postings that
// fail structural validation are skipped, not fatal. Results are ordered by
// overall score plus predicted success, descending, with input order as the
// tiebreak, capped at MaxMatches.
func (e *Engine) FindMatches(ctx context.Context, cv *types.CVProfile, postings []types.JobPosting, prefs *types.MatchPreferences) ([]types.JobMatch, error) {
	filtered := filterPostings(postings, prefs)

	// Indexed slots keep the output deterministic regardless of which
	// worker finishes first.
	results := make([]*types.MatchResult, len(filtered))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for i := range filtered {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.AnalyzeJobMatch(cv, &filtered[i])
			if err != nil {
				// Invalid posting in a batch: skip it, score the rest.
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]types.JobMatch, 0, len(filtered))
	for i, result := range results {
		if result == nil {
			continue
		}
		ranked = append(ranked, types.JobMatch{Job: filtered[i], Result: *result})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankKey(ranked[i].Result) > rankKey(ranked[j].Result)
	})

	if len(ranked) > MaxMatches {
		ranked = ranked[:MaxMatches]
	}
	return ranked, nil
}

func rankKey(r types.MatchResult) int {
	return r.OverallScore + r.PredictedApplicationSuccess
}

// filterPostings applies the preference filters: province exact, employment
// type exact, salary-range overlap. Nil preferences pass everything, and a
// posting missing the filtered field is kept rather than rejected.
func filterPostings(postings []types.JobPosting, prefs *types.MatchPreferences) []types.JobPosting {
	if prefs == nil {
		return postings
	}

	out := make([]types.JobPosting, 0, len(postings))
	for _, job := range postings {
		if !matchesProvince(&job, prefs.Provinces) {
			continue
		}
		if !matchesJobType(&job, prefs.JobTypes) {
			continue
		}
		if !matchesSalaryBand(&job, prefs.MinSalary, prefs.MaxSalary) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesProvince(job *types.JobPosting, provinces []string) bool {
	if len(provinces) == 0 || job.Province == "" {
		return true
	}
	for _, p := range provinces {
		if strings.EqualFold(p, job.Province) {
			return true
		}
	}
	return false
}

func matchesJobType(job *types.JobPosting, jobTypes []string) bool {
	if len(jobTypes) == 0 || job.EmploymentType == "" {
		return true
	}
	for _, t := range jobTypes {
		if strings.EqualFold(t, job.EmploymentType) {
			return true
		}
	}
	return false
}

// matchesSalaryBand keeps postings whose advertised range overlaps the
// preferred band. Unparseable posting salaries pass the filter.
func matchesSalaryBand(job *types.JobPosting, min, max int) bool {
	if min <= 0 && max <= 0 {
		return true
	}
	rng, ok := parsing.ParseSalaryRange(job.Salary)
	if !ok {
		return true
	}
	if min > 0 && rng.Max < min {
		return false
	}
	if max > 0 && rng.Min > max {
		return false
	}
	return true
}
