package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careza/matchengine/internal/types"
)

func TestFilterPostings(t *testing.T) {
	postings := []types.JobPosting{
		{Title: "A", Province: "Gauteng", EmploymentType: "full-time", Salary: "R30000 - R40000"},
		{Title: "B", Province: "Western Cape", EmploymentType: "full-time", Salary: "R30000 - R40000"},
		{Title: "C", Province: "Gauteng", EmploymentType: "contract", Salary: "R30000 - R40000"},
		{Title: "D", Province: "Gauteng", EmploymentType: "full-time", Salary: "R10000 - R15000"},
		{Title: "E"}, // no filterable fields: always passes
	}

	prefs := &types.MatchPreferences{
		Provinces: []string{"gauteng"},
		JobTypes:  []string{"Full-Time"},
		MinSalary: 25000,
	}

	filtered := filterPostings(postings, prefs)
	titles := make([]string, 0, len(filtered))
	for _, p := range filtered {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"A", "E"}, titles)
}

func TestFilterPostings_NilPreferencesPassEverything(t *testing.T) {
	postings := []types.JobPosting{{Title: "A"}, {Title: "B"}}
	assert.Len(t, filterPostings(postings, nil), 2)
}

func TestMatchesSalaryBand_UnparseablePasses(t *testing.T) {
	job := &types.JobPosting{Title: "X", Salary: "market related"}
	assert.True(t, matchesSalaryBand(job, 20000, 50000))
}

func TestFindMatches_RanksByCombinedScore(t *testing.T) {
	e := newTestEngine(t)

	strong := developerJob()
	weak := types.JobPosting{
		Title:       "Mining Shift Supervisor",
		Location:    "Rustenburg",
		Description: "Underground mining operations, blasting blasting certificate, 10 years experience required.",
		Industry:    "mining",
	}

	ranked, err := e.FindMatches(context.Background(), developerCV(), []types.JobPosting{weak, strong}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Senior Backend Developer", ranked[0].Job.Title)
	assert.GreaterOrEqual(t, rankKey(ranked[0].Result), rankKey(ranked[1].Result))
}

func TestFindMatches_Deterministic(t *testing.T) {
	e := newTestEngine(t)

	postings := make([]types.JobPosting, 0, 20)
	for i := 0; i < 20; i++ {
		job := developerJob()
		job.Title = fmt.Sprintf("Developer %d", i)
		job.Description = fmt.Sprintf("%s extra%d", job.Description, i)
		postings = append(postings, job)
	}

	first, err := e.FindMatches(context.Background(), developerCV(), postings, nil)
	require.NoError(t, err)
	second, err := e.FindMatches(context.Background(), developerCV(), postings, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindMatches_StableOrderOnTies(t *testing.T) {
	e := newTestEngine(t)

	first := developerJob()
	first.Company = "Alpha"
	second := developerJob()
	second.Company = "Bravo"

	ranked, err := e.FindMatches(context.Background(), developerCV(), []types.JobPosting{first, second}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Identical postings score identically: input order decides.
	assert.Equal(t, "Alpha", ranked[0].Job.Company)
	assert.Equal(t, "Bravo", ranked[1].Job.Company)
}

func TestFindMatches_SkipsInvalidPostings(t *testing.T) {
	e := newTestEngine(t)

	postings := []types.JobPosting{
		{}, // untitled: skipped, not fatal
		developerJob(),
	}

	ranked, err := e.FindMatches(context.Background(), developerCV(), postings, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Senior Backend Developer", ranked[0].Job.Title)
}

func TestFindMatches_CapsResults(t *testing.T) {
	e := newTestEngine(t)

	postings := make([]types.JobPosting, 0, MaxMatches+10)
	for i := 0; i < MaxMatches+10; i++ {
		job := developerJob()
		job.Title = fmt.Sprintf("Developer %d", i)
		postings = append(postings, job)
	}

	ranked, err := e.FindMatches(context.Background(), developerCV(), postings, nil)
	require.NoError(t, err)
	assert.Len(t, ranked, MaxMatches)
}

func TestFindMatches_CancelledContext(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.FindMatches(ctx, developerCV(), []types.JobPosting{developerJob()}, nil)
	assert.Error(t, err)
}
