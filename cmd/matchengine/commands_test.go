package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCV = `{
	"personal": {
		"name": "Naledi Khumalo",
		"email": "naledi@example.com",
		"phone": "+27 83 111 2222",
		"location": "Johannesburg"
	},
	"summary": "Backend developer with 6 years of experience across 3 companies building python services, apis and data pipelines, comfortable owning systems end to end and mentoring 2 junior engineers.",
	"experience": [
		{"title": "Developer", "company": "DataCo", "startDate": "2020-02", "endDate": "present", "description": "Python and sql pipelines."}
	],
	"education": [
		{"degree": "BSc Computer Science", "institution": "UJ", "graduationDate": "2019"}
	],
	"skillList": ["python", "sql", "docker", "git", "agile", "api"],
	"projects": [{"name": "ETL toolkit"}]
}`

const testJob = `{
	"title": "Python Developer",
	"company": "TechCo",
	"location": "Johannesburg",
	"province": "Gauteng",
	"description": "python python sql docker and 3 years experience",
	"industry": "technology"
}`

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readEnvelope(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestRunAnalyze(t *testing.T) {
	dir := t.TempDir()
	analyzeCV = writeArtifact(t, dir, "cv.json", testCV)
	analyzeJob = writeArtifact(t, dir, "job.json", testJob)
	analyzeOutput = filepath.Join(dir, "result.json")
	analyzeVerbose = false

	require.NoError(t, runAnalyze(nil, nil))

	out := readEnvelope(t, analyzeOutput)
	assert.NotEmpty(t, out["runId"])
	assert.NotEmpty(t, out["generatedAt"])

	result, ok := out["result"].(map[string]any)
	require.True(t, ok)
	assert.Greater(t, result["overallScore"].(float64), 50.0)
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	dir := t.TempDir()
	analyzeCV = filepath.Join(dir, "absent.json")
	analyzeJob = writeArtifact(t, dir, "job.json", testJob)
	analyzeOutput = filepath.Join(dir, "result.json")

	assert.Error(t, runAnalyze(nil, nil))
}

func TestRunAudit(t *testing.T) {
	dir := t.TempDir()
	auditCV = writeArtifact(t, dir, "cv.json", testCV)
	auditIndustry = ""
	auditOutput = filepath.Join(dir, "ats.json")
	auditVerbose = false

	require.NoError(t, runAudit(nil, nil))

	out := readEnvelope(t, auditOutput)
	audit, ok := out["audit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "technology", audit["industry"])
	assert.Greater(t, audit["overall"].(float64), 0.0)
}

func TestRunMatch(t *testing.T) {
	dir := t.TempDir()
	matchCV = writeArtifact(t, dir, "cv.json", testCV)
	matchJobs = writeArtifact(t, dir, "jobs.json", "["+testJob+"]")
	matchPreferences = ""
	matchOutput = filepath.Join(dir, "matches.json")
	matchConfigPath = ""
	matchMax = 0
	matchVerbose = false

	require.NoError(t, runMatch(nil, nil))

	out := readEnvelope(t, matchOutput)
	matches, ok := out["matches"].([]any)
	require.True(t, ok)
	assert.Len(t, matches, 1)
}

func TestRunMatch_PreferencesFilterOut(t *testing.T) {
	dir := t.TempDir()
	matchCV = writeArtifact(t, dir, "cv.json", testCV)
	matchJobs = writeArtifact(t, dir, "jobs.json", "["+testJob+"]")
	matchPreferences = writeArtifact(t, dir, "prefs.json", `{"provinces": ["Western Cape"]}`)
	matchOutput = filepath.Join(dir, "matches.json")
	matchConfigPath = ""
	matchMax = 0
	matchVerbose = false

	require.NoError(t, runMatch(nil, nil))

	out := readEnvelope(t, matchOutput)
	matches, ok := out["matches"].([]any)
	require.True(t, ok)
	assert.Empty(t, matches)
}

func TestRunMatch_RequiresPaths(t *testing.T) {
	matchCV = ""
	matchJobs = ""
	matchPreferences = ""
	matchOutput = ""
	matchConfigPath = ""

	err := runMatch(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
