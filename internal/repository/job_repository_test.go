package repository

import (
	"testing"
	"time"

	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "rust", "sql"}, ParseSkills("go, rust , sql"))
	assert.Equal(t, []string{"go", "rust"}, ParseSkills("go,rust,go, rust"))
	assert.Empty(t, ParseSkills(""))
	assert.Empty(t, ParseSkills(" , ,"))
}

func TestJobCreateRoundTrip(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))

	job := model.Job{
		Title:           "Backend Engineer",
		Description:     "Build services",
		Location:        "Berlin",
		VisaSponsorship: "Yes",
		Urgency:         model.UrgencyImmediate,
		PostedBy:        "bob",
		Remote:          "Yes",
		SalaryRange:     "90K-110K",
		SkillsCSV:       "go, rust , sql, go",
	}
	id, err := repo.Create(&job)
	require.NoError(t, err)
	require.NotZero(t, id)

	jobs, err := repo.List()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	got := jobs[0]
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, "Build services", got.Description)
	assert.Equal(t, "Berlin", got.Location)
	assert.Equal(t, "Yes", got.VisaSponsorship)
	assert.Equal(t, model.UrgencyImmediate, got.Urgency)
	assert.Equal(t, "bob", got.PostedBy)
	assert.Equal(t, "Yes", got.Remote)
	assert.Equal(t, "90K-110K", got.SalaryRange)

	// deduplicated, trimmed tag set
	names, err := repo.SkillNames(id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "rust", "sql"}, names)

	// idempotent without intervening writes
	again, err := repo.SkillNames(id)
	require.NoError(t, err)
	assert.Equal(t, names, again)
}

func TestJobListNewestFirst(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		job := model.Job{Title: title, PostedBy: "bob", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		_, err := repo.Create(&job)
		require.NoError(t, err)
	}

	jobs, err := repo.List()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "newest", jobs[0].Title)
	assert.Equal(t, "middle", jobs[1].Title)
	assert.Equal(t, "oldest", jobs[2].Title)
}

func TestJobListByPoster(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))

	for _, j := range []model.Job{
		{Title: "a", PostedBy: "bob"},
		{Title: "b", PostedBy: "carol"},
		{Title: "c", PostedBy: "bob"},
	} {
		job := j
		_, err := repo.Create(&job)
		require.NoError(t, err)
	}

	jobs, err := repo.ListByPoster("bob")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, "bob", j.PostedBy)
	}
}

func seedFilterJobs(t *testing.T, repo *JobRepository) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	seed := []model.Job{
		{Title: "Backend Engineer", Location: "Berlin", Remote: "Yes", VisaSponsorship: "Yes", Urgency: model.UrgencyImmediate, PostedBy: "bob", SkillsCSV: "go, sql"},
		{Title: "Frontend Engineer", Location: "New York", Remote: "No", VisaSponsorship: "No", Urgency: model.UrgencyFlexible, PostedBy: "bob", SkillsCSV: "react"},
		{Title: "Data Engineer", Location: "berlin", Remote: "Yes", VisaSponsorship: "No", Urgency: model.UrgencyThirty, PostedBy: "carol", SkillsCSV: "sql, python"},
	}
	for i := range seed {
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := repo.Create(&seed[i])
		require.NoError(t, err)
	}
}

func TestFilterRemote(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))
	seedFilterJobs(t, repo)

	jobs, err := repo.Filter(dto.JobFilter{Remote: "Yes"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, "Yes", j.Remote)
	}
}

func TestFilterEmptyEqualsList(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))
	seedFilterJobs(t, repo)

	listed, err := repo.List()
	require.NoError(t, err)
	filtered, err := repo.Filter(dto.JobFilter{})
	require.NoError(t, err)

	require.Equal(t, len(listed), len(filtered))
	for i := range listed {
		assert.Equal(t, listed[i].ID, filtered[i].ID) // same set, same order
	}
}

func TestFilterSkillExactMatch(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))
	seedFilterJobs(t, repo)

	jobs, err := repo.Filter(dto.JobFilter{Skill: "sql"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	jobs, err = repo.Filter(dto.JobFilter{Skill: "cobol"})
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// "All" is the no-filter sentinel
	jobs, err = repo.Filter(dto.JobFilter{Skill: dto.FilterAll, Remote: "No"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Frontend Engineer", jobs[0].Title)
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))
	seedFilterJobs(t, repo)

	jobs, err := repo.Filter(dto.JobFilter{Skill: "sql", Location: "BERLIN"})
	require.NoError(t, err)
	require.Len(t, jobs, 2) // location substring match is case-insensitive

	jobs, err = repo.Filter(dto.JobFilter{Skill: "sql", Urgency: model.UrgencyThirty})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
}

func TestFilterTitleSubstring(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))
	seedFilterJobs(t, repo)

	jobs, err := repo.Filter(dto.JobFilter{Title: "engineer"})
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	jobs, err = repo.Filter(dto.JobFilter{Title: "backend"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestFilterDeduplicatesMultiTagMatches(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))

	job := model.Job{Title: "Platform Engineer", Location: "Remote", Remote: "Yes", PostedBy: "bob", SkillsCSV: "go, sql, kubernetes"}
	_, err := repo.Create(&job)
	require.NoError(t, err)

	// joins against three tag rows but must come back once
	jobs, err := repo.Filter(dto.JobFilter{Title: "platform"})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestAllSkillNamesSortedAndDeduplicated(t *testing.T) {
	repo := NewJobRepository(openTestDB(t))

	for _, csv := range []string{"go, sql", "sql, react", "go"} {
		job := model.Job{Title: "j", PostedBy: "bob", SkillsCSV: csv}
		_, err := repo.Create(&job)
		require.NoError(t, err)
	}

	names, err := repo.AllSkillNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "react", "sql"}, names)
}
