package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveProjectsFirstJobSuppliesTitle(t *testing.T) {
	t.Parallel()

	jobs := []Job{
		{ID: "a", ProjectID: "p1", ProjectTitle: "Alpha"},
		{ID: "b", ProjectID: "p1"},
		{ID: "c"},
	}

	projects := DeriveProjects(jobs)
	require.Len(t, projects, 1)
	assert.Equal(t, Project{ID: "p1", Title: "Alpha"}, projects[0])
}

func TestDeriveProjectsSynthesizesTitleFromIDTail(t *testing.T) {
	t.Parallel()

	projects := DeriveProjects([]Job{{ID: "a", ProjectID: "proj-92af31cd"}})
	require.Len(t, projects, 1)
	assert.Equal(t, "Project 31cd", projects[0].Title)
}

func TestDeriveProjectsShortIDUsedWhole(t *testing.T) {
	t.Parallel()

	projects := DeriveProjects([]Job{{ID: "a", ProjectID: "p1"}})
	require.Len(t, projects, 1)
	assert.Equal(t, "Project p1", projects[0].Title)
}

func TestDeriveProjectsPreservesEncounterOrder(t *testing.T) {
	t.Parallel()

	jobs := []Job{
		{ID: "a", ProjectID: "p2", ProjectTitle: "Second first"},
		{ID: "b", ProjectID: "p1", ProjectTitle: "First second"},
		{ID: "c", ProjectID: "p2", ProjectTitle: "Ignored"},
	}

	projects := DeriveProjects(jobs)
	require.Len(t, projects, 2)
	assert.Equal(t, "p2", projects[0].ID)
	assert.Equal(t, "Second first", projects[0].Title)
	assert.Equal(t, "p1", projects[1].ID)
}

func TestDeriveProjectsIdempotent(t *testing.T) {
	t.Parallel()

	jobs := []Job{
		{ID: "a", ProjectID: "p1", ProjectTitle: "Alpha"},
		{ID: "b", ProjectID: "p2"},
	}

	first := DeriveProjects(jobs)
	second := DeriveProjects(jobs)
	assert.Equal(t, first, second)
}

func TestDeriveProjectsEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DeriveProjects(nil))
	assert.Empty(t, DeriveProjects([]Job{{ID: "a"}}))
}
