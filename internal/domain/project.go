package domain

type Project struct {
	ID    string
	Title string
}

// DeriveProjects scans the job collection and builds the project index. The
// first-encountered job for a given project id supplies the title; jobs
// without a project contribute nothing. The result is a pure, order-preserving
// function of the input and must be recomputed wholesale whenever the job
// collection changes.
func DeriveProjects(jobs []Job) []Project {
	seen := make(map[string]struct{}, len(jobs))
	projects := make([]Project, 0, len(jobs))

	for _, job := range jobs {
		if job.ProjectID == "" {
			continue
		}
		if _, ok := seen[job.ProjectID]; ok {
			continue
		}
		seen[job.ProjectID] = struct{}{}

		title := job.ProjectTitle
		if title == "" {
			title = "Project " + idTail(job.ProjectID, 4)
		}

		projects = append(projects, Project{ID: job.ProjectID, Title: title})
	}

	return projects
}

func idTail(id string, n int) string {
	runes := []rune(id)
	if len(runes) <= n {
		return id
	}
	return string(runes[len(runes)-n:])
}
