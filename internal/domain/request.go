package domain

import "strings"

const (
	maxTitleLength = 40
	fallbackTitle  = "Untitled animation"
)

// GenerationRequest is the outbound payload for a new generation. Exactly one
// of ProjectID or Title is set: a continuation carries the project id, a
// fresh generation originates a project titled from the prompt.
type GenerationRequest struct {
	Scene           Scene  `json:"scene"`
	ContinueProject bool   `json:"continue_project"`
	ProjectID       string `json:"project_id,omitempty"`
	Title           string `json:"title,omitempty"`
}

// NewGenerationRequest builds the payload for a submission. Continuation is
// only honored when a project is actually selected; otherwise the request
// falls back to originating a new project.
func NewGenerationRequest(scene Scene, continueProject bool, selectedProjectID string) GenerationRequest {
	if continueProject && selectedProjectID != "" {
		return GenerationRequest{
			Scene:           scene,
			ContinueProject: true,
			ProjectID:       selectedProjectID,
		}
	}

	return GenerationRequest{
		Scene: scene,
		Title: titleFromPrompt(scene.Prompt),
	}
}

func titleFromPrompt(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return fallbackTitle
	}

	runes := []rune(trimmed)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength])
	}
	return trimmed
}
