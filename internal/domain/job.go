package domain

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusDone       JobStatus = "done"
	JobStatusFailed     JobStatus = "failed"
)

// NormalizeJobStatus maps a server status string onto the known set. Unknown
// values are treated as processing so a newer backend never strands a job in
// the UI.
func NormalizeJobStatus(raw string) JobStatus {
	switch JobStatus(raw) {
	case JobStatusQueued, JobStatusProcessing, JobStatusDone, JobStatusFailed:
		return JobStatus(raw)
	default:
		return JobStatusProcessing
	}
}

type Scene struct {
	Prompt          string `json:"prompt"`
	Style           string `json:"style"`
	CameraPreset    string `json:"camera_preset"`
	DurationSeconds int    `json:"duration_seconds"`
	VoiceID         string `json:"voice_id,omitempty"`
}

// Job is the server's record of one generation request. The client only ever
// reads it; status and result fields change as the backend progresses.
type Job struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Scene        Scene     `json:"scene"`
	Status       JobStatus `json:"status"`
	ResultURL    string    `json:"result_url"`
	VoiceURL     string    `json:"voice_url"`
	ProjectTitle string    `json:"project_title"`
}
