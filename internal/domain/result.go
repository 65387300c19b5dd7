package domain

// PublishResult is the success record of one publish run. It is returned to
// the caller and never persisted.
type PublishResult struct {
	RunID         string        `json:"runId"`
	Repository    RepositoryRef `json:"repository"`
	BaseRef       string        `json:"baseRef"`
	SourceRef     string        `json:"sourceRef"`
	PushID        int           `json:"pushId"`
	NewObjectID   string        `json:"newObjectId"`
	PullRequestID int           `json:"pullRequestId"`
	URL           string        `json:"url"`
	WebURL        string        `json:"webUrl,omitempty"`
}
