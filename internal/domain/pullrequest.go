package domain

// PullRequest is the merge proposal created at the end of a publish run.
type PullRequest struct {
	ID          int    `json:"pullRequestId"`
	URL         string `json:"url"`
	WebURL      string `json:"webUrl,omitempty"`
	SourceRef   string `json:"sourceRefName"`
	TargetRef   string `json:"targetRefName"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
