package domain

// Project is an Azure DevOps project as returned by the projects listing.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// RepositoryRef identifies a Git repository within a project. ID is the
// canonical identifier all subsequent API calls are keyed on; it is resolved
// once per workflow run and never re-derived from the name mid-run.
type RepositoryRef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DefaultBranch string `json:"defaultBranch,omitempty"`
	WebURL        string `json:"webUrl,omitempty"`
	RemoteURL     string `json:"remoteUrl,omitempty"`
}
