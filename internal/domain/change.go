package domain

// ChangeType describes how a file change applies to the repository tree.
type ChangeType string

const (
	ChangeTypeAdd  ChangeType = "add"
	ChangeTypeEdit ChangeType = "edit"
)

// FileChange is one caller-supplied file modification. Content is treated
// as opaque text by the workflow.
type FileChange struct {
	Path    string
	Content string
	Type    ChangeType
}

// Commit is one atomic set of file changes with its message. The publish
// workflow submits exactly one commit per run, but the model carries many
// changes.
type Commit struct {
	Message string
	Changes []FileChange
}

// Push is the result of a completed push call: the server-assigned push id
// and the object id the branch tip advanced to.
type Push struct {
	ID          int    `json:"pushId"`
	NewObjectID string `json:"newObjectId"`
}
