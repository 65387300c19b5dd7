package domain

import "strings"

// ZeroObjectID is the sentinel the refs API expects as oldObjectId when the
// ref did not previously exist. It is an Azure DevOps wire convention.
const ZeroObjectID = "0000000000000000000000000000000000000000"

const branchRefPrefix = "refs/heads/"

// BranchRefName returns the fully qualified ref name for a branch. Names
// that are already qualified are returned unchanged.
func BranchRefName(branch string) string {
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return branchRefPrefix + branch
}

// ShortBranchName strips the refs/heads/ prefix from a qualified ref name.
func ShortBranchName(refName string) string {
	return strings.TrimPrefix(refName, branchRefPrefix)
}

// BranchPointer is a snapshot of a branch tip at the time it was read.
// Object ids are opaque strings compared only for exact equality.
type BranchPointer struct {
	RefName  string `json:"name"`
	ObjectID string `json:"objectId"`
}

// RefLookup is the two-case outcome of resolving a ref name: the ref either
// exists with a concrete tip, or it does not. Callers branch on Found
// instead of inspecting errors.
type RefLookup struct {
	found    bool
	objectID string
}

// FoundRef builds the outcome for a ref that resolved to objectID.
func FoundRef(objectID string) RefLookup {
	return RefLookup{found: true, objectID: objectID}
}

// NotFoundRef builds the outcome for a ref that does not exist.
func NotFoundRef() RefLookup {
	return RefLookup{}
}

// Found reports whether the ref exists.
func (l RefLookup) Found() bool { return l.found }

// ObjectID returns the resolved tip, or the empty string when not found.
func (l RefLookup) ObjectID() string { return l.objectID }

// RefUpdate pairs a fully qualified ref name with the tip the caller last
// observed and the tip the ref should point at afterwards. The server
// rejects the update when OldObjectID no longer matches its current value.
type RefUpdate struct {
	Name        string `json:"name"`
	OldObjectID string `json:"oldObjectId"`
	NewObjectID string `json:"newObjectId,omitempty"`
}
