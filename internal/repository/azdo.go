package repository

import (
	"context"

	"github.com/azdoops/publishpr/internal/domain"
)

// AzdoRepository is the Azure DevOps Git REST surface the workflow needs.
type AzdoRepository interface {
	// ListProjects returns the projects of the organization.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// ListRepositories returns the Git repositories of a project.
	ListRepositories(ctx context.Context, project string) ([]domain.RepositoryRef, error)
	// GetRepository resolves a repository name or id to its canonical ref.
	GetRepository(ctx context.Context, project, repo string) (*domain.RepositoryRef, error)
	// ListRefs returns the refs whose names start with filter. The remote
	// API matches by prefix; callers needing an exact ref must check the
	// returned names themselves.
	ListRefs(ctx context.Context, project, repoID, filter string) ([]domain.BranchPointer, error)
	// UpdateRef creates or moves one ref under optimistic concurrency.
	UpdateRef(ctx context.Context, project, repoID string, update domain.RefUpdate) error
	// CreatePush submits one commit onto the ref named in update.
	CreatePush(ctx context.Context, project, repoID string, update domain.RefUpdate, commit domain.Commit) (*domain.Push, error)
	// CreatePullRequest opens a PR from sourceRef into targetRef.
	CreatePullRequest(
		ctx context.Context,
		project, repoID, sourceRef, targetRef, title, description string,
	) (*domain.PullRequest, error)
	// GetItem fetches the text content of a file at the tip of a branch.
	GetItem(ctx context.Context, project, repo, path, branch string) (string, error)
}
