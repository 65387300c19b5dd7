package usecase

import (
	"context"
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
)

// OpenPullRequestUseCase creates the merge proposal from the working branch
// into the base branch.

type OpenPullRequestUseCase struct {
	Repo repository.AzdoRepository
}

// Execute runs the use case. A PR from a branch onto itself is rejected
// locally; any remote rejection (duplicate PR, policy) surfaces verbatim.
func (uc *OpenPullRequestUseCase) Execute(
	ctx context.Context,
	project, repoID, sourceRef, targetRef, title, description string,
) (*domain.PullRequest, error) {
	if sourceRef == targetRef {
		return nil, fmt.Errorf("source ref %q must differ from target ref", sourceRef)
	}
	if title == "" {
		return nil, fmt.Errorf("pull request title cannot be empty")
	}
	pr, err := uc.Repo.CreatePullRequest(ctx, project, repoID, sourceRef, targetRef, title, description)
	if err != nil {
		return nil, fmt.Errorf("failed to open pull request: %w", err)
	}
	return pr, nil
}
