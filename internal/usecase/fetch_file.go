package usecase

import (
	"context"
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
)

// FetchFileUseCase reads a file from a repository at the tip of a branch.

type FetchFileUseCase struct {
	Repo repository.AzdoRepository
}

// Execute runs the use case. branch may be a short name or fully qualified.
func (uc *FetchFileUseCase) Execute(ctx context.Context, project, repo, path, branch string) (string, error) {
	content, err := uc.Repo.GetItem(ctx, project, repo, path, domain.BranchRefName(branch))
	if err != nil {
		return "", fmt.Errorf("failed to fetch %q at %q: %w", path, branch, err)
	}
	return content, nil
}
