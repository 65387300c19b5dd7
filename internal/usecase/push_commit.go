package usecase

import (
	"context"
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
)

// PushCommitUseCase submits one atomic commit onto a branch, guarded by the
// object id the branch is expected to be at.

type PushCommitUseCase struct {
	Repo repository.AzdoRepository
}

// Execute runs the use case.
func (uc *PushCommitUseCase) Execute(
	ctx context.Context,
	project, repoID, sourceRef, expectedObjectID string,
	commit domain.Commit,
) (*domain.Push, error) {
	if len(commit.Changes) == 0 {
		return nil, fmt.Errorf("commit has no file changes")
	}
	if commit.Message == "" {
		return nil, fmt.Errorf("commit message cannot be empty")
	}
	update := domain.RefUpdate{Name: sourceRef, OldObjectID: expectedObjectID}
	push, err := uc.Repo.CreatePush(ctx, project, repoID, update, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to push commit to %q: %w", sourceRef, err)
	}
	return push, nil
}
