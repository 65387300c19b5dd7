package usecase

import (
	"context"
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
)

// PublishBranchUseCase ensures a branch exists and points at a given base
// commit, with create-or-reset semantics: an existing branch is realigned to
// the base tip, a missing one is created from it. Repeated runs against the
// same base are therefore deterministic.

type PublishBranchUseCase struct {
	Repo repository.AzdoRepository
}

// Execute publishes sourceRef at baseObjectID. The old-object-id guard makes
// the server reject the update when another writer moved the branch between
// resolution and update; that surfaces as ConcurrencyConflictError.
func (uc *PublishBranchUseCase) Execute(ctx context.Context, project, repoID, sourceRef, baseObjectID string) error {
	resolver := &ResolveRefUseCase{Repo: uc.Repo}
	lookup, err := resolver.Execute(ctx, project, repoID, sourceRef)
	if err != nil {
		return fmt.Errorf("failed to check branch %q: %w", sourceRef, err)
	}

	oldObjectID := domain.ZeroObjectID
	if lookup.Found() {
		oldObjectID = lookup.ObjectID()
	}
	update := domain.RefUpdate{
		Name:        sourceRef,
		OldObjectID: oldObjectID,
		NewObjectID: baseObjectID,
	}
	if err := uc.Repo.UpdateRef(ctx, project, repoID, update); err != nil {
		return fmt.Errorf("failed to publish branch %q: %w", sourceRef, err)
	}
	return nil
}
