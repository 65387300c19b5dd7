package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
)

// ResolveRefUseCase resolves a fully qualified ref name to its current tip.

type ResolveRefUseCase struct {
	Repo repository.AzdoRepository
}

// Execute returns a tagged Found/NotFound outcome. Only an exact name match
// counts: the remote filter matches by prefix, so refs that merely share the
// requested prefix do not resolve the ref. More than one exact match means
// the listing cannot be trusted and fails as AmbiguousRefError.
func (uc *ResolveRefUseCase) Execute(
	ctx context.Context,
	project, repoID, refName string,
) (domain.RefLookup, error) {
	if !strings.HasPrefix(refName, "refs/") {
		return domain.NotFoundRef(), fmt.Errorf("ref name must be fully qualified, got %q", refName)
	}
	refs, err := uc.Repo.ListRefs(ctx, project, repoID, refName)
	if err != nil {
		return domain.NotFoundRef(), fmt.Errorf("failed to resolve ref %q: %w", refName, err)
	}

	var matches []domain.BranchPointer
	for _, ref := range refs {
		if ref.RefName == refName {
			matches = append(matches, ref)
		}
	}
	switch len(matches) {
	case 0:
		return domain.NotFoundRef(), nil
	case 1:
		return domain.FoundRef(matches[0].ObjectID), nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.RefName)
		}
		return domain.NotFoundRef(), &domain.AmbiguousRefError{RefName: refName, Matches: names}
	}
}
