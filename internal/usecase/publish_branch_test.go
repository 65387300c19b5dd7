package usecase

import (
	"context"
	"testing"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublishBranchUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a missing branch from the zero object id", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/work").
			Return([]domain.BranchPointer{}, nil).
			Once()
		repo.On("UpdateRef", mock.Anything, "acme", "repo-1", domain.RefUpdate{
			Name:        "refs/heads/work",
			OldObjectID: domain.ZeroObjectID,
			NewObjectID: "aaa111",
		}).Return(nil).Once()

		uc := &PublishBranchUseCase{Repo: repo}
		err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work", "aaa111")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reset an existing branch from its current tip", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/work").
			Return([]domain.BranchPointer{{RefName: "refs/heads/work", ObjectID: "ccc333"}}, nil).
			Once()
		repo.On("UpdateRef", mock.Anything, "acme", "repo-1", domain.RefUpdate{
			Name:        "refs/heads/work",
			OldObjectID: "ccc333",
			NewObjectID: "bbb222",
		}).Return(nil).Once()

		uc := &PublishBranchUseCase{Repo: repo}
		err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work", "bbb222")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should pass a concurrency conflict through unchanged", func(t *testing.T) {
		conflict := &domain.ConcurrencyConflictError{
			RefName:          "refs/heads/work",
			ExpectedObjectID: "ccc333",
		}
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/work").
			Return([]domain.BranchPointer{{RefName: "refs/heads/work", ObjectID: "ccc333"}}, nil).
			Once()
		repo.On("UpdateRef", mock.Anything, "acme", "repo-1", mock.Anything).
			Return(conflict).
			Once()

		uc := &PublishBranchUseCase{Repo: repo}
		err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work", "bbb222")
		var got *domain.ConcurrencyConflictError
		require.ErrorAs(t, err, &got)
		require.Equal(t, "ccc333", got.ExpectedObjectID)
	})
}
