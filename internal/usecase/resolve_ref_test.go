package usecase

import (
	"context"
	"testing"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveRefUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Should resolve an exact match to its object id", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/main").
			Return([]domain.BranchPointer{{RefName: "refs/heads/main", ObjectID: "aaa111"}}, nil).
			Once()

		uc := &ResolveRefUseCase{Repo: repo}
		lookup, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/main")
		require.NoError(t, err)
		assert.True(t, lookup.Found())
		assert.Equal(t, "aaa111", lookup.ObjectID())
		repo.AssertExpectations(t)
	})

	t.Run("Should report not found when the listing is empty", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/work").
			Return([]domain.BranchPointer{}, nil).
			Once()

		uc := &ResolveRefUseCase{Repo: repo}
		lookup, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work")
		require.NoError(t, err)
		assert.False(t, lookup.Found())
	})

	t.Run("Should not resolve refs that only share the prefix", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/work").
			Return([]domain.BranchPointer{
				{RefName: "refs/heads/work-old", ObjectID: "eee555"},
				{RefName: "refs/heads/workshop", ObjectID: "fff666"},
			}, nil).
			Once()

		uc := &ResolveRefUseCase{Repo: repo}
		lookup, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work")
		require.NoError(t, err)
		assert.False(t, lookup.Found())
	})

	t.Run("Should fail with AmbiguousRefError on duplicate exact matches", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("ListRefs", mock.Anything, "acme", "repo-1", "refs/heads/main").
			Return([]domain.BranchPointer{
				{RefName: "refs/heads/main", ObjectID: "aaa111"},
				{RefName: "refs/heads/main", ObjectID: "bbb222"},
			}, nil).
			Once()

		uc := &ResolveRefUseCase{Repo: repo}
		_, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/main")
		var ambiguous *domain.AmbiguousRefError
		require.ErrorAs(t, err, &ambiguous)
		assert.Len(t, ambiguous.Matches, 2)
	})

	t.Run("Should reject unqualified ref names without a remote call", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		uc := &ResolveRefUseCase{Repo: repo}
		_, err := uc.Execute(ctx, "acme", "repo-1", "main")
		require.Error(t, err)
		repo.AssertNotCalled(t, "ListRefs")
	})
}
