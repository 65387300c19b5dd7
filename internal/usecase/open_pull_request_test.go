package usecase

import (
	"context"
	"testing"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenPullRequestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Should open the PR and return id and url", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		repo.On("CreatePullRequest", mock.Anything, "acme", "repo-1",
			"refs/heads/work", "refs/heads/main", "Update config", "desc").
			Return(&domain.PullRequest{ID: 7, URL: "https://example/pr/7"}, nil).
			Once()

		uc := &OpenPullRequestUseCase{Repo: repo}
		pr, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work", "refs/heads/main", "Update config", "desc")
		require.NoError(t, err)
		assert.Equal(t, 7, pr.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject identical source and target refs locally", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		uc := &OpenPullRequestUseCase{Repo: repo}
		_, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/main", "refs/heads/main", "t", "")
		require.Error(t, err)
		repo.AssertNotCalled(t, "CreatePullRequest")
	})

	t.Run("Should reject an empty title locally", func(t *testing.T) {
		repo := new(mockAzdoRepository)
		uc := &OpenPullRequestUseCase{Repo: repo}
		_, err := uc.Execute(ctx, "acme", "repo-1", "refs/heads/work", "refs/heads/main", "", "")
		require.Error(t, err)
		repo.AssertNotCalled(t, "CreatePullRequest")
	})
}
