package orchestrator

import (
	"context"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for repository.AzdoRepository - implements ALL methods of the interface
type mockAzdoRepository struct{ mock.Mock }

func (m *mockAzdoRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) ListRepositories(ctx context.Context, project string) ([]domain.RepositoryRef, error) {
	args := m.Called(ctx, project)
	if v := args.Get(0); v != nil {
		return v.([]domain.RepositoryRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) GetRepository(ctx context.Context, project, repo string) (*domain.RepositoryRef, error) {
	args := m.Called(ctx, project, repo)
	if v := args.Get(0); v != nil {
		return v.(*domain.RepositoryRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) ListRefs(
	ctx context.Context,
	project, repoID, filter string,
) ([]domain.BranchPointer, error) {
	args := m.Called(ctx, project, repoID, filter)
	if v := args.Get(0); v != nil {
		return v.([]domain.BranchPointer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) UpdateRef(ctx context.Context, project, repoID string, update domain.RefUpdate) error {
	args := m.Called(ctx, project, repoID, update)
	return args.Error(0)
}

func (m *mockAzdoRepository) CreatePush(
	ctx context.Context,
	project, repoID string,
	update domain.RefUpdate,
	commit domain.Commit,
) (*domain.Push, error) {
	args := m.Called(ctx, project, repoID, update, commit)
	if v := args.Get(0); v != nil {
		return v.(*domain.Push), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) CreatePullRequest(
	ctx context.Context,
	project, repoID, sourceRef, targetRef, title, description string,
) (*domain.PullRequest, error) {
	args := m.Called(ctx, project, repoID, sourceRef, targetRef, title, description)
	if v := args.Get(0); v != nil {
		return v.(*domain.PullRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAzdoRepository) GetItem(ctx context.Context, project, repo, path, branch string) (string, error) {
	args := m.Called(ctx, project, repo, path, branch)
	return args.String(0), args.Error(1)
}
