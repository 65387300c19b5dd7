package orchestrator

import (
	"context"
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/repository"
	"github.com/azdoops/publishpr/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublishRequest carries the already-validated caller input for one run.
type PublishRequest struct {
	Project       string
	Repository    string // name or id
	FilePath      string
	NewContent    string
	ChangeType    domain.ChangeType // defaults to edit
	PRTitle       string
	PRDescription string
	BaseBranch    string // short name, e.g. main
	WorkBranch    string // short name, e.g. update/readme
}

// PublishOrchestrator sequences the branch-publish workflow: resolve
// repository -> resolve base ref -> create-or-reset working branch -> push
// one commit -> open the pull request. Each step's output feeds the next;
// there is no shared mutable state and no step is skipped or retried.
type PublishOrchestrator struct {
	azdoRepo repository.AzdoRepository
	log      *zap.Logger
}

// NewPublishOrchestrator creates a new publish orchestrator.
func NewPublishOrchestrator(azdoRepo repository.AzdoRepository, log *zap.Logger) *PublishOrchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &PublishOrchestrator{azdoRepo: azdoRepo, log: log}
}

// Execute runs the complete publish workflow. The run is all-or-nothing: a
// failing step aborts the run, and already-applied ref updates or pushes are
// left in place (no compensating rollback). The returned error is always a
// *StepError naming the step that failed.
func (o *PublishOrchestrator) Execute(ctx context.Context, req PublishRequest) (*domain.PublishResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	runID := uuid.New().String()
	log := o.log.With(
		zap.String("run_id", runID),
		zap.String("project", req.Project),
		zap.String("repository", req.Repository))

	if err := o.validateRequest(&req); err != nil {
		return nil, &StepError{Step: "validate request", RunID: runID, Repository: req.Repository, Err: err}
	}

	fail := func(step string, pushID int, err error) (*domain.PublishResult, error) {
		log.Error("publish workflow failed", zap.String("step", step), zap.Error(err))
		return nil, &StepError{Step: step, RunID: runID, Repository: req.Repository, PushID: pushID, Err: err}
	}

	// Step 1: resolve the repository once; its id is reused for every
	// following call, never re-derived from the name mid-run.
	repoRef, err := o.azdoRepo.GetRepository(ctx, req.Project, req.Repository)
	if err != nil {
		return fail("resolve repository", 0, err)
	}
	log.Debug("repository resolved", zap.String("repository_id", repoRef.ID))

	baseRef := domain.BranchRefName(req.BaseBranch)
	sourceRef := domain.BranchRefName(req.WorkBranch)

	// Step 2: resolve the base branch tip.
	resolver := &usecase.ResolveRefUseCase{Repo: o.azdoRepo}
	baseLookup, err := resolver.Execute(ctx, req.Project, repoRef.ID, baseRef)
	if err != nil {
		return fail("resolve base ref", 0, err)
	}
	if !baseLookup.Found() {
		return fail("resolve base ref", 0, &domain.RefNotFoundError{RefName: baseRef})
	}
	baseObjectID := baseLookup.ObjectID()
	log.Debug("base ref resolved", zap.String("base_ref", baseRef), zap.String("object_id", baseObjectID))

	// Step 3: create the working branch at the base tip, or reset it there.
	publishBranch := &usecase.PublishBranchUseCase{Repo: o.azdoRepo}
	if err := publishBranch.Execute(ctx, req.Project, repoRef.ID, sourceRef, baseObjectID); err != nil {
		return fail("publish branch", 0, err)
	}

	// Step 4: push the single-file commit. The branch was just set to the
	// base tip, so that is the expected prior object id.
	commit := domain.Commit{
		Message: req.PRTitle,
		Changes: []domain.FileChange{{
			Path:    NormalizeFilePath(req.FilePath),
			Content: req.NewContent,
			Type:    req.ChangeType,
		}},
	}
	pushCommit := &usecase.PushCommitUseCase{Repo: o.azdoRepo}
	push, err := pushCommit.Execute(ctx, req.Project, repoRef.ID, sourceRef, baseObjectID, commit)
	if err != nil {
		return fail("push commit", 0, err)
	}
	log.Debug("commit pushed", zap.Int("push_id", push.ID), zap.String("new_object_id", push.NewObjectID))

	// Step 5: open the pull request. The push is already applied at this
	// point; its id travels with any failure here.
	openPR := &usecase.OpenPullRequestUseCase{Repo: o.azdoRepo}
	pr, err := openPR.Execute(ctx, req.Project, repoRef.ID, sourceRef, baseRef, req.PRTitle, req.PRDescription)
	if err != nil {
		return fail("open pull request", push.ID, err)
	}

	log.Info("publish workflow completed",
		zap.Int("push_id", push.ID),
		zap.Int("pull_request_id", pr.ID))

	return &domain.PublishResult{
		RunID:         runID,
		Repository:    *repoRef,
		BaseRef:       baseRef,
		SourceRef:     sourceRef,
		PushID:        push.ID,
		NewObjectID:   push.NewObjectID,
		PullRequestID: pr.ID,
		URL:           pr.URL,
		WebURL:        pr.WebURL,
	}, nil
}

func (o *PublishOrchestrator) validateRequest(req *PublishRequest) error {
	if req.Project == "" {
		return fmt.Errorf("project cannot be empty")
	}
	if req.Repository == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	if err := ValidateFilePath(req.FilePath); err != nil {
		return err
	}
	if req.PRTitle == "" {
		return fmt.Errorf("pull request title cannot be empty")
	}
	if err := ValidateBranchName(req.BaseBranch); err != nil {
		return fmt.Errorf("invalid base branch: %w", err)
	}
	if err := ValidateBranchName(req.WorkBranch); err != nil {
		return fmt.Errorf("invalid working branch: %w", err)
	}
	if req.BaseBranch == req.WorkBranch {
		return fmt.Errorf("working branch %q must differ from base branch", req.WorkBranch)
	}
	if req.ChangeType == "" {
		req.ChangeType = domain.ChangeTypeEdit
	}
	if req.ChangeType != domain.ChangeTypeAdd && req.ChangeType != domain.ChangeTypeEdit {
		return fmt.Errorf("unsupported change type %q", req.ChangeType)
	}
	return nil
}
