package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/transport"
)

// Azure DevOps REST API versions, per endpoint family.
const (
	gitAPIVersion      = "7.1-preview.1"
	projectsAPIVersion = "7.1-preview.4"
	pushesAPIVersion   = "7.1-preview.2"
)

// staleOldObjectIDStatus is the updateStatus the refs endpoint reports when
// the supplied oldObjectId no longer matches the server's current tip.
const staleOldObjectIDStatus = "staleOldObjectId"

// azdoRepository implements AzdoRepository over the JSON transport.
type azdoRepository struct {
	client *transport.Client
}

// NewAzdoRepository wraps an authenticated transport client.
func NewAzdoRepository(client *transport.Client) AzdoRepository {
	return &azdoRepository{client: client}
}

// listEnvelope is the standard Azure DevOps collection response shape.
type listEnvelope[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

func (r *azdoRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out listEnvelope[domain.Project]
	path := "/_apis/projects?" + apiVersionQuery(projectsAPIVersion)
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out.Value, nil
}

func (r *azdoRepository) ListRepositories(ctx context.Context, project string) ([]domain.RepositoryRef, error) {
	var out listEnvelope[domain.RepositoryRef]
	path := fmt.Sprintf("/%s/_apis/git/repositories?%s", url.PathEscape(project), apiVersionQuery(gitAPIVersion))
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list repositories in %q: %w", project, err)
	}
	return out.Value, nil
}

func (r *azdoRepository) GetRepository(ctx context.Context, project, repo string) (*domain.RepositoryRef, error) {
	var out domain.RepositoryRef
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s?%s",
		url.PathEscape(project), url.PathEscape(repo), apiVersionQuery(gitAPIVersion))
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &domain.NotFoundError{Resource: "repository", Name: repo}
		}
		return nil, fmt.Errorf("get repository %q: %w", repo, err)
	}
	return &out, nil
}

func (r *azdoRepository) ListRefs(ctx context.Context, project, repoID, filter string) ([]domain.BranchPointer, error) {
	var out listEnvelope[domain.BranchPointer]
	q := url.Values{}
	q.Set("filter", strings.TrimPrefix(filter, "refs/"))
	q.Set("api-version", gitAPIVersion)
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/refs?%s",
		url.PathEscape(project), url.PathEscape(repoID), q.Encode())
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list refs matching %q: %w", filter, err)
	}
	return out.Value, nil
}

// refUpdateResult is the per-update outcome of a refs POST. The call itself
// succeeds with 200 even when an individual update is rejected.
type refUpdateResult struct {
	Name         string `json:"name"`
	OldObjectID  string `json:"oldObjectId"`
	NewObjectID  string `json:"newObjectId"`
	Success      bool   `json:"success"`
	UpdateStatus string `json:"updateStatus"`
}

func (r *azdoRepository) UpdateRef(ctx context.Context, project, repoID string, update domain.RefUpdate) error {
	var out listEnvelope[refUpdateResult]
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/refs?%s",
		url.PathEscape(project), url.PathEscape(repoID), apiVersionQuery(gitAPIVersion))
	if err := r.client.Do(ctx, http.MethodPost, path, []domain.RefUpdate{update}, &out); err != nil {
		return fmt.Errorf("update ref %q: %w", update.Name, err)
	}
	for _, result := range out.Value {
		if result.Success {
			continue
		}
		if result.UpdateStatus == staleOldObjectIDStatus {
			return &domain.ConcurrencyConflictError{
				RefName:          update.Name,
				ExpectedObjectID: update.OldObjectID,
				Reason:           result.UpdateStatus,
			}
		}
		return fmt.Errorf("update ref %q: rejected with status %q", update.Name, result.UpdateStatus)
	}
	return nil
}

// Wire shapes for the pushes endpoint.
type pushChangeItem struct {
	Path string `json:"path"`
}

type pushNewContent struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

type pushChange struct {
	ChangeType string         `json:"changeType"`
	Item       pushChangeItem `json:"item"`
	NewContent pushNewContent `json:"newContent"`
}

type pushCommit struct {
	Comment string       `json:"comment"`
	Changes []pushChange `json:"changes"`
}

type pushRefUpdate struct {
	Name        string `json:"name"`
	OldObjectID string `json:"oldObjectId"`
}

type pushRequest struct {
	RefUpdates []pushRefUpdate `json:"refUpdates"`
	Commits    []pushCommit    `json:"commits"`
}

type pushResponse struct {
	PushID     int `json:"pushId"`
	RefUpdates []struct {
		Name        string `json:"name"`
		NewObjectID string `json:"newObjectId"`
	} `json:"refUpdates"`
}

func (r *azdoRepository) CreatePush(
	ctx context.Context,
	project, repoID string,
	update domain.RefUpdate,
	commit domain.Commit,
) (*domain.Push, error) {
	changes := make([]pushChange, 0, len(commit.Changes))
	for _, change := range commit.Changes {
		changes = append(changes, pushChange{
			ChangeType: string(change.Type),
			Item:       pushChangeItem{Path: change.Path},
			NewContent: pushNewContent{Content: change.Content, ContentType: "rawtext"},
		})
	}
	body := pushRequest{
		RefUpdates: []pushRefUpdate{{Name: update.Name, OldObjectID: update.OldObjectID}},
		Commits:    []pushCommit{{Comment: commit.Message, Changes: changes}},
	}

	var out pushResponse
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pushes?%s",
		url.PathEscape(project), url.PathEscape(repoID), apiVersionQuery(pushesAPIVersion))
	if err := r.client.Do(ctx, http.MethodPost, path, body, &out); err != nil {
		if isStaleRefRejection(err) {
			return nil, &domain.ConcurrencyConflictError{
				RefName:          update.Name,
				ExpectedObjectID: update.OldObjectID,
				Reason:           "push rejected by server",
			}
		}
		return nil, fmt.Errorf("create push on %q: %w", update.Name, err)
	}

	push := &domain.Push{ID: out.PushID}
	for _, ru := range out.RefUpdates {
		if ru.Name == update.Name {
			push.NewObjectID = ru.NewObjectID
			break
		}
	}
	return push, nil
}

// prResponse carries the subset of the PR creation response the workflow
// reports, including the _links.web browse URL.
type prResponse struct {
	PullRequestID int    `json:"pullRequestId"`
	URL           string `json:"url"`
	SourceRefName string `json:"sourceRefName"`
	TargetRefName string `json:"targetRefName"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Links         struct {
		Web struct {
			Href string `json:"href"`
		} `json:"web"`
	} `json:"_links"`
}

func (r *azdoRepository) CreatePullRequest(
	ctx context.Context,
	project, repoID, sourceRef, targetRef, title, description string,
) (*domain.PullRequest, error) {
	body := map[string]string{
		"sourceRefName": sourceRef,
		"targetRefName": targetRef,
		"title":         title,
		"description":   description,
	}
	var out prResponse
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pullrequests?%s",
		url.PathEscape(project), url.PathEscape(repoID), apiVersionQuery(gitAPIVersion))
	if err := r.client.Do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, fmt.Errorf("create pull request %s -> %s: %w", sourceRef, targetRef, err)
	}
	return &domain.PullRequest{
		ID:          out.PullRequestID,
		URL:         out.URL,
		WebURL:      out.Links.Web.Href,
		SourceRef:   sourceRef,
		TargetRef:   targetRef,
		Title:       title,
		Description: description,
	}, nil
}

func (r *azdoRepository) GetItem(ctx context.Context, project, repo, path, branch string) (string, error) {
	q := url.Values{}
	q.Set("path", path)
	q.Set("includeContent", "true")
	q.Set("versionDescriptor.versionType", "branch")
	q.Set("versionDescriptor.version", domain.ShortBranchName(branch))
	q.Set("api-version", gitAPIVersion)

	var out struct {
		Content string `json:"content"`
	}
	reqPath := fmt.Sprintf("/%s/_apis/git/repositories/%s/items?%s",
		url.PathEscape(project), url.PathEscape(repo), q.Encode())
	if err := r.client.Do(ctx, http.MethodGet, reqPath, nil, &out); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return "", &domain.NotFoundError{Resource: "item", Name: path}
		}
		return "", fmt.Errorf("get item %q: %w", path, err)
	}
	return out.Content, nil
}

func apiVersionQuery(version string) string {
	return "api-version=" + url.QueryEscape(version)
}

func isStatus(err error, status int) bool {
	var apiErr *transport.RemoteAPIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// isStaleRefRejection matches the ways the pushes endpoint reports a stale
// oldObjectId: a 409, or a 400 carrying GitReferenceStaleException.
func isStaleRefRejection(err error) bool {
	var apiErr *transport.RemoteAPIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusConflict {
		return true
	}
	return strings.Contains(apiErr.Body, "GitReferenceStaleException")
}
