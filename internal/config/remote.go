package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// azdoRemote is an Azure DevOps repository coordinate parsed from a git
// remote URL.
type azdoRemote struct {
	OrgURL     string
	Project    string
	Repository string
}

// populateRepositoryDefaults fills OrgURL, Project and Repository from the
// origin remote of the repository in the working directory. Values already
// set by the environment or config file win; a missing or non-Azure-DevOps
// checkout is not an error.
func populateRepositoryDefaults(cfg *Config) error {
	if cfg.OrgURL != "" && cfg.Project != "" && cfg.Repository != "" {
		return nil
	}
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil // not inside a git checkout
	}
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return nil
	}
	parsed, err := parseAzdoRemoteURL(remote.Config().URLs[0])
	if err != nil {
		return nil // origin is not an Azure DevOps remote
	}
	if cfg.OrgURL == "" {
		cfg.OrgURL = parsed.OrgURL
	}
	if cfg.Project == "" {
		cfg.Project = parsed.Project
	}
	if cfg.Repository == "" {
		cfg.Repository = parsed.Repository
	}
	return nil
}

// parseAzdoRemoteURL understands the three clone URL shapes Azure DevOps
// hands out:
//
//	https://dev.azure.com/{org}/{project}/_git/{repo}
//	https://{org}.visualstudio.com/{project}/_git/{repo}
//	git@ssh.dev.azure.com:v3/{org}/{project}/{repo}
func parseAzdoRemoteURL(raw string) (*azdoRemote, error) {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "git@ssh.dev.azure.com:v3/"); ok {
		parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
		if len(parts) != 3 {
			return nil, fmt.Errorf("unexpected ssh remote shape: %s", raw)
		}
		return &azdoRemote{
			OrgURL:     "https://dev.azure.com/" + parts[0],
			Project:    parts[1],
			Repository: parts[2],
		}, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return nil, fmt.Errorf("unsupported remote scheme: %s", raw)
	}
	parsed.User = nil
	segments := splitPath(parsed.Path)

	host := strings.ToLower(parsed.Hostname())
	switch {
	case host == "dev.azure.com":
		// {org}/{project}/_git/{repo}
		if len(segments) != 4 || segments[2] != "_git" {
			return nil, fmt.Errorf("unexpected dev.azure.com remote shape: %s", raw)
		}
		return &azdoRemote{
			OrgURL:     parsed.Scheme + "://" + parsed.Host + "/" + segments[0],
			Project:    segments[1],
			Repository: segments[3],
		}, nil
	case strings.HasSuffix(host, ".visualstudio.com"):
		// {project}/_git/{repo}
		if len(segments) != 3 || segments[1] != "_git" {
			return nil, fmt.Errorf("unexpected visualstudio.com remote shape: %s", raw)
		}
		return &azdoRemote{
			OrgURL:     parsed.Scheme + "://" + parsed.Host,
			Project:    segments[0],
			Repository: segments[2],
		}, nil
	default:
		return nil, fmt.Errorf("not an Azure DevOps remote: %s", raw)
	}
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
