package cmd

import (
	"fmt"

	"github.com/azdoops/publishpr/internal/domain"
	"github.com/azdoops/publishpr/internal/orchestrator"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewPublishCmd creates the publish command
func NewPublishCmd(c *container) *cobra.Command {
	var (
		publishProject     string
		publishRepository  string
		publishFile        string
		publishContent     string
		publishContentFile string
		publishTitle       string
		publishDescription string
		publishBaseBranch  string
		publishWorkBranch  string
		publishNewFile     bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a single-file change as a pull request",
		Long: `Publish a single-file change to an Azure DevOps repository.

The workflow resolves the base branch, creates the working branch at its tip
(or resets it there when it already exists), pushes one commit with the file
change, and opens a pull request from the working branch to the base branch.

Ref updates are guarded by the last observed commit ids: if another writer
moves a branch mid-run, the run aborts with a conflict instead of
overwriting. Already-applied ref updates and pushes are not rolled back on a
later failure; the error reports the push id that went through.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := c.publishOrchestrator()
			if err != nil {
				return err
			}
			content, err := resolveContent(c.fs, publishContent, publishContentFile)
			if err != nil {
				return err
			}
			changeType := domain.ChangeTypeEdit
			if publishNewFile {
				changeType = domain.ChangeTypeAdd
			}
			req := orchestrator.PublishRequest{
				Project:       firstNonEmpty(publishProject, c.cfg.Project),
				Repository:    firstNonEmpty(publishRepository, c.cfg.Repository),
				FilePath:      publishFile,
				NewContent:    content,
				ChangeType:    changeType,
				PRTitle:       publishTitle,
				PRDescription: publishDescription,
				BaseBranch:    publishBaseBranch,
				WorkBranch:    publishWorkBranch,
			}
			result, err := orch.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&publishProject, "project", "", "Project name (defaults to config or origin remote)")
	cmd.Flags().StringVar(&publishRepository, "repository", "", "Repository name or id (defaults to config or origin remote)")
	cmd.Flags().StringVar(&publishFile, "file", "", "Repository path of the file to change, e.g. /README.md")
	cmd.Flags().StringVar(&publishContent, "content", "", "New file content (inline)")
	cmd.Flags().StringVar(&publishContentFile, "content-file", "", "Read the new file content from a local file")
	cmd.Flags().StringVar(&publishTitle, "title", "", "Pull request title (also used as the commit message)")
	cmd.Flags().StringVar(&publishDescription, "description", "", "Pull request description")
	cmd.Flags().StringVar(&publishBaseBranch, "base", "main", "Base branch the PR targets")
	cmd.Flags().StringVar(&publishWorkBranch, "branch", "publishpr/update-file", "Working branch to publish on")
	cmd.Flags().BoolVar(&publishNewFile, "new-file", false, "The file does not exist yet (adds instead of edits)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func resolveContent(fs afero.Fs, inline, fromFile string) (string, error) {
	switch {
	case inline != "" && fromFile != "":
		return "", fmt.Errorf("--content and --content-file are mutually exclusive")
	case fromFile != "":
		data, err := afero.ReadFile(fs, fromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	case inline != "":
		return inline, nil
	default:
		return "", fmt.Errorf("one of --content or --content-file is required")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
