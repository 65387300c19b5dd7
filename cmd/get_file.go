package cmd

import (
	"fmt"

	"github.com/azdoops/publishpr/internal/usecase"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const outputFilePermissions = 0644

// NewGetFileCmd creates the get-file command
func NewGetFileCmd(c *container) *cobra.Command {
	var (
		getFileProject    string
		getFileRepository string
		getFileBranch     string
		getFileOut        string
	)
	cmd := &cobra.Command{
		Use:   "get-file <path>",
		Short: "Fetch a file from a repository branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			azdoRepo, err := c.azdoRepository()
			if err != nil {
				return err
			}
			uc := &usecase.FetchFileUseCase{Repo: azdoRepo}
			content, err := uc.Execute(cmd.Context(),
				firstNonEmpty(getFileProject, c.cfg.Project),
				firstNonEmpty(getFileRepository, c.cfg.Repository),
				args[0], getFileBranch)
			if err != nil {
				return err
			}
			if getFileOut != "" {
				if err := afero.WriteFile(c.fs, getFileOut, []byte(content), outputFilePermissions); err != nil {
					return fmt.Errorf("failed to write output file: %w", err)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
	cmd.Flags().StringVar(&getFileProject, "project", "", "Project name (defaults to config or origin remote)")
	cmd.Flags().StringVar(&getFileRepository, "repository", "", "Repository name or id (defaults to config or origin remote)")
	cmd.Flags().StringVar(&getFileBranch, "branch", "main", "Branch to read from")
	cmd.Flags().StringVar(&getFileOut, "out", "", "Write the content to a local file instead of stdout")
	return cmd
}
