package internal

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/commit"
	"github.com/git-tools/git-util/pkg/config"
	"github.com/git-tools/git-util/pkg/version"
	"github.com/git-tools/git-util/pkg/workflow"
)

//nolint:funlen
func newCommitCmd(logger zerolog.Logger, conf *config.Config) *cobra.Command {
	var (
		typeName    string
		description string
		scope       string
		body        string
		footer      string
		breaking    bool
		files       []string
		stageAll    bool
		push        bool
		bumpName    string
		remote      string
		branch      string
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Create a conventional commit",
		Long: `Creates a commit with a conventional message built from the given fields,
optionally staging files first, pushing afterwards or chaining a version
bump tag that is pushed together with the commit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			commitType, err := commit.ParseType(typeName)
			if err != nil {
				return err
			}

			opts := workflow.CommitOptions{
				Spec: commit.Spec{
					Type:        commitType,
					Scope:       scope,
					Description: description,
					Body:        body,
					Breaking:    breaking,
					Footer:      footer,
				},
				StageAll:  stageAll,
				Push:      push,
				Remote:    remote,
				Branch:    branch,
				TagPrefix: conf.TagPrefix,
			}

			if len(files) > 0 {
				opts.Paths = files
			}

			if bumpName != "" {
				bump, err := version.ParseBump(bumpName)
				if err != nil {
					return err
				}

				opts.Tag = true
				opts.Bump = bump
			}

			wf := workflow.New(logger, newGit(logger, conf))

			return reportOutcome(cmd, wf.Commit(opts))
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "commit type ("+strings.Join(commit.TypeNames(), ", ")+")")
	cmd.Flags().StringVarP(&description, "description", "d", "", "short description of the change")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "scope of the change")
	cmd.Flags().StringVarP(&body, "body", "b", "", "detailed description")
	cmd.Flags().BoolVar(&breaking, "breaking", false, "mark as breaking change")
	cmd.Flags().StringVar(&footer, "footer", "", "footer, e.g. issue references")
	cmd.Flags().StringSliceVarP(&files, "files", "f", nil, "files to stage before committing")
	cmd.Flags().BoolVarP(&stageAll, "all", "a", false, "stage all files before committing")
	cmd.Flags().BoolVar(&push, "push", false, "push after committing")
	cmd.Flags().StringVar(&bumpName, "tag", "", "create and push a tag with this version bump (major, minor, patch)")
	cmd.Flags().StringVar(&remote, "remote", conf.Remote, "remote name")
	cmd.Flags().StringVar(&branch, "branch", "", "branch name (default: current branch)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("description")
	cmd.MarkFlagsMutuallyExclusive("files", "all")

	return cmd
}
