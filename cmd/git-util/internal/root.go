package internal

import (
	"errors"
	"fmt"

	"github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/command"
	"github.com/git-tools/git-util/pkg/config"
	"github.com/git-tools/git-util/pkg/gitops"
	"github.com/git-tools/git-util/pkg/workflow"
)

func NewRootCmd(logger zerolog.Logger, conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-util",
		Short: "Conventional commits and semantic version tags for git",
		Long: `git-util composes everyday git operations into small release workflows:
it builds conventional commit messages from typed fields, derives the next
semantic version from the existing tag history and chains tag creation with
pushes, reporting exactly which step failed and what already happened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&conf.RepoPath, "repo-path", conf.RepoPath, "path to the git repository")

	commitParser := parser.NewMachine(parser.WithTypes(conventionalcommits.TypesConventional))
	commitParser.WithBestEffort()

	cmd.AddCommand(newAddCmd(logger, conf))
	cmd.AddCommand(newCommitCmd(logger, conf))
	cmd.AddCommand(newTagCmd(logger, conf, commitParser))
	cmd.AddCommand(newPushCmd(logger, conf))
	cmd.AddCommand(newChangelogCmd(logger, conf, commitParser))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newGit(logger zerolog.Logger, conf *config.Config) *gitops.Git {
	return gitops.New(logger, command.GitRunner{}, conf.RepoPath)
}

// report maps an operation result onto the process contract: message to
// stdout and nil on success, the message as error otherwise.
func report(cmd *cobra.Command, res gitops.Result) error {
	if !res.Succeeded {
		return errors.New(res.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Message)

	return nil
}

func reportOutcome(cmd *cobra.Command, out workflow.Outcome) error {
	if !out.Succeeded {
		return errors.New(out.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Message)

	return nil
}
