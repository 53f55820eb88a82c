package internal

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/config"
)

func newPushCmd(logger zerolog.Logger, conf *config.Config) *cobra.Command {
	var (
		remote string
		branch string
		tags   bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push changes to a remote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, newGit(logger, conf).Push(remote, branch, tags))
		},
	}

	cmd.Flags().StringVar(&remote, "remote", conf.Remote, "remote name")
	cmd.Flags().StringVar(&branch, "branch", "", "branch name (default: current branch)")
	cmd.Flags().BoolVar(&tags, "tags", false, "also push tags")

	return cmd
}
