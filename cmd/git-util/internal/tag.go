package internal

import (
	"fmt"

	cc "github.com/leodido/go-conventionalcommits"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/config"
	"github.com/git-tools/git-util/pkg/history"
	"github.com/git-tools/git-util/pkg/version"
	"github.com/git-tools/git-util/pkg/workflow"
)

func newTagCmd(logger zerolog.Logger, conf *config.Config, commitParser cc.Machine) *cobra.Command {
	var (
		bumpName string
		message  string
		push     bool
		remote   string
		prefix   string
	)

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Create a semantic version tag",
		Long: `Bumps the latest version tag and creates the resulting tag. The bump is
either given explicitly or, with --bump auto, derived from the conventional
commits since the latest tag. With --push the tag is pushed together with
pending commits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			git := newGit(logger, conf)
			wf := workflow.New(logger, git)

			opts := workflow.TagOptions{
				Remote:     remote,
				TagMessage: message,
				TagPrefix:  prefix,
				SkipPush:   !push,
			}

			if bumpName == "auto" {
				repo, err := openRepository(conf.RepoPath)
				if err != nil {
					return err
				}

				sinceTag := ""
				if latest, found := git.LatestTag(); found {
					sinceTag = latest
				}

				bump, _, err := history.Detect(logger, repo, commitParser, sinceTag)
				if err != nil {
					return err
				}

				if bump == cc.UnknownVersion {
					fmt.Fprintln(cmd.OutOrStdout(), "no release-worthy commits since the latest tag, nothing to do")

					return nil
				}

				opts.Bump = bump
			} else {
				bump, err := version.ParseBump(bumpName)
				if err != nil {
					return err
				}

				opts.Bump = bump
			}

			return reportOutcome(cmd, wf.TagAndPush(opts))
		},
	}

	cmd.Flags().StringVarP(&bumpName, "bump", "b", "", "version bump type (major, minor, patch, auto)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "tag message (creates an annotated tag)")
	cmd.Flags().BoolVar(&push, "push", false, "push the tag after creating it")
	cmd.Flags().StringVar(&remote, "remote", conf.Remote, "remote name")
	cmd.Flags().StringVar(&prefix, "prefix", conf.TagPrefix, "tag name prefix")

	_ = cmd.MarkFlagRequired("bump")

	return cmd
}
