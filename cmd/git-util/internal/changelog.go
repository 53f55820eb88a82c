package internal

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	cc "github.com/leodido/go-conventionalcommits"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/config"
	"github.com/git-tools/git-util/pkg/history"
	"github.com/git-tools/git-util/pkg/version"
)

func newChangelogCmd(logger zerolog.Logger, conf *config.Config, commitParser cc.Machine) *cobra.Command {
	var (
		write bool
		file  string
	)

	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Render a changelog from the commits since the latest tag",
		Long: `Collects the conventional commits since the latest version tag, groups them
into breaking changes, features and fixes and renders a markdown section for
the next version. With --write the section is prepended into the changelog
file instead of printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			git := newGit(logger, conf)

			repo, err := openRepository(conf.RepoPath)
			if err != nil {
				return err
			}

			sinceTag := ""
			baseline := *semver.New(0, 0, 0, "", "")

			if latest, found := git.LatestTag(); found {
				parsed, err := version.Parse(latest)
				if err != nil {
					return fmt.Errorf("failed to parse version from tag %q: %w", latest, err)
				}

				sinceTag = latest
				baseline = parsed
			}

			bump, entries, err := history.Detect(logger, repo, commitParser, sinceTag)
			if err != nil {
				return err
			}

			if entries.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no release-worthy commits since the latest tag")

				return nil
			}

			if sinceTag != "" {
				entries.SetOldVersion(baseline.String())
			}

			entries.SetNewVersion(version.Bump(baseline, bump).String())

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), entries.String())

				return nil
			}

			path := filepath.Join(conf.RepoPath, file)
			if err := entries.WriteTo(path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "updated "+path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "prepend the section into the changelog file")
	cmd.Flags().StringVar(&file, "file", "CHANGELOG.md", "changelog file, relative to the repository")

	return cmd
}
