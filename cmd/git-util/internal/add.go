package internal

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/git-tools/git-util/pkg/config"
)

func newAddCmd(logger zerolog.Logger, conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add [files...]",
		Short: "Add files to the staging area",
		Long:  "Adds the given files to the staging area. Without arguments everything is staged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			if len(args) > 0 {
				paths = args
			}

			return report(cmd, newGit(logger, conf).Stage(paths))
		},
	}
}
