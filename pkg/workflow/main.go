package workflow

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/git-tools/git-util/pkg/gitops"
	"github.com/git-tools/git-util/pkg/version"
)

// Workflow sequences repository operations into compound release steps.
// Every step is a single external command; the first failure terminates the
// sequence and the outcome reports which durable side effects already took
// place.
type Workflow struct {
	logger zerolog.Logger
	git    *gitops.Git
}

func New(logger zerolog.Logger, git *gitops.Git) *Workflow {
	return &Workflow{
		logger: logger,
		git:    git,
	}
}

// TagAndPush derives the next version from the latest reachable tag,
// creates the tag and pushes it together with pending commits. The
// baseline is re-resolved on every run, so a rerun after a push failure
// sees the tag that already exists instead of recreating it.
func (w *Workflow) TagAndPush(opts TagOptions) Outcome {
	baseline := *semver.New(0, 0, 0, "", "")

	if latest, found := w.git.LatestTag(); found {
		parsed, err := version.Parse(latest)
		if err != nil {
			return Outcome{
				Message:    fmt.Sprintf("failed to parse version from tag %q", latest),
				FailedStep: StepResolveBaseline,
			}
		}

		baseline = parsed

		w.logger.Debug().Str("tag", latest).Msg("resolved baseline from latest tag")
	} else {
		w.logger.Debug().Msg("no tags found, starting from 0.0.0")
	}

	next := version.Bump(baseline, opts.Bump)
	tagName := version.FormatTag(next, opts.TagPrefix)

	w.logger.Info().Str("from", baseline.String()).Str("to", next.String()).Msg("bumping version")

	if res := w.git.CreateTag(next, opts.TagMessage, opts.TagPrefix); !res.Succeeded {
		return Outcome{Message: res.Message, FailedStep: StepCreateTag}
	}

	if opts.SkipPush {
		return Outcome{Succeeded: true, Message: "created tag " + tagName, Tag: tagName}
	}

	if res := w.git.Push(opts.Remote, opts.Branch, true); !res.Succeeded {
		return Outcome{
			Message:    fmt.Sprintf("tag %s created locally but push failed: %s", tagName, res.Message),
			FailedStep: StepPush,
			Tag:        tagName,
		}
	}

	return Outcome{
		Succeeded: true,
		Message:   fmt.Sprintf("created tag %s and pushed to %s", tagName, opts.Remote),
		Tag:       tagName,
	}
}

// Commit validates the commit spec, stages the requested files, commits and
// then optionally tags or pushes. Validation happens before any command
// runs; a staging failure blocks the commit and a commit failure blocks
// tagging and pushing.
func (w *Workflow) Commit(opts CommitOptions) Outcome {
	if err := opts.Spec.Validate(); err != nil {
		return Outcome{Message: err.Error(), FailedStep: StepCommit}
	}

	var lines []string

	if opts.StageAll || opts.Paths != nil {
		paths := opts.Paths
		if opts.StageAll {
			paths = nil
		}

		res := w.git.Stage(paths)
		if !res.Succeeded {
			return Outcome{Message: res.Message, FailedStep: StepStage}
		}

		lines = append(lines, res.Message)
	}

	if res := w.git.Commit(opts.Spec.Message()); !res.Succeeded {
		return Outcome{
			Message:    strings.Join(append(lines, res.Message), "\n"),
			FailedStep: StepCommit,
		}
	}

	lines = append(lines, "created commit: "+opts.Spec.Header())

	switch {
	case opts.Tag:
		tagMessage := opts.TagMessage
		if tagMessage == "" {
			tagMessage = opts.Spec.Description
		}

		out := w.TagAndPush(TagOptions{
			Bump:       opts.Bump,
			Remote:     opts.Remote,
			Branch:     opts.Branch,
			TagMessage: tagMessage,
			TagPrefix:  opts.TagPrefix,
		})
		if !out.Succeeded {
			return Outcome{
				Message:    strings.Join(append(lines, out.Message), "\n"),
				FailedStep: out.FailedStep,
				Tag:        out.Tag,
			}
		}

		lines = append(lines, out.Message)

		return Outcome{
			Succeeded: true,
			Message:   strings.Join(lines, "\n"),
			Tag:       out.Tag,
		}
	case opts.Push:
		res := w.git.Push(opts.Remote, opts.Branch, false)
		if !res.Succeeded {
			return Outcome{
				Message:    strings.Join(append(lines, "commit created but "+res.Message), "\n"),
				FailedStep: StepPush,
			}
		}

		lines = append(lines, res.Message)
	}

	return Outcome{Succeeded: true, Message: strings.Join(lines, "\n")}
}
