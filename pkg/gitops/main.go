package gitops

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/git-tools/git-util/pkg/command"
	"github.com/git-tools/git-util/pkg/version"
	"github.com/rs/zerolog"
)

// Git wraps the repository operations this tool needs. Every operation is a
// single git invocation through the runner, normalized into a Result.
type Git struct {
	logger zerolog.Logger
	runner command.Runner
	dir    string
}

func New(logger zerolog.Logger, runner command.Runner, dir string) *Git {
	return &Git{
		logger: logger,
		runner: runner,
		dir:    dir,
	}
}

func (g *Git) run(args ...string) command.Result {
	g.logger.Debug().Str("dir", g.dir).Strs("args", args).Msg("running git")

	return g.runner.Run(g.dir, args...)
}

// Stage adds files to the staging area. A nil path list stages everything;
// an explicitly empty list is a no-op that still reports success.
func (g *Git) Stage(paths []string) Result {
	if paths != nil && len(paths) == 0 {
		return Result{Succeeded: true, Message: "no files given, nothing staged"}
	}

	args := []string{"add", "."}
	if paths != nil {
		args = append([]string{"add"}, paths...)
	}

	if res := g.run(args...); !res.Succeeded() {
		return failure("failed to add files", res)
	}

	return Result{Succeeded: true, Message: "added files to staging area"}
}

// Commit records the staged changes. An empty message fails before any
// command runs.
func (g *Git) Commit(message string) Result {
	if strings.TrimSpace(message) == "" {
		return Result{Succeeded: false, Message: ErrEmptyMessage.Error()}
	}

	if res := g.run("commit", "-m", message); !res.Succeeded() {
		return failure("failed to create commit", res)
	}

	header, _, _ := strings.Cut(message, "\n")

	return Result{Succeeded: true, Message: "created commit: " + header}
}

// CreateTag tags HEAD with the given version: annotated when a message is
// present, lightweight otherwise.
func (g *Git) CreateTag(v semver.Version, message, prefix string) Result {
	tagName := version.FormatTag(v, prefix)

	args := []string{"tag", tagName}
	if message != "" {
		args = []string{"tag", "-a", tagName, "-m", message}
	}

	if res := g.run(args...); !res.Succeeded() {
		return failure("failed to create tag "+tagName, res)
	}

	return Result{Succeeded: true, Message: "created tag " + tagName}
}

// Push sends commits to the remote, then tags when includeTags is set. When
// the first push fails the tag push is never attempted.
func (g *Git) Push(remote, branch string, includeTags bool) Result {
	args := []string{"push", remote}
	if branch != "" {
		args = append(args, branch)
	}

	if res := g.run(args...); !res.Succeeded() {
		return failure("failed to push changes", res)
	}

	message := "pushed changes to " + remote

	if includeTags {
		if res := g.run("push", remote, "--tags"); !res.Succeeded() {
			return failure("failed to push tags", res)
		}

		message += " (including tags)"
	}

	return Result{Succeeded: true, Message: message}
}

// LatestTag returns the most recent tag reachable from HEAD. Any failure of
// the underlying query is treated as "no tags yet".
func (g *Git) LatestTag() (string, bool) {
	res := g.run("describe", "--tags", "--abbrev=0")

	tag := strings.TrimSpace(res.Stdout)
	if !res.Succeeded() || tag == "" {
		return "", false
	}

	return tag, true
}
