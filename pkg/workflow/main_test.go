package workflow_test

import (
	"strings"
	"testing"

	cc "github.com/leodido/go-conventionalcommits"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-tools/git-util/pkg/command"
	"github.com/git-tools/git-util/pkg/commit"
	"github.com/git-tools/git-util/pkg/gitops"
	"github.com/git-tools/git-util/pkg/workflow"
)

const describeCall = "describe --tags --abbrev=0"

var noTags = command.Result{ExitCode: 128, Stderr: "fatal: No names found, cannot describe anything."}

type fakeRunner struct {
	responses map[string]command.Result
	calls     []string
}

func (f *fakeRunner) Run(_ string, args ...string) command.Result {
	call := strings.Join(args, " ")
	f.calls = append(f.calls, call)

	return f.responses[call]
}

func newWorkflow(responses map[string]command.Result) (*workflow.Workflow, *fakeRunner) {
	runner := &fakeRunner{responses: responses}
	git := gitops.New(zerolog.Nop(), runner, ".")

	return workflow.New(zerolog.Nop(), git), runner
}

func TestTagAndPushFirstRelease(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: noTags,
	})

	out := wf.TagAndPush(workflow.TagOptions{
		Bump:      cc.PatchVersion,
		Remote:    "origin",
		TagPrefix: "v",
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, "v0.0.1", out.Tag)
	assert.Equal(t, "created tag v0.0.1 and pushed to origin", out.Message)
	assert.Equal(t, []string{describeCall, "tag v0.0.1", "push origin", "push origin --tags"}, runner.calls)
}

func TestTagAndPushFromExistingTag(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: {Stdout: "v1.2.3\n"},
	})

	out := wf.TagAndPush(workflow.TagOptions{
		Bump:       cc.MinorVersion,
		Remote:     "origin",
		Branch:     "main",
		TagMessage: "Release 1.3.0",
		TagPrefix:  "v",
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, "v1.3.0", out.Tag)
	assert.Equal(t, []string{
		describeCall,
		"tag -a v1.3.0 -m Release 1.3.0",
		"push origin main",
		"push origin --tags",
	}, runner.calls)
}

func TestTagAndPushUnparsableTag(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: {Stdout: "nightly-2024\n"},
	})

	out := wf.TagAndPush(workflow.TagOptions{Bump: cc.PatchVersion, Remote: "origin", TagPrefix: "v"})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepResolveBaseline, out.FailedStep)
	assert.Contains(t, out.Message, "nightly-2024")
	assert.Equal(t, []string{describeCall}, runner.calls, "no side-effecting command may run")
}

func TestTagAndPushTagFailure(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: noTags,
		"tag v0.0.1": {ExitCode: 128, Stderr: "fatal: tag 'v0.0.1' already exists"},
	})

	out := wf.TagAndPush(workflow.TagOptions{Bump: cc.PatchVersion, Remote: "origin", TagPrefix: "v"})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepCreateTag, out.FailedStep)
	assert.Empty(t, out.Tag)
	assert.Equal(t, []string{describeCall, "tag v0.0.1"}, runner.calls, "nothing is pushed after a tag failure")
}

func TestTagAndPushPushFailure(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall:  noTags,
		"push origin": {ExitCode: 1, Stderr: "connection refused"},
	})

	out := wf.TagAndPush(workflow.TagOptions{Bump: cc.PatchVersion, Remote: "origin", TagPrefix: "v"})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepPush, out.FailedStep)
	assert.Equal(t, "v0.0.1", out.Tag, "the tag durably exists even though the push failed")
	assert.Contains(t, out.Message, "tag v0.0.1 created locally but push failed")
	assert.Contains(t, out.Message, "connection refused")
	assert.Equal(t, []string{describeCall, "tag v0.0.1", "push origin"}, runner.calls)
}

func TestTagAndPushSkipPush(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: noTags,
	})

	out := wf.TagAndPush(workflow.TagOptions{Bump: cc.MajorVersion, TagPrefix: "v", SkipPush: true})

	require.True(t, out.Succeeded)
	assert.Equal(t, "created tag v1.0.0", out.Message)
	assert.Equal(t, []string{describeCall, "tag v1.0.0"}, runner.calls)
}

func TestTagAndPushRerunSeesNewTag(t *testing.T) {
	t.Parallel()

	// rerun after a failed push: describe now reports the tag created by
	// the previous run, so the next bump starts from it
	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: {Stdout: "v0.0.1\n"},
	})

	out := wf.TagAndPush(workflow.TagOptions{Bump: cc.PatchVersion, Remote: "origin", TagPrefix: "v"})

	require.True(t, out.Succeeded)
	assert.Equal(t, "v0.0.2", out.Tag)
	assert.NotContains(t, runner.calls, "tag v0.0.1")
}

func TestCommitInvalidSpec(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(nil)

	out := wf.Commit(workflow.CommitOptions{
		Spec: commit.Spec{Type: commit.TypeFeat, Description: "  "},
	})

	require.False(t, out.Succeeded)
	assert.Equal(t, commit.ErrEmptyDescription.Error(), out.Message)
	assert.Empty(t, runner.calls, "validation failures must not run any command")
}

func TestCommitStageAllAndPush(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(nil)

	out := wf.Commit(workflow.CommitOptions{
		Spec:     commit.Spec{Type: commit.TypeFeat, Scope: "ui", Description: "add x"},
		StageAll: true,
		Push:     true,
		Remote:   "origin",
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, []string{"add .", "commit -m feat(ui): add x", "push origin"}, runner.calls)
	assert.Equal(t, "added files to staging area\ncreated commit: feat(ui): add x\npushed changes to origin", out.Message)
}

func TestCommitExplicitPaths(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(nil)

	out := wf.Commit(workflow.CommitOptions{
		Spec:  commit.Spec{Type: commit.TypeFix, Description: "fix y"},
		Paths: []string{"a.go"},
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, []string{"add a.go", "commit -m fix: fix y"}, runner.calls)
}

func TestCommitWithoutStaging(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(nil)

	out := wf.Commit(workflow.CommitOptions{
		Spec: commit.Spec{Type: commit.TypeChore, Description: "tidy"},
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, []string{"commit -m chore: tidy"}, runner.calls)
}

func TestCommitStageFailureBlocksCommit(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		"add .": {ExitCode: 128, Stderr: "fatal: not a git repository"},
	})

	out := wf.Commit(workflow.CommitOptions{
		Spec:     commit.Spec{Type: commit.TypeFeat, Description: "add x"},
		StageAll: true,
	})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepStage, out.FailedStep)
	assert.Equal(t, []string{"add ."}, runner.calls)
}

func TestCommitFailureBlocksTagAndPush(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		"commit -m feat: add x": {ExitCode: 1, Stderr: "nothing to commit"},
	})

	out := wf.Commit(workflow.CommitOptions{
		Spec:   commit.Spec{Type: commit.TypeFeat, Description: "add x"},
		Tag:    true,
		Bump:   cc.MinorVersion,
		Remote: "origin",
	})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepCommit, out.FailedStep)
	assert.Contains(t, out.Message, "nothing to commit")
	assert.Equal(t, []string{"commit -m feat: add x"}, runner.calls)
}

func TestCommitThenTagAndPush(t *testing.T) {
	t.Parallel()

	wf, runner := newWorkflow(map[string]command.Result{
		describeCall: noTags,
	})

	out := wf.Commit(workflow.CommitOptions{
		Spec:      commit.Spec{Type: commit.TypeFeat, Description: "add x"},
		StageAll:  true,
		Tag:       true,
		Bump:      cc.MinorVersion,
		Remote:    "origin",
		TagPrefix: "v",
	})

	require.True(t, out.Succeeded)
	assert.Equal(t, "v0.1.0", out.Tag)
	assert.Equal(t, []string{
		"add .",
		"commit -m feat: add x",
		describeCall,
		"tag -a v0.1.0 -m add x",
		"push origin",
		"push origin --tags",
	}, runner.calls)
}

func TestCommitTagPushFailureNamesSideEffects(t *testing.T) {
	t.Parallel()

	wf, _ := newWorkflow(map[string]command.Result{
		describeCall:  noTags,
		"push origin": {ExitCode: 1, Stderr: "connection refused"},
	})

	out := wf.Commit(workflow.CommitOptions{
		Spec:      commit.Spec{Type: commit.TypeFeat, Description: "add x"},
		Tag:       true,
		Bump:      cc.MinorVersion,
		Remote:    "origin",
		TagPrefix: "v",
	})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepPush, out.FailedStep)
	assert.Equal(t, "v0.1.0", out.Tag)
	assert.Contains(t, out.Message, "created commit: feat: add x")
	assert.Contains(t, out.Message, "tag v0.1.0 created locally but push failed")
	assert.Contains(t, out.Message, "connection refused")
}

func TestCommitPlainPushFailure(t *testing.T) {
	t.Parallel()

	wf, _ := newWorkflow(map[string]command.Result{
		"push origin": {ExitCode: 1, Stderr: "connection refused"},
	})

	out := wf.Commit(workflow.CommitOptions{
		Spec:   commit.Spec{Type: commit.TypeFeat, Description: "add x"},
		Push:   true,
		Remote: "origin",
	})

	require.False(t, out.Succeeded)
	assert.Equal(t, workflow.StepPush, out.FailedStep)
	assert.Contains(t, out.Message, "commit created but failed to push changes: connection refused")
}
