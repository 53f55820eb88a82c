package workflow

import (
	cc "github.com/leodido/go-conventionalcommits"

	"github.com/git-tools/git-util/pkg/commit"
)

// Step names one durable action of a compound workflow. A failed outcome
// carries the step it stopped at so the operator knows what already
// happened and what to retry.
type Step string

const (
	StepResolveBaseline Step = "resolve-baseline"
	StepStage           Step = "stage"
	StepCommit          Step = "commit"
	StepCreateTag       Step = "create-tag"
	StepPush            Step = "push"
)

// Outcome is the terminal state of a compound workflow. Tag is set as soon
// as a tag durably exists, including on a later push failure.
type Outcome struct {
	Succeeded  bool
	Message    string
	FailedStep Step
	Tag        string
}

// TagOptions drive the tag-and-push workflow.
type TagOptions struct {
	Bump       cc.VersionBump
	Remote     string
	Branch     string
	TagMessage string
	TagPrefix  string
	SkipPush   bool
}

// CommitOptions drive the commit workflow. Paths and StageAll select what
// gets staged first: StageAll stages everything, Paths stages the named
// files, neither skips staging. Tag chains the tag-and-push workflow after
// the commit; otherwise Push runs a bare push.
type CommitOptions struct {
	Spec     commit.Spec
	Paths    []string
	StageAll bool

	Push bool

	Tag        bool
	Bump       cc.VersionBump
	TagMessage string
	TagPrefix  string

	Remote string
	Branch string
}
