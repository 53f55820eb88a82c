package command

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
)

// Result holds the outcome of a single git invocation. ExitCode zero is the
// only success criterion; Stdout and Stderr are reported, never interpreted.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Runner executes a git command in the given working directory.
type Runner interface {
	Run(dir string, args ...string) Result
}

// GitRunner runs the git binary found on PATH.
type GitRunner struct{}

func (GitRunner) Run(dir string, args ...string) Result {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("git", args...)
	cmd.Env = os.Environ()
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// git never started, e.g. the binary is missing
			exitCode = -1

			if stderr.Len() == 0 {
				stderr.WriteString(err.Error())
			}
		}
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
