package gitops

import (
	"strings"

	"github.com/git-tools/git-util/pkg/command"
)

// Result is the outcome of a repository operation. Message is human
// readable and carries the captured stderr when the operation failed.
type Result struct {
	Succeeded bool
	Message   string
}

func failure(what string, res command.Result) Result {
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(res.Stdout)
	}

	if detail != "" {
		what += ": " + detail
	}

	return Result{Succeeded: false, Message: what}
}
