package commit

import (
	"strings"
)

const breakingNotice = "BREAKING CHANGE: This commit contains breaking changes"

// Spec describes a conventional commit. Message renders it; Validate must
// pass before any side-effecting operation consumes it.
type Spec struct {
	Type        Type
	Scope       string
	Description string
	Body        string
	Breaking    bool
	Footer      string
}

func (s Spec) Validate() error {
	if !s.Type.Valid() {
		return ErrUnknownType
	}

	if strings.TrimSpace(s.Description) == "" {
		return ErrEmptyDescription
	}

	return nil
}

// Header renders the first line of the commit message, e.g.
// "feat(ui)!: add dark mode". Callers echo it back as confirmation.
func (s Spec) Header() string {
	sb := strings.Builder{}
	sb.WriteString(string(s.Type))

	if s.Scope != "" {
		sb.WriteString("(")
		sb.WriteString(s.Scope)
		sb.WriteString(")")
	}

	if s.Breaking {
		sb.WriteString("!")
	}

	sb.WriteString(": ")
	sb.WriteString(s.Description)

	return sb.String()
}

// Message renders the full commit message: header, then body (or a breaking
// change notice when breaking and no body was given), then footer, each
// separated by a blank line.
func (s Spec) Message() string {
	sb := strings.Builder{}
	sb.WriteString(s.Header())

	if s.Body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(s.Body)
	} else if s.Breaking {
		sb.WriteString("\n\n")
		sb.WriteString(breakingNotice)
	}

	if s.Footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(s.Footer)
	}

	return sb.String()
}
