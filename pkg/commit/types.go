package commit

import (
	"fmt"
)

// Type is a conventional commit type. The set is closed; anything outside
// Types is rejected.
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeRefactor Type = "refactor"
	TypePerf     Type = "perf"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeChore    Type = "chore"
)

var Types = []Type{
	TypeFeat,
	TypeFix,
	TypeDocs,
	TypeStyle,
	TypeRefactor,
	TypePerf,
	TypeTest,
	TypeBuild,
	TypeCI,
	TypeChore,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}

	return false
}

// ParseType maps a type name from the command line to a commit type.
func ParseType(name string) (Type, error) {
	if t := Type(name); t.Valid() {
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// TypeNames lists all valid commit type names, for help output.
func TypeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}

	return names
}
