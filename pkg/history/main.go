package history

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/git-tools/git-util/pkg/changelog"
	"github.com/go-git/go-git/v5"
	cc "github.com/leodido/go-conventionalcommits"
	"github.com/rs/zerolog"
)

const shortHashLen = 7

// Detect walks the repository log from HEAD down to the commit sinceTag
// points to (or the full history when sinceTag is empty), classifies each
// commit subject as a conventional commit and returns the strongest version
// bump together with the changelog entries. Commits that do not parse are
// skipped.
func Detect(
	logger zerolog.Logger, repo *git.Repository, commitParser cc.Machine, sinceTag string,
) (cc.VersionBump, *changelog.Changelog, error) {
	repoLogs, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return cc.UnknownVersion, nil, fmt.Errorf("failed to read repository log: %w", err)
	}

	entries := changelog.New()

	if remote, err := repo.Remote(git.DefaultRemoteName); err == nil && len(remote.Config().URLs) > 0 {
		entries.SetRemote(remote.Config().URLs[0])
	}

	tagCommitHash := tagCommit(repo, sinceTag)

	bump := cc.UnknownVersion

	for {
		commit, err := repoLogs.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return cc.UnknownVersion, nil, fmt.Errorf("failed to iterate repository log: %w", err)
		}

		commitHash := commit.Hash.String()
		if commitHash == tagCommitHash {
			break
		}

		// only the subject line matters for classification
		subject, _, _ := strings.Cut(commit.Message, "\n")
		shortHash := commitHash[:shortHashLen]

		switch Classify(commitParser, subject) {
		case cc.MajorVersion:
			bump = cc.MajorVersion

			entries.AddBreaking(subject, shortHash)
			logger.Info().Str("commit", shortHash).Str("subject", subject).Msg("breaking change")
		case cc.MinorVersion:
			if bump != cc.MajorVersion {
				bump = cc.MinorVersion
			}

			entries.AddFeature(subject, shortHash)
			logger.Info().Str("commit", shortHash).Str("subject", subject).Msg("feature")
		case cc.PatchVersion:
			if bump == cc.UnknownVersion {
				bump = cc.PatchVersion
			}

			entries.AddFix(subject, shortHash)
			logger.Info().Str("commit", shortHash).Str("subject", subject).Msg("fix")
		case cc.UnknownVersion:
			logger.Debug().Str("commit", shortHash).Str("subject", subject).Msg("skipping commit")
		}
	}

	return bump, entries, nil
}

// tagCommit resolves a tag name to the hash of the commit it points to.
// For annotated tags the ref targets the tag object, not the commit, so it
// has to be peeled first; lightweight tags target the commit directly.
func tagCommit(repo *git.Repository, tagName string) string {
	if tagName == "" {
		return ""
	}

	tag, err := repo.Tag(tagName)
	if err != nil {
		return ""
	}

	if tagObject, err := repo.TagObject(tag.Hash()); err == nil {
		return tagObject.Target.String()
	}

	return tag.Hash().String()
}

// Classify returns the version bump a single commit subject implies.
// Unparsable subjects yield an unknown bump.
func Classify(commitParser cc.Machine, subject string) cc.VersionBump {
	message, err := commitParser.Parse([]byte(subject))
	if err != nil {
		return cc.UnknownVersion
	}

	return message.VersionBump(cc.DefaultStrategy)
}
