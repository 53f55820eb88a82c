package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	marker   = "<!-- next-entries -->"
	preamble = "# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n" + marker + "\n"
)

var regexpPullRequest = regexp.MustCompile(`\(#(\d+)\)`)

// Entry is a single classified commit.
type Entry struct {
	Message string
	Hash    string
}

// Changelog collects classified commits between two versions and renders
// them as a grouped markdown section.
type Changelog struct {
	oldVersion string
	newVersion string
	repoURL    string

	breaking []Entry
	features []Entry
	fixes    []Entry
}

func New() *Changelog {
	return &Changelog{}
}

func (c *Changelog) Len() int {
	return len(c.breaking) + len(c.features) + len(c.fixes)
}

func (c *Changelog) SetOldVersion(version string) {
	c.oldVersion = version
}

func (c *Changelog) SetNewVersion(version string) {
	c.newVersion = version
}

// SetRemote derives a browsable repository URL from the origin remote.
// HTTPS and SSH GitHub-style remotes are recognized, anything else
// disables links.
func (c *Changelog) SetRemote(remoteURL string) {
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	if after, found := strings.CutPrefix(remoteURL, "git@"); found {
		c.repoURL = "https://" + strings.Replace(after, ":", "/", 1)

		return
	}

	if strings.HasPrefix(remoteURL, "http://") || strings.HasPrefix(remoteURL, "https://") {
		c.repoURL = remoteURL
	}
}

func (c *Changelog) AddBreaking(message, hash string) {
	c.breaking = append(c.breaking, Entry{Message: message, Hash: hash})
}

func (c *Changelog) AddFeature(message, hash string) {
	c.features = append(c.features, Entry{Message: message, Hash: hash})
}

func (c *Changelog) AddFix(message, hash string) {
	c.fixes = append(c.fixes, Entry{Message: message, Hash: hash})
}

func (c *Changelog) String() string {
	if c.Len() == 0 {
		return ""
	}

	sb := &strings.Builder{}
	date := time.Now().Format("2006-01-02")

	if link := c.compareLink(); link != "" {
		fmt.Fprintf(sb, "## [%s](%s) (%s)\n", c.newVersion, link, date)
	} else {
		fmt.Fprintf(sb, "## %s (%s)\n", c.newVersion, date)
	}

	c.writeSection(sb, "⚠ BREAKING CHANGES", c.breaking)
	c.writeSection(sb, "Features", c.features)
	c.writeSection(sb, "Bug Fixes", c.fixes)

	return sb.String()
}

func (c *Changelog) writeSection(sb *strings.Builder, header string, entries []Entry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n### %s\n\n", header)

	for _, entry := range entries {
		fmt.Fprintf(sb, "* %s\n", c.formatEntry(entry))
	}
}

func (c *Changelog) formatEntry(entry Entry) string {
	if c.repoURL == "" {
		return fmt.Sprintf("%s (%s)", entry.Message, entry.Hash)
	}

	message := regexpPullRequest.ReplaceAllString(
		entry.Message, fmt.Sprintf("([#$1](%s/pull/$1))", c.repoURL),
	)

	return fmt.Sprintf("%s ([%s](%s/commit/%s))", message, entry.Hash, c.repoURL, entry.Hash)
}

func (c *Changelog) compareLink() string {
	if c.repoURL == "" || c.oldVersion == "" {
		return ""
	}

	return fmt.Sprintf("%s/compare/%s...%s", c.repoURL, c.oldVersion, c.newVersion)
}

// WriteTo prepends the rendered section into the changelog file at the
// entry marker. A missing file is created with the standard preamble; an
// existing file without the marker is rejected.
func (c *Changelog) WriteTo(filePath string) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		content := preamble + "\n" + c.String()

		if err := os.WriteFile(filePath, []byte(content), 0o600); err != nil {
			return fmt.Errorf("failed to write changelog: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read changelog: %w", err)
	}

	if !bytes.Contains(data, []byte(marker)) {
		return ErrMissingMarker
	}

	data = bytes.Replace(data, []byte(marker), []byte(marker+"\n\n"+c.String()), 1)

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}

	return nil
}
