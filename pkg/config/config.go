package config

// Config carries the ambient settings every command shares. Values come
// from built-in defaults and GIT_UTIL_* environment variables; command
// line flags override them per invocation.
type Config struct {
	RepoPath  string
	Remote    string
	TagPrefix string
	Debug     bool
}

func New() *Config {
	return &Config{
		RepoPath:  ".",
		Remote:    "origin",
		TagPrefix: "v",
	}
}

// Load applies environment overrides on top of the defaults.
func (c *Config) Load() {
	c.RepoPath = lookupEnvOrString("GIT_UTIL_REPO_PATH", c.RepoPath)
	c.Remote = lookupEnvOrString("GIT_UTIL_REMOTE", c.Remote)
	c.TagPrefix = lookupEnvOrString("GIT_UTIL_TAG_PREFIX", c.TagPrefix)
	c.Debug = lookupEnvOrBool("GIT_UTIL_DEBUG", c.Debug)
}
