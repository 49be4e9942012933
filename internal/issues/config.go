package issues

import (
	"errors"
	"os"
	"time"
)

const (
	DefaultAddr      = ":8788"
	DefaultAPIBase   = "https://api.github.com"
	DefaultUserAgent = "truthtable-issue-reporter"
	DefaultTimeout   = 10 * time.Second
)

// Config holds the settings of the issue-report endpoint and of the
// upstream tracker it forwards to.
type Config struct {
	Addr      string
	APIBase   string
	Owner     string
	Repo      string
	Token     string
	UserAgent string
	Timeout   time.Duration
}

// ConfigFromEnv returns the default configuration with the tracker
// coordinates taken from GITHUB_OWNER, GITHUB_REPO and GITHUB_TOKEN.
// GITHUB_API_URL overrides the API base when set.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:      DefaultAddr,
		APIBase:   DefaultAPIBase,
		Owner:     os.Getenv("GITHUB_OWNER"),
		Repo:      os.Getenv("GITHUB_REPO"),
		Token:     os.Getenv("GITHUB_TOKEN"),
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
	if base := os.Getenv("GITHUB_API_URL"); base != "" {
		cfg.APIBase = base
	}
	return cfg
}

func (c Config) Validate() error {
	var errs []error
	if c.Owner == "" {
		errs = append(errs, errors.New("missing repository owner (GITHUB_OWNER)"))
	}
	if c.Repo == "" {
		errs = append(errs, errors.New("missing repository name (GITHUB_REPO)"))
	}
	if c.Token == "" {
		errs = append(errs, errors.New("missing access token (GITHUB_TOKEN)"))
	}
	return errors.Join(errs...)
}
