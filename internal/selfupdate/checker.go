// Package selfupdate checks GitHub releases for a newer wolfchan build.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild       = errors.New("development build has no release version")
	ErrInvalidVersion = errors.New("invalid semantic version")
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultOwner   = "abhisek"
	defaultRepo    = "wolfchan"
)

// Checker queries the latest published release.
type Checker struct {
	client  *http.Client
	baseURL string
	owner   string
	repo    string
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Checker) { c.client = hc }
}

// WithTimeout sets the request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client = &http.Client{Timeout: d} }
}

// WithRepo overrides the repository queried.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) { c.owner, c.repo = owner, repo }
}

// NewChecker creates a Checker for the wolfchan repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		owner:   defaultOwner,
		repo:    defaultRepo,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CheckInput is the running build.
type CheckInput struct {
	Version string
}

// CheckResult compares the running build against the latest release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares versions.
func (c *Checker) Check(ctx context.Context, in *CheckInput) (*CheckResult, error) {
	if in.Version == "" || in.Version == "(devel)" {
		return nil, ErrDevBuild
	}
	current := Canonical(in.Version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, in.Version)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	latest := Canonical(rel.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("%w: release tag %q", ErrInvalidVersion, rel.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: semver.Compare(latest, current) > 0,
	}, nil
}

// Canonical adds the "v" prefix semver expects.
func Canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
