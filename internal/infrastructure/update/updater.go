// Package update checks GitHub releases for a newer specsync version. It
// sits outside the core pipeline: only the update command reaches the
// network, and any failure degrades to a warning.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v69/github"
	"golang.org/x/oauth2"
)

const (
	releaseOwner = "specsmith"
	releaseRepo  = "specsync"

	// CacheFileName lives in the .specsync directory; the cache keeps
	// repeated runs from hammering the releases API.
	CacheFileName = "update_cache.json"
	cacheTTL      = 24 * time.Hour
)

// Cache is the on-disk record of the last release check.
type Cache struct {
	CheckedAt time.Time `json:"checked_at"`
	Latest    string    `json:"latest_version"`
	Current   string    `json:"current_version"`
}

// releaseClient is the slice of the GitHub API the checker needs.
type releaseClient interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

// Checker resolves the latest released version, honoring the on-disk cache.
type Checker struct {
	client    releaseClient
	cachePath string
	now       func() time.Time
}

// NewChecker builds a checker whose cache lives at cachePath. When
// GITHUB_TOKEN is set the API client authenticates with it.
func NewChecker(cachePath string) *Checker {
	var client *github.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), src))
	} else {
		client = github.NewClient(nil)
	}

	return &Checker{
		client:    client.Repositories,
		cachePath: cachePath,
		now:       time.Now,
	}
}

// Latest returns the newest released version. A fresh cache answers without
// network I/O unless force is set; a successful API call refreshes the
// cache. Cache write failures are ignored: the answer is still valid.
func (c *Checker) Latest(ctx context.Context, current string, force bool) (string, error) {
	if !force {
		if cached, ok := c.readCache(); ok {
			return cached.Latest, nil
		}
	}

	release, _, err := c.client.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return "", fmt.Errorf("failed to query latest release: %w", err)
	}

	latest := strings.TrimPrefix(release.GetTagName(), "v")
	if latest == "" {
		return "", fmt.Errorf("latest release has no tag name")
	}

	c.writeCache(Cache{CheckedAt: c.now(), Latest: latest, Current: current})
	return latest, nil
}

func (c *Checker) readCache() (Cache, bool) {
	data, err := os.ReadFile(c.cachePath) // #nosec G304 -- cache path is fixed by the workspace
	if err != nil {
		return Cache{}, false
	}
	var cache Cache
	if err := json.Unmarshal(data, &cache); err != nil {
		return Cache{}, false
	}
	if cache.Latest == "" || c.now().Sub(cache.CheckedAt) > cacheTTL {
		return Cache{}, false
	}
	return cache, true
}

func (c *Checker) writeCache(cache Cache) {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(c.cachePath, data, 0600)
}

// ParseVersion splits a semantic version into its first three numeric
// parts. A leading "v" is stripped; unparseable or missing parts are zero.
func ParseVersion(version string) [3]int {
	version = strings.TrimPrefix(version, "v")

	var parsed [3]int
	for i, part := range strings.Split(version, ".") {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}
		}
		parsed[i] = n
	}
	return parsed
}

// CompareVersions returns -1, 0, or 1 as a is older than, equal to, or
// newer than b.
func CompareVersions(a, b string) int {
	va, vb := ParseVersion(a), ParseVersion(b)
	for i := 0; i < 3; i++ {
		switch {
		case va[i] < vb[i]:
			return -1
		case va[i] > vb[i]:
			return 1
		}
	}
	return 0
}
