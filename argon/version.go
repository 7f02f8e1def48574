package argon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// defaultProxy is the module registry queried for the latest published
// version when only a module path is configured.
const defaultProxy = "https://proxy.golang.org"

// checkTimeout bounds the registry round trip so --version never hangs on a
// slow network.
const checkTimeout = 3 * time.Second

// Version configures --version handling: where the current version comes
// from and, optionally, how to look up the latest published one. Update
// checks are strictly best-effort; any failure means "no update
// information", never a parse error.
type Version struct {
	// Current is the literal version string. CurrentFunc, when set, wins
	// and may block (e.g. read build info or a file).
	Current     string
	CurrentFunc func(ctx context.Context) (string, error)

	// Module is a module path to query on the registry for its latest
	// published version. LatestFunc, when set, replaces the registry
	// query entirely.
	Module     string
	Proxy      string
	LatestFunc func(ctx context.Context) (string, error)

	// Client overrides the HTTP client used for registry queries.
	Client *http.Client
}

func (v *Version) current(ctx context.Context) (string, error) {
	if v.CurrentFunc != nil {
		return v.CurrentFunc(ctx)
	}
	return v.Current, nil
}

// updateMessage resolves the latest published version and compares it to
// current. It returns a human-readable update line only when the check
// succeeded, both versions parse as semver, and latest is strictly newer.
func (v *Version) updateMessage(ctx context.Context, current string) (string, bool) {
	latest, ok := v.latest(ctx)
	if !ok {
		return "", false
	}
	cur, err := semver.NewVersion(current)
	if err != nil {
		return "", false
	}
	lat, err := semver.NewVersion(latest)
	if err != nil {
		return "", false
	}
	if !lat.GreaterThan(cur) {
		return "", false
	}
	return fmt.Sprintf("update available: %s (current %s)", latest, current), true
}

// latest queries LatestFunc or the module registry. All failures are
// swallowed.
func (v *Version) latest(ctx context.Context) (string, bool) {
	if v.LatestFunc != nil {
		s, err := v.LatestFunc(ctx)
		if err != nil || s == "" {
			return "", false
		}
		return s, true
	}
	if v.Module == "" {
		return "", false
	}

	proxy := v.Proxy
	if proxy == "" {
		proxy = defaultProxy
	}
	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	url := strings.TrimRight(proxy, "/") + "/" + v.Module + "/@latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var info struct {
		Version string `json:"Version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Version == "" {
		return "", false
	}
	return info.Version, true
}
