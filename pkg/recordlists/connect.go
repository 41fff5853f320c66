package recordlists

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// MinimumServerVersion is the oldest server release the client supports;
// the record lists API first shipped in this release.
const MinimumServerVersion = "24.2"

// Connect builds a client from cfg and verifies the target service layer is
// reachable, offers the record lists feature and is recent enough.
//
// The connectivity check retries transient failures with exponential
// backoff, up to cfg.ConnectRetries extra attempts. This bootstrap is the
// only place the client ever retries; regular API operations issue exactly
// one request.
func Connect(ctx context.Context, cfg *serverapi.Config) (*Client, error) {
	api, err := serverapi.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	var info *serverapi.VersionInfo
	check := func() error {
		var err error
		info, err = api.GetVersion(ctx)
		if err == nil {
			return nil
		}
		switch {
		case serverapi.IsNotFound(err):
			// The version endpoint ships with the record lists feature, so
			// a 404 here means the service layer does not have it.
			return backoff.Permanent(fmt.Errorf("service layer at %s does not offer the record lists feature: %w", api.BaseURL(), err))
		case serverapi.IsUnauthorized(err):
			return backoff.Permanent(fmt.Errorf("not authorized against %s, check the configured credentials: %w", api.BaseURL(), err))
		default:
			return fmt.Errorf("failed to reach service layer at %s: %w", api.BaseURL(), err)
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(api.ConnectRetries())), ctx)
	if err := backoff.Retry(check, policy); err != nil {
		return nil, err
	}

	if err := checkServerVersion(info); err != nil {
		return nil, err
	}

	return NewClient(api, cfg.Logger), nil
}

func checkServerVersion(info *serverapi.VersionInfo) error {
	ok, err := versionAtLeast(info.MajorMinorVersion, MinimumServerVersion)
	if err != nil {
		return fmt.Errorf("server reported unparseable version %q: %w", info.MajorMinorVersion, err)
	}
	if !ok {
		return fmt.Errorf("server version %s is not supported, this client requires %s or later", info.MajorMinorVersion, MinimumServerVersion)
	}
	return nil
}

// versionAtLeast compares two major.minor version strings numerically.
func versionAtLeast(have, want string) (bool, error) {
	haveMajor, haveMinor, err := parseMajorMinor(have)
	if err != nil {
		return false, err
	}
	wantMajor, wantMinor, err := parseMajorMinor(want)
	if err != nil {
		return false, err
	}
	if haveMajor != wantMajor {
		return haveMajor > wantMajor, nil
	}
	return haveMinor >= wantMinor, nil
}

func parseMajorMinor(v string) (major, minor int, err error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("expected major.minor, got %q", v)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid major version in %q", v)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minor version in %q", v)
	}
	return major, minor, nil
}
