package grocy

import (
	"context"
	"fmt"
	"time"

	"github.com/blang/semver"

	"github.com/grocyhq/go-grocy/api"
)

// SystemManager provides server information and configuration access.
type SystemManager struct {
	client *api.Client
}

// Info returns server version and environment information.
func (m *SystemManager) Info(ctx context.Context) (*api.SystemInfo, error) {
	return m.client.SystemInfo(ctx)
}

// Time returns server time and timezone information.
func (m *SystemManager) Time(ctx context.Context) (*api.SystemTime, error) {
	return m.client.SystemTime(ctx)
}

// Config returns the server configuration including feature flags.
func (m *SystemManager) Config(ctx context.Context) (*api.SystemConfig, error) {
	return m.client.SystemConfig(ctx)
}

// LastDBChanged returns the timestamp of the last database change, useful
// for cheap change polling.
func (m *SystemManager) LastDBChanged(ctx context.Context) (time.Time, error) {
	return m.client.LastDBChanged(ctx)
}

// Version returns the server version string.
func (m *SystemManager) Version(ctx context.Context) (string, error) {
	info, err := m.client.SystemInfo(ctx)
	if err != nil {
		return "", err
	}
	if info == nil {
		return "", fmt.Errorf("%w: empty system info", api.ErrInvalidResponse)
	}
	return info.GrocyVersion.Version, nil
}

// VersionAtLeast reports whether the server runs at least the given semantic
// version.
func (m *SystemManager) VersionAtLeast(ctx context.Context, minimum string) (bool, error) {
	min, err := semver.ParseTolerant(minimum)
	if err != nil {
		return false, fmt.Errorf("invalid minimum version %q: %w", minimum, err)
	}
	current, err := m.Version(ctx)
	if err != nil {
		return false, err
	}
	server, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("%w: unparseable server version %q", api.ErrInvalidResponse, current)
	}
	return server.GE(min), nil
}
