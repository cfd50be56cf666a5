package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// featureFlagPrefix marks the system-config keys collected into
// SystemConfig.FeatureFlags.
const featureFlagPrefix = "FEATURE_FLAG_"

// VersionInfo represents Grocy version information. The wire names differ
// from the logical ones: "Version" and "ReleaseDate".
type VersionInfo struct {
	Version     string `json:"Version"`
	ReleaseDate Time   `json:"ReleaseDate"`
}

func (v *VersionInfo) validate() error {
	if v.Version == "" {
		return missingField("version info", "Version")
	}
	return nil
}

// SystemInfo represents system version and environment information
type SystemInfo struct {
	GrocyVersion  VersionInfo `json:"grocy_version"`
	PHPVersion    string      `json:"php_version"`
	SQLiteVersion string      `json:"sqlite_version"`
	OS            string      `json:"os"`
	Client        string      `json:"client"`
}

func (s *SystemInfo) validate() error {
	return s.GrocyVersion.validate()
}

// SystemTime represents server time and timezone information
type SystemTime struct {
	Timezone         string `json:"timezone"`
	TimeLocal        Time   `json:"time_local"`
	TimeLocalSqlite3 Time   `json:"time_local_sqlite3"`
	TimeUTC          Time   `json:"time_utc"`
	Timestamp        Int    `json:"timestamp"`
}

func (s *SystemTime) validate() error {
	if s.Timezone == "" {
		return missingField("system time", "timezone")
	}
	if s.TimeUTC.IsZero() {
		return missingField("system time", "time_utc")
	}
	return nil
}

// SystemConfig represents the server configuration. The wire uses
// SCREAMING_SNAKE keys (USER_USERNAME, BASE_URL, ...); every key prefixed
// FEATURE_FLAG_ is collected into FeatureFlags regardless of how many exist.
type SystemConfig struct {
	Username      string
	BasePath      string
	BaseURL       string
	Mode          string
	DefaultLocale string
	Locale        string
	Currency      string
	FeatureFlags  map[string]any
}

func (s *SystemConfig) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return wrapDecodeErr(err)
	}

	str := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	}

	s.Username = str("USER_USERNAME")
	s.BasePath = str("BASE_PATH")
	s.BaseURL = str("BASE_URL")
	s.Mode = str("MODE")
	s.DefaultLocale = str("DEFAULT_LOCALE")
	s.Locale = str("LOCALE")
	s.Currency = str("CURRENCY")

	s.FeatureFlags = make(map[string]any)
	for key, v := range raw {
		if !strings.HasPrefix(key, featureFlagPrefix) {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return invalidf("system config: flag %s: %v", key, err)
		}
		s.FeatureFlags[key] = value
	}
	return nil
}

func (s *SystemConfig) validate() error {
	if s.Username == "" {
		return missingField("system config", "USER_USERNAME")
	}
	return nil
}

// SystemInfo returns system version and environment information.
func (c *Client) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	body, err := c.Get(ctx, "system/info", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[SystemInfo](body)
}

// SystemTime returns server time and timezone information.
func (c *Client) SystemTime(ctx context.Context) (*SystemTime, error) {
	body, err := c.Get(ctx, "system/time", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[SystemTime](body)
}

// SystemConfig returns the server configuration.
func (c *Client) SystemConfig(ctx context.Context) (*SystemConfig, error) {
	body, err := c.Get(ctx, "system/config", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[SystemConfig](body)
}

// LastDBChanged returns the timestamp of the last database change.
func (c *Client) LastDBChanged(ctx context.Context) (time.Time, error) {
	body, err := c.Get(ctx, "system/db-changed-time", nil)
	if err != nil || body == nil {
		return time.Time{}, err
	}
	var resp struct {
		ChangedTime Time `json:"changed_time"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return time.Time{}, wrapDecodeErr(err)
	}
	return resp.ChangedTime.Time, nil
}
