package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// Set through -ldflags "-X ..." at build time.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// buildEpoch is day zero of the build counter, the first playable build.
var buildEpoch = time.Date(
	2026, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// ServerInfo is what /version reports: the build and the wire protocol a
// client must speak.
type ServerInfo struct {
	Build     int    `json:"buildId"`
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	CI        string `json:"ci"`
	Protocol  int    `json:"protocol"`
	Go        string `json:"go"`
	Known     bool   `json:"calculated"`
	Error     string `json:"error,omitempty"`
}

// Compatible reports whether a client built for protocol can talk to this
// server.
func (i ServerInfo) Compatible(protocol int) bool {
	return protocol == i.Protocol
}

func buildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns the server info of the running binary.
func Info() ServerInfo {
	info := ServerInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
		Protocol:  api.ProtocolVersion,
		Go:        runtime.Version(),
	}

	id, err := buildIDFor(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Build = id
	info.Known = true
	return info
}

// String returns the banner logged at startup.
func String() string {
	info := Info()

	build := "unknown"
	if info.Known {
		build = fmt.Sprintf("%d (%s)", info.Build, info.BuildDate)
	}
	return fmt.Sprintf(
		"Simple Game build %s protocol[%d] commit[%s] branch[%s] ci[%s]",
		build,
		info.Protocol,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
