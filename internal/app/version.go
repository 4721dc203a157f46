package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, overridable via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/nutritrack-backend/internal/app.Version=1.2.0" ./cmd/server
//
// Values left unset are filled from the VCS stamp embedded by the go tool.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version string reported in startup logs, the
// /health endpoint and the CLI.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			c, b, modified := vcsStamp(info.Settings)
			if commit == "" {
				commit = c
				if modified && c != "" {
					commit += "+dirty"
				}
			}
			if built == "" {
				built = b
			}
		}
	}
	return formatVersion(Version, commit, built)
}

func vcsStamp(settings []debug.BuildSetting) (revision, buildTime string, modified bool) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			buildTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, buildTime, modified
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
