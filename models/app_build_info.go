// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD, printed at startup and
// returned by the version endpoint together with the configured app version.
type AppBuildInfo struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: orNA(buildVersion),
		BuildDate:    orNA(buildDate),
		BuildCommit:  orNA(buildCommit),
	}
}

// WithVersion returns a copy of a with the application version set.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	a.Version = version
	return a
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
