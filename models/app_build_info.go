// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AppBuildInfo carries build metadata injected with -ldflags. Empty values
// are reported as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version, "" when not injected.
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

// BuildDate returns the build timestamp, "" when not injected.
func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit returns the commit hash, "" when not injected.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// Lines renders the metadata for version output.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + orNA(a.buildVersion),
		"Build date: " + orNA(a.buildDate),
		"Build commit: " + orNA(a.buildCommit),
	}
}

// MarshalJSON encodes the metadata as {"version","date","commit"}.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Commit  string `json:"commit"`
	}{orNA(a.buildVersion), orNA(a.buildDate), orNA(a.buildCommit)})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
