// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD and shown by the
// "confctl version" command.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// String renders the build metadata on three lines.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}

// AppVersion is the application version declared by the merged
// configuration under "system.version".
type AppVersion struct {
	Major int64
	Minor int64
}

// AppVersionFrom extracts "system.version" from tree. The second result is
// false when the section is missing or malformed.
func AppVersionFrom(tree Tree) (AppVersion, bool) {
	v, ok := tree.Get(Path{"system", "version"})
	if !ok {
		return AppVersion{}, false
	}
	section, ok := v.(Tree)
	if !ok {
		return AppVersion{}, false
	}
	major, okMajor := section["major"].(int64)
	minor, okMinor := section["minor"].(int64)
	if !okMajor || !okMinor {
		return AppVersion{}, false
	}
	return AppVersion{Major: major, Minor: minor}, true
}

func (v AppVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
