// Package consts houses some constants needed across patloc
package consts

import (
	"fmt"
	"runtime"
	"strings"
)

// Version contains the current semantic version of patloc.
const Version = "0.1.0"

// VersionDetails can be set externally as part of the build process
var VersionDetails = "" //nolint:gochecknoglobals

// FullVersion returns the maximally full version and build information for
// the currently running patloc executable.
func FullVersion() string {
	goVersionArch := fmt.Sprintf("%s, %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if VersionDetails != "" {
		return fmt.Sprintf("%s (%s, %s)", Version, VersionDetails, goVersionArch)
	}
	return fmt.Sprintf("%s (%s)", Version, goVersionArch)
}

// Banner returns the ASCII-art banner with the patloc name
func Banner() string {
	banner := strings.Join([]string{
		`              _   _            `,
		` _ __   __ _ | |_| | ___   ___ `,
		`| '_ \ / _' || __| |/ _ \ / __|`,
		`| |_) | (_| || |_| | (_) | (__ `,
		`| .__/ \__,_| \__|_|\___/ \___|`,
		`|_|                            `,
	}, "\n")

	return banner
}
