// Package version holds the build version, overridable with
// -ldflags "-X calloutgo/pkg/version.Version=...".
package version

// Version is the release version.
var Version = "v0.3.0"
