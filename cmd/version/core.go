// Package version reports accfind's version
package version

// BuildVersion reports accfind's build version. It is set with
// `go build -ldflags="-X github.com/puppetlabs/accfind/cmd/version.BuildVersion=${VERSION}"`
// as part of tagged builds.
var BuildVersion = "unknown"
