// Package version reports the version of the bloop binaries.
package version

import "runtime/debug"

// Version can be set at build time with something like:
// go build -ldflags "-X github.com/vsariola/bloop/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees. It is empty for builds outside version control.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "devel"
}()

func revision(settings []debug.BuildSetting) string {
	var hash string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			hash = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(hash) > 7 {
		hash = hash[:7]
	}
	if hash != "" && modified {
		hash += "-dirty"
	}
	return hash
}
