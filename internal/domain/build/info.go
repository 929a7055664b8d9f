// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short returns "bmb <version>".
func (i Info) Short() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	return "bmb " + v
}

// String returns the full multi-line version text.
func (i Info) String() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s\ngo: %s", i.Short(), orUnknown(i.Commit), orUnknown(i.BuildDate), orUnknown(i.GoVersion))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/bmb"
}
