// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "cinefind"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the HTTP User-Agent sent to the movie catalog.
	UserAgent = App + "/" + Version
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Release locations used by the update check.
const (
	ReleasesPage = "https://github.com/cinefind/cinefind/releases"
	ReleasesAPI  = "https://api.github.com/repos/cinefind/cinefind/releases"
)
