package constant

// GOOS values the browser opener and terminal helpers distinguish.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	FreeBSD = "freebsd"
	OpenBSD = "openbsd"
	Android = "android"
)
