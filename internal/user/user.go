// Package user resolves who is running the command line, for self-assigning
// tasks.
package user

import (
	"os"
	"os/user"
)

// CurrentUsername returns the login name of the current user. It falls back
// to $USER when the OS lookup fails and to "unknown" when that is unset too.
func CurrentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
