package fs

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var HomeEzForumDir string
var HomeAuthPath string
var LogPath string

func init() {
	name := "ezforum"
	if os.Getenv("EZFORUM_ENV") == "development" {
		name = "ezforum-dev"
	}

	HomeEzForumDir = filepath.Join(xdg.StateHome, name)
	HomeAuthPath = filepath.Join(HomeEzForumDir, "auth.json")
	LogPath = filepath.Join(HomeEzForumDir, "ezforum.log")
}

// EnsureHomeDir creates the state directory holding the session and log.
func EnsureHomeDir() error {
	return os.MkdirAll(HomeEzForumDir, 0700)
}
