package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/focusdeck/focusdeck/internal/storage/postgres"
	"github.com/focusdeck/focusdeck/internal/storage/sqlite"
)

// NewSQLiteStore creates a sqlite-backed provider at the given path.
// A leading ~ is expanded to the user's home directory.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandPath(path))
}

// NewPostgresStore creates a postgres-backed provider for the given
// connection string.
func NewPostgresStore(connString string) Provider {
	return postgres.NewStore(connString)
}

// IsPostgresURL reports whether the config value is a postgres
// connection string rather than a sqlite file path.
func IsPostgresURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a postgres connection string
// carries a password inline. Those are rejected; credentials belong in
// the environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connString string) bool {
	u, err := url.Parse(connString)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
