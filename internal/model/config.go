package model

import (
	"fmt"
	"io"
)

// AuthMode selects how requests against the forge are authenticated
type AuthMode int

const (
	// AuthModeNone means neither a token nor a password was configured
	AuthModeNone AuthMode = iota
	AuthModeToken
	AuthModePassword
)

func (m AuthMode) String() string {
	switch m {
	case AuthModeToken:
		return "token"
	case AuthModePassword:
		return "password"
	default:
		return "none"
	}
}

// Auth holds the credentials for the forge
type Auth struct {
	Mode     AuthMode
	User     string
	Password string
	Token    string
}

// Config holds the application configuration
type Config struct {
	// URL is the base URL of the forge instance
	URL string

	// Exceptions are repository names that are never backed up
	Exceptions []string

	// Auth holds the forge credentials
	Auth Auth
}

// DefaultConfig returns the configuration written when no config file exists
func DefaultConfig() Config {
	return Config{
		URL:        "http://localhost",
		Exceptions: []string{},
		Auth: Auth{
			Mode:     AuthModePassword,
			User:     "test",
			Password: "sicher123",
		},
	}
}

// Print writes a human-readable dump of the configuration
func (c Config) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Config:")
	_, _ = fmt.Fprintf(w, "url: %s\n", c.URL)
	_, _ = fmt.Fprintln(w, "exceptions:")

	for _, exception := range c.Exceptions {
		_, _ = fmt.Fprintf(w, "\t- '%s'\n", exception)
	}

	_, _ = fmt.Fprintln(w, "auth:")
	_, _ = fmt.Fprintf(w, "\tuser: %s\n", c.Auth.User)

	if c.Auth.Mode == AuthModeToken {
		_, _ = fmt.Fprintf(w, "\ttoken: %s\n", c.Auth.Token)
	} else {
		_, _ = fmt.Fprintf(w, "\tpassword: %s\n", c.Auth.Password)
	}
}
