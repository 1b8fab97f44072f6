// Package common holds small helpers shared by the other packages.
package common

import (
	"net/url"
	"strings"
)

// SanitizeURL removes credentials from a URL so it can be logged.
// SCP-like git URLs (git@host:owner/repo.git) carry no secret and are returned unchanged.
func SanitizeURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") || !strings.Contains(rawURL, "@") {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		// Find @ and remove everything between the scheme and it
		scheme, rest, _ := strings.Cut(rawURL, "://")
		if i := strings.LastIndex(rest, "@"); i != -1 {
			return scheme + "://" + rest[i+1:]
		}

		return rawURL
	}

	u.User = nil

	return u.String()
}
