package services

import (
	"net/url"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// isHTTPURL reports whether s is an absolute http or https URL with a host.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isImageRef accepts a remote URL, a stored upload path or an inline data:image URL.
func isImageRef(s string) bool {
	switch {
	case strings.HasPrefix(s, "/uploads/"):
		return !strings.Contains(s, "..")
	case strings.HasPrefix(s, "data:image/"):
		return true
	default:
		return isHTTPURL(s)
	}
}
