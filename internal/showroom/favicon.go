package showroom

import (
	"net/url"
)

const fallbackFaviconHost = "google.com"

// FaviconURL returns an icon for the site a listing came from
func FaviconURL(originalURL string) string {
	host := fallbackFaviconHost
	if u, err := url.Parse(originalURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(host) + "&sz=128"
}
