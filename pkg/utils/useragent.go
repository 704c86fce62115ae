package utils

import "strings"

var mobileUserAgentMarkers = []string{
	"Mobile",
	"Android",
	"Silk/",
	"Kindle",
	"BlackBerry",
	"Opera Mini",
	"Opera Mobi",
}

// IsMobileUserAgent reports whether the User-Agent header belongs to a phone or tablet browser.
func IsMobileUserAgent(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	for _, marker := range mobileUserAgentMarkers {
		if strings.Contains(userAgent, marker) {
			return true
		}
	}
	return false
}
