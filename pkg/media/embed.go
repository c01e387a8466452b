// Package media rewrites shared video links into URLs that can be loaded in an iframe.
package media

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	schemePattern  = regexp.MustCompile(`(?i)^https?://`)
	youtubePattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:embed/|v/|watch\?v=|watch\?.+&v=))([^&?]+)`)
	drivePathID    = regexp.MustCompile(`/d/([^/]+)`)
	driveQueryID   = regexp.MustCompile(`id=([^&]+)`)
)

const (
	youtubeEmbedFormat = "https://www.youtube.com/embed/%s?autoplay=1"
	drivePreviewFormat = "https://drive.google.com/file/d/%s/preview"
)

// EmbedURL maps a raw link to its embeddable form.
//
// YouTube watch, share and embed links become a youtube.com/embed URL with autoplay.
// Google Drive share links (/d/<id>/... or ?id=<id>) become a Drive preview URL.
// Anything else is returned as an absolute URL, https:// is added when there is no scheme.
// Empty input yields an empty string. Converted URLs map to themselves.
func EmbedURL(raw string) string {
	absolute := Absolute(raw)
	if absolute == "" {
		return ""
	}

	if m := youtubePattern.FindStringSubmatch(absolute); m != nil && m[1] != "" {
		return fmt.Sprintf(youtubeEmbedFormat, m[1])
	}

	if id := driveFileID(absolute); id != "" {
		return fmt.Sprintf(drivePreviewFormat, id)
	}

	return absolute
}

// Absolute trims raw and prefixes https:// when it has no http(s) scheme.
func Absolute(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if schemePattern.MatchString(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}

func driveFileID(u string) string {
	if m := drivePathID.FindStringSubmatch(u); m != nil {
		return m[1]
	}
	if m := driveQueryID.FindStringSubmatch(u); m != nil {
		return m[1]
	}
	return ""
}
