// Package utils holds small helpers shared by the provider adapters.
package utils

import (
	"errors"
	"regexp"
)

// ErrNoMediaURL is returned when provider text carries no usable media link.
var ErrNoMediaURL = errors.New("no media URL found")

// MediaKind selects which file extensions count as a media link.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

var mediaURLPatterns = map[MediaKind]*regexp.Regexp{
	MediaImage: regexp.MustCompile(`(?i)https?://[^\s]+\.(jpg|jpeg|png|gif|webp)`),
	MediaVideo: regexp.MustCompile(`(?i)https?://[^\s]+\.(mp4|mov|webm)`),
}

// ExtractMediaURL returns the first link in text whose extension matches
// kind. The match is greedy up to the last matching extension before
// whitespace, so query strings after the extension are dropped.
func ExtractMediaURL(text string, kind MediaKind) (string, error) {
	pattern, ok := mediaURLPatterns[kind]
	if !ok {
		return "", ErrNoMediaURL
	}
	url := pattern.FindString(text)
	if url == "" {
		return "", ErrNoMediaURL
	}
	return url, nil
}
