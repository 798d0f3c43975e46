// Package media classifies gallery URLs into renderable media kinds.
package media

import (
	"fmt"
	"regexp"
	"strings"

	"pixelnex.dev/internal/models"
)

// Rule recognises URLs of a single media kind
type Rule interface {
	Kind() models.MediaKind
	Match(lowerURL string) bool
}

type hostRule struct {
	kind    models.MediaKind
	markers []string
}

// HostMarker matches URLs containing any of the given host markers
func HostMarker(kind models.MediaKind, markers ...string) Rule {
	lowered := make([]string, len(markers))
	for i, m := range markers {
		lowered[i] = strings.ToLower(m)
	}
	return hostRule{kind: kind, markers: lowered}
}

func (r hostRule) Kind() models.MediaKind { return r.kind }

func (r hostRule) Match(url string) bool {
	for _, m := range r.markers {
		if strings.Contains(url, m) {
			return true
		}
	}
	return false
}

type extensionRule struct {
	kind       models.MediaKind
	extensions []string
}

// Extension matches URLs ending in any of the given file extensions
func Extension(kind models.MediaKind, extensions ...string) Rule {
	suffixes := make([]string, len(extensions))
	for i, ext := range extensions {
		suffixes[i] = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	}
	return extensionRule{kind: kind, extensions: suffixes}
}

func (r extensionRule) Kind() models.MediaKind { return r.kind }

func (r extensionRule) Match(url string) bool {
	for _, suffix := range r.extensions {
		if strings.HasSuffix(url, suffix) {
			return true
		}
	}
	return false
}

// Classifier assigns a kind to each URL. The first matching rule wins and
// anything unmatched is an image.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier from an ordered rule set
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

var defaultClassifier = NewClassifier(
	HostMarker(models.MediaVideo, "streamable.com"),
	Extension(models.MediaVideo, "mp4", "webm", "ogg"),
)

// Default returns the classifier for the hosts and formats the site plays
func Default() *Classifier {
	return defaultClassifier
}

// Kind returns the media kind for url
func (c *Classifier) Kind(url string) models.MediaKind {
	lower := strings.ToLower(url)
	for _, rule := range c.rules {
		if rule.Match(lower) {
			return rule.Kind()
		}
	}
	return models.MediaImage
}

// IsVideo reports whether url should be played rather than shown
func (c *Classifier) IsVideo(url string) bool {
	return c.Kind(url) == models.MediaVideo
}

// Items classifies an ordered list of URLs
func (c *Classifier) Items(urls []string) []models.MediaItem {
	items := make([]models.MediaItem, len(urls))
	for i, url := range urls {
		items[i] = models.MediaItem{URL: url, Kind: c.Kind(url)}
		if items[i].Kind == models.MediaVideo {
			items[i].EmbedURL = EmbedURL(url, false)
		}
	}
	return items
}

// IsVideo classifies url with the default classifier
func IsVideo(url string) bool {
	return defaultClassifier.IsVideo(url)
}

var streamablePattern = regexp.MustCompile(`streamable\.com/([a-z0-9]+)`)

// StreamableID extracts the video id from a streamable.com URL
func StreamableID(url string) (string, bool) {
	match := streamablePattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// EmbedURL returns the player URL for a video. Direct video files play as-is.
func EmbedURL(url string, autoplay bool) string {
	id, ok := StreamableID(url)
	if !ok {
		return url
	}
	flag := 0
	if autoplay {
		flag = 1
	}
	return fmt.Sprintf("https://streamable.com/e/%s?autoplay=%d", id, flag)
}
