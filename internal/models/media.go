package models

// MediaKind is how a gallery URL should be rendered
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaItem is a classified gallery URL
type MediaItem struct {
	URL      string    `json:"url"`
	Kind     MediaKind `json:"kind"`
	EmbedURL string    `json:"embed_url,omitempty"`
}

// GalleryView is the lightbox state sent to the client.
// Index is nil while the lightbox is closed.
type GalleryView struct {
	ProjectID string      `json:"project_id"`
	Items     []MediaItem `json:"items"`
	Index     *int        `json:"index"`
	Current   *MediaItem  `json:"current,omitempty"`
}
