// Package gallery implements lightbox navigation over a project's media.
//
// The sequence is the primary image followed by the gallery images. While
// open, the index always stays within the sequence and navigation wraps.
package gallery

import (
	"errors"
	"fmt"

	"pixelnex.dev/internal/models"
)

// Closed is the index reported while the lightbox is not showing
const Closed = -1

// Keys the lightbox responds to while open
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

var (
	ErrEmpty      = errors.New("gallery has no media")
	ErrOutOfRange = errors.New("gallery index out of range")
)

// KeyBinder registers a key handler with whatever delivers key presses.
// The returned func removes the registration.
type KeyBinder interface {
	Bind(handler func(key string) bool) (unbind func())
}

// Controller tracks the lightbox position for one media sequence
type Controller struct {
	items  []models.MediaItem
	index  int
	binder KeyBinder
	unbind func()
}

// NewController creates a closed controller. binder may be nil.
func NewController(items []models.MediaItem, binder KeyBinder) *Controller {
	return &Controller{items: items, index: Closed, binder: binder}
}

// Len returns the number of media items
func (c *Controller) Len() int {
	return len(c.items)
}

// Items returns the media sequence
func (c *Controller) Items() []models.MediaItem {
	return c.items
}

// IsOpen reports whether the lightbox is showing
func (c *Controller) IsOpen() bool {
	return c.index != Closed
}

// Index returns the current index and whether the lightbox is open
func (c *Controller) Index() (int, bool) {
	return c.index, c.IsOpen()
}

// Current returns the media item being shown
func (c *Controller) Current() (models.MediaItem, bool) {
	if !c.IsOpen() {
		return models.MediaItem{}, false
	}
	return c.items[c.index], true
}

// Open shows the item at index and starts listening for keys
func (c *Controller) Open(index int) error {
	if len(c.items) == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(c.items))
	}

	c.index = index
	if c.binder != nil && c.unbind == nil {
		c.unbind = c.binder.Bind(c.HandleKey)
	}
	return nil
}

// OpenThumbnail opens gallery image k. The primary image sits at index 0,
// so thumbnail k is sequence index k+1.
func (c *Controller) OpenThumbnail(k int) error {
	return c.Open(k + 1)
}

// Close hides the lightbox and drops the key binding
func (c *Controller) Close() {
	c.index = Closed
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}

// Next advances one item, wrapping to the start
func (c *Controller) Next() (int, bool) {
	if !c.IsOpen() {
		return Closed, false
	}
	c.index = (c.index + 1) % len(c.items)
	return c.index, true
}

// Prev steps back one item, wrapping to the end
func (c *Controller) Prev() (int, bool) {
	if !c.IsOpen() {
		return Closed, false
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
	return c.index, true
}

// HandleKey applies a key press. It reports whether the key was used.
func (c *Controller) HandleKey(key string) bool {
	if !c.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close()
	case KeyArrowRight:
		c.Next()
	case KeyArrowLeft:
		c.Prev()
	default:
		return false
	}
	return true
}

// View returns the lightbox state for projectID
func (c *Controller) View(projectID string) *models.GalleryView {
	view := &models.GalleryView{ProjectID: projectID, Items: c.items}
	if idx, ok := c.Index(); ok {
		view.Index = &idx
		current := c.items[idx]
		view.Current = &current
	}
	return view
}
