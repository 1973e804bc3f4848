package paint

import "image"

// Clipboard holds at most one detached pixel buffer. Copy and cut
// overwrite it; paste reads it without clearing it.
type Clipboard struct {
	content *image.RGBA
}

// Set stores a copy of img.
func (c *Clipboard) Set(img *image.RGBA) {
	if img == nil {
		c.content = nil
		return
	}
	c.content = cloneRGBA(img)
}

// Content returns a copy of the stored buffer, or nil.
func (c *Clipboard) Content() *image.RGBA {
	if c.content == nil {
		return nil
	}
	return cloneRGBA(c.content)
}

// Empty reports whether nothing has been copied.
func (c *Clipboard) Empty() bool { return c.content == nil }
