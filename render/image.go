/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package render

import (
	"encoding/base64"
	"sync"

	"github.com/nabbar/guacd/imaging"
)

// Rect is the rectangle a cached image occupies within its buffer layer.
type Rect struct {
	X, Y, Width, Height int
}

// cacheEntry is one image-cache slot: the pixels that produced the
// fingerprint (kept so a probe can byte-compare before trusting a hit)
// plus where those pixels live once copied into a buffer layer.
type cacheEntry struct {
	pixels []uint32
	layer  int
	rect   Rect
}

// ImageCache maps an image fingerprint to the buffer layer and rectangle
// holding a previous copy of that image, so SendImage can emit a cheap
// copy instruction instead of retransmitting identical pixel data.
type ImageCache struct {
	mu      sync.Mutex
	entries map[uint32]cacheEntry
	nextBuf int // next negative buffer-layer id to allocate on a miss
}

// NewImageCache returns an empty ImageCache.
func NewImageCache() *ImageCache {
	return &ImageCache{entries: make(map[uint32]cacheEntry), nextBuf: -1}
}

// Lookup computes the fingerprint of pixels and, if a byte-identical
// surface is already cached, returns its layer and rect with hit=true.
// A fingerprint collision against non-identical pixels is treated as a
// miss, never a false hit.
func (c *ImageCache) Lookup(pixels []uint32) (layer int, rect Rect, hit bool) {
	h := imaging.Hash24(pixels)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[h]
	if !ok || !imaging.CompareSurface(e.pixels, pixels) {
		return 0, Rect{}, false
	}
	return e.layer, e.rect, true
}

// Insert records pixels as occupying rect of a freshly allocated buffer
// layer, returning that layer id for the caller to draw into.
func (c *ImageCache) Insert(pixels []uint32, rect Rect) (layer int) {
	h := imaging.Hash24(pixels)

	c.mu.Lock()
	defer c.mu.Unlock()

	layer = c.nextBuf
	c.nextBuf--
	c.entries[h] = cacheEntry{pixels: pixels, layer: layer, rect: rect}
	return layer
}

// SendImage draws a w x h RGBA rectangle at (dstX, dstY) of the given
// visible layer, going through the image cache: a confirmed hit becomes
// a SendCopy from the cached buffer layer, a miss emits a fresh "png"
// image instruction and seeds the cache for next time.
func (s *Socket) SendImage(layer, dstX, dstY, w, h int, pixels []uint32, encodedPNG []byte) error {
	rect := Rect{X: dstX, Y: dstY, Width: w, Height: h}

	if srcLayer, srcRect, hit := s.cache.Lookup(pixels); hit {
		return s.SendCopy(srcLayer, srcRect.X, srcRect.Y, srcRect.Width, srcRect.Height, layer, dstX, dstY)
	}

	if err := s.send("png", itoa(layer), itoa(dstX), itoa(dstY), base64.StdEncoding.EncodeToString(encodedPNG)); err != nil {
		return err
	}

	s.cache.Insert(pixels, rect)
	return nil
}
