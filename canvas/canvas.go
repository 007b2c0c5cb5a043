// Package canvas rasterizes the scene into a CPU side pixel buffer that can
// be uploaded to the GPU as is.
package canvas

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/oliverbestmann/glblit/glm"
)

var (
	ErrInvalidSize = errors.New("invalid canvas size")
	ErrClosed      = errors.New("canvas is closed")
)

// Canvas owns a BGRA pixel buffer and the drawing context rendering into it.
// The buffer has a fixed size, a Canvas must be closed and recreated
// when the size changes.
type Canvas struct {
	dc   *gg.Context
	size glm.Vec2i

	// row-major BGRA, straight alpha, 4 bytes per pixel
	pixels []byte
}

func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	size := glm.Vec2i{width, height}

	slog.Debug("Allocate canvas",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	c := &Canvas{
		dc:     gg.NewContext(width, height),
		size:   size,
		pixels: make([]byte, size.Area()*4),
	}

	return c, nil
}

func (c *Canvas) Size() (width, height int) {
	return c.size.XY()
}

// Center returns the center of the canvas in pixel coordinates.
func (c *Canvas) Center() glm.Vec2d {
	return glm.Vec2Of[float64](c.size).MulScalar(0.5)
}

// Pixels returns the BGRA buffer. The slice is owned by the canvas and only
// valid until the next call to Close. Its content changes on every Redraw.
func (c *Canvas) Pixels() []byte {
	return c.pixels
}

// Redraw clears the canvas to transparent and draws the scene.
func (c *Canvas) Redraw() error {
	if c.dc == nil {
		return ErrClosed
	}

	if err := drawScene(c.dc, c.Center()); err != nil {
		return err
	}

	rgbaToBGRA(c.pixels, c.dc.ResizeTarget().Data())

	return nil
}

// Close releases the drawing context and the pixel buffer.
// Calling Close more than once is a no-op.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}

	err := c.dc.Close()

	c.dc = nil
	c.pixels = nil

	if err != nil {
		return fmt.Errorf("close drawing context: %w", err)
	}

	return nil
}

func rgbaToBGRA(dst, src []byte) {
	n := min(len(dst), len(src))

	for idx := 0; idx+3 < n; idx += 4 {
		r, g, b, a := src[idx], src[idx+1], src[idx+2], src[idx+3]

		dst[idx+0] = b
		dst[idx+1] = g
		dst[idx+2] = r
		dst[idx+3] = a
	}
}
