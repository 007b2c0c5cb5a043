// Package pulse describes how a CPU rendered BGRA buffer is presented on the
// GPU. The OpenGL implementation lives in pulse/opengl, this package only holds
// the contract and the parts that do not need a GPU context.
package pulse

import (
	"errors"
	"fmt"
)

var ErrPixelCount = errors.New("pixel buffer does not match dimensions")

// Presenter owns a texture, a shader program and a full-screen quad.
type Presenter interface {
	// Upload copies a BGRA buffer of the given size into the texture.
	Upload(pixels []byte, width, height int) error

	// Draw renders the texture onto the full viewport.
	Draw()

	// ResizeViewport updates the viewport to the framebuffer size.
	ResizeViewport(width, height int)

	// Release frees all GPU resources. Calling it twice is a no-op.
	Release()
}

// CheckPixels verifies that pixels holds exactly width*height BGRA pixels.
func CheckPixels(pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrPixelCount, width, height)
	}

	if expected := width * height * 4; len(pixels) != expected {
		return fmt.Errorf("%w: got %d bytes for %dx%d, expected %d",
			ErrPixelCount, len(pixels), width, height, expected)
	}

	return nil
}
