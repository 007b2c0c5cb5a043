package orion

import (
	"errors"

	"github.com/oliverbestmann/glblit/glimpse"
	"github.com/oliverbestmann/glblit/pulse"
)

var ErrMissingFactory = errors.New("factory must not be nil")

// Canvas is the CPU side pixel buffer the loop redraws and uploads.
type Canvas interface {
	// Redraw rasterizes the scene into the pixel buffer.
	Redraw() error

	// Pixels returns the BGRA pixel buffer.
	Pixels() []byte

	Size() (width, height int)

	Close() error
}

type WindowFactory func(opts glimpse.Options) (glimpse.Window, error)

type PresenterFactory func() (pulse.Presenter, error)

type CanvasFactory func(width, height int) (Canvas, error)
