package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/glblit/glimpse"
	"github.com/oliverbestmann/glblit/glm"
	"github.com/oliverbestmann/glblit/pulse"
)

type LoopOptions struct {
	Window    glimpse.Window
	Presenter pulse.Presenter
	NewCanvas CanvasFactory
}

// Loop holds the application state of the render loop. The canvas is only
// redrawn if the loop is dirty, otherwise it blocks waiting for events.
//
// A Loop takes ownership of the presenter, it is released with the loop.
type Loop struct {
	window    glimpse.Window
	presenter pulse.Presenter
	newCanvas CanvasFactory

	canvas Canvas

	// framebuffer size
	size glm.Vec2i

	dirty    bool
	running  bool
	released bool

	Stats RedrawStats
}

func NewLoop(opts LoopOptions) (*Loop, error) {
	switch {
	case opts.Window == nil:
		return nil, fmt.Errorf("%w: window", ErrMissingFactory)
	case opts.Presenter == nil:
		return nil, fmt.Errorf("%w: presenter", ErrMissingFactory)
	case opts.NewCanvas == nil:
		return nil, fmt.Errorf("%w: canvas", ErrMissingFactory)
	}

	width, height := opts.Window.FramebufferSize()

	canvas, err := opts.NewCanvas(width, height)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}

	opts.Presenter.ResizeViewport(width, height)

	loop := &Loop{
		window:    opts.Window,
		presenter: opts.Presenter,
		newCanvas: opts.NewCanvas,
		canvas:    canvas,
		size:      glm.Vec2i{width, height},
		dirty:     true,
		running:   true,
	}

	return loop, nil
}

func (l *Loop) State() State {
	switch {
	case !l.running:
		return StateShuttingDown
	case l.dirty:
		return StateDirty
	default:
		return StateIdle
	}
}

// Size returns the current framebuffer size.
func (l *Loop) Size() (width, height int) {
	return l.size.XY()
}

// Dispatch applies a single window event to the loop state.
// An error returned by Dispatch is fatal.
func (l *Loop) Dispatch(ev glimpse.Event) error {
	switch ev.Kind {
	case glimpse.EventResize:
		return l.resize(ev.Width, ev.Height)

	case glimpse.EventKey:
		slog.Info("key event",
			slog.String("key", ev.Key.String()),
			slog.Int("scancode", ev.Scancode),
			slog.String("action", ev.Action.String()),
		)

		if ev.RequestsShutdown() {
			l.shutdown(ev)
		}

	case glimpse.EventClose:
		l.shutdown(ev)

	case glimpse.EventError:
		slog.Warn("Window error", slog.Any("err", ev.Err))

	default:
		slog.Debug("Ignore event", slog.Any("event", ev))
	}

	return nil
}

func (l *Loop) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		// minimized, keep the current canvas until we get a real size
		slog.Debug("Ignore empty framebuffer",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		return nil
	}

	slog.Debug("Resize framebuffer",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	l.closeCanvas()

	canvas, err := l.newCanvas(width, height)
	if err != nil {
		return fmt.Errorf("recreate canvas: %w", err)
	}

	l.canvas = canvas
	l.size = glm.Vec2i{width, height}

	l.presenter.ResizeViewport(width, height)

	l.dirty = true

	return nil
}

func (l *Loop) shutdown(cause glimpse.Event) {
	if l.running {
		slog.Info("Shutting down", slog.Any("cause", cause))
	}

	l.running = false
}

// Redraw renders the canvas and presents it if the loop is dirty.
func (l *Loop) Redraw() error {
	if !l.dirty {
		return nil
	}

	startTime := time.Now()

	if err := l.canvas.Redraw(); err != nil {
		return fmt.Errorf("redraw canvas: %w", err)
	}

	width, height := l.canvas.Size()

	if err := l.presenter.Upload(l.canvas.Pixels(), width, height); err != nil {
		return fmt.Errorf("upload canvas: %w", err)
	}

	l.presenter.Draw()
	l.window.SwapBuffers()

	l.dirty = false

	l.Stats.update(time.Since(startTime))

	slog.Info("rendered",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Duration("duration", l.Stats.Last),
	)

	return nil
}

// Step runs one iteration of the loop: redraw if needed, then block until
// the window reports events and dispatch all of them.
func (l *Loop) Step() error {
	if l.State() == StateShuttingDown {
		return nil
	}

	if err := l.Redraw(); err != nil {
		return err
	}

	for _, ev := range l.window.WaitEvents() {
		if err := l.Dispatch(ev); err != nil {
			return err
		}
	}

	return nil
}

// Run steps the loop until a shutdown was requested.
func (l *Loop) Run() error {
	for l.State() != StateShuttingDown {
		if err := l.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Release frees the presenter and the canvas. Calling it twice is a no-op.
func (l *Loop) Release() {
	if l.released {
		return
	}

	l.released = true

	l.closeCanvas()
	l.presenter.Release()
}

func (l *Loop) closeCanvas() {
	if l.canvas == nil {
		return
	}

	if err := l.canvas.Close(); err != nil {
		slog.Warn("Failed to close canvas", slog.Any("err", err))
	}

	l.canvas = nil
}
