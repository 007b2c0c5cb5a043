package glimpse

// Window is the surface the render loop presents to. Implementations
// translate their native callbacks into Event values.
type Window interface {
	// FramebufferSize returns the current drawable size in pixels.
	FramebufferSize() (width, height int)

	// WaitEvents blocks until at least one event was processed by the
	// windowing system and returns all events collected since the last call.
	WaitEvents() []Event

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Terminate destroys the window and shuts down the windowing system.
	Terminate()
}

type Options struct {
	Width  int
	Height int
	Title  string

	// SwapInterval is the number of screen updates to wait for
	// before swapping buffers. Zero disables vsync.
	SwapInterval int
}
