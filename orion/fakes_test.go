package orion

import (
	"fmt"

	"github.com/oliverbestmann/glblit/glimpse"
	"github.com/oliverbestmann/glblit/pulse"
)

// journal records the calls made to the fakes in order.
type journal struct {
	calls []string
}

func (j *journal) record(format string, args ...any) {
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

type fakeWindow struct {
	journal *journal

	width, height int

	// batches returned by consecutive calls to WaitEvents
	batches [][]glimpse.Event
	waits   int

	swaps      int
	terminated int
}

func (w *fakeWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) WaitEvents() []glimpse.Event {
	w.journal.record("wait")

	if w.waits >= len(w.batches) {
		// out of script, close the window to end the test
		return []glimpse.Event{glimpse.CloseEvent()}
	}

	batch := w.batches[w.waits]
	w.waits++
	return batch
}

func (w *fakeWindow) SwapBuffers() {
	w.journal.record("swap")
	w.swaps++
}

func (w *fakeWindow) Terminate() {
	w.journal.record("terminate")
	w.terminated++
}

type canvasTracker struct {
	journal *journal

	created [][2]int
	live    int

	// fails the creation of the n-th canvas, counting from one
	failAt int
}

func (t *canvasTracker) New(width, height int) (Canvas, error) {
	if t.failAt == len(t.created)+1 {
		return nil, fmt.Errorf("no memory for %dx%d", width, height)
	}

	t.created = append(t.created, [2]int{width, height})
	t.live++

	return &fakeCanvas{tracker: t, width: width, height: height}, nil
}

type fakeCanvas struct {
	tracker       *canvasTracker
	width, height int
	closed        bool
}

func (c *fakeCanvas) Redraw() error {
	if c.closed {
		return fmt.Errorf("redraw closed canvas")
	}

	c.tracker.journal.record("redraw %dx%d", c.width, c.height)
	return nil
}

func (c *fakeCanvas) Pixels() []byte {
	return make([]byte, c.width*c.height*4)
}

func (c *fakeCanvas) Size() (int, int) {
	return c.width, c.height
}

func (c *fakeCanvas) Close() error {
	if !c.closed {
		c.closed = true
		c.tracker.live--
	}

	return nil
}

type fakePresenter struct {
	journal *journal

	uploads   [][2]int
	viewports [][2]int
	draws     int
	released  int

	uploadErr error
}

func (p *fakePresenter) Upload(pixels []byte, width, height int) error {
	if p.uploadErr != nil {
		return p.uploadErr
	}

	if err := pulse.CheckPixels(pixels, width, height); err != nil {
		return err
	}

	p.journal.record("upload %dx%d", width, height)
	p.uploads = append(p.uploads, [2]int{width, height})
	return nil
}

func (p *fakePresenter) Draw() {
	p.journal.record("draw")
	p.draws++
}

func (p *fakePresenter) ResizeViewport(width, height int) {
	p.viewports = append(p.viewports, [2]int{width, height})
}

func (p *fakePresenter) Release() {
	p.released++
}

type fixture struct {
	journal   *journal
	window    *fakeWindow
	canvases  *canvasTracker
	presenter *fakePresenter
}

func newFixture(batches ...[]glimpse.Event) *fixture {
	j := &journal{}

	return &fixture{
		journal:   j,
		window:    &fakeWindow{journal: j, width: 640, height: 480, batches: batches},
		canvases:  &canvasTracker{journal: j},
		presenter: &fakePresenter{journal: j},
	}
}

func (f *fixture) options() Options {
	return Options{
		NewWindow: func(opts glimpse.Options) (glimpse.Window, error) {
			f.window.width = opts.Width
			f.window.height = opts.Height
			return f.window, nil
		},
		NewPresenter: func() (pulse.Presenter, error) {
			return f.presenter, nil
		},
		NewCanvas: f.canvases.New,
	}
}

func (f *fixture) newLoop() (*Loop, error) {
	return NewLoop(LoopOptions{
		Window:    f.window,
		Presenter: f.presenter,
		NewCanvas: f.canvases.New,
	})
}
