package orion

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/glblit/glimpse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escape(action glimpse.Action) glimpse.Event {
	return glimpse.KeyEvent(glimpse.KeyEscape, 9, action)
}

func TestFirstStepRedrawsBeforeWaiting(t *testing.T) {
	f := newFixture([]glimpse.Event{glimpse.CloseEvent()})

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	assert.Equal(t, StateDirty, loop.State())

	require.NoError(t, loop.Step())

	assert.Equal(t, []string{
		"redraw 640x480",
		"upload 640x480",
		"draw",
		"swap",
		"wait",
	}, f.journal.calls)

	assert.Equal(t, StateShuttingDown, loop.State())
	assert.Equal(t, uint64(1), loop.Stats.RedrawCount)
}

func TestResizeRecreatesCanvas(t *testing.T) {
	f := newFixture(
		[]glimpse.Event{glimpse.ResizeEvent(320, 240)},
		[]glimpse.Event{escape(glimpse.Press)},
	)

	loop, err := f.newLoop()
	require.NoError(t, err)

	require.NoError(t, loop.Run())
	loop.Release()

	assert.Equal(t, [][2]int{{640, 480}, {320, 240}}, f.canvases.created)
	assert.Equal(t, [][2]int{{640, 480}, {320, 240}}, f.presenter.uploads)
	assert.Equal(t, [][2]int{{640, 480}, {320, 240}}, f.presenter.viewports)
	assert.Equal(t, 2, f.window.swaps)

	assert.Equal(t, 0, f.canvases.live)
	assert.Equal(t, 1, f.presenter.released)
}

func TestResizeSetsDirty(t *testing.T) {
	f := newFixture()

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	require.NoError(t, loop.Redraw())
	assert.Equal(t, StateIdle, loop.State())

	require.NoError(t, loop.Dispatch(glimpse.ResizeEvent(800, 600)))
	assert.Equal(t, StateDirty, loop.State())

	width, height := loop.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)

	// exactly one live canvas, matching the new framebuffer size
	assert.Equal(t, 1, f.canvases.live)
	w, h := loop.canvas.Size()
	assert.Equal(t, []int{800, 600}, []int{w, h})
}

func TestNoRedrawWhileIdle(t *testing.T) {
	f := newFixture(
		[]glimpse.Event{glimpse.KeyEvent(glimpse.KeySpace, 65, glimpse.Press)},
		[]glimpse.Event{glimpse.KeyEvent(glimpse.KeySpace, 65, glimpse.Release)},
		[]glimpse.Event{glimpse.ErrorEvent(errors.New("lost the clipboard"))},
		[]glimpse.Event{glimpse.CloseEvent()},
	)

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	require.NoError(t, loop.Run())

	assert.Equal(t, 4, f.window.waits)
	assert.Len(t, f.presenter.uploads, 1)
	assert.Equal(t, 1, f.presenter.draws)
	assert.Equal(t, 1, f.window.swaps)
}

func TestRedrawIsNoopIfClean(t *testing.T) {
	f := newFixture()

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	require.NoError(t, loop.Redraw())
	require.NoError(t, loop.Redraw())

	assert.Equal(t, 1, f.presenter.draws)
	assert.Equal(t, uint64(1), loop.Stats.RedrawCount)
}

func TestEmptyResizeIsIgnored(t *testing.T) {
	f := newFixture(
		[]glimpse.Event{glimpse.ResizeEvent(0, 0)},
		[]glimpse.Event{glimpse.CloseEvent()},
	)

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	require.NoError(t, loop.Run())

	assert.Len(t, f.canvases.created, 1)
	assert.Len(t, f.presenter.uploads, 1)

	width, height := loop.Size()
	assert.Equal(t, []int{640, 480}, []int{width, height})
}

func TestEscapeShutdown(t *testing.T) {
	tests := []struct {
		event    glimpse.Event
		shutdown bool
	}{
		{escape(glimpse.Press), true},
		{escape(glimpse.Repeat), true},
		{escape(glimpse.Release), false},
		{glimpse.KeyEvent(glimpse.KeyQ, 24, glimpse.Press), false},
		{glimpse.CloseEvent(), true},
		{glimpse.ErrorEvent(errors.New("glfw: platform error")), false},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			f := newFixture()

			loop, err := f.newLoop()
			require.NoError(t, err)
			defer loop.Release()

			require.NoError(t, loop.Dispatch(tt.event))
			assert.Equal(t, tt.shutdown, loop.State() == StateShuttingDown)
		})
	}
}

func TestStepAfterShutdownDoesNothing(t *testing.T) {
	f := newFixture()

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	require.NoError(t, loop.Dispatch(glimpse.CloseEvent()))
	require.NoError(t, loop.Step())

	assert.Empty(t, f.journal.calls)
}

func TestResizeFailureIsFatal(t *testing.T) {
	f := newFixture([]glimpse.Event{glimpse.ResizeEvent(320, 240)})
	f.canvases.failAt = 2

	loop, err := f.newLoop()
	require.NoError(t, err)

	err = loop.Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "recreate canvas")

	loop.Release()
	assert.Equal(t, 0, f.canvases.live)
}

func TestUploadFailureIsFatal(t *testing.T) {
	f := newFixture()
	f.presenter.uploadErr = errors.New("texture too large")

	loop, err := f.newLoop()
	require.NoError(t, err)
	defer loop.Release()

	err = loop.Redraw()
	assert.ErrorContains(t, err, "upload canvas: texture too large")

	// still dirty, nothing was presented
	assert.Equal(t, StateDirty, loop.State())
	assert.Equal(t, 0, f.window.swaps)
}

func TestReleaseIsIdempotent(t *testing.T) {
	f := newFixture()

	loop, err := f.newLoop()
	require.NoError(t, err)

	loop.Release()
	loop.Release()

	assert.Equal(t, 1, f.presenter.released)
	assert.Equal(t, 0, f.canvases.live)
}

func TestNewLoopRequiresParts(t *testing.T) {
	f := newFixture()

	_, err := NewLoop(LoopOptions{Window: f.window, Presenter: f.presenter})
	assert.ErrorIs(t, err, ErrMissingFactory)

	_, err = NewLoop(LoopOptions{Presenter: f.presenter, NewCanvas: f.canvases.New})
	assert.ErrorIs(t, err, ErrMissingFactory)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Dirty", StateDirty.String())
	assert.Equal(t, "ShuttingDown", StateShuttingDown.String())
	assert.Equal(t, "State(7)", State(7).String())
}
