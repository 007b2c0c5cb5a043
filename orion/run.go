package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/glblit/glimpse"
	"github.com/pkg/profile"
)

type Options struct {
	// Factories for the parts of the application, all of them are required.
	NewWindow    WindowFactory
	NewPresenter PresenterFactory
	NewCanvas    CanvasFactory

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// SwapInterval passed to the window, zero disables vsync
	SwapInterval int

	// Profile enables profiling, either "cpu" or "mem".
	Profile string

	// ProfilePath is the directory the profile is written to,
	// defaults to a temporary directory.
	ProfilePath string
}

func Run(opts Options) error {
	switch {
	case opts.NewWindow == nil:
		return fmt.Errorf("%w: NewWindow", ErrMissingFactory)
	case opts.NewPresenter == nil:
		return fmt.Errorf("%w: NewPresenter", ErrMissingFactory)
	case opts.NewCanvas == nil:
		return fmt.Errorf("%w: NewCanvas", ErrMissingFactory)
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 640
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 480
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Hello World"
	}

	if opts.Profile != "" {
		prof, err := startProfile(opts.Profile, opts.ProfilePath)
		if err != nil {
			return err
		}

		defer prof.Stop()
	}

	// create a new window with a current OpenGL context
	win, err := opts.NewWindow(glimpse.Options{
		Width:        opts.WindowWidth,
		Height:       opts.WindowHeight,
		Title:        opts.WindowTitle,
		SwapInterval: opts.SwapInterval,
	})
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	defer win.Terminate()

	presenter, err := opts.NewPresenter()
	if err != nil {
		return fmt.Errorf("create presenter: %w", err)
	}

	loop, err := NewLoop(LoopOptions{
		Window:    win,
		Presenter: presenter,
		NewCanvas: opts.NewCanvas,
	})
	if err != nil {
		presenter.Release()
		return fmt.Errorf("create loop: %w", err)
	}

	defer loop.Release()

	if err := loop.Run(); err != nil {
		return fmt.Errorf("run loop: %w", err)
	}

	slog.Debug("Loop finished",
		slog.Uint64("redraws", loop.Stats.RedrawCount),
		slog.Duration("averageDuration", loop.Stats.AverageDuration),
		slog.Duration("maxDuration", loop.Stats.MaxDuration),
	)

	return nil
}

func startProfile(mode string, path string) (interface{ Stop() }, error) {
	options := []func(*profile.Profile){profile.NoShutdownHook}

	switch mode {
	case "cpu":
		options = append(options, profile.CPUProfile)
	case "mem":
		options = append(options, profile.MemProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}

	if path != "" {
		options = append(options, profile.ProfilePath(path))
	}

	return profile.Start(options...), nil
}

// ExitCode maps the result of Run to a process exit code.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}
