// Package desktop implements glimpse.Window on top of glfw with an
// OpenGL 3.3 core context.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/glblit/glimpse"
)

func init() {
	// glfw and the OpenGL context must only be used from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win    *glfw.Window
	events glimpse.EventQueue
}

var _ glimpse.Window = (*glfwWindow)(nil)

func NewWindow(opts glimpse.Options) (glimpse.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w := &glfwWindow{win: window}

	configureCallbacks(window, &w.events)

	return w, nil
}

func (g *glfwWindow) FramebufferSize() (int, int) {
	return g.win.GetFramebufferSize()
}

func (g *glfwWindow) WaitEvents() []glimpse.Event {
	g.waitEvents()
	return g.events.Drain()
}

func (g *glfwWindow) waitEvents() {
	// go-gl/glfw reports errors raised while processing events by panicking
	// with a *glfw.Error. Those are not fatal for us, forward them as events.
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*glfw.Error)
			if !ok {
				panic(r)
			}

			g.events.Push(glimpse.ErrorEvent(err))
		}
	}()

	glfw.WaitEvents()
}

func (g *glfwWindow) SwapBuffers() {
	g.win.SwapBuffers()
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func configureCallbacks(window *glfw.Window, events *glimpse.EventQueue) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		events.Push(glimpse.KeyEvent(keyOf(glfwKey), scancode, actionOf(action)))
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		events.Push(glimpse.ResizeEvent(width, height))
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		events.Push(glimpse.CloseEvent())
	})
}

func actionOf(action glfw.Action) glimpse.Action {
	switch action {
	case glfw.Release:
		return glimpse.Release
	case glfw.Repeat:
		return glimpse.Repeat
	default:
		return glimpse.Press
	}
}
