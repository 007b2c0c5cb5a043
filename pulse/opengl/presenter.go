// Package opengl presents canvas pixels with an OpenGL 3.3 core context.
// The context must be current on the calling thread.
package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/oliverbestmann/glblit/pulse"
)

var DefaultClearColor = pulse.ColorLinearRGBA(1, 0.4, 1, 1)

type Options struct {
	// Shader sources, defaults to DefaultVertexShader and DefaultFragmentShader
	VertexShader   string
	FragmentShader string

	// Background color of the window behind the canvas.
	// Defaults to DefaultClearColor
	ClearColor *pulse.Color
}

var _ pulse.Presenter = (*Presenter)(nil)

type Presenter struct {
	programs *pulse.ProgramCache[programConfig]
	program  pulse.Program

	vao, vbo, ebo uint32
	texture       uint32
	store         pulse.TextureStore

	clearColor pulse.Color
	released   bool
}

func New(opts Options) (presenter *Presenter, err error) {
	if opts.VertexShader == "" {
		opts.VertexShader = DefaultVertexShader
	}

	if opts.FragmentShader == "" {
		opts.FragmentShader = DefaultFragmentShader
	}

	clearColor := DefaultClearColor
	if opts.ClearColor != nil {
		clearColor = *opts.ClearColor
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	slog.Info("Renderer", slog.String("name", gl.GoStr(gl.GetString(gl.RENDERER))))
	slog.Info("OpenGL version", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	p := &Presenter{
		programs:   pulse.NewProgramCache[programConfig](1, deleteProgram),
		clearColor: clearColor,
	}

	guard := pulse.NewReleaseGuard(p)
	defer guard.Release()

	p.program, err = p.programs.Get(programConfig{
		Vertex:   opts.VertexShader,
		Fragment: opts.FragmentShader,
	})

	if err != nil {
		return nil, err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	p.createQuad()
	p.createTexture()

	gl.UseProgram(uint32(p.program))
	gl.Uniform1i(gl.GetUniformLocation(uint32(p.program), gl.Str("tex\x00")), 0)

	pulse.CheckErrors(gl.GetError, "init")

	guard.Keep()

	return p, nil
}

func (p *Presenter) createQuad() {
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.GenBuffers(1, &p.ebo)

	gl.BindVertexArray(p.vao)

	vertices := pulse.SliceBytes(pulse.QuadVertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	indices := pulse.SliceBytes(pulse.QuadIndices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(pulse.QuadVertex{}))

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(pulse.QuadVertex{}.Position))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(pulse.QuadVertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (p *Presenter) createTexture() {
	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (p *Presenter) Upload(pixels []byte, width, height int) error {
	if err := pulse.CheckPixels(pixels, width, height); err != nil {
		return fmt.Errorf("upload texture: %w", err)
	}

	gl.BindTexture(gl.TEXTURE_2D, p.texture)

	switch p.store.Plan(width, height) {
	case pulse.UploadAllocate:
		slog.Debug("Allocate texture storage",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(width), int32(height), 0,
			gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(pixels),
		)

	case pulse.UploadUpdate:
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
			int32(width), int32(height),
			gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(pixels),
		)
	}

	gl.GenerateMipmap(gl.TEXTURE_2D)

	pulse.CheckErrors(gl.GetError, "upload")

	return nil
}

func (p *Presenter) Draw() {
	gl.ClearColor(p.clearColor.Components())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(uint32(p.program))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)

	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(pulse.QuadIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	pulse.CheckErrors(gl.GetError, "draw")
}

func (p *Presenter) ResizeViewport(width, height int) {
	viewport := pulse.Viewport(width, height)

	slog.Info("Resize viewport", slog.String("viewport", viewport.String()))

	gl.Viewport(viewport.XYWH())
}

func (p *Presenter) Release() {
	if p.released {
		return
	}

	p.released = true

	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}

	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
		p.ebo = 0
	}

	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}

	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}

	// deletes the linked program
	p.programs.Purge()
	p.program = 0

	p.store.Reset()
}
