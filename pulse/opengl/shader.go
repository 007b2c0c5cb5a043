package opengl

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/oliverbestmann/glblit/pulse"
)

const DefaultVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 texCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    texCoord = aTexCoord;
}
`

const DefaultFragmentShader = `#version 330 core
in vec2 texCoord;
out vec4 vCol;

uniform sampler2D tex;

void main() {
    vCol = texture(tex, texCoord);
}
`

// programConfig identifies a blit program by its sources.
type programConfig struct {
	Vertex   string
	Fragment string
}

func (c programConfig) Specialize() (pulse.Program, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, pulse.StageVertex, c.Vertex)
	if err != nil {
		return 0, err
	}

	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(gl.FRAGMENT_SHADER, pulse.StageFragment, c.Fragment)
	if err != nil {
		return 0, err
	}

	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)

		return 0, &pulse.ShaderError{Stage: pulse.StageLink, Log: string(log)}
	}

	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)

	slog.Info("shader program linked", slog.Uint64("program", uint64(program)))

	return pulse.Program(program), nil
}

func compileShader(kind uint32, stage pulse.ShaderStage, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)

		return 0, &pulse.ShaderError{Stage: stage, Log: string(log)}
	}

	return shader, nil
}

func deleteProgram(program pulse.Program) {
	gl.DeleteProgram(uint32(program))
}
