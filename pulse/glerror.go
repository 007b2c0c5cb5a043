package pulse

import (
	"fmt"
	"log/slog"
)

// ErrorCode is a value returned by glGetError.
type ErrorCode uint32

const (
	NoError          ErrorCode = 0
	InvalidEnum      ErrorCode = 0x0500
	InvalidValue     ErrorCode = 0x0501
	InvalidOperation ErrorCode = 0x0502
	OutOfMemory      ErrorCode = 0x0505
)

// maxErrorsPerCheck bounds CheckErrors, some drivers keep reporting
// errors forever once the context is lost.
const maxErrorsPerCheck = 16

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL_ERROR(0x%04x)", uint32(c))
	}
}

// Known reports whether the code is one of the error categories we classify.
func (c ErrorCode) Known() bool {
	switch c {
	case InvalidEnum, InvalidValue, InvalidOperation, OutOfMemory:
		return true
	default:
		return false
	}
}

// CheckErrors drains pending errors using next (usually gl.GetError) and logs
// each of them. Errors are never fatal. Returns the number of errors seen.
func CheckErrors(next func() uint32, op string) int {
	var count int

	for count < maxErrorsPerCheck {
		code := ErrorCode(next())
		if code == NoError {
			break
		}

		count++

		slog.Warn("OpenGL error",
			slog.String("op", op),
			slog.String("code", code.String()),
			slog.Bool("known", code.Known()),
		)
	}

	return count
}
