package pulse

import (
	"fmt"
	"strings"
)

type ShaderStage string

const (
	StageVertex   ShaderStage = "vertex"
	StageFragment ShaderStage = "fragment"
	StageLink     ShaderStage = "link"
)

// ShaderError is returned if a shader stage does not compile or the
// program does not link. Log holds the raw driver diagnostic.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	log := strings.TrimRight(e.Log, "\x00\n ")

	if e.Stage == StageLink {
		return "link shader program: " + log
	}

	return fmt.Sprintf("compile %s shader: %s", e.Stage, log)
}
