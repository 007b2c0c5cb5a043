package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/glblit/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyEscape:    glimpse.KeyEscape,
	glfw.KeyEnter:     glimpse.KeyEnter,
	glfw.KeyKPEnter:   glimpse.KeyEnter,
	glfw.KeySpace:     glimpse.KeySpace,
	glfw.KeyTab:       glimpse.KeyTab,
	glfw.KeyBackspace: glimpse.KeyBackspace,
	glfw.KeyLeft:      glimpse.KeyLeft,
	glfw.KeyRight:     glimpse.KeyRight,
	glfw.KeyUp:        glimpse.KeyUp,
	glfw.KeyDown:      glimpse.KeyDown,
	glfw.KeyQ:         glimpse.KeyQ,
}

// keyOf maps a glfw key. Keys we do not know are still reported,
// as KeyUnknown, so their scancode can be logged.
func keyOf(glfwKey glfw.Key) glimpse.Key {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		return glimpse.KeyUnknown
	}

	return key
}
