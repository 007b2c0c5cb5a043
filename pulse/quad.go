package pulse

import "github.com/oliverbestmann/glblit/glm"

// QuadVertex is the vertex layout of the full-screen quad:
// a clip space position followed by the texture coordinate.
type QuadVertex struct {
	Position glm.Vec3f
	TexCoord glm.Vec2f
}

// QuadVertices covers the full clip space. Texture coordinates are flipped
// vertically, the first row of a canvas is the top of the screen.
var QuadVertices = []QuadVertex{
	{Position: glm.Vec3f{1, 1, 0}, TexCoord: glm.Vec2f{1, 0}},   // top right
	{Position: glm.Vec3f{1, -1, 0}, TexCoord: glm.Vec2f{1, 1}},  // bottom right
	{Position: glm.Vec3f{-1, -1, 0}, TexCoord: glm.Vec2f{0, 1}}, // bottom left
	{Position: glm.Vec3f{-1, 1, 0}, TexCoord: glm.Vec2f{0, 0}},  // top left
}

// QuadIndices describes the two triangles of the quad.
var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}
