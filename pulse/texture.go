package pulse

import "github.com/oliverbestmann/glblit/glm"

type UploadKind uint8

const (
	// UploadAllocate (re)declares the texture storage at the new size.
	UploadAllocate UploadKind = iota + 1

	// UploadUpdate overwrites the existing storage in place.
	UploadUpdate
)

func (k UploadKind) String() string {
	switch k {
	case UploadAllocate:
		return "allocate"
	case UploadUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// TextureStore tracks the declared size of a texture, so the storage is only
// reallocated if the size of the uploaded pixels changes.
type TextureStore struct {
	size      glm.Vec2i
	allocated bool
}

// Plan records an upload of the given size and returns how it must be done.
func (t *TextureStore) Plan(width, height int) UploadKind {
	size := glm.Vec2i{width, height}

	if t.allocated && t.size == size {
		return UploadUpdate
	}

	t.size = size
	t.allocated = true

	return UploadAllocate
}

// Size returns the declared size, zero if nothing was uploaded yet.
func (t *TextureStore) Size() (width, height int) {
	return t.size.XY()
}

// Reset forgets the declared storage, the next upload allocates again.
func (t *TextureStore) Reset() {
	*t = TextureStore{}
}
