// Package face enumerates the six axis aligned cube faces and the
// orientation tables that map each face to a unit offset.
package face

import "fmt"

// Face identifies one side of a voxel. Ordinals are used directly as array
// indices, so the order below is fixed.
type Face int

const (
	Right Face = iota
	Back
	Up
	Left
	Front
	Down
)

// Count is the number of faces of a cube.
const Count = 6

var faceNames = [Count]string{"right", "back", "up", "left", "front", "down"}

// All returns every face in ordinal order.
func All() [Count]Face {
	return [Count]Face{Right, Back, Up, Left, Front, Down}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Right && f <= Down
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	return (f + 3) % Count
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}
