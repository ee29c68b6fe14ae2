package face

import (
	"fmt"

	"cullmesh/internal/config"
	"cullmesh/internal/vecmath"
)

// Table maps every Face to the unit offset of its neighbor.
type Table [Count]vecmath.Vec3[int32]

// RightHandYUp returns the right-handed, Y-up table: Back points to -Z.
func RightHandYUp() Table {
	return Table{
		Right: vecmath.V3[int32](1, 0, 0),
		Back:  vecmath.V3[int32](0, 0, -1),
		Up:    vecmath.V3[int32](0, 1, 0),
		Left:  vecmath.V3[int32](-1, 0, 0),
		Front: vecmath.V3[int32](0, 0, 1),
		Down:  vecmath.V3[int32](0, -1, 0),
	}
}

// LeftHandYUp returns the left-handed, Y-up table: Back points to +Z.
func LeftHandYUp() Table {
	return Table{
		Right: vecmath.V3[int32](1, 0, 0),
		Back:  vecmath.V3[int32](0, 0, 1),
		Up:    vecmath.V3[int32](0, 1, 0),
		Left:  vecmath.V3[int32](-1, 0, 0),
		Front: vecmath.V3[int32](0, 0, -1),
		Down:  vecmath.V3[int32](0, -1, 0),
	}
}

// ForHandedness picks the table matching a configured handedness.
func ForHandedness(h config.Handedness) Table {
	if h == config.LeftHandYUp {
		return LeftHandYUp()
	}
	return RightHandYUp()
}

// Offset returns the unit vector from a voxel to its neighbor across f.
func (t Table) Offset(f Face) vecmath.Vec3[int32] {
	return t[f]
}

// Validate checks that every entry is a unit axis vector and that opposite
// faces cancel out.
func (t Table) Validate() error {
	for _, f := range All() {
		v := t[f]
		if abs(v.X)+abs(v.Y)+abs(v.Z) != 1 {
			return fmt.Errorf("face: %s offset %v is not a unit axis vector", f, v)
		}
		if sum := v.Add(t[f.Opposite()]); sum != (vecmath.Vec3[int32]{}) {
			return fmt.Errorf("face: %s and %s offsets do not cancel (%v)", f, f.Opposite(), sum)
		}
	}
	return nil
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
