package voxel

// Cell is either a present voxel or an absent one. Padding borders are made
// of absent cells.
type Cell[V Visibler] struct {
	v       V
	present bool
}

// Present wraps a voxel.
func Present[V Visibler](v V) Cell[V] {
	return Cell[V]{v: v, present: true}
}

// Absent returns an empty cell.
func Absent[V Visibler]() Cell[V] {
	return Cell[V]{}
}

// IsPresent reports whether the cell wraps a voxel.
func (c Cell[V]) IsPresent() bool {
	return c.present
}

// Lookup returns the wrapped voxel and whether there is one.
func (c Cell[V]) Lookup() (V, bool) {
	return c.v, c.present
}

// Voxel returns the wrapped voxel. Calling it on an absent cell is a
// programming error and panics.
func (c Cell[V]) Voxel() V {
	v, ok := c.Lookup()
	if !ok {
		panic("voxel: voxel requested from an absent cell")
	}
	return v
}

// Visibility reports Hidden for absent cells.
func (c Cell[V]) Visibility() Visibility {
	if !c.present {
		return Hidden
	}
	return c.v.Visibility()
}

// CellID returns the identity of a present cell and panics on an absent one.
func CellID[ID comparable, V Voxel[ID]](c Cell[V]) ID {
	v, ok := c.Lookup()
	if !ok {
		panic("voxel: cannot retrieve id from an absent cell")
	}
	return v.ID()
}
