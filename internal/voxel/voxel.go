// Package voxel defines what the mesher needs from a volume cell and how a
// flat volume is addressed.
package voxel

import "fmt"

// Visibility says whether a voxel contributes faces.
type Visibility uint8

const (
	Hidden Visibility = iota
	Visible
)

// IsVisible reports whether v is Visible.
func (v Visibility) IsVisible() bool {
	return v == Visible
}

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

// Visibler is the part of the voxel capability the mesher reads.
type Visibler interface {
	Visibility() Visibility
}

// Voxel is the full capability a volume cell exposes: a comparable identity
// and a visibility state.
type Voxel[ID comparable] interface {
	Visibler
	ID() ID
}
