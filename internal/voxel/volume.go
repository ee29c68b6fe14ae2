package voxel

import "fmt"

// Dims is the size of a volume in cells. Volumes are flat slices laid out
// with x varying fastest, then y, then z.
type Dims struct {
	W, H, D int
}

// Len is the number of cells of an unpadded volume, zero when Empty.
func (d Dims) Len() int {
	if d.Empty() {
		return 0
	}
	return d.W * d.H * d.D
}

// Empty reports whether any axis is zero or negative.
func (d Dims) Empty() bool {
	return d.W <= 0 || d.H <= 0 || d.D <= 0
}

// Padded returns the dimensions after adding a one cell border on every side.
func (d Dims) Padded() Dims {
	return Dims{W: d.W + 2, H: d.H + 2, D: d.D + 2}
}

// Index flattens (x, y, z) to x + y*W + z*W*H.
func (d Dims) Index(x, y, z int) int {
	return x + y*d.W + z*d.W*d.H
}

// Coords is the inverse of Index.
func (d Dims) Coords(i int) (x, y, z int) {
	plane := d.W * d.H
	z = i / plane
	i -= z * plane
	y = i / d.W
	x = i - y*d.W
	return x, y, z
}

// Contains reports whether (x, y, z) lies inside [0,W)x[0,H)x[0,D).
func (d Dims) Contains(x, y, z int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H && z >= 0 && z < d.D
}

// String formats the dimensions as WxHxD.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.W, d.H, d.D)
}

// Pad copies volume into the interior of a (W+2)x(H+2)x(D+2) volume, offset
// by one cell on every axis. The border is made of absent cells. volume must
// hold at least d.Len() cells. Empty dimensions pad to nil.
func Pad[V Visibler](volume []V, d Dims) []Cell[V] {
	if d.Empty() {
		return nil
	}
	if len(volume) < d.Len() {
		panic(fmt.Sprintf("voxel: volume has %d cells, %s needs %d", len(volume), d, d.Len()))
	}

	p := d.Padded()
	padded := make([]Cell[V], p.Len())
	for z := 0; z < d.D; z++ {
		for y := 0; y < d.H; y++ {
			for x := 0; x < d.W; x++ {
				padded[p.Index(x+1, y+1, z+1)] = Present(volume[d.Index(x, y, z)])
			}
		}
	}
	return padded
}
