// Package vecmath provides small generic 2-D and 3-D vector types used by the
// mesher. They are plain values; every operation returns a new vector.
package vecmath

// Number is the set of element types a vector can carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
