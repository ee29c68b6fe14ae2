package vecmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// V3 builds a Vec3.
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns a+b per component.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b per component.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Neg flips the sign of every component.
func (a Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Mul multiplies component-wise.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div divides every component by s.
func (a Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// DivInt divides by an integer divisor. For integer element types the
// result truncates toward zero, like any Go integer division.
func (a Vec3[T]) DivInt(n int) Vec3[T] {
	return a.Div(T(n))
}

// DivFloat divides by a floating point divisor, converting each component
// back to T afterwards.
func (a Vec3[T]) DivFloat(f float64) Vec3[T] {
	return Vec3[T]{T(float64(a.X) / f), T(float64(a.Y) / f), T(float64(a.Z) / f)}
}

// Dot returns the scalar product.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns
//
//	(a.y*b.z - a.z*b.y, a.x*b.z - a.z*b.x, a.x*b.y - a.y*b.x)
//
// The y term is not negated, so this differs from the textbook right-hand
// cross product. Face normals of the unit cube are derived with this exact
// convention.
func Cross[T Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.X*b.Z - a.Z*b.X,
		a.X*b.Y - a.Y*b.X,
	}
}

// Cross is the method form of the package level Cross.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Cross(a, b)
}

// Float32 widens any vector to float32 components.
func Float32[T Number](v Vec3[T]) Vec3[float32] {
	return Vec3[float32]{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Mgl converts to the mathgl representation.
func (a Vec3[T]) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(a.X), float32(a.Y), float32(a.Z)}
}

func (a Vec3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", a.X, a.Y, a.Z)
}
