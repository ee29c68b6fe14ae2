package vecmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2-component vector, mostly used for texture coordinates.
type Vec2[T Number] struct {
	X, Y T
}

// V2 builds a Vec2.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns a+b per component.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b per component.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul multiplies component-wise.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Mgl converts to the mathgl representation.
func (a Vec2[T]) Mgl() mgl32.Vec2 {
	return mgl32.Vec2{float32(a.X), float32(a.Y)}
}

func (a Vec2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", a.X, a.Y)
}
