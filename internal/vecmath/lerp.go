package vecmath

// Lerp2 interpolates a..b per axis: a + (b-a)*t. Each axis of t is an
// independent interpolation factor.
func Lerp2[T Number](a, b, t Vec2[T]) Vec2[T] {
	return a.Add(b.Sub(a).Mul(t))
}
