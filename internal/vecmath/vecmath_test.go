package vecmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3[int32](1, 2, 3)
	b := V3[int32](4, -5, 6)

	if got, want := a.Add(b), V3[int32](5, -3, 9); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3[int32](-3, 7, -3); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Mul(b), V3[int32](4, -10, 18); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := a.Dot(b), int32(4-10+18); got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
}

func TestVec3Division(t *testing.T) {
	// Integer midpoints of {-1,0,1} offsets, as the cube generator uses them.
	tests := []struct {
		in   Vec3[int32]
		want Vec3[int32]
	}{
		{V3[int32](2, 1, 0), V3[int32](1, 0, 0)},
		{V3[int32](0, 2, 1), V3[int32](0, 1, 0)},
		{V3[int32](1, 1, 2), V3[int32](0, 0, 1)},
	}
	for _, tt := range tests {
		if got := tt.in.DivInt(2); got != tt.want {
			t.Errorf("%v.DivInt(2): got %v, want %v", tt.in, got, tt.want)
		}
	}

	f := V3[float32](1, 2, 3).DivFloat(2)
	if want := V3[float32](0.5, 1, 1.5); f != want {
		t.Errorf("DivFloat: got %v, want %v", f, want)
	}
	if got, want := V3[float32](3, 6, 9).Div(3), V3[float32](1, 2, 3); got != want {
		t.Errorf("Div: got %v, want %v", got, want)
	}
}

func TestCrossSignConvention(t *testing.T) {
	x := V3[float32](1, 0, 0)
	y := V3[float32](0, 1, 0)
	z := V3[float32](0, 0, 1)

	// The y component is not negated: x cross z yields +y.
	if got, want := Cross(x, z), y; got != want {
		t.Errorf("Cross(x, z): got %v, want %v", got, want)
	}
	if got, want := x.Cross(y), z; got != want {
		t.Errorf("Cross(x, y): got %v, want %v", got, want)
	}
	if got, want := Cross(y, z), x; got != want {
		t.Errorf("Cross(y, z): got %v, want %v", got, want)
	}

	// Only y differs from the textbook product.
	a := V3[float32](1, 2, 3)
	b := V3[float32](-2, 0.5, 4)
	std := a.Mgl().Cross(b.Mgl())
	got := Cross(a, b)
	if got.X != std[0] || got.Y != -std[1] || got.Z != std[2] {
		t.Errorf("Cross(%v, %v) = %v, textbook %v", a, b, got, std)
	}
}

func TestLerp2PerAxis(t *testing.T) {
	a := V2[float32](0, 10)
	b := V2[float32](4, 20)

	if got, want := Lerp2(a, b, V2[float32](0, 0)), a; got != want {
		t.Errorf("t=0: got %v, want %v", got, want)
	}
	if got, want := Lerp2(a, b, V2[float32](1, 1)), b; got != want {
		t.Errorf("t=1: got %v, want %v", got, want)
	}
	if got, want := Lerp2(a, b, V2[float32](0.5, 0)), V2[float32](2, 10); got != want {
		t.Errorf("t=(0.5,0): got %v, want %v", got, want)
	}
}

func TestWideningAndMgl(t *testing.T) {
	v := Float32(V3[int32](-1, 0, 7))
	if want := V3[float32](-1, 0, 7); v != want {
		t.Fatalf("Float32: got %v, want %v", v, want)
	}
	if got := v.Mgl(); got != (mgl32.Vec3{-1, 0, 7}) {
		t.Errorf("Mgl: got %v", got)
	}
	uv := V2[float32](0.25, 1)
	if got := uv.Mgl(); got != (mgl32.Vec2{0.25, 1}) {
		t.Errorf("Vec2 Mgl: got %v", got)
	}
	if s := V3[int32](1, -2, 3).String(); s != "<1, -2, 3>" {
		t.Errorf("String: got %q", s)
	}
}
