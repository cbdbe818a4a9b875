package viewer

import (
	gomath "math"
	"testing"

	"github.com/opennx/nxview/internal/orientation"
)

func TestModelMatrixTranslatesToCenter(t *testing.T) {
	m := ModelMatrix(600, 600, orientation.Identity())

	// The cube's origin lands at the viewport center
	p := m.TransformPoint([3]float32{0, 0, 0})
	if p[0] != 300 || p[1] != 300 || p[2] != 0 {
		t.Errorf("origin maps to (%v, %v, %v), want (300, 300, 0)", p[0], p[1], p[2])
	}
}

func TestModelMatrixIdentityRotation(t *testing.T) {
	// Wire identity remaps to a half-turn about X: +Y and +Z flip.
	m := ModelMatrix(600, 600, orientation.Identity())

	p := m.TransformPoint([3]float32{0, 100, 0})
	want := [3]float32{300, 200, 0}
	for i := 0; i < 3; i++ {
		if gomath.Abs(float64(p[i]-want[i])) > 1e-4 {
			t.Errorf("component %d: got %v, want %v", i, p[i], want[i])
		}
	}
}

// TestModelMatrixEndToEnd feeds the wire quaternion (0.7071, 0.7071,
// 0, 0) through remap and matrix build and checks every rotation
// element against the analytic formula.
func TestModelMatrixEndToEnd(t *testing.T) {
	raw := orientation.RawQuaternion{W: 0.7071, X: 0.7071, Y: 0, Z: 0}
	m := ModelMatrix(600, 600, raw)

	// Remapped: w' = -z = 0, x' = w = 0.7071, y' = -y = 0, z' = -x = -0.7071
	w, x, y, z := 0.0, 0.7071, 0.0, -0.7071

	// Column-major expected elements from the standard formula
	expected := [16]float64{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0,
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0,
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0,
		300, 300, 0, 1,
	}

	for i := 0; i < 16; i++ {
		if gomath.Abs(float64(m[i])-expected[i]) > 1e-5 {
			t.Errorf("element %d: got %v, want %v", i, m[i], expected[i])
		}
	}
}

func TestModelMatrixDoubleCover(t *testing.T) {
	raw := orientation.RawQuaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}
	neg := orientation.RawQuaternion{W: -0.5, X: -0.5, Y: -0.5, Z: -0.5}

	m1 := ModelMatrix(600, 600, raw)
	m2 := ModelMatrix(600, 600, neg)

	for i := 0; i < 16; i++ {
		if gomath.Abs(float64(m1[i]-m2[i])) > 1e-6 {
			t.Errorf("element %d: %v vs %v", i, m1[i], m2[i])
		}
	}
}

func TestModelMatrixViewportSize(t *testing.T) {
	m := ModelMatrix(800, 480, orientation.Identity())

	p := m.TransformPoint([3]float32{0, 0, 0})
	if p[0] != 400 || p[1] != 240 {
		t.Errorf("center for 800x480: got (%v, %v), want (400, 240)", p[0], p[1])
	}
}
