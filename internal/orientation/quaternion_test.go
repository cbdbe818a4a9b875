package orientation

import (
	gomath "math"
	"testing"
)

func TestIdentity(t *testing.T) {
	q := Identity()
	if q.W != 1 || q.X != 0 || q.Y != 0 || q.Z != 0 {
		t.Errorf("wire identity should be (1,0,0,0), got %+v", q)
	}
}

func TestAdaptTracker(t *testing.T) {
	tests := []struct {
		name       string
		in         RawQuaternion
		w, x, y, z float32
	}{
		{
			name: "identity",
			in:   RawQuaternion{W: 1},
			w:    0, x: 1, y: 0, z: 0,
		},
		{
			name: "component routing",
			in:   RawQuaternion{W: 1, X: 2, Y: 3, Z: 4},
			w:    -4, x: 1, y: -3, z: -2,
		},
		{
			name: "sign flips only on z, y, x inputs",
			in:   RawQuaternion{W: -1, X: -2, Y: -3, Z: -4},
			w:    4, x: -1, y: 3, z: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdaptTracker(tt.in)
			if got.W != tt.w || got.X != tt.x || got.Y != tt.y || got.Z != tt.z {
				t.Errorf("AdaptTracker(%+v) = %+v, want (w=%v x=%v y=%v z=%v)",
					tt.in, got, tt.w, tt.x, tt.y, tt.z)
			}
		})
	}
}

// The wire identity remaps to (w'=0, x'=1, y'=0, z'=0), a half-turn
// about X: the rest pose of the tracker is rendered flipped.
func TestAdaptTrackerIdentityMatrix(t *testing.T) {
	m := AdaptTracker(Identity()).RotationMat4()

	expected := [16]float32{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	for i := 0; i < 16; i++ {
		if gomath.Abs(float64(m[i]-expected[i])) > 1e-6 {
			t.Errorf("element %d: got %v, want %v", i, m[i], expected[i])
		}
	}
}

func TestStateDefaultsToIdentity(t *testing.T) {
	s := NewState()
	if s.Get() != Identity() {
		t.Errorf("fresh state should hold identity, got %+v", s.Get())
	}
}

func TestStateOverwrites(t *testing.T) {
	s := NewState()
	s.Set(RawQuaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5})
	s.Set(RawQuaternion{W: 1})

	if s.Get() != (RawQuaternion{W: 1}) {
		t.Errorf("Set should fully replace prior value, got %+v", s.Get())
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 10000; i++ {
			s.Set(RawQuaternion{W: 1, X: 2, Y: 3, Z: 4})
			s.Set(RawQuaternion{W: 5, X: 6, Y: 7, Z: 8})
		}
	}()

	// Every read must be one of the two complete snapshots, never a mix.
	a := RawQuaternion{W: 1, X: 2, Y: 3, Z: 4}
	b := RawQuaternion{W: 5, X: 6, Y: 7, Z: 8}
	id := Identity()
	for i := 0; i < 10000; i++ {
		got := s.Get()
		if got != a && got != b && got != id {
			t.Fatalf("torn read: %+v", got)
		}
	}
	<-done
}

func TestMockSourceUnitNorm(t *testing.T) {
	src := NewMockSource()
	q, err := src.Next()
	if err != nil {
		t.Fatalf("mock source error: %v", err)
	}

	norm := gomath.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z))
	if gomath.Abs(norm-1.0) > 0.001 {
		t.Errorf("mock source should emit unit quaternions, |q| = %v", norm)
	}
}
