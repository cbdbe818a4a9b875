package orientation

import (
	gomath "math"
	"time"

	"github.com/opennx/nxview/pkg/math"
)

// Source is anything that can provide orientation samples over time:
// a synthetic generator, a replay file, eventually a live tracker.
type Source interface {
	Next() (RawQuaternion, error)
}

type mockSource struct {
	start time.Time
}

// NewMockSource returns a Source that generates a smooth synthetic
// rotation: a steady spin about an axis that slowly precesses. Useful
// for running the viewer without a tracker.
func NewMockSource() Source {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) Next() (RawQuaternion, error) {
	elapsed := time.Since(m.start).Seconds()

	axis := math.Vec3{
		X: float32(gomath.Sin(elapsed * 0.3)),
		Y: float32(gomath.Cos(elapsed * 0.3)),
		Z: 0.5,
	}.Normalize()
	q := math.QuatFromAxisAngle(axis, float32(elapsed))

	return RawQuaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}, nil
}
