package viewer

import (
	"github.com/opennx/nxview/internal/orientation"
	"github.com/opennx/nxview/pkg/math"
)

// ModelMatrix builds the cube's model matrix for one frame: remap the
// wire quaternion into the renderer's convention, rotate about the
// origin, then translate to the viewport center. Composition is
// translate∘rotate — one explicit matrix, no transform stack.
func ModelMatrix(width, height int, raw orientation.RawQuaternion) math.Mat4 {
	working := orientation.AdaptTracker(raw)
	rotation := working.RotationMat4()
	return math.Translate(float32(width)/2, float32(height)/2, 0).Mul(rotation)
}
