// Package orientation holds the tracker orientation state shared
// between the OSC listener and the render loop.
package orientation

import "github.com/opennx/nxview/pkg/math"

// RawQuaternion is a quaternion in tracker wire order (w, x, y, z), as
// carried by a /quat message. Components are stored exactly as
// received: no normalization, no reordering.
type RawQuaternion struct {
	W, X, Y, Z float32
}

// Identity returns the wire-order identity quaternion (1,0,0,0).
func Identity() RawQuaternion {
	return RawQuaternion{W: 1}
}

// AdaptTracker remaps a wire-order quaternion into the renderer's
// coordinate convention:
//
//	w' = -z, x' = w, y' = -y, z' = -x
//
// The Nx tracker reports components in an axis order and handedness
// that do not match the viewport's. This exact shuffle and the two sign
// flips were calibrated against the physical device; do not "fix" them
// without re-checking against a live tracker.
func AdaptTracker(raw RawQuaternion) math.Quat {
	return math.Quat{
		W: -raw.Z,
		X: raw.W,
		Y: -raw.Y,
		Z: -raw.X,
	}
}
