// Package tracker decodes the Nx Tracker 2 stream wire format.
package tracker

import (
	"encoding/binary"
	"fmt"

	"github.com/opennx/nxview/internal/orientation"
)

const (
	// FrameSize is the length of one stream notification payload:
	// five little-endian int16 values.
	FrameSize = 10

	// Scale converts the fixed-point int16 components to floats.
	// The device encodes q components as signed Q1.14.
	Scale = float32(1 << 14)
)

// ParseFrame decodes one stream frame into a wire-order quaternion.
// The first four int16s are the quaternion components (w, x, y, z);
// the fifth is reserved and ignored.
func ParseFrame(data []byte) (orientation.RawQuaternion, error) {
	if len(data) != FrameSize {
		return orientation.RawQuaternion{}, fmt.Errorf("tracker frame: got %d bytes, want %d", len(data), FrameSize)
	}

	raw := func(off int) float32 {
		return float32(int16(binary.LittleEndian.Uint16(data[off:]))) / Scale
	}

	return orientation.RawQuaternion{
		W: raw(0),
		X: raw(2),
		Y: raw(4),
		Z: raw(6),
	}, nil
}

// AppendFrame encodes a quaternion as a stream frame, appending it to
// buf. Components are clamped to the int16 range. The reserved fifth
// field is written as zero. Used to build replay files and fixtures.
func AppendFrame(buf []byte, q orientation.RawQuaternion) []byte {
	for _, c := range [4]float32{q.W, q.X, q.Y, q.Z} {
		v := c * Scale
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v)))
	}
	return binary.LittleEndian.AppendUint16(buf, 0)
}

// ParseBattery decodes a battery level notification (single byte,
// percent).
func ParseBattery(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, fmt.Errorf("battery payload: got %d bytes, want 1", len(data))
	}
	return int(data[0]), nil
}
