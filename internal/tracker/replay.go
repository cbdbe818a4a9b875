package tracker

import (
	"fmt"
	"os"

	"github.com/opennx/nxview/internal/orientation"
)

// ReplaySource replays a capture file of concatenated stream frames,
// looping back to the start when it runs out.
type ReplaySource struct {
	frames []orientation.RawQuaternion
	pos    int
}

// NewReplaySource loads a capture file. Trailing partial frames are
// rejected rather than silently dropped.
func NewReplaySource(path string) (*ReplaySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay file: %w", err)
	}
	if len(data) == 0 || len(data)%FrameSize != 0 {
		return nil, fmt.Errorf("replay file %s: %d bytes is not a whole number of %d-byte frames", path, len(data), FrameSize)
	}

	frames := make([]orientation.RawQuaternion, 0, len(data)/FrameSize)
	for off := 0; off < len(data); off += FrameSize {
		q, err := ParseFrame(data[off : off+FrameSize])
		if err != nil {
			return nil, fmt.Errorf("frame at offset %d: %w", off, err)
		}
		frames = append(frames, q)
	}

	return &ReplaySource{frames: frames}, nil
}

// Next returns the next recorded quaternion, wrapping around at the end.
func (r *ReplaySource) Next() (orientation.RawQuaternion, error) {
	q := r.frames[r.pos]
	r.pos = (r.pos + 1) % len(r.frames)
	return q, nil
}

// Len returns the number of frames in the capture.
func (r *ReplaySource) Len() int {
	return len(r.frames)
}
