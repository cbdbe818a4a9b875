package listener

import (
	"testing"

	"github.com/hypebeast/go-osc/osc"

	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/internal/orientation"
)

func newTestListener(t *testing.T) (*Listener, *orientation.State) {
	t.Helper()

	// Silence log output; handlers log dropped messages.
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	state := orientation.NewState()
	l, err := New("127.0.0.1:0", state)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, state
}

func TestQuatMessageOverwritesState(t *testing.T) {
	l, state := newTestListener(t)

	state.Set(orientation.RawQuaternion{W: 0.1, X: 0.2, Y: 0.3, Z: 0.4})

	l.Dispatch(osc.NewMessage(QuatAddress, float32(1), float32(0), float32(0), float32(0)))

	if state.Get() != orientation.Identity() {
		t.Errorf("state after /quat 1 0 0 0: got %+v, want identity", state.Get())
	}
}

func TestQuatMessageWireOrder(t *testing.T) {
	l, state := newTestListener(t)

	l.Dispatch(osc.NewMessage(QuatAddress, float32(0.1), float32(0.2), float32(0.3), float32(0.4)))

	want := orientation.RawQuaternion{W: 0.1, X: 0.2, Y: 0.3, Z: 0.4}
	if state.Get() != want {
		t.Errorf("arguments must map positionally to (w,x,y,z): got %+v, want %+v", state.Get(), want)
	}
}

func TestQuatMessageIdempotent(t *testing.T) {
	l, state := newTestListener(t)

	msg := osc.NewMessage(QuatAddress, float32(1), float32(0), float32(0), float32(0))
	l.Dispatch(msg)
	l.Dispatch(msg)

	if state.Get() != orientation.Identity() {
		t.Errorf("repeated delivery should leave state at identity, got %+v", state.Get())
	}
}

func TestOtherAddressIgnored(t *testing.T) {
	l, state := newTestListener(t)

	prev := orientation.RawQuaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}
	state.Set(prev)

	for _, addr := range []string{"/foo", "/quat/extra", "/battery"} {
		l.Dispatch(osc.NewMessage(addr, float32(9), float32(9), float32(9), float32(9)))
		if state.Get() != prev {
			t.Errorf("message to %s must not touch state, got %+v", addr, state.Get())
		}
	}
}

func TestMalformedQuatDropped(t *testing.T) {
	l, state := newTestListener(t)

	prev := orientation.RawQuaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}
	state.Set(prev)

	tests := []struct {
		name string
		msg  *osc.Message
	}{
		{"three args", osc.NewMessage(QuatAddress, float32(1), float32(0), float32(0))},
		{"five args", osc.NewMessage(QuatAddress, float32(1), float32(0), float32(0), float32(0), float32(0))},
		{"no args", osc.NewMessage(QuatAddress)},
		{"string arg", osc.NewMessage(QuatAddress, float32(1), "nope", float32(0), float32(0))},
		{"bool arg", osc.NewMessage(QuatAddress, true, float32(0), float32(0), float32(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.Dispatch(tt.msg) // must not panic
			if state.Get() != prev {
				t.Errorf("state changed on malformed message: got %+v, want %+v", state.Get(), prev)
			}
		})
	}
}

func TestNumericArgumentTypes(t *testing.T) {
	l, state := newTestListener(t)

	// Doubles and ints decode too; only the bridge is pinned to float32.
	l.Dispatch(osc.NewMessage(QuatAddress, float64(0.25), int32(1), int64(2), float32(0.5)))

	want := orientation.RawQuaternion{W: 0.25, X: 1, Y: 2, Z: 0.5}
	if state.Get() != want {
		t.Errorf("mixed numeric args: got %+v, want %+v", state.Get(), want)
	}
}
