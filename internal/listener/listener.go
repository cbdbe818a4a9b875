// Package listener receives tracker orientation over OSC/UDP.
package listener

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/hypebeast/go-osc/osc"
	"go.uber.org/zap"

	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/internal/orientation"
)

// QuatAddress is the OSC address the tracker bridge sends quaternion
// samples to, as four float arguments in wire order (w, x, y, z).
const QuatAddress = "/quat"

// Listener binds a UDP port and writes incoming /quat messages into the
// shared orientation state. Messages for any other address are ignored.
type Listener struct {
	addr       string
	state      *orientation.State
	dispatcher *osc.StandardDispatcher
	server     *osc.Server

	mu    sync.Mutex
	bound net.Addr
}

// New creates a Listener for the given UDP address ("host:port").
func New(addr string, state *orientation.State) (*Listener, error) {
	l := &Listener{
		addr:  addr,
		state: state,
	}

	l.dispatcher = osc.NewStandardDispatcher()
	if err := l.dispatcher.AddMsgHandler(QuatAddress, l.handleQuat); err != nil {
		return nil, fmt.Errorf("registering %s handler: %w", QuatAddress, err)
	}

	l.server = &osc.Server{
		Addr:       addr,
		Dispatcher: l.dispatcher,
	}

	return l, nil
}

// Run serves until ctx is canceled. It is the caller's goroutine that
// blocks here; handler callbacks run on it as packets arrive, so the
// render loop never contends with parsing.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := net.ListenPacket("udp", l.addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", l.addr, err)
	}

	l.mu.Lock()
	l.bound = conn.LocalAddr()
	l.mu.Unlock()

	logger.Info("listening for tracker messages",
		zap.String("addr", conn.LocalAddr().String()),
		zap.String("address_pattern", QuatAddress),
	)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	err = l.server.Serve(conn)
	if ctx.Err() != nil {
		return nil // closed by shutdown
	}
	return err
}

// handleQuat validates and applies one /quat message. Malformed
// messages are dropped with the previous state left intact: a bad
// packet must never take the viewer down.
func (l *Listener) handleQuat(msg *osc.Message) {
	if len(msg.Arguments) != 4 {
		logger.Warn("dropping /quat message with wrong argument count",
			zap.Int("got", len(msg.Arguments)),
			zap.Int("want", 4),
		)
		return
	}

	var q orientation.RawQuaternion
	dst := [4]*float32{&q.W, &q.X, &q.Y, &q.Z}
	for i, arg := range msg.Arguments {
		f, ok := toFloat32(arg)
		if !ok {
			logger.Warn("dropping /quat message with non-numeric argument",
				zap.Int("position", i),
				zap.Any("value", arg),
			)
			return
		}
		*dst[i] = f
	}

	l.state.Set(q)
}

// toFloat32 accepts any numeric OSC argument type. The bridge sends
// float32, but other senders are free to use doubles or ints.
func toFloat32(arg interface{}) (float32, bool) {
	switch v := arg.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	default:
		return 0, false
	}
}

// Addr returns the bound UDP address once Run has started serving, nil
// before that. Mainly useful when listening on port 0.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bound
}

// Dispatch feeds a packet through the listener's dispatcher, exactly as
// if it had arrived on the socket.
func (l *Listener) Dispatch(packet osc.Packet) {
	l.dispatcher.Dispatch(packet)
}
