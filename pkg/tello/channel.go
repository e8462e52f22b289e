package tello

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/ack"
	"github.com/einherij/tellopilot/pkg/udp"
)

// commandChannel sends commands and pairs them with replies for one session.
// The protocol has no request ids, so awaitMu, shared by every session of a
// client, lets only one caller wait for a reply at a time.
type commandChannel struct {
	conn    *udp.Conn
	drone   *net.UDPAddr
	signal  *ack.Signal
	awaitMu *sync.Mutex
	closed  <-chan struct{}
}

func newCommandChannel(conn *udp.Conn, drone *net.UDPAddr, signal *ack.Signal, awaitMu *sync.Mutex, closed <-chan struct{}) *commandChannel {
	return &commandChannel{
		conn:    conn,
		drone:   drone,
		signal:  signal,
		awaitMu: awaitMu,
		closed:  closed,
	}
}

func (ch *commandChannel) issue(ctx context.Context, command string, awaitAck bool, timeout time.Duration) (string, error) {
	if !awaitAck {
		if err := ch.send(command); err != nil {
			return "", err
		}
		return command, nil
	}

	ch.awaitMu.Lock()
	defer ch.awaitMu.Unlock()

	if isQuery(command) {
		ch.signal.ArmQuery()
		defer ch.signal.DisarmQuery()
	}
	select {
	case <-ch.closed:
		return "", &TransportError{Op: "send", Err: ErrNotConnected}
	default:
	}
	if err := ch.send(command); err != nil {
		return "", err
	}
	response, err := ch.await(ctx, timeout)
	if err != nil {
		logrus.WithField("command", command).Debug(err)
		return "", err
	}
	if strings.Contains(response, "error") || strings.Contains(response, "unactive") {
		return "", &RejectedError{Command: command, Response: response}
	}
	return response, nil
}

// await waits for the reply, giving up when the session closes.
func (ch *commandChannel) await(ctx context.Context, timeout time.Duration) (string, error) {
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-ch.closed:
			cancel()
		case <-waitCtx.Done():
		}
	}()

	response, err := ch.signal.Await(waitCtx, timeout)
	if err != nil && ctx.Err() == nil && waitCtx.Err() != nil {
		return "", &TransportError{Op: "await", Err: ErrNotConnected}
	}
	return response, err
}

// isQuery reports whether command is a read command such as "battery?".
func isQuery(command string) bool {
	return strings.HasSuffix(command, "?")
}

func (ch *commandChannel) send(command string) error {
	logrus.WithField("command", command).Debug("sending command")
	if err := ch.conn.SendTo([]byte(command), ch.drone); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	return nil
}
