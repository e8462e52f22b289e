package tello

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/ack"
	"github.com/einherij/tellopilot/pkg/telemetry"
	"github.com/einherij/tellopilot/pkg/udp"
)

type Status int32

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Client is a connection to one drone over the text SDK. Commands go out on
// the command socket and are acknowledged on it; telemetry arrives on a
// separate socket and is kept as the latest State.
type Client struct {
	opts Options

	lifeMu     sync.Mutex // serializes Connect and Disconnect
	status     atomic.Int32
	running    atomic.Bool
	extended   atomic.Bool
	ackTimeout atomic.Int64

	store  *telemetry.Store
	signal *ack.Signal
	// awaitMu lets one caller at a time wait on signal, across sessions.
	awaitMu sync.Mutex
	session atomic.Pointer[session]
}

// session is everything that only exists while connected.
type session struct {
	drone     *net.UDPAddr
	cmdConn   *udp.Conn
	stateConn *udp.Conn
	channel   *commandChannel
	cancel    context.CancelFunc
	loops     sync.WaitGroup
}

func New(opts Options) *Client {
	opts = opts.withDefaults()
	c := &Client{
		opts:   opts,
		store:  telemetry.NewStore(),
		signal: ack.NewSignal(),
	}
	c.ackTimeout.Store(int64(opts.AckTimeout))
	return c
}

// Connect opens both sockets, starts the background loops and puts the drone
// into SDK mode. The "command" handshake and the hardware probe are best
// effort: a silent or rejecting drone leaves the client connected without the
// extended capability.
func (c *Client) Connect(ctx context.Context) error {
	if c.Status() == StatusConnecting {
		return ErrConnectInProgress
	}
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	if c.Status() == StatusConnected {
		return nil
	}
	c.status.Store(int32(StatusConnecting))

	s, err := c.open()
	if err != nil {
		c.status.Store(int32(StatusDisconnected))
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.channel = newCommandChannel(s.cmdConn, s.drone, c.signal, &c.awaitMu, loopCtx.Done())
	c.running.Store(true)
	s.loops.Add(2)
	go func() {
		defer s.loops.Done()
		telemetry.NewReceiver(s.stateConn, c.store).Run(loopCtx)
	}()
	go func() {
		defer s.loops.Done()
		ack.NewListener(s.cmdConn, c.signal).Run(loopCtx)
	}()
	c.session.Store(s)

	if _, err := c.Issue(ctx, "command", true); err != nil {
		logrus.Warn(fmt.Errorf("error entering sdk mode: %w", err))
	}
	hw, err := c.Issue(ctx, "hardware?", true)
	if err != nil {
		logrus.Warn(fmt.Errorf("error probing hardware: %w", err))
	}
	c.extended.Store(err == nil && hw == ExtendedHardwareID)

	c.status.Store(int32(StatusConnected))
	logrus.WithFields(logrus.Fields{
		"drone":    c.opts.DroneAddr,
		"extended": c.extended.Load(),
	}).Info("connected to tello")
	return nil
}

func (c *Client) open() (*session, error) {
	drone, err := net.ResolveUDPAddr("udp", c.opts.DroneAddr)
	if err != nil {
		return nil, &TransportError{Op: "resolve", Err: err}
	}
	cmdConn, err := udp.Listen(c.opts.CommandAddr)
	if err != nil {
		return nil, &TransportError{Op: "bind", Err: err}
	}
	stateConn, err := udp.Listen(c.opts.StateAddr)
	if err != nil {
		_ = cmdConn.Close()
		return nil, &TransportError{Op: "bind", Err: err}
	}
	return &session{
		drone:     drone,
		cmdConn:   cmdConn,
		stateConn: stateConn,
	}, nil
}

// Disconnect stops both loops and waits for them to exit before closing the
// sockets, so nothing touches the network once it returns. Calls still
// waiting for an ack fail with ErrNotConnected. Calling it on a disconnected
// client does nothing.
func (c *Client) Disconnect() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	s := c.session.Swap(nil)
	if s == nil {
		return
	}
	c.running.Store(false)
	s.cancel()
	s.loops.Wait()

	if err := s.cmdConn.Close(); err != nil {
		logrus.Error(fmt.Errorf("error closing command socket: %w", err))
	}
	if err := s.stateConn.Close(); err != nil {
		logrus.Error(fmt.Errorf("error closing state socket: %w", err))
	}
	c.extended.Store(false)
	c.status.Store(int32(StatusDisconnected))
	logrus.Info("disconnected from tello")
}

// Issue sends one command. With awaitAck it blocks until the drone answers or
// the ack timeout passes; without it the command text is returned as soon as
// the datagram is sent. Only one ack-awaiting call runs at a time.
func (c *Client) Issue(ctx context.Context, command string, awaitAck bool) (string, error) {
	if strings.Contains(command, "wifi") {
		return "", ErrForbiddenCommand
	}
	s := c.session.Load()
	if s == nil {
		return "", &TransportError{Op: "send", Err: ErrNotConnected}
	}
	return s.channel.issue(ctx, command, awaitAck, c.AckTimeout())
}

// State returns a copy of the latest telemetry.
func (c *Client) State() telemetry.State {
	return c.store.Load()
}

// StreamState sends the latest State every period until ctx is done. Sends
// never block, so a slow reader simply misses updates.
func (c *Client) StreamState(ctx context.Context, period time.Duration) <-chan telemetry.State {
	states := make(chan telemetry.State, 2)
	go func() {
		defer close(states)
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case states <- c.State():
				default:
				}
			}
		}
	}()
	return states
}

func (c *Client) IsRunning() bool {
	return c.running.Load()
}

func (c *Client) Status() Status {
	return Status(c.status.Load())
}

func (c *Client) AckTimeout() time.Duration {
	return time.Duration(c.ackTimeout.Load())
}

func (c *Client) SetAckTimeout(d time.Duration) {
	c.ackTimeout.Store(int64(d))
}

// HasExtendedCapability reports whether the hardware probe found the
// expansion board during the current connection.
func (c *Client) HasExtendedCapability() bool {
	return c.extended.Load()
}

// CommandAddr is the local address of the command socket, nil when
// disconnected.
func (c *Client) CommandAddr() *net.UDPAddr {
	if s := c.session.Load(); s != nil {
		return s.cmdConn.LocalAddr()
	}
	return nil
}

// StateAddr is the local address of the telemetry socket, nil when
// disconnected.
func (c *Client) StateAddr() *net.UDPAddr {
	if s := c.session.Load(); s != nil {
		return s.stateConn.LocalAddr()
	}
	return nil
}

func (c *Client) String() string {
	if !c.IsRunning() {
		return "<Tello not connected>"
	}
	return fmt.Sprintf("<Tello %d%%, timeout: %s>", c.State().Battery, c.AckTimeout())
}
