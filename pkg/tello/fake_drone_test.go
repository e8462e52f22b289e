package tello

import (
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeDrone answers commands on a loopback socket from a fixed script.
type fakeDrone struct {
	conn    *net.UDPConn
	delay   time.Duration
	replies map[string]string

	mux      sync.Mutex
	received []string
	done     chan struct{}
}

func newFakeDrone(t *testing.T, replies map[string]string) *fakeDrone {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	d := &fakeDrone{
		conn:    conn,
		replies: replies,
		done:    make(chan struct{}),
	}
	go d.serve()
	return d
}

func (d *fakeDrone) addr() string {
	return d.conn.LocalAddr().String()
}

func (d *fakeDrone) serve() {
	defer close(d.done)
	buf := make([]byte, 1500)
	for {
		n, from, err := d.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		cmd := string(buf[:n])
		d.mux.Lock()
		d.received = append(d.received, cmd)
		reply, ok := d.replies[cmd]
		delay := d.delay
		d.mux.Unlock()
		if !ok {
			continue
		}
		go func() {
			time.Sleep(delay)
			_, _ = d.conn.WriteToUDP([]byte(reply), from)
		}()
	}
}

func (d *fakeDrone) setDelay(delay time.Duration) {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.delay = delay
}

func (d *fakeDrone) forget(cmd string) {
	d.mux.Lock()
	defer d.mux.Unlock()
	delete(d.replies, cmd)
}

func (d *fakeDrone) say(text string, to *net.UDPAddr) {
	_, _ = d.conn.WriteToUDP([]byte(text), to)
}

func (d *fakeDrone) commands() []string {
	d.mux.Lock()
	defer d.mux.Unlock()
	return append([]string(nil), d.received...)
}

func (d *fakeDrone) got(cmd string) func() bool {
	return func() bool {
		for _, c := range d.commands() {
			if c == cmd {
				return true
			}
		}
		return false
	}
}

func (d *fakeDrone) close() {
	_ = d.conn.Close()
	select {
	case <-d.done:
	case <-time.After(time.Second):
	}
}
