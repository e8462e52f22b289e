package udp

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

// PollWindow is how long a single Poll waits for a datagram. It stands in for
// a non-blocking receive: queued data is returned at once, otherwise the call
// gives up almost immediately.
const PollWindow = time.Millisecond

// MaxDatagram is large enough for any Tello SDK reply or state frame.
const MaxDatagram = 1500

// Conn is a UDP socket on which every send and every receive holds the same
// lock, so a caller sending a command never races the listener reading acks.
type Conn struct {
	mux sync.Mutex
	pc  *net.UDPConn
}

func Listen(addr string) (*Conn, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("error resolving %q: %w", addr, err)
	}
	pc, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, fmt.Errorf("error binding %q: %w", addr, err)
	}
	return &Conn{pc: pc}, nil
}

func (c *Conn) SendTo(b []byte, to *net.UDPAddr) error {
	c.mux.Lock()
	defer c.mux.Unlock()

	if _, err := c.pc.WriteToUDP(b, to); err != nil {
		return fmt.Errorf("error writing to %s: %w", to, err)
	}
	return nil
}

// Poll reads at most one datagram into buf. ok is false, with a nil error,
// when nothing arrived within PollWindow.
func (c *Conn) Poll(buf []byte) (n int, from *net.UDPAddr, ok bool, err error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	if err = c.pc.SetReadDeadline(time.Now().Add(PollWindow)); err != nil {
		return 0, nil, false, fmt.Errorf("error setting read deadline: %w", err)
	}
	n, from, err = c.pc.ReadFromUDP(buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, nil, false, nil
		}
		return 0, nil, false, err
	}
	return n, from, true, nil
}

func (c *Conn) LocalAddr() *net.UDPAddr {
	return c.pc.LocalAddr().(*net.UDPAddr)
}

func (c *Conn) Close() error {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.pc.Close()
}
