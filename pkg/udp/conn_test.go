package udp

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPollEmpty(t *testing.T) {
	c, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	start := time.Now()
	_, _, ok, err := c.Poll(make([]byte, MaxDatagram))
	require.NoError(t, err)
	require.False(t, ok)
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestSendAndPoll(t *testing.T) {
	a, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = a.Close() }()
	b, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	require.NoError(t, a.SendTo([]byte("ok"), b.LocalAddr()))

	var (
		buf  = make([]byte, MaxDatagram)
		n    int
		from *net.UDPAddr
	)
	require.Eventually(t, func() bool {
		var ok bool
		n, from, ok, _ = b.Poll(buf)
		return ok
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, "ok", string(buf[:n]))
	require.Equal(t, a.LocalAddr().Port, from.Port)
}

func TestListenBadAddr(t *testing.T) {
	_, err := Listen("not-an-address")
	require.ErrorContains(t, err, "not-an-address")
}
