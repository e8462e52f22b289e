package ack

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/udp"
)

// PollInterval is the pause between two receive attempts.
const PollInterval = 20 * time.Millisecond

// Source is the command socket as seen by the listener; udp.Conn satisfies it.
type Source interface {
	Poll(buf []byte) (n int, from *net.UDPAddr, ok bool, err error)
}

// Qualifies reports whether a reply on the command channel is an
// acknowledgment. Anything else is dropped unless a query is armed.
func Qualifies(response string) bool {
	return strings.Contains(response, "ok") || strings.Contains(response, "error")
}

// Listener reads the command socket and offers every reply to a Signal.
type Listener struct {
	src    Source
	signal *Signal
}

func NewListener(src Source, signal *Signal) *Listener {
	return &Listener{
		src:    src,
		signal: signal,
	}
}

func (l *Listener) Run(ctx context.Context) {
	logrus.Debugf("started ack listener")
	buf := make([]byte, udp.MaxDatagram)
	for {
		select {
		case <-ctx.Done():
			logrus.Debugf("stopped ack listener")
			return
		default:
		}
		l.pollOnce(buf)
		select {
		case <-ctx.Done():
			logrus.Debugf("stopped ack listener")
			return
		case <-time.After(PollInterval):
		}
	}
}

func (l *Listener) pollOnce(buf []byte) {
	n, _, ok, err := l.src.Poll(buf)
	if err != nil {
		logrus.Debug(fmt.Errorf("error receiving response: %w", err))
		return
	}
	if !ok || !utf8.Valid(buf[:n]) {
		return
	}
	response := strings.TrimSpace(string(buf[:n]))
	if !l.signal.Offer(response) {
		logrus.WithField("response", response).Debug("ignoring drone message")
	}
}
