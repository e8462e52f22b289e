package telemetry

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/udp"
)

// PollInterval is the pause between two receive attempts.
const PollInterval = 50 * time.Millisecond

// Source is where frames come from; udp.Conn satisfies it.
type Source interface {
	Poll(buf []byte) (n int, from *net.UDPAddr, ok bool, err error)
}

// Receiver moves frames from a Source into a Store. Bad frames and read
// errors are logged and skipped, they never stop the loop.
type Receiver struct {
	src   Source
	store *Store
}

func NewReceiver(src Source, store *Store) *Receiver {
	return &Receiver{
		src:   src,
		store: store,
	}
}

func (r *Receiver) Run(ctx context.Context) {
	logrus.Debugf("started telemetry receiver")
	buf := make([]byte, udp.MaxDatagram)
	for {
		select {
		case <-ctx.Done():
			logrus.Debugf("stopped telemetry receiver")
			return
		default:
		}
		r.pollOnce(buf)
		select {
		case <-ctx.Done():
			logrus.Debugf("stopped telemetry receiver")
			return
		case <-time.After(PollInterval):
		}
	}
}

func (r *Receiver) pollOnce(buf []byte) {
	n, _, ok, err := r.src.Poll(buf)
	if err != nil {
		logrus.Debug(fmt.Errorf("error receiving telemetry: %w", err))
		return
	}
	if !ok {
		return
	}
	st, err := Parse(buf[:n])
	if err != nil {
		logrus.WithField("frame", string(buf[:n])).Debug(fmt.Errorf("dropping telemetry frame: %w", err))
		return
	}
	r.store.Replace(st)
}
