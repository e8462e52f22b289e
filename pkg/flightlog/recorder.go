package flightlog

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/einherij/tellopilot/pkg/telemetry"
)

type StateSource interface {
	State() telemetry.State
}

// Recorder samples the drone state every interval and writes it to the log
// when it changed since the last sample.
type Recorder struct {
	log      *Log
	src      StateSource
	interval time.Duration
}

func NewRecorder(log *Log, src StateSource, interval time.Duration) *Recorder {
	return &Recorder{
		log:      log,
		src:      src,
		interval: interval,
	}
}

func (r *Recorder) Run(ctx context.Context) {
	logrus.Warnf("started flight log recorder")
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var (
		last     telemetry.State
		recorded int64
	)
	for {
		select {
		case <-ctx.Done():
			logrus.WithField("snapshots", humanize.Comma(recorded)).Warnf("stopped flight log recorder")
			return
		case now := <-ticker.C:
			st := r.src.State()
			if recorded > 0 && st == last {
				continue
			}
			if err := r.log.Record(ctx, now, st); err != nil {
				if ctx.Err() == nil {
					logrus.Error(fmt.Errorf("error recording flight log: %w", err))
				}
				continue
			}
			last = st
			recorded++
		}
	}
}
